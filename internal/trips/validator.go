package trips

import (
	"fmt"
	"strconv"
	"strings"
)

// Verdict is the dispatch validator's answer. Allowed=false carries the exact
// message the dispatch form shows inline; the validator itself never errors.
type Verdict struct {
	Allowed bool   `json:"allowed"`
	Message string `json:"message,omitempty"`
}

// ValidateDispatch gates a dispatch attempt against the selected vehicle's
// rated capacity. The boundary is inclusive: a load exactly at capacity is
// allowed. Callers re-run this on every change to the weight or the vehicle
// selection, always with the currently selected vehicle's capacity.
func ValidateDispatch(cargoWeight, capacityWeight float64) Verdict {
	if cargoWeight > capacityWeight {
		return Verdict{
			Allowed: false,
			Message: fmt.Sprintf("Too heavy! This vehicle's max capacity is %s kg.", formatKg(capacityWeight)),
		}
	}
	return Verdict{Allowed: true}
}

// formatKg renders a weight with grouped thousands, e.g. 4500 -> "4,500".
// Fractional capacities keep their digits: 4500.5 -> "4,500.5".
func formatKg(w float64) string {
	s := strconv.FormatFloat(w, 'f', -1, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}

	out := b.String()
	if hasFrac {
		out += "." + fracPart
	}
	if neg {
		out = "-" + out
	}
	return out
}
