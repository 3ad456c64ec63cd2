package trips

import "testing"

func TestValidateDispatchOverCapacity(t *testing.T) {
	v := ValidateDispatch(5000, 4500)
	if v.Allowed {
		t.Fatalf("expected 5000 kg on a 4500 kg vehicle to be rejected")
	}
	want := "Too heavy! This vehicle's max capacity is 4,500 kg."
	if v.Message != want {
		t.Errorf("Message = %q, want %q", v.Message, want)
	}
}

func TestValidateDispatchUnderCapacity(t *testing.T) {
	v := ValidateDispatch(3000, 4500)
	if !v.Allowed {
		t.Fatalf("expected 3000 kg on a 4500 kg vehicle to be allowed, got %q", v.Message)
	}
	if v.Message != "" {
		t.Errorf("allowed verdict carries message %q", v.Message)
	}
}

func TestValidateDispatchExactlyAtCapacity(t *testing.T) {
	// The boundary is inclusive: exactly-at-capacity must be allowed.
	v := ValidateDispatch(4500, 4500)
	if !v.Allowed {
		t.Fatalf("exactly-at-capacity dispatch rejected: %q", v.Message)
	}
}

func TestFormatKg(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{500, "500"},
		{4500, "4,500"},
		{4500.5, "4,500.5"},
		{1000000, "1,000,000"},
		{123456789, "123,456,789"},
	}
	for _, tc := range cases {
		if got := formatKg(tc.in); got != tc.want {
			t.Errorf("formatKg(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
