// Package analytics computes the read-only summaries behind the dashboard
// surfaces. Every function here is a pure reduction over the collections it
// is handed: no stored state, no I/O, and every division is guarded so a
// freshly onboarded company with empty collections renders zeros instead of
// NaN or a panic.
package analytics

import (
	"sort"
	"time"

	"github.com/Manthan-Thakar/FleetFlow-sub000/internal/models"
)

// Config carries the thresholds the dashboards treat as fixed constants.
// They are configuration, not business rules: the UI shows them without a
// documented rationale, so they stay named and overridable here.
type Config struct {
	// TopPerformerCount is the size of the "top performers" slice.
	TopPerformerCount int
	// DeadStockIdleDays is how long a vehicle may sit unused before it is
	// flagged as dead stock.
	DeadStockIdleDays int
	// MinSafetyScore (0-10) and MinComplianceScore (0-100) are the floors
	// below which a driver lands on the "needing improvement" list.
	MinSafetyScore     float64
	MinComplianceScore float64
}

func DefaultConfig() Config {
	return Config{
		TopPerformerCount:  5,
		DeadStockIdleDays:  10,
		MinSafetyScore:     6.0,
		MinComplianceScore: 70.0,
	}
}

// ─── Order analytics ─────────────────────────────────────────

type OrderAnalytics struct {
	TotalOrders     int     `json:"total_orders"`
	DeliveredOrders int     `json:"delivered_orders"`
	ActiveOrders    int     `json:"active_orders"`
	AvgOrderValue   float64 `json:"avg_order_value"`
}

func ComputeOrderAnalytics(orders []models.Order) OrderAnalytics {
	a := OrderAnalytics{TotalOrders: len(orders)}

	var valueSum float64
	for _, o := range orders {
		if o.Status == models.OrderDelivered {
			a.DeliveredOrders++
		}
		if o.Status.IsActive() {
			a.ActiveOrders++
		}
		valueSum += o.TotalPrice
	}
	if len(orders) > 0 {
		a.AvgOrderValue = valueSum / float64(len(orders))
	}
	return a
}

// ─── Fleet analytics ─────────────────────────────────────────

type FleetAnalytics struct {
	TotalVehicles  int `json:"total_vehicles"`
	ActiveVehicles int `json:"active_vehicles"`

	// Telemetry reductions. Orders or vehicles without telemetry are excluded
	// from both numerator and denominator rather than counted as zero.
	TotalDistanceKm    float64 `json:"total_distance_km"`
	AvgFuelEfficiency  float64 `json:"avg_fuel_efficiency"`
	OnTimeDeliveryRate float64 `json:"on_time_delivery_rate"` // percentage
	CostPerKm          float64 `json:"cost_per_km"`

	// DeadStock lists underutilized vehicles: no active assigned order and no
	// use within the configured idle window. Derived, never stored.
	DeadStock []models.Vehicle `json:"dead_stock"`
}

func ComputeFleetAnalytics(vehicles []models.Vehicle, orders []models.Order, cfg Config, now time.Time) FleetAnalytics {
	a := FleetAnalytics{TotalVehicles: len(vehicles)}

	for _, v := range vehicles {
		if v.Status == "active" {
			a.ActiveVehicles++
		}
	}

	var effSum float64
	var effCount int
	for _, v := range vehicles {
		if v.FuelEfficiency > 0 {
			effSum += v.FuelEfficiency
			effCount++
		}
	}
	if effCount > 0 {
		a.AvgFuelEfficiency = effSum / float64(effCount)
	}

	var costSum, costDistance float64
	var onTime, timed int
	for _, o := range orders {
		if o.DistanceKm > 0 {
			a.TotalDistanceKm += o.DistanceKm
			costSum += o.TotalPrice
			costDistance += o.DistanceKm
		}
		if o.PromisedAt != nil && o.DeliveredAt != nil {
			timed++
			if !o.DeliveredAt.After(*o.PromisedAt) {
				onTime++
			}
		}
	}
	if costDistance > 0 {
		a.CostPerKm = costSum / costDistance
	}
	if timed > 0 {
		a.OnTimeDeliveryRate = float64(onTime) / float64(timed) * 100
	}

	a.DeadStock = DeadStock(vehicles, orders, cfg, now)
	return a
}

// DeadStock returns vehicles with no active assigned order whose last use is
// older than the configured idle window. A vehicle never dispatched counts
// from its creation time.
func DeadStock(vehicles []models.Vehicle, orders []models.Order, cfg Config, now time.Time) []models.Vehicle {
	assigned := make(map[uint]bool)
	for _, o := range orders {
		if o.Status.IsActive() && o.AssignedVehicleID != 0 {
			assigned[o.AssignedVehicleID] = true
		}
	}

	cutoff := now.AddDate(0, 0, -cfg.DeadStockIdleDays)
	var dead []models.Vehicle
	for _, v := range vehicles {
		if assigned[v.ID] {
			continue
		}
		lastUse := v.CreatedAt
		if v.LastUsedAt != nil {
			lastUse = *v.LastUsedAt
		}
		if lastUse.Before(cutoff) {
			dead = append(dead, v)
		}
	}
	return dead
}

// ─── Maintenance analytics ───────────────────────────────────

type MaintenanceAnalytics struct {
	TotalRecords   int     `json:"total_records"`
	CompletedCount int     `json:"completed_count"`
	TotalCost      float64 `json:"total_cost"`
}

func ComputeMaintenanceAnalytics(records []models.MaintenanceRecord) MaintenanceAnalytics {
	a := MaintenanceAnalytics{TotalRecords: len(records)}
	for _, r := range records {
		if r.Status == models.MaintenanceCompleted {
			a.CompletedCount++
		}
		// Cost counts for every record regardless of status.
		a.TotalCost += r.CostTotal
	}
	return a
}

// ─── Driver performance ──────────────────────────────────────

type DriverPerformance struct {
	DriverID           uint    `json:"driver_id"`
	Name               string  `json:"name"`
	OnTimeDeliveryRate float64 `json:"on_time_delivery_rate"` // 0-100
	SafetyScore        float64 `json:"safety_score"`          // 0-10
	ComplianceScore    float64 `json:"compliance_score"`      // 0-100
	TotalTrips         int     `json:"total_trips"`
	TotalDistanceKm    float64 `json:"total_distance_km"`
}

func ComputeDriverPerformance(drivers []models.Driver) []DriverPerformance {
	out := make([]DriverPerformance, 0, len(drivers))
	for _, d := range drivers {
		out = append(out, DriverPerformance{
			DriverID:           d.ID,
			Name:               d.Name,
			OnTimeDeliveryRate: d.OnTimeDeliveryRate,
			SafetyScore:        d.SafetyScore,
			ComplianceScore:    d.ComplianceScore,
			TotalTrips:         d.TotalTrips,
			TotalDistanceKm:    d.TotalDistanceKm,
		})
	}
	return out
}

// TopPerformers ranks drivers by on-time rate descending, ties broken by
// safety score descending, and returns at most cfg.TopPerformerCount entries.
// The input slice is not modified.
func TopPerformers(perf []DriverPerformance, cfg Config) []DriverPerformance {
	ranked := make([]DriverPerformance, len(perf))
	copy(ranked, perf)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].OnTimeDeliveryRate != ranked[j].OnTimeDeliveryRate {
			return ranked[i].OnTimeDeliveryRate > ranked[j].OnTimeDeliveryRate
		}
		return ranked[i].SafetyScore > ranked[j].SafetyScore
	})
	if cfg.TopPerformerCount > 0 && len(ranked) > cfg.TopPerformerCount {
		ranked = ranked[:cfg.TopPerformerCount]
	}
	return ranked
}

// NeedingImprovement flags drivers whose compliance or safety score falls
// below the configured floors.
func NeedingImprovement(perf []DriverPerformance, cfg Config) []DriverPerformance {
	var flagged []DriverPerformance
	for _, p := range perf {
		if p.ComplianceScore < cfg.MinComplianceScore || p.SafetyScore < cfg.MinSafetyScore {
			flagged = append(flagged, p)
		}
	}
	return flagged
}

// ─── Fleet-level KPIs ────────────────────────────────────────

type FleetKPIs struct {
	OnTimeDeliveryRate float64 `json:"on_time_delivery_rate"`
	FuelEfficiency     float64 `json:"fuel_efficiency"`
	SafetyScore        float64 `json:"safety_score"`
}

// ComputeFleetKPIs takes simple arithmetic means across the drivers and
// vehicles that report data. Empty collections yield zeros.
func ComputeFleetKPIs(drivers []models.Driver, vehicles []models.Vehicle) FleetKPIs {
	var k FleetKPIs

	var onTimeSum, safetySum float64
	var withTrips int
	for _, d := range drivers {
		if d.TotalTrips > 0 {
			onTimeSum += d.OnTimeDeliveryRate
			withTrips++
		}
		safetySum += d.SafetyScore
	}
	if withTrips > 0 {
		k.OnTimeDeliveryRate = onTimeSum / float64(withTrips)
	}
	if len(drivers) > 0 {
		k.SafetyScore = safetySum / float64(len(drivers))
	}

	var effSum float64
	var effCount int
	for _, v := range vehicles {
		if v.FuelEfficiency > 0 {
			effSum += v.FuelEfficiency
			effCount++
		}
	}
	if effCount > 0 {
		k.FuelEfficiency = effSum / float64(effCount)
	}
	return k
}
