package analytics

import (
	"reflect"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/Manthan-Thakar/FleetFlow-sub000/internal/models"
)

func TestComputeOrderAnalyticsEmpty(t *testing.T) {
	a := ComputeOrderAnalytics(nil)
	if a.TotalOrders != 0 || a.DeliveredOrders != 0 || a.ActiveOrders != 0 {
		t.Errorf("empty counts = %+v", a)
	}
	// Guarded division: zero, never NaN.
	if a.AvgOrderValue != 0 {
		t.Errorf("AvgOrderValue = %v, want 0", a.AvgOrderValue)
	}
}

func TestComputeOrderAnalytics(t *testing.T) {
	orders := []models.Order{
		{Status: models.OrderDelivered, TotalPrice: 100},
		{Status: models.OrderInTransit, TotalPrice: 200},
		{Status: models.OrderCancelled, TotalPrice: 300},
	}
	a := ComputeOrderAnalytics(orders)
	if a.TotalOrders != 3 {
		t.Errorf("TotalOrders = %d", a.TotalOrders)
	}
	if a.DeliveredOrders != 1 {
		t.Errorf("DeliveredOrders = %d", a.DeliveredOrders)
	}
	if a.ActiveOrders != 1 {
		t.Errorf("ActiveOrders = %d", a.ActiveOrders)
	}
	if a.AvgOrderValue != 200 {
		t.Errorf("AvgOrderValue = %v, want 200", a.AvgOrderValue)
	}
}

func TestComputeFleetAnalyticsTelemetryExclusion(t *testing.T) {
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	promised := now.Add(-48 * time.Hour)
	onTime := promised.Add(-time.Hour)
	late := promised.Add(time.Hour)

	vehicles := []models.Vehicle{
		{Status: "active", FuelEfficiency: 10},
		{Status: "active", FuelEfficiency: 14},
		{Status: "maintenance"}, // no telemetry, excluded from the fuel mean
	}
	orders := []models.Order{
		{Status: models.OrderDelivered, DistanceKm: 100, TotalPrice: 500, PromisedAt: &promised, DeliveredAt: &onTime},
		{Status: models.OrderDelivered, DistanceKm: 300, TotalPrice: 700, PromisedAt: &promised, DeliveredAt: &late},
		{Status: models.OrderDelivered}, // no telemetry at all, excluded everywhere
	}

	a := ComputeFleetAnalytics(vehicles, orders, DefaultConfig(), now)

	if a.ActiveVehicles != 2 {
		t.Errorf("ActiveVehicles = %d, want 2", a.ActiveVehicles)
	}
	if a.AvgFuelEfficiency != 12 {
		t.Errorf("AvgFuelEfficiency = %v, want 12", a.AvgFuelEfficiency)
	}
	if a.TotalDistanceKm != 400 {
		t.Errorf("TotalDistanceKm = %v, want 400", a.TotalDistanceKm)
	}
	if a.CostPerKm != 3 { // (500+700)/400
		t.Errorf("CostPerKm = %v, want 3", a.CostPerKm)
	}
	if a.OnTimeDeliveryRate != 50 { // 1 of 2 timed deliveries
		t.Errorf("OnTimeDeliveryRate = %v, want 50", a.OnTimeDeliveryRate)
	}
}

func TestComputeFleetAnalyticsEmpty(t *testing.T) {
	a := ComputeFleetAnalytics(nil, nil, DefaultConfig(), time.Now())
	if a.AvgFuelEfficiency != 0 || a.CostPerKm != 0 || a.OnTimeDeliveryRate != 0 {
		t.Errorf("empty fleet produced nonzero ratios: %+v", a)
	}
}

func TestDeadStock(t *testing.T) {
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	recent := now.AddDate(0, 0, -2)
	stale := now.AddDate(0, 0, -30)

	vehicles := []models.Vehicle{
		{Model: gormModel(1, stale), LastUsedAt: &stale},  // idle and unassigned -> dead
		{Model: gormModel(2, stale), LastUsedAt: &recent}, // used recently
		{Model: gormModel(3, stale), LastUsedAt: &stale},  // idle but has an active order
		{Model: gormModel(4, recent)},                     // never used, but created recently
	}
	orders := []models.Order{
		{Status: models.OrderInTransit, AssignedVehicleID: 3},
		{Status: models.OrderDelivered, AssignedVehicleID: 1}, // delivered does not hold the vehicle
	}

	dead := DeadStock(vehicles, orders, DefaultConfig(), now)
	if len(dead) != 1 || dead[0].ID != 1 {
		ids := make([]uint, 0, len(dead))
		for _, v := range dead {
			ids = append(ids, v.ID)
		}
		t.Errorf("dead stock ids = %v, want [1]", ids)
	}
}

func TestComputeMaintenanceAnalytics(t *testing.T) {
	records := []models.MaintenanceRecord{
		{Status: models.MaintenanceCompleted, CostTotal: 1200},
		{Status: models.MaintenanceScheduled, CostTotal: 300},
		{Status: models.MaintenanceCancelled, CostTotal: 50},
	}
	a := ComputeMaintenanceAnalytics(records)
	if a.TotalRecords != 3 || a.CompletedCount != 1 {
		t.Errorf("counts = %+v", a)
	}
	// Cost sums across every record regardless of status.
	if a.TotalCost != 1550 {
		t.Errorf("TotalCost = %v, want 1550", a.TotalCost)
	}
}

func TestTopPerformersTieBreak(t *testing.T) {
	perf := []DriverPerformance{
		{DriverID: 1, OnTimeDeliveryRate: 90, SafetyScore: 7},
		{DriverID: 2, OnTimeDeliveryRate: 95, SafetyScore: 6},
		{DriverID: 3, OnTimeDeliveryRate: 90, SafetyScore: 9},
		{DriverID: 4, OnTimeDeliveryRate: 80, SafetyScore: 10},
	}
	cfg := DefaultConfig()
	cfg.TopPerformerCount = 3

	top := TopPerformers(perf, cfg)
	if len(top) != 3 {
		t.Fatalf("len(top) = %d, want 3", len(top))
	}
	// 95 first, then the two 90s ordered by safety score.
	wantOrder := []uint{2, 3, 1}
	for i, want := range wantOrder {
		if top[i].DriverID != want {
			t.Errorf("top[%d] = driver %d, want %d", i, top[i].DriverID, want)
		}
	}

	// Ranking must not reorder the caller's slice.
	if perf[0].DriverID != 1 {
		t.Errorf("input slice was mutated")
	}
}

func TestNeedingImprovement(t *testing.T) {
	perf := []DriverPerformance{
		{DriverID: 1, SafetyScore: 9, ComplianceScore: 95},
		{DriverID: 2, SafetyScore: 4, ComplianceScore: 95}, // low safety
		{DriverID: 3, SafetyScore: 9, ComplianceScore: 40}, // low compliance
	}
	flagged := NeedingImprovement(perf, DefaultConfig())
	if len(flagged) != 2 {
		t.Fatalf("flagged %d drivers, want 2", len(flagged))
	}
	if flagged[0].DriverID != 2 || flagged[1].DriverID != 3 {
		t.Errorf("flagged = %+v", flagged)
	}
}

func TestComputeFleetKPIsEmpty(t *testing.T) {
	k := ComputeFleetKPIs(nil, nil)
	if k.OnTimeDeliveryRate != 0 || k.FuelEfficiency != 0 || k.SafetyScore != 0 {
		t.Errorf("empty KPIs = %+v", k)
	}
}

func TestAggregationsAreIdempotent(t *testing.T) {
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	vehicles := []models.Vehicle{
		{Model: gormModel(1, now.AddDate(0, 0, -40)), Status: "active", FuelEfficiency: 11},
		{Model: gormModel(2, now.AddDate(0, 0, -40)), Status: "inactive"},
	}
	orders := []models.Order{
		{Status: models.OrderDelivered, TotalPrice: 150, DistanceKm: 42},
		{Status: models.OrderConfirmed, TotalPrice: 50, AssignedVehicleID: 1},
	}
	drivers := []models.Driver{
		{Name: "A", OnTimeDeliveryRate: 88, SafetyScore: 8, TotalTrips: 12},
		{Name: "B", OnTimeDeliveryRate: 70, SafetyScore: 5, TotalTrips: 3},
	}
	cfg := DefaultConfig()

	first := ComputeFleetAnalytics(vehicles, orders, cfg, now)
	second := ComputeFleetAnalytics(vehicles, orders, cfg, now)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("ComputeFleetAnalytics not idempotent:\n%+v\n%+v", first, second)
	}

	p1 := ComputeDriverPerformance(drivers)
	p2 := ComputeDriverPerformance(drivers)
	if !reflect.DeepEqual(p1, p2) {
		t.Errorf("ComputeDriverPerformance not idempotent")
	}
}

func gormModel(id uint, createdAt time.Time) gorm.Model {
	return gorm.Model{ID: id, CreatedAt: createdAt}
}
