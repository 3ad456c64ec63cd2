package trips

import (
	"testing"
	"time"

	"github.com/Manthan-Thakar/FleetFlow-sub000/internal/models"
)

func TestMapTripStatusTable(t *testing.T) {
	cases := []struct {
		order models.OrderStatus
		want  TripStatus
	}{
		{models.OrderPending, TripBooked},
		{models.OrderConfirmed, TripBooked},
		{models.OrderPickedUp, TripInTransit},
		{models.OrderInTransit, TripInTransit},
		{models.OrderDelivered, TripDelivered},
		{models.OrderCancelled, TripCancelled},
		{models.OrderFailed, TripCancelled},
	}
	for _, tc := range cases {
		if got := MapTripStatus(tc.order); got != tc.want {
			t.Errorf("MapTripStatus(%s) = %s, want %s", tc.order, got, tc.want)
		}
	}

	// Unvalidated junk falls back to booked rather than breaking the board.
	if got := MapTripStatus(models.OrderStatus("half-delivered")); got != TripBooked {
		t.Errorf("unknown status mapped to %s, want %s", got, TripBooked)
	}
}

func TestProjectTripResolvesDirectories(t *testing.T) {
	created := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	o := models.Order{
		ID:                  "a1b2c3d4-0000-0000-0000-000000000000",
		OrderNumber:         "TRP-007",
		AssignedVehicleID:   4,
		AssignedDriverID:    9,
		TotalWeight:         3200,
		TotalPrice:          1800,
		Status:              models.OrderConfirmed,
		SpecialInstructions: "fragile",
		PickupLocation:      models.Location{Address: "Mumbai"},
		DeliveryLocation:    models.Location{Address: "Pune"},
		CreatedAt:           created,
	}
	drivers := DriverDirectory{9: "Asha Patel"}
	vehicles := VehicleDirectory{4: {RegistrationNumber: "MH-12-AB-1234", CapacityWeight: 4500, Type: "truck"}}

	trip := ProjectTrip(o, drivers, vehicles)

	if trip.TripID != "TRP-007" {
		t.Errorf("TripID = %q, want TRP-007", trip.TripID)
	}
	if trip.VehicleName != "MH-12-AB-1234" || trip.VehicleCapacity != 4500 || trip.FleetType != "truck" {
		t.Errorf("vehicle fields not resolved: %+v", trip)
	}
	if trip.DriverName != "Asha Patel" {
		t.Errorf("DriverName = %q", trip.DriverName)
	}
	if trip.Origin != "Mumbai" || trip.Destination != "Pune" {
		t.Errorf("locations = %q -> %q", trip.Origin, trip.Destination)
	}
	if trip.CargoWeight != 3200 || trip.EstimatedFuelCost != 1800 {
		t.Errorf("cargo/cost = %v / %v", trip.CargoWeight, trip.EstimatedFuelCost)
	}
	if trip.Status != TripBooked {
		t.Errorf("Status = %s, want booked", trip.Status)
	}
	if !trip.DispatchedAt.Equal(created) {
		t.Errorf("DispatchedAt = %v, want %v", trip.DispatchedAt, created)
	}
	if trip.Notes != "fragile" {
		t.Errorf("Notes = %q", trip.Notes)
	}
}

func TestProjectTripMissingVehicleDegrades(t *testing.T) {
	// The assigned vehicle was deleted after dispatch; the trip must still
	// render with empty vehicle fields, not fail.
	o := models.Order{
		ID:                "deadbeef-1111-2222-3333-444444444444",
		OrderNumber:       "TRP-010",
		AssignedVehicleID: 77,
		AssignedDriverID:  88,
		Status:            models.OrderInTransit,
	}

	trip := ProjectTrip(o, DriverDirectory{}, VehicleDirectory{})

	if trip.Status != TripInTransit {
		t.Errorf("Status = %s, want in-transit", trip.Status)
	}
	if trip.VehicleName != "" {
		t.Errorf("VehicleName = %q, want empty", trip.VehicleName)
	}
	if trip.VehicleCapacity != 0 {
		t.Errorf("VehicleCapacity = %v, want 0", trip.VehicleCapacity)
	}
	if trip.DriverName != "" {
		t.Errorf("DriverName = %q, want empty", trip.DriverName)
	}
}

func TestProjectTripIDFallback(t *testing.T) {
	o := models.Order{ID: "ab12cd34-5678-90ef-0000-000000000000"}
	trip := ProjectTrip(o, nil, nil)
	if trip.TripID != "TRP-AB12CD" {
		t.Errorf("TripID = %q, want TRP-AB12CD", trip.TripID)
	}

	short := models.Order{ID: "xy9"}
	if got := ProjectTrip(short, nil, nil).TripID; got != "TRP-XY9" {
		t.Errorf("short id TripID = %q, want TRP-XY9", got)
	}
}
