package trips

import (
	"strings"
	"time"

	"github.com/Manthan-Thakar/FleetFlow-sub000/internal/models"
)

// Trip is the board-facing view of an order. It is never persisted; it is
// recomputed on every read from the order plus the current driver/vehicle
// directories.
type Trip struct {
	TripID            string     `json:"trip_id"`
	OrderID           string     `json:"order_id"`
	FleetType         string     `json:"fleet_type"`
	VehicleName       string     `json:"vehicle_name"`
	VehicleCapacity   float64    `json:"vehicle_capacity"`
	DriverName        string     `json:"driver_name"`
	Origin            string     `json:"origin"`
	Destination       string     `json:"destination"`
	CargoWeight       float64    `json:"cargo_weight"`
	EstimatedFuelCost float64    `json:"estimated_fuel_cost"`
	Status            TripStatus `json:"status"`
	DispatchedAt      time.Time  `json:"dispatched_at"`
	Notes             string     `json:"notes,omitempty"`
}

// VehicleInfo is the slice of a vehicle record the projector needs.
type VehicleInfo struct {
	RegistrationNumber string
	CapacityWeight     float64
	Type               string
}

// DriverDirectory maps driver id to display name.
type DriverDirectory map[uint]string

// VehicleDirectory maps vehicle id to the fields the trip view shows.
type VehicleDirectory map[uint]VehicleInfo

// ProjectTrip converts a stored order into its trip view. Missing directory
// entries resolve to empty/zero display values rather than failing: the board
// must still render trips whose vehicle or driver was deleted after dispatch.
func ProjectTrip(o models.Order, drivers DriverDirectory, vehicles VehicleDirectory) Trip {
	t := Trip{
		TripID:            tripID(o),
		OrderID:           o.ID,
		Origin:            o.PickupLocation.Address,
		Destination:       o.DeliveryLocation.Address,
		CargoWeight:       o.TotalWeight,
		EstimatedFuelCost: o.TotalPrice,
		Status:            MapTripStatus(o.Status),
		DispatchedAt:      o.CreatedAt,
		Notes:             o.SpecialInstructions,
	}

	if v, ok := vehicles[o.AssignedVehicleID]; ok {
		t.VehicleName = v.RegistrationNumber
		t.VehicleCapacity = v.CapacityWeight
		t.FleetType = v.Type
	}
	if name, ok := drivers[o.AssignedDriverID]; ok {
		t.DriverName = name
	}
	return t
}

// ProjectTrips projects a whole order listing against one directory snapshot.
func ProjectTrips(orders []models.Order, drivers DriverDirectory, vehicles VehicleDirectory) []Trip {
	out := make([]Trip, 0, len(orders))
	for _, o := range orders {
		out = append(out, ProjectTrip(o, drivers, vehicles))
	}
	return out
}

// tripID prefers the human-readable order number and falls back to a code
// derived from the store id for orders imported without one.
func tripID(o models.Order) string {
	if o.OrderNumber != "" {
		return o.OrderNumber
	}
	id := o.ID
	if len(id) > 6 {
		id = id[:6]
	}
	return "TRP-" + strings.ToUpper(id)
}
