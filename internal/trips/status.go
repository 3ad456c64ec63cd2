// Package trips holds the order/trip lifecycle core: the trip view projection,
// the dispatch capacity validator and the dispatch service that creates orders.
// Everything except the dispatch service is pure and never fails.
package trips

import (
	"github.com/Manthan-Thakar/FleetFlow-sub000/internal/models"
)

// TripStatus is the coarse operational status shown on trip boards.
type TripStatus string

const (
	TripBooked    TripStatus = "booked"
	TripInTransit TripStatus = "in-transit"
	TripDelivered TripStatus = "delivered"
	TripCancelled TripStatus = "cancelled"
)

// MapTripStatus collapses the seven order statuses into the four trip board
// statuses. The switch enumerates every OrderStatus value; the default exists
// only for values that never passed KnownOrderStatus on the way into the store
// and deliberately reads as "booked" so the board still renders something.
func MapTripStatus(s models.OrderStatus) TripStatus {
	switch s {
	case models.OrderPending, models.OrderConfirmed:
		return TripBooked
	case models.OrderPickedUp, models.OrderInTransit:
		return TripInTransit
	case models.OrderDelivered:
		return TripDelivered
	case models.OrderCancelled, models.OrderFailed:
		return TripCancelled
	default:
		return TripBooked
	}
}
