package trips

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Manthan-Thakar/FleetFlow-sub000/internal/models"
)

// OrderStore is the persistence boundary the dispatcher writes through.
// *repository.OrderRepository satisfies it; tests use an in-memory fake.
type OrderStore interface {
	Create(ctx context.Context, o *models.Order) error
	NextOrderNumber(ctx context.Context, companyID uint) (string, error)
}

// DispatchInput is everything the dispatch form collects. Vehicle capacity is
// passed alongside the id so the service validates against the vehicle the
// dispatcher actually selected, not a re-read that may have changed.
type DispatchInput struct {
	CompanyID    uint
	DispatcherID uint // user id recorded on the seed tracking event

	CustomerID    string
	CustomerName  string
	CustomerPhone string
	CustomerEmail string

	VehicleID       uint
	VehicleCapacity float64 // kg, rated capacity of the selected vehicle
	DriverID        uint

	CargoWeight float64 // kg
	CargoNotes  string
	CargoValue  float64

	Origin      string
	Destination string

	EstimatedFuelCost   float64
	Priority            models.OrderPriority
	SpecialInstructions string
	PromisedAt          *time.Time
}

// Dispatcher creates orders once the capacity gate passes.
type Dispatcher struct {
	store OrderStore
	now   func() time.Time
}

func NewDispatcher(store OrderStore) *Dispatcher {
	return &Dispatcher{store: store, now: time.Now}
}

// Dispatch validates the cargo against the selected vehicle and, only if
// allowed, persists a new confirmed order. A rejection returns the verdict
// with a nil order and nil error; the store is never touched. Persistence
// failures come back unchanged from the store.
func (d *Dispatcher) Dispatch(ctx context.Context, in DispatchInput) (*models.Order, Verdict, error) {
	verdict := ValidateDispatch(in.CargoWeight, in.VehicleCapacity)
	if !verdict.Allowed {
		return nil, verdict, nil
	}

	number, err := d.store.NextOrderNumber(ctx, in.CompanyID)
	if err != nil {
		return nil, verdict, err
	}

	now := d.now()
	priority := in.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	o := &models.Order{
		ID:          uuid.NewString(),
		CompanyID:   in.CompanyID,
		OrderNumber: number,

		CustomerID:    strings.TrimSpace(in.CustomerID),
		CustomerName:  strings.TrimSpace(in.CustomerName),
		CustomerPhone: strings.TrimSpace(in.CustomerPhone),
		CustomerEmail: strings.TrimSpace(in.CustomerEmail),

		AssignedVehicleID: in.VehicleID,
		AssignedDriverID:  in.DriverID,

		// The dispatch form models cargo as one generic line item carrying the
		// entered weight and free-text notes.
		Items: []models.CargoItem{{
			Name:        "Cargo",
			Description: in.CargoNotes,
			Quantity:    1,
			Weight:      in.CargoWeight,
			Value:       in.CargoValue,
		}},
		TotalWeight: in.CargoWeight,
		TotalValue:  in.CargoValue,

		PickupLocation:   models.Location{Address: strings.TrimSpace(in.Origin)},
		DeliveryLocation: models.Location{Address: strings.TrimSpace(in.Destination)},

		// Manually dispatched trips skip "pending"; that state is reserved for
		// customer-initiated orders arriving outside this path.
		Status:   models.OrderConfirmed,
		Priority: priority,

		Tracking: []models.TrackingEvent{{
			Status:    models.OrderConfirmed,
			Timestamp: now,
			UpdatedBy: in.DispatcherID,
			Notes:     "Trip created",
		}},

		// No tax or fee computation exists at creation time.
		BasePrice:  in.EstimatedFuelCost,
		TotalPrice: in.EstimatedFuelCost,

		SpecialInstructions: in.SpecialInstructions,
		PromisedAt:          in.PromisedAt,
	}

	if err := d.store.Create(ctx, o); err != nil {
		return nil, verdict, err
	}
	return o, verdict, nil
}
