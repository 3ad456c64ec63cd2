package trips

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Manthan-Thakar/FleetFlow-sub000/internal/models"
)

// fakeOrderStore records what the dispatcher asked of it.
type fakeOrderStore struct {
	created   []*models.Order
	seq       int64
	createErr error
	seqErr    error
}

func (f *fakeOrderStore) Create(ctx context.Context, o *models.Order) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, o)
	return nil
}

func (f *fakeOrderStore) NextOrderNumber(ctx context.Context, companyID uint) (string, error) {
	if f.seqErr != nil {
		return "", f.seqErr
	}
	f.seq++
	return fmt.Sprintf("TRP-%03d", f.seq), nil
}

func newTestDispatcher(store OrderStore, now time.Time) *Dispatcher {
	d := NewDispatcher(store)
	d.now = func() time.Time { return now }
	return d
}

func TestDispatchRejectsOverweightWithoutPersisting(t *testing.T) {
	store := &fakeOrderStore{}
	d := newTestDispatcher(store, time.Now())

	order, verdict, err := d.Dispatch(context.Background(), DispatchInput{
		CompanyID:       1,
		VehicleID:       2,
		VehicleCapacity: 4500,
		CargoWeight:     5000,
	})
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if verdict.Allowed {
		t.Fatalf("expected rejection")
	}
	if verdict.Message != "Too heavy! This vehicle's max capacity is 4,500 kg." {
		t.Errorf("Message = %q", verdict.Message)
	}
	if order != nil {
		t.Errorf("rejected dispatch returned an order")
	}
	if len(store.created) != 0 || store.seq != 0 {
		t.Errorf("store touched on rejection: created=%d seq=%d", len(store.created), store.seq)
	}
}

func TestDispatchCreatesConfirmedOrder(t *testing.T) {
	now := time.Date(2026, 4, 2, 14, 0, 0, 0, time.UTC)
	store := &fakeOrderStore{seq: 3} // three existing company orders
	d := newTestDispatcher(store, now)

	order, verdict, err := d.Dispatch(context.Background(), DispatchInput{
		CompanyID:         1,
		DispatcherID:      42,
		CustomerName:      "Mehta Traders",
		VehicleID:         2,
		VehicleCapacity:   4500,
		DriverID:          7,
		CargoWeight:       3000,
		CargoNotes:        "handle with care",
		Origin:            "Mumbai",
		Destination:       "Pune",
		EstimatedFuelCost: 2200,
	})
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if !verdict.Allowed {
		t.Fatalf("unexpected rejection: %q", verdict.Message)
	}
	if len(store.created) != 1 {
		t.Fatalf("expected exactly one created order, got %d", len(store.created))
	}

	if order.OrderNumber != "TRP-004" {
		t.Errorf("OrderNumber = %q, want TRP-004", order.OrderNumber)
	}
	if order.Status != models.OrderConfirmed {
		t.Errorf("Status = %s, want confirmed", order.Status)
	}
	if order.TotalWeight != 3000 {
		t.Errorf("TotalWeight = %v, want 3000", order.TotalWeight)
	}
	if order.BasePrice != 2200 || order.TotalPrice != 2200 {
		t.Errorf("pricing = %v/%v, want 2200/2200", order.BasePrice, order.TotalPrice)
	}
	if order.Priority != models.PriorityMedium {
		t.Errorf("Priority = %s, want medium default", order.Priority)
	}

	if len(order.Items) != 1 {
		t.Fatalf("expected one synthetic cargo item, got %d", len(order.Items))
	}
	item := order.Items[0]
	if item.Name != "Cargo" || item.Quantity != 1 || item.Weight != 3000 || item.Description != "handle with care" {
		t.Errorf("cargo item = %+v", item)
	}

	if len(order.Tracking) != 1 {
		t.Fatalf("expected one seed tracking event, got %d", len(order.Tracking))
	}
	ev := order.Tracking[0]
	if ev.Status != models.OrderConfirmed || ev.Notes != "Trip created" || ev.UpdatedBy != 42 {
		t.Errorf("seed event = %+v", ev)
	}
	if !ev.Timestamp.Equal(now) {
		t.Errorf("seed timestamp = %v, want %v", ev.Timestamp, now)
	}

	// The freshly created order projects onto the board as booked.
	trip := ProjectTrip(*order, DriverDirectory{7: "Ravi"}, VehicleDirectory{2: {RegistrationNumber: "MH-01", CapacityWeight: 4500, Type: "truck"}})
	if trip.Status != TripBooked {
		t.Errorf("projected status = %s, want booked", trip.Status)
	}
	if trip.Origin != "Mumbai" || trip.Destination != "Pune" {
		t.Errorf("projected route = %q -> %q", trip.Origin, trip.Destination)
	}
}

func TestDispatchDistinctOrderNumbers(t *testing.T) {
	// The sequence is store-owned and atomic: back-to-back dispatches must
	// never observe the same number.
	store := &fakeOrderStore{}
	d := newTestDispatcher(store, time.Now())

	in := DispatchInput{CompanyID: 1, VehicleID: 2, VehicleCapacity: 9000, CargoWeight: 100}
	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		order, _, err := d.Dispatch(context.Background(), in)
		if err != nil {
			t.Fatalf("Dispatch %d: %v", i, err)
		}
		if seen[order.OrderNumber] {
			t.Fatalf("duplicate order number %q", order.OrderNumber)
		}
		seen[order.OrderNumber] = true
	}
}

func TestDispatchPropagatesStoreErrors(t *testing.T) {
	storeErr := errors.New("connection reset")
	store := &fakeOrderStore{createErr: storeErr}
	d := newTestDispatcher(store, time.Now())

	_, _, err := d.Dispatch(context.Background(), DispatchInput{
		CompanyID: 1, VehicleID: 2, VehicleCapacity: 4500, CargoWeight: 10,
	})
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected store error to propagate, got %v", err)
	}
}
