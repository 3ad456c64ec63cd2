// internal/models/order.go
package models

import (
	"time"
)

// OrderStatus is the fine-grained delivery lifecycle. The set is closed: the
// trip projector switches over every value, so adding a status here forces a
// decision about its coarse trip status.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderPickedUp  OrderStatus = "picked-up"
	OrderInTransit OrderStatus = "in-transit"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
	OrderFailed    OrderStatus = "failed"
)

// KnownOrderStatus reports whether s is one of the seven lifecycle values.
func KnownOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderPickedUp, OrderInTransit,
		OrderDelivered, OrderCancelled, OrderFailed:
		return true
	}
	return false
}

// IsActive reports whether an order still occupies its assigned resources
// (not yet delivered or terminated).
func (s OrderStatus) IsActive() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderPickedUp, OrderInTransit:
		return true
	}
	return false
}

type OrderPriority string

const (
	PriorityLow    OrderPriority = "low"
	PriorityMedium OrderPriority = "medium"
	PriorityHigh   OrderPriority = "high"
	PriorityUrgent OrderPriority = "urgent"
)

// Location is an address with placeholder coordinates. Geocoding is not part
// of this system; lat/lng stay zero unless an import supplies them.
type Location struct {
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CargoItem is one line of an order's manifest.
type CargoItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	OrderID     string  `gorm:"index;size:36" json:"order_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	Weight      float64 `json:"weight"` // kg, per line
	Value       float64 `json:"value"`
}

// TrackingEvent is an append-only status-change record. Rows are only ever
// inserted, never updated or deleted while the order lives.
type TrackingEvent struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	OrderID   string      `gorm:"index;size:36" json:"order_id"`
	Status    OrderStatus `gorm:"type:varchar(16)" json:"status"`
	Timestamp time.Time   `json:"timestamp"`
	UpdatedBy uint        `json:"updated_by"` // user id of the actor
	Notes     string      `json:"notes"`
}

// Order is the persisted unit of work for a single cargo movement. Orders are
// hard-deleted on removal, so there is deliberately no gorm.DeletedAt here.
type Order struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	CompanyID   uint   `gorm:"index;not null" json:"company_id"`
	OrderNumber string `gorm:"index" json:"order_number"` // e.g. "TRP-003", company-scoped

	CustomerID    string `gorm:"size:36" json:"customer_id"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	CustomerEmail string `json:"customer_email"`

	// Weak references: the vehicle/driver may be reassigned or deleted after
	// dispatch, so projections must tolerate dangling ids.
	AssignedVehicleID uint `gorm:"index" json:"assigned_vehicle_id"`
	AssignedDriverID  uint `gorm:"index" json:"assigned_driver_id"`

	Items       []CargoItem `gorm:"foreignKey:OrderID" json:"items"`
	TotalWeight float64     `json:"total_weight"` // kg, sum of item weights
	TotalValue  float64     `json:"total_value"`

	PickupLocation   Location `gorm:"embedded;embeddedPrefix:pickup_" json:"pickup_location"`
	DeliveryLocation Location `gorm:"embedded;embeddedPrefix:delivery_" json:"delivery_location"`

	Status   OrderStatus   `gorm:"type:varchar(16);index;not null" json:"status"`
	Priority OrderPriority `gorm:"type:varchar(8);default:medium" json:"priority"`

	Tracking []TrackingEvent `gorm:"foreignKey:OrderID" json:"tracking"`

	BasePrice  float64 `json:"base_price"`
	TotalPrice float64 `json:"total_price"`
	Currency   string  `gorm:"size:8;default:INR" json:"currency"`

	PaymentStatus       string `gorm:"default:pending" json:"payment_status"` // independent of delivery status
	SpecialInstructions string `json:"special_instructions"`

	// Delivery telemetry, filled in as the trip completes. Zero/nil means the
	// record carries no telemetry and is excluded from fleet averages.
	DistanceKm  float64    `json:"distance_km"`
	PromisedAt  *time.Time `json:"promised_at,omitempty"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
