// internal/models/vehicle.go
package models

import (
	"time"

	"gorm.io/gorm"
)

type Vehicle struct {
	gorm.Model
	RegistrationNumber string  `json:"registration_number"`
	Type               string  `json:"type"` // "truck", "van", "pickup", "trailer"
	CompanyID          uint    `json:"company_id" gorm:"index"`
	CapacityWeight     float64 `json:"capacity_weight"`              // rated cargo capacity in kg
	Status             string  `json:"status" gorm:"default:active"` // "active", "inactive", "maintenance"

	// FuelEfficiency is km per litre; zero means no telemetry reported yet and
	// the vehicle is excluded from fleet fuel averages.
	FuelEfficiency float64 `json:"fuel_efficiency"`

	// LastUsedAt feeds the dead-stock report. Nil for never-dispatched vehicles.
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
}
