// internal/models/shift.go
package models

import (
	"time"

	"gorm.io/gorm"
)

// Shift schedules a driver (and optionally a vehicle) for a working window.
type Shift struct {
	gorm.Model
	CompanyID uint      `json:"company_id" gorm:"index"`
	DriverID  uint      `json:"driver_id" gorm:"index"`
	VehicleID uint      `json:"vehicle_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Status    string    `json:"status" gorm:"default:scheduled"` // "scheduled", "active", "completed", "missed"
	Notes     string    `json:"notes"`
}
