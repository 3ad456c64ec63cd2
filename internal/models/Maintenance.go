// internal/models/maintenance.go
package models

import (
	"time"

	"gorm.io/gorm"
)

type MaintenanceStatus string

const (
	MaintenanceScheduled  MaintenanceStatus = "scheduled"
	MaintenanceInProgress MaintenanceStatus = "in-progress"
	MaintenanceCompleted  MaintenanceStatus = "completed"
	MaintenanceCancelled  MaintenanceStatus = "cancelled"
)

// MaintenanceRecord logs service work against a vehicle. Analytics sums
// CostTotal across every record regardless of status.
type MaintenanceRecord struct {
	gorm.Model
	CompanyID   uint              `json:"company_id" gorm:"index"`
	VehicleID   uint              `json:"vehicle_id" gorm:"index"`
	Description string            `json:"description"`
	Status      MaintenanceStatus `json:"status" gorm:"type:varchar(16);default:scheduled"`
	CostTotal   float64           `json:"cost_total"`
	ScheduledAt *time.Time        `json:"scheduled_at,omitempty"`
	CompletedAt *time.Time        `json:"completed_at,omitempty"`
}
