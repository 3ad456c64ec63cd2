// internal/models/driver.go
package models

import (
	"gorm.io/gorm"
)

type Driver struct {
	gorm.Model
	UserID        uint   `json:"user_id" gorm:"index"` // Foreign key to User (optional; drivers may have no login)
	User          *User  `gorm:"foreignKey:UserID" json:"-"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	LicenseNumber string `json:"license_number"`
	CompanyID     uint   `json:"company_id" gorm:"index"`
	Status        string `json:"status" gorm:"default:active"` // "active", "inactive", "suspended"

	// Stored performance telemetry, maintained by out-of-band imports and
	// consumed by the analytics aggregator.
	OnTimeDeliveryRate float64 `json:"on_time_delivery_rate"` // percentage, 0-100
	SafetyScore        float64 `json:"safety_score"`          // 0-10
	ComplianceScore    float64 `json:"compliance_score"`      // 0-100
	TotalTrips         int     `json:"total_trips"`
	TotalDistanceKm    float64 `json:"total_distance_km"`
}
