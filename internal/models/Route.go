package models

import (
	"gorm.io/gorm"
)

// DeliveryRoute represents a named corridor a company runs repeat trips on.
// A company can have multiple routes; dispatchers pick origins/destinations
// from them when creating trips.
type DeliveryRoute struct {
	gorm.Model

	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	CompanyID   uint   `json:"company_id"`

	// Geometry stored as WKB (LINESTRING, SRID 4326).
	// When creating, provide GeoJSON; the controller converts.
	Geometry []byte `gorm:"type:bytea"`
}
