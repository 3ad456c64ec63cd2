// internal/models/company.go
package models

import (
	"gorm.io/gorm"
)

// Company represents a fleet operator tenant. Every domain record
// (drivers, vehicles, orders, maintenance, shifts) is scoped to one company.
type Company struct {
	gorm.Model

	Name    string `json:"name" binding:"required"`
	Owner   string `json:"owner" binding:"required"`
	Email   string `gorm:"unique;not null" json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`

	// OrderSeq backs the TRP-NNN order numbers. Bumped server-side inside a
	// transaction so concurrent dispatchers never mint the same number.
	OrderSeq int64 `gorm:"not null;default:0" json:"-"`

	Vehicles []Vehicle `gorm:"foreignKey:CompanyID" json:"vehicles,omitempty"`
	Drivers  []Driver  `gorm:"foreignKey:CompanyID" json:"drivers,omitempty"`
}
