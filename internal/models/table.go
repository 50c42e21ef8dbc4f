package models

import (
	"time"
)

// TableStatus represents the operational status of a physical table
type TableStatus string

const (
	TableStatusAvailable   TableStatus = "available"
	TableStatusReserved    TableStatus = "reserved"
	TableStatusOccupied    TableStatus = "occupied"
	TableStatusMaintenance TableStatus = "maintenance"
)

// Table represents a physical seating unit owned by a restaurant
type Table struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	RestaurantID uint        `gorm:"index;not null" json:"restaurant_id"`
	Number       string      `gorm:"not null" json:"number"`
	MinCapacity  int         `gorm:"not null;default:1" json:"min_capacity"`
	MaxCapacity  int         `gorm:"not null" json:"max_capacity"`
	IsActive     bool        `gorm:"default:true" json:"is_active"`
	Status       TableStatus `gorm:"type:varchar(20);default:'available'" json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`

	// Relationships
	Restaurant Restaurant `gorm:"foreignKey:RestaurantID"`
}

// IsEligible reports whether the table is currently eligible to receive
// a new reservation: active and not pulled out of service.
func (t *Table) IsEligible() bool {
	return t.IsActive && t.Status == TableStatusAvailable
}

// FitsPartySize reports whether partySize falls within the table's
// configured capacity range.
func (t *Table) FitsPartySize(partySize int) bool {
	return partySize >= t.MinCapacity && partySize <= t.MaxCapacity
}
