package models

import (
	"time"

	"gorm.io/datatypes"
)

// RestaurantStatus represents the status of a restaurant
type RestaurantStatus string

const (
	RestaurantStatusPending   RestaurantStatus = "pending"
	RestaurantStatusActive    RestaurantStatus = "active"
	RestaurantStatusInactive  RestaurantStatus = "inactive"
	RestaurantStatusSuspended RestaurantStatus = "suspended"
)

// PlatformOrganizationID is the special organization ID for platform-level users (KAMs)
// This is a reserved organization that represents the platform itself
const PlatformOrganizationID uint = 1

// IsPlatformOrganization checks if a restaurant ID is the platform organization
func IsPlatformOrganization(id uint) bool {
	return id == PlatformOrganizationID
}

// Restaurant represents a tenant (restaurant)
type Restaurant struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	Description string          `json:"description"`
	Address     string          `json:"address"`
	Phone       string          `json:"phone"`
	Email       string          `gorm:"uniqueIndex" json:"email"`
	Status      RestaurantStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	IsActive    bool            `gorm:"default:false" json:"is_active"` // Deprecated: use Status instead
	
	// KAM (Key Account Manager) fields
	KAMID       *uint      `gorm:"index" json:"kam_id,omitempty"` // Assigned KAM
	ActivatedBy *uint      `json:"activated_by,omitempty"`        // User who activated
	ActivatedAt *time.Time `json:"activated_at,omitempty"`
	
	// Registration details
	ContactName  string    `json:"contact_name"`
	ContactEmail string    `json:"contact_email"`
	ContactPhone string    `json:"contact_phone"`
	
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Reservation engine configuration
	Timezone                          string         `gorm:"default:'UTC'" json:"timezone"`
	BusinessHours                     datatypes.JSON `gorm:"type:jsonb" json:"business_hours"`
	MinAdvanceHours                   int            `gorm:"default:1" json:"min_advance_hours"`
	MaxAdvanceDays                    int            `gorm:"default:90" json:"max_advance_days"`
	DefaultReservationDurationMinutes int            `gorm:"default:120" json:"default_reservation_duration_minutes"`
	CancellationWindowMinutes         int            `gorm:"default:60" json:"cancellation_window_minutes"`
	SlotDurationMinutes               int            `gorm:"default:30" json:"slot_duration_minutes"`

	// Relationships
	Users        []User         `gorm:"foreignKey:RestaurantID"`
	Categories   []MenuCategory `gorm:"foreignKey:RestaurantID"`
	Reservations []Reservation  `gorm:"foreignKey:RestaurantID"`
	Orders       []Order        `gorm:"foreignKey:RestaurantID"`
	Tables       []Table        `gorm:"foreignKey:RestaurantID"`
	KAM          *User          `gorm:"foreignKey:KAMID" json:"kam,omitempty"`
}

// IsOpenForReservations reports whether the restaurant currently accepts
// new reservations.
func (r *Restaurant) IsOpenForReservations() bool {
	return r.Status == RestaurantStatusActive
}

