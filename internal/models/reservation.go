package models

import (
	"time"

	"gorm.io/datatypes"
)

// ReservationStatus is the lifecycle state of a reservation.
type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCheckedIn ReservationStatus = "checked_in"
	ReservationStatusCompleted ReservationStatus = "completed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
	ReservationStatusNoShow    ReservationStatus = "no_show"
)

// ActiveReservationStatuses is the set of statuses that occupy a
// (table, date, slot) — used to scope the partial unique index and every
// conflict/overlap query.
var ActiveReservationStatuses = []ReservationStatus{
	ReservationStatusPending,
	ReservationStatusConfirmed,
	ReservationStatusCheckedIn,
}

// IsActive reports whether the status counts as holding a slot.
func (s ReservationStatus) IsActive() bool {
	for _, active := range ActiveReservationStatuses {
		if s == active {
			return true
		}
	}
	return false
}

// ReservationChannel tags the ingress surface a reservation originated from.
type ReservationChannel string

const (
	ChannelWeb       ReservationChannel = "web"
	ChannelWhatsApp  ReservationChannel = "whatsapp"
	ChannelInstagram ReservationChannel = "instagram"
	ChannelEmail     ReservationChannel = "email"
	ChannelPhone     ReservationChannel = "phone"
)

// Reservation represents a table reservation. The primary key is
// composite (ID, Date) to match the monthly range-partitioned storage
// layout of the reservations table — every fetch, update and delete must
// carry both.
type Reservation struct {
	ID              uint               `gorm:"primaryKey" json:"id"`
	Date            time.Time          `gorm:"primaryKey;type:date;not null" json:"date"`
	RestaurantID    uint               `gorm:"index;not null" json:"restaurant_id"`
	UserID          uint               `gorm:"index;not null" json:"user_id"`
	TableID         uint               `gorm:"index;not null" json:"table_id"`
	Slot            int                `gorm:"not null" json:"slot"` // minutes since midnight, restaurant-local
	DurationMinutes int                `gorm:"not null" json:"duration_minutes"`
	PartySize       int                `gorm:"not null" json:"party_size"`
	GuestName       string             `gorm:"not null" json:"guest_name"`
	GuestPhone      *string            `json:"guest_phone,omitempty"`
	GuestEmail      *string            `json:"guest_email,omitempty"`
	SpecialRequests string             `json:"special_requests"`
	Status          ReservationStatus  `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Channel         ReservationChannel `gorm:"type:varchar(20);not null;default:'web'" json:"channel"`
	Metadata        datatypes.JSON     `gorm:"type:jsonb" json:"metadata,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	CheckedInAt *time.Time `json:"checked_in_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`

	// Relationships
	Restaurant Restaurant `gorm:"foreignKey:RestaurantID" json:"-"`
	User       User       `gorm:"foreignKey:UserID" json:"-"`
	Table      Table      `gorm:"foreignKey:TableID" json:"-"`
}

// TableName pins the GORM table name explicitly.
func (Reservation) TableName() string {
	return "reservations"
}

// EndSlot returns the exclusive end of the reservation's half-open
// occupancy interval, in minutes since midnight.
func (r *Reservation) EndSlot() int {
	return r.Slot + r.DurationMinutes
}

// OverlapsSlot reports whether [slot, slot+duration) intersects this
// reservation's own interval, using half-open semantics: back-to-back
// reservations (end == start of the other) do not overlap.
func (r *Reservation) OverlapsSlot(slot, duration int) bool {
	otherEnd := slot + duration
	return r.Slot < otherEnd && slot < r.EndSlot()
}

// legalReservationTransitions enumerates the state machine edges allowed
// from each status. Anything not listed here is an invalid transition.
var legalReservationTransitions = map[ReservationStatus][]ReservationStatus{
	ReservationStatusPending: {
		ReservationStatusConfirmed,
		ReservationStatusCheckedIn,
		ReservationStatusCancelled,
		ReservationStatusNoShow,
	},
	ReservationStatusConfirmed: {
		ReservationStatusCheckedIn,
		ReservationStatusCancelled,
		ReservationStatusNoShow,
	},
	ReservationStatusCheckedIn: {
		ReservationStatusCompleted,
		ReservationStatusCancelled,
	},
}

// CanTransitionTo reports whether moving from `from` to `to` is a legal
// edge of the reservation state machine. Terminal statuses
// (completed, cancelled, no_show) have no outgoing edges.
func CanTransitionTo(from, to ReservationStatus) bool {
	for _, allowed := range legalReservationTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
