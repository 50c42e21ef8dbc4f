package models

import "time"

// ReservationLogAction enumerates the audit events appended for a
// reservation. One row is written per create and per status transition.
type ReservationLogAction string

const (
	LogActionCreated    ReservationLogAction = "created"
	LogActionConfirmed  ReservationLogAction = "confirmed"
	LogActionCheckedIn  ReservationLogAction = "checked_in"
	LogActionCompleted  ReservationLogAction = "completed"
	LogActionCancelled  ReservationLogAction = "cancelled"
	LogActionNoShow     ReservationLogAction = "no_show"
)

// ReservationLog is an append-only audit record keyed by the reservation's
// composite (id, date) pair, matching the reservations table's
// partitioned primary key.
type ReservationLog struct {
	ID              uint                  `gorm:"primaryKey" json:"id"`
	ReservationID   uint                  `gorm:"index;not null" json:"reservation_id"`
	ReservationDate time.Time             `gorm:"type:date;not null" json:"reservation_date"`
	Action          ReservationLogAction  `gorm:"type:varchar(20);not null" json:"action"`
	ActorUserID     *uint                 `json:"actor_user_id,omitempty"`
	Detail          string                `json:"detail"`
	CreatedAt       time.Time             `json:"created_at"`
}

func (ReservationLog) TableName() string {
	return "reservation_logs"
}
