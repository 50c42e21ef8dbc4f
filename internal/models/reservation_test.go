package models

import "testing"

func TestReservationOverlapsSlot(t *testing.T) {
	r := &Reservation{Slot: 1080, DurationMinutes: 90} // 18:00-19:30

	tests := []struct {
		name     string
		slot     int
		duration int
		want     bool
	}{
		{"identical slot", 1080, 90, true},
		{"fully contained", 1100, 30, true},
		{"overlaps start", 1050, 60, true},
		{"overlaps end", 1140, 60, true},
		{"back-to-back before", 990, 90, false},
		{"back-to-back after", 1170, 60, false},
		{"far before", 600, 60, false},
		{"far after", 1300, 60, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.OverlapsSlot(tt.slot, tt.duration); got != tt.want {
				t.Errorf("OverlapsSlot(%d, %d) = %v, want %v", tt.slot, tt.duration, got, tt.want)
			}
		})
	}
}

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		from ReservationStatus
		to   ReservationStatus
		want bool
	}{
		{ReservationStatusPending, ReservationStatusConfirmed, true},
		{ReservationStatusPending, ReservationStatusCheckedIn, true},
		{ReservationStatusPending, ReservationStatusCompleted, false},
		{ReservationStatusConfirmed, ReservationStatusCheckedIn, true},
		{ReservationStatusCheckedIn, ReservationStatusCompleted, true},
		{ReservationStatusCompleted, ReservationStatusCancelled, false},
		{ReservationStatusCancelled, ReservationStatusConfirmed, false},
	}

	for _, tt := range tests {
		if got := CanTransitionTo(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransitionTo(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestActiveReservationStatusesIsActive(t *testing.T) {
	active := []ReservationStatus{ReservationStatusPending, ReservationStatusConfirmed, ReservationStatusCheckedIn}
	for _, s := range active {
		if !s.IsActive() {
			t.Errorf("%s should be active", s)
		}
	}

	inactive := []ReservationStatus{ReservationStatusCompleted, ReservationStatusCancelled, ReservationStatusNoShow}
	for _, s := range inactive {
		if s.IsActive() {
			t.Errorf("%s should not be active", s)
		}
	}
}
