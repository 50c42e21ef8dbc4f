package models

import "encoding/json"

// OpenInterval is a half-open window, closed at Open and open at Close,
// expressed as minutes since midnight in the restaurant's local timezone.
type OpenInterval struct {
	OpenMinute  int `json:"open_minute"`
	CloseMinute int `json:"close_minute"`
}

// Contains reports whether slot (minutes since midnight) falls inside the
// interval, treating the closing boundary as exclusive.
func (iv OpenInterval) Contains(slot int) bool {
	return slot >= iv.OpenMinute && slot < iv.CloseMinute
}

// BusinessHours maps Go's time.Weekday (0=Sunday..6=Saturday) to the
// ordered list of open intervals for that day. It is the parsed form of
// Restaurant.BusinessHours, which is persisted as a JSONB column.
type BusinessHours map[int][]OpenInterval

// ParseBusinessHours decodes a restaurant's stored business-hours JSON.
// An empty or nil payload yields an empty BusinessHours (no open days).
func ParseBusinessHours(raw []byte) (BusinessHours, error) {
	if len(raw) == 0 {
		return BusinessHours{}, nil
	}
	var bh BusinessHours
	if err := json.Unmarshal(raw, &bh); err != nil {
		return nil, err
	}
	return bh, nil
}

// IntervalsFor returns the open intervals configured for the given weekday.
func (bh BusinessHours) IntervalsFor(weekday int) []OpenInterval {
	return bh[weekday]
}
