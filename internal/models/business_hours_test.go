package models

import "testing"

func TestParseBusinessHours(t *testing.T) {
	raw := []byte(`{"1": [{"open_minute": 660, "close_minute": 1320}]}`)
	bh, err := ParseBusinessHours(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	intervals := bh.IntervalsFor(1)
	if len(intervals) != 1 {
		t.Fatalf("expected 1 interval for weekday 1, got %d", len(intervals))
	}
	if !intervals[0].Contains(700) {
		t.Error("expected 11:40 (700) to fall inside 11:00-22:00")
	}
	if intervals[0].Contains(1320) {
		t.Error("close_minute should be exclusive")
	}

	if len(bh.IntervalsFor(0)) != 0 {
		t.Error("expected no intervals for an unconfigured weekday")
	}
}

func TestParseBusinessHoursEmpty(t *testing.T) {
	bh, err := ParseBusinessHours(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bh) != 0 {
		t.Errorf("expected empty BusinessHours, got %v", bh)
	}
}

func TestOpenIntervalContains(t *testing.T) {
	iv := OpenInterval{OpenMinute: 600, CloseMinute: 900}
	if iv.Contains(599) {
		t.Error("599 should be before open")
	}
	if !iv.Contains(600) {
		t.Error("600 (open boundary) should be inside")
	}
	if iv.Contains(900) {
		t.Error("900 (close boundary) should be exclusive")
	}
}
