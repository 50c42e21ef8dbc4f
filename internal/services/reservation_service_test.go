package services

import (
	"testing"

	"restaurant-backend/internal/models"
)

func TestParseSlot(t *testing.T) {
	tests := []struct {
		slot    string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:30", 570, false},
		{"19:30", 1170, false},
		{"23:59", 1439, false},
		{"not-a-time", 0, true},
	}

	for _, tt := range tests {
		got, err := parseSlot(tt.slot)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseSlot(%q) expected error, got nil", tt.slot)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseSlot(%q) unexpected error: %v", tt.slot, err)
		}
		if got != tt.want {
			t.Errorf("parseSlot(%q) = %d, want %d", tt.slot, got, tt.want)
		}
	}
}

func TestDefaultChannel(t *testing.T) {
	if got := defaultChannel(""); got != models.ChannelWeb {
		t.Errorf("defaultChannel(\"\") = %s, want %s", got, models.ChannelWeb)
	}
	if got := defaultChannel(models.ChannelWhatsApp); got != models.ChannelWhatsApp {
		t.Errorf("defaultChannel(whatsapp) = %s, want unchanged", got)
	}
}

func TestFilterAvailable(t *testing.T) {
	tableA := models.Table{ID: 1, MinCapacity: 2, MaxCapacity: 4}
	tableB := models.Table{ID: 2, MinCapacity: 2, MaxCapacity: 4}
	candidates := []models.Table{tableA, tableB}

	existing := []models.Reservation{
		{TableID: 1, Slot: 1080, DurationMinutes: 90, Status: models.ReservationStatusConfirmed},
	}

	eligible := filterAvailable(candidates, existing, 1080, 60)
	if len(eligible) != 1 || eligible[0].ID != 2 {
		t.Fatalf("expected only table 2 to be eligible, got %+v", eligible)
	}

	eligible = filterAvailable(candidates, existing, 1170, 60)
	if len(eligible) != 2 {
		t.Fatalf("expected both tables eligible for a back-to-back slot, got %+v", eligible)
	}
}

func TestUintToA(t *testing.T) {
	tests := map[uint]string{
		0:   "0",
		7:   "7",
		42:  "42",
		100: "100",
	}
	for in, want := range tests {
		if got := uintToA(in); got != want {
			t.Errorf("uintToA(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestMarshalMetadata(t *testing.T) {
	if got := marshalMetadata(nil); got != nil {
		t.Errorf("marshalMetadata(nil) = %v, want nil", got)
	}
	if got := marshalMetadata(map[string]interface{}{}); got != nil {
		t.Errorf("marshalMetadata(empty) = %v, want nil", got)
	}
	got := marshalMetadata(map[string]interface{}{"source": "whatsapp"})
	if got == nil {
		t.Fatal("marshalMetadata(non-empty) = nil, want JSON")
	}
}
