package models

import "testing"

func TestTableFitsPartySize(t *testing.T) {
	table := &Table{MinCapacity: 2, MaxCapacity: 4}

	tests := []struct {
		party int
		want  bool
	}{
		{1, false},
		{2, true},
		{3, true},
		{4, true},
		{5, false},
	}

	for _, tt := range tests {
		if got := table.FitsPartySize(tt.party); got != tt.want {
			t.Errorf("FitsPartySize(%d) = %v, want %v", tt.party, got, tt.want)
		}
	}
}

func TestTableIsEligible(t *testing.T) {
	tests := []struct {
		name     string
		isActive bool
		status   TableStatus
		want     bool
	}{
		{"active and available", true, TableStatusAvailable, true},
		{"inactive", false, TableStatusAvailable, false},
		{"active but occupied", true, TableStatusOccupied, false},
		{"active but maintenance", true, TableStatusMaintenance, false},
	}

	for _, tt := range tests {
		table := &Table{IsActive: tt.isActive, Status: tt.status}
		if got := table.IsEligible(); got != tt.want {
			t.Errorf("%s: IsEligible() = %v, want %v", tt.name, got, tt.want)
		}
	}
}
