package repositories

import (
	"errors"
	"testing"

	"restaurant-backend/internal/apperrors"
)

func TestIsUniqueViolation(t *testing.T) {
	cases := map[string]bool{
		"ERROR: duplicate key value violates unique constraint \"idx_reservations_no_double_book\"": true,
		"pq: duplicate key value violates unique constraint":                                        true,
		"ERROR: could not serialize access due to concurrent update":                                 false,
		"connection refused":                                                                          false,
	}
	for msg, want := range cases {
		if got := isUniqueViolation(errors.New(msg)); got != want {
			t.Errorf("isUniqueViolation(%q) = %v, want %v", msg, got, want)
		}
	}
}

func TestIsSerializationFailure(t *testing.T) {
	cases := map[string]bool{
		"ERROR: could not serialize access due to read/write dependencies among transactions (SQLSTATE 40001)": true,
		"ERROR: deadlock detected":                                  true,
		"pq: duplicate key value violates unique constraint":        false,
		"ERROR: canceling statement due to statement timeout":       false,
		"connection refused":                                        false,
	}
	for msg, want := range cases {
		if got := isSerializationFailure(errors.New(msg)); got != want {
			t.Errorf("isSerializationFailure(%q) = %v, want %v", msg, got, want)
		}
	}
}

func TestIsStatementTimeout(t *testing.T) {
	cases := map[string]bool{
		"ERROR: canceling statement due to statement timeout (SQLSTATE 57014)": true,
		"ERROR: canceling statement due to lock timeout":                       true,
		"context deadline exceeded":                                           true,
		"ERROR: could not serialize access due to concurrent update":          false,
		"connection refused":                                                   false,
	}
	for msg, want := range cases {
		if got := isStatementTimeout(errors.New(msg)); got != want {
			t.Errorf("isStatementTimeout(%q) = %v, want %v", msg, got, want)
		}
	}
}

func TestWrapDBErrorClassification(t *testing.T) {
	serialization := wrapDBError("failed", errors.New("ERROR: could not serialize access due to concurrent update"))
	if apperrors.CodeOf(serialization) != apperrors.CodeReservationConflict {
		t.Errorf("expected serialization failure to map to CodeReservationConflict, got %s", apperrors.CodeOf(serialization))
	}

	timeout := wrapDBError("failed", errors.New("ERROR: canceling statement due to statement timeout"))
	if apperrors.CodeOf(timeout) != apperrors.CodeTimeout {
		t.Errorf("expected statement timeout to map to CodeTimeout, got %s", apperrors.CodeOf(timeout))
	}

	other := wrapDBError("failed", errors.New("connection refused"))
	if apperrors.CodeOf(other) != apperrors.CodeDatabase {
		t.Errorf("expected unclassified error to map to CodeDatabase, got %s", apperrors.CodeOf(other))
	}
}
