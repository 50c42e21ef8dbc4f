package apperrors

import (
	"errors"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	tests := map[Code]int{
		CodeValidation:          400,
		CodeNotFound:            404,
		CodeNoAvailability:      409,
		CodeUserConflict:        409,
		CodeCapacityExceeded:    409,
		CodeReservationConflict: 409,
		CodeInvalidTransition:   409,
		CodeLockUnavailable:     423,
		CodeTimeout:             504,
		CodeDatabase:            500,
		CodeInternal:            500,
	}

	for code, want := range tests {
		if got := code.HTTPStatus(); got != want {
			t.Errorf("%s.HTTPStatus() = %d, want %d", code, got, want)
		}
	}
}

func TestRetryable(t *testing.T) {
	retryable := []Code{CodeReservationConflict, CodeLockUnavailable, CodeTimeout, CodeDatabase}
	for _, c := range retryable {
		if !c.Retryable() {
			t.Errorf("%s should be retryable", c)
		}
	}

	notRetryable := []Code{CodeValidation, CodeNotFound, CodeNoAvailability, CodeUserConflict, CodeCapacityExceeded, CodeInvalidTransition, CodeInternal}
	for _, c := range notRetryable {
		if c.Retryable() {
			t.Errorf("%s should not be retryable", c)
		}
	}
}

func TestWrapUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(CodeDatabase, "failed to fetch", cause)

	if !errors.Is(err, cause) {
		t.Error("expected wrapped error to unwrap to cause")
	}

	ae, ok := As(err)
	if !ok {
		t.Fatal("expected As to recognize *Error")
	}
	if ae.Code != CodeDatabase {
		t.Errorf("Code = %s, want %s", ae.Code, CodeDatabase)
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(New(CodeNoAvailability, "no tables")); got != CodeNoAvailability {
		t.Errorf("CodeOf(*Error) = %s, want %s", got, CodeNoAvailability)
	}
	if got := CodeOf(errors.New("plain error")); got != CodeInternal {
		t.Errorf("CodeOf(plain error) = %s, want %s", got, CodeInternal)
	}
}

func TestWithReason(t *testing.T) {
	err := New(CodeValidation, "bad input").WithReason("past_slot")
	if err.Reason != "past_slot" {
		t.Errorf("Reason = %s, want past_slot", err.Reason)
	}
	if err.Error() != "VALIDATION_ERROR: bad input (past_slot)" {
		t.Errorf("Error() = %q", err.Error())
	}
}
