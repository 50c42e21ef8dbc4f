// Package apperrors defines the reservation engine's enumerated error
// taxonomy. Handlers and services communicate failure through these typed
// values instead of matching on error strings, so the HTTP layer, the
// service layer and tests all agree on one sealed set of codes.
package apperrors

import (
	"errors"
	"fmt"
)

// Code is one of the enumerated error codes returned to callers.
type Code string

const (
	CodeValidation         Code = "VALIDATION_ERROR"
	CodeNotFound           Code = "NOT_FOUND"
	CodeNoAvailability     Code = "NO_AVAILABILITY"
	CodeUserConflict       Code = "USER_CONFLICT"
	CodeCapacityExceeded   Code = "CAPACITY_EXCEEDED"
	CodeReservationConflict Code = "RESERVATION_CONFLICT"
	CodeInvalidTransition  Code = "INVALID_TRANSITION"
	CodeLockUnavailable    Code = "LOCK_UNAVAILABLE"
	CodeTimeout            Code = "TIMEOUT"
	CodeDatabase           Code = "DATABASE_ERROR"
	CodeInternal           Code = "INTERNAL_ERROR"
)

// Retryable reports whether callers may retry the operation that produced
// this code, per the propagation policy of the reservation engine.
func (c Code) Retryable() bool {
	switch c {
	case CodeReservationConflict, CodeLockUnavailable, CodeTimeout, CodeDatabase:
		return true
	default:
		return false
	}
}

// HTTPStatus returns the HTTP status code the engine's handlers map this
// error code to.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeValidation:
		return 400
	case CodeNotFound:
		return 404
	case CodeNoAvailability, CodeUserConflict, CodeCapacityExceeded, CodeReservationConflict, CodeInvalidTransition:
		return 409
	case CodeLockUnavailable:
		return 423
	case CodeTimeout:
		return 504
	case CodeDatabase, CodeInternal:
		return 500
	default:
		return 500
	}
}

// Error is the reservation engine's error type: a code, a human-readable
// message, and an optional wrapped cause for logging.
type Error struct {
	Code    Code
	Message string
	Reason  string // enumerated sub-reason for validation failures, e.g. "past_date"
	cause   error
}

func (e *Error) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// New constructs an *Error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf constructs an *Error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap constructs an *Error carrying an underlying cause for logging
// (the cause is never exposed to callers, per the redaction policy).
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, cause: cause}
}

// WithReason returns a copy of e with an enumerated validation sub-reason
// attached. It never mutates e, so calling WithReason on one of the
// package's shared Err* values is safe even though those are held as
// singletons.
func (e *Error) WithReason(reason string) *Error {
	copied := *e
	copied.Reason = reason
	return &copied
}

// As extracts an *Error from err, if it is one (possibly wrapped).
func As(err error) (*Error, bool) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// CodeOf returns the Code of err, or CodeInternal if err is not an *Error.
func CodeOf(err error) Code {
	if ae, ok := As(err); ok {
		return ae.Code
	}
	return CodeInternal
}

// Validation errors with common pre-lock validation reasons.
var (
	ErrMissingField      = func(field string) *Error { return Newf(CodeValidation, "missing required field").WithReason(field) }
	ErrInvalidDate       = New(CodeValidation, "date must be formatted YYYY-MM-DD").WithReason("invalid_date")
	ErrInvalidSlot       = New(CodeValidation, "slot must be formatted HH:MM").WithReason("invalid_slot")
	ErrInvalidPartySize  = New(CodeValidation, "party size must be at least 1").WithReason("invalid_party_size")
	ErrPastSlot          = New(CodeValidation, "reservation must be strictly in the future").WithReason("past_slot")
	ErrOutsideAdvanceMin = New(CodeValidation, "reservation is inside the minimum advance-booking window").WithReason("advance_window_min")
	ErrOutsideAdvanceMax = New(CodeValidation, "reservation is beyond the maximum advance-booking window").WithReason("advance_window_max")
	ErrOutsideBusinessHours = New(CodeValidation, "slot falls outside business hours").WithReason("business_hours")
)
