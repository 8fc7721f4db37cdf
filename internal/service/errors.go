package service

import (
	"errors"
	"fmt"
)

// ErrNotFound covers both "record absent" and "record owned by someone
// else" on device and task paths, so callers cannot probe for existence.
var ErrNotFound = errors.New("not found")

// ErrForbidden is returned only on consumable mutation paths, where the
// consumable exists but its device belongs to another user.
var ErrForbidden = errors.New("forbidden")

// ValidationError rejects a request before any store mutation, with a
// field-level reason.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func validationErr(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
