// Package services defines the business logic of the marketplace: catalog
// uploads and edits, purchases and gated downloads, and the per-user library
// views. This file centralizes the service-level error values so handlers can
// map them to HTTP results consistently.
package services

import "errors"

var (
	// ErrValidation is wrapped by every ValidationError. A rejected record is
	// never written.
	ErrValidation = errors.New("validation failed")

	// ErrItemNotFound indicates that the referenced book or course does not
	// exist.
	ErrItemNotFound = errors.New("item not found")

	// ErrPaymentRequired is returned when a paid item is downloaded or
	// accessed without a purchase.
	ErrPaymentRequired = errors.New("purchase required")

	// ErrUnauthenticated is returned when an operation that needs a user
	// identity is called without one.
	ErrUnauthenticated = errors.New("user identity required")
)

// ValidationError carries a user-visible message about a rejected record.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// Unwrap lets errors.Is(err, ErrValidation) match.
func (e *ValidationError) Unwrap() error { return ErrValidation }

// msgRequired mirrors the upload form's generic prompt.
const msgRequired = "Please fill in all required fields"

func invalid(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}
