package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrEmptyOrderName is returned when an order name is empty after trimming.
	ErrEmptyOrderName = errors.New("order name cannot be empty")

	// ErrInvalidQuantity is returned when an order quantity is below one.
	ErrInvalidQuantity = errors.New("order quantity must be at least 1")

	// ErrNoFieldsToUpdate is returned when a partial update supplies no fields.
	ErrNoFieldsToUpdate = errors.New("no fields to update")
)
