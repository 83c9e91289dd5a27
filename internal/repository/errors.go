package repository

import "errors"

var (
	// ErrNotFound is returned when a requested file or directory doesn't exist.
	// Callers with a sensible default absorb it and continue.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when on-disk state differs from the freshly
	// computed version and no confirmation decision is available
	ErrConflict = errors.New("conflict: existing document differs")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)
