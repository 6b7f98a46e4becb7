package repository

import "errors"

var (
	// ErrNotFound is returned when a requested record doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrInvalidToken is returned when a signing token resolves to no record
	ErrInvalidToken = errors.New("invalid signing token")

	// ErrInvalidInput is returned when store-level input validation fails
	ErrInvalidInput = errors.New("invalid input")
)
