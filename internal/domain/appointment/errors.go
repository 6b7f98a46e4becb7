package appointment

import "errors"

var (
	// ErrAppointmentNotFound indicates the appointment doesn't exist.
	ErrAppointmentNotFound = errors.New("appointment not found")
	// ErrInvalidStatus indicates an unknown appointment status value.
	ErrInvalidStatus = errors.New("invalid appointment status")
)
