package appointments

import "errors"

var (
	// ErrAppointmentNotFound is returned when no appointment exists with the given id
	ErrAppointmentNotFound = errors.New("appointments: appointment not found")

	// ErrCannotCancel is returned when the appointment's status does not allow cancellation
	ErrCannotCancel = errors.New("appointments: appointment cannot be cancelled")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("appointments: invalid input")

	// ErrInternal is returned on repository errors
	ErrInternal = errors.New("appointments: internal error")
)
