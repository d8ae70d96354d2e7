package wizard_session

import "errors"

var (
	// ErrSessionNotFound is returned when no session exists under the
	// given id, including sessions that expired out of the store
	ErrSessionNotFound = errors.New("wizard_session: session not found")

	// ErrNotSubmittable is returned when a submit is attempted before
	// the contact step's required fields are collected
	ErrNotSubmittable = errors.New("wizard_session: session is not ready to submit")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("wizard_session: invalid input data")

	// ErrInternal is returned on storage or collaborator errors
	ErrInternal = errors.New("wizard_session: internal error")
)
