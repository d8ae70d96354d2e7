package get_available_slots

import "errors"

var (
	// ErrBranchNotFound is returned when the branch does not exist or is inactive
	ErrBranchNotFound = errors.New("get_available_slots: branch not found")

	// ErrInvalidInput is returned on malformed input data
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal is returned on internal errors. The use case fails
	// closed: a storage error is never reported as availability.
	ErrInternal = errors.New("get_available_slots: internal error")
)
