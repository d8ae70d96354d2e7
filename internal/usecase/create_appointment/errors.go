package create_appointment

import "errors"

var (
	// ErrBranchNotFound is returned when the branch does not exist or is inactive
	ErrBranchNotFound = errors.New("create_appointment: branch not found")

	// ErrServiceNotFound is returned when a selected service is not in the catalog
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrBranchClosed is returned when the branch does not open on the requested date
	ErrBranchClosed = errors.New("create_appointment: branch is closed on this date")

	// ErrInvalidDate is returned when the requested date lies in the past
	ErrInvalidDate = errors.New("create_appointment: invalid appointment date")

	// ErrInvalidTimeSlot is returned when the time is not a bookable
	// candidate time or falls outside the branch's hours
	ErrInvalidTimeSlot = errors.New("create_appointment: invalid time slot")

	// ErrTimePassed is returned when the requested same-day time is
	// already behind the clock
	ErrTimePassed = errors.New("create_appointment: time slot has already passed")

	// ErrSlotNotAvailable is returned when the slot's capacity is
	// exhausted. This is an expected, retryable outcome: the caller
	// directs the user back to slot selection.
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrVoucherNotUsable is returned when a supplied voucher code
	// fails validation; the underlying voucher error is wrapped
	ErrVoucherNotUsable = errors.New("create_appointment: voucher is not usable")

	// ErrInvalidInput is returned on malformed input data
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal is returned on internal errors
	ErrInternal = errors.New("create_appointment: internal error")
)
