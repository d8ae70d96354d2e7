package domain

import (
	"time"

	"github.com/tyrehub/appointment-service/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a workshop visit booked at a branch
type Appointment struct {
	ID            int64
	CustomerName  string
	CustomerEmail *string
	CustomerPhone *string

	// Vehicle fields are optional; the wizard collects them but a
	// booking is valid without them.
	VehicleMake  *string
	VehicleModel *string
	VehicleYear  *int

	BranchID   int64
	ServiceIDs []int64 // canonical; the legacy single service_type is derived at the wire boundary
	Date       time.Time
	Time       types.TimeString
	Status     AppointmentStatus

	VoucherCode *string
	Notes       *string
	Source      *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CountsTowardCapacity returns true if the appointment occupies a spot
// in its (branch, date, time) slot.
func (a *Appointment) CountsTowardCapacity() bool {
	return a.Status != StatusCancelled
}

// CanBeCancelled returns true if the appointment can still be cancelled
// by the customer.
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// IsCancelled returns true if the appointment has been cancelled.
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}
