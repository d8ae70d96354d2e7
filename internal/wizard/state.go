package wizard

import (
	"time"

	"github.com/tyrehub/appointment-service/pkg/types"
)

// FormState is the accumulated draft of an appointment for one wizard
// session. It is a plain value: every transition takes a FormState and
// returns a new one, so the machine is testable with no storage or
// rendering attached. The session layer serializes it to JSON between
// requests and discards it on success or explicit reset.
type FormState struct {
	Step Step `json:"step"`

	SelectedProvince string           `json:"selectedProvince,omitempty"`
	BranchID         int64            `json:"branchId,omitempty"`
	SelectedServices []int64          `json:"selectedServices,omitempty"`
	Date             time.Time        `json:"date"`
	Time             types.TimeString `json:"time,omitempty"`

	CustomerName  string `json:"customerName,omitempty"`
	CustomerEmail string `json:"customerEmail,omitempty"`
	CustomerPhone string `json:"customerPhone,omitempty"`

	VehicleMake  string `json:"vehicleMake,omitempty"`
	VehicleModel string `json:"vehicleModel,omitempty"`
	VehicleYear  int    `json:"vehicleYear,omitempty"`

	VoucherCode string `json:"voucherCode,omitempty"`
	Notes       string `json:"notes,omitempty"`

	// Source records how the session arrived; "wa" means the WhatsApp
	// bot deep link.
	Source string `json:"source,omitempty"`

	// Error is scoped to the current step. It is cleared by Back and by
	// any successful transition.
	Error string `json:"error,omitempty"`

	// AppointmentID is set when the session reaches the success step.
	AppointmentID int64 `json:"appointmentId,omitempty"`
}

// NewFormState returns a fresh session state positioned at the welcome
// step.
func NewFormState() FormState {
	return FormState{Step: StepWelcome}
}

// HasDate returns true if a date has been selected.
func (s FormState) HasDate() bool {
	return !s.Date.IsZero()
}
