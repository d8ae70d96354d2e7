package wizard_session

import (
	"github.com/tyrehub/appointment-service/internal/deeplink"
	"github.com/tyrehub/appointment-service/internal/domain"
	"github.com/tyrehub/appointment-service/internal/wizard"
)

// UpdateRequest carries the fields a client may set before advancing.
// Every field is optional; absent fields leave the stored state
// untouched, so a client only ever sends the current step's values.
type UpdateRequest struct {
	Province   *string  `json:"province,omitempty"`
	BranchID   *int64   `json:"branchId,omitempty"`
	ServiceIDs []int64  `json:"serviceIds,omitempty"`
	Date       *string  `json:"date,omitempty"` // "2026-03-14"
	Time       *string  `json:"time,omitempty"` // "10:30"

	CustomerName  *string `json:"customerName,omitempty"`
	CustomerEmail *string `json:"customerEmail,omitempty"`
	CustomerPhone *string `json:"customerPhone,omitempty"`

	VehicleMake  *string `json:"vehicleMake,omitempty"`
	VehicleModel *string `json:"vehicleModel,omitempty"`
	VehicleYear  *int    `json:"vehicleYear,omitempty"`

	VoucherCode *string `json:"voucherCode,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

// Response is the wire representation of a session: its id, the full
// form state, and a deep link reproducing the current position.
type Response struct {
	SessionID string `json:"sessionId"`
	Step      string `json:"step"`

	SelectedProvince string  `json:"selectedProvince,omitempty"`
	BranchID         int64   `json:"branchId,omitempty"`
	SelectedServices []int64 `json:"selectedServices,omitempty"`
	Date             string  `json:"date,omitempty"`
	Time             string  `json:"time,omitempty"`

	CustomerName  string `json:"customerName,omitempty"`
	CustomerEmail string `json:"customerEmail,omitempty"`
	CustomerPhone string `json:"customerPhone,omitempty"`

	VehicleMake  string `json:"vehicleMake,omitempty"`
	VehicleModel string `json:"vehicleModel,omitempty"`
	VehicleYear  int    `json:"vehicleYear,omitempty"`

	VoucherCode string `json:"voucherCode,omitempty"`
	Notes       string `json:"notes,omitempty"`
	Source      string `json:"source,omitempty"`

	Error         string `json:"error,omitempty"`
	AppointmentID int64  `json:"appointmentId,omitempty"`

	DeepLink string `json:"deepLink"`
}

func buildResponse(sessionID string, state wizard.FormState) *Response {
	resp := &Response{
		SessionID:        sessionID,
		Step:             state.Step.String(),
		SelectedProvince: state.SelectedProvince,
		BranchID:         state.BranchID,
		SelectedServices: state.SelectedServices,
		CustomerName:     state.CustomerName,
		CustomerEmail:    state.CustomerEmail,
		CustomerPhone:    state.CustomerPhone,
		VehicleMake:      state.VehicleMake,
		VehicleModel:     state.VehicleModel,
		VehicleYear:      state.VehicleYear,
		VoucherCode:      state.VoucherCode,
		Notes:            state.Notes,
		Source:           state.Source,
		Error:            state.Error,
		AppointmentID:    state.AppointmentID,
		DeepLink:         deeplink.Encode(wizard.ToDeepLink(state)),
	}
	if state.HasDate() {
		resp.Date = state.Date.Format(domain.DateFormat)
	}
	if !state.Time.IsZero() {
		resp.Time = state.Time.String()
	}
	return resp
}
