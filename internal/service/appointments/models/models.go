package models

import (
	"time"

	"github.com/tyrehub/appointment-service/internal/domain"
)

// AppointmentResponse is the wire representation of an appointment
type AppointmentResponse struct {
	ID            int64   `json:"id"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail *string `json:"customerEmail,omitempty"`
	CustomerPhone *string `json:"customerPhone,omitempty"`

	VehicleMake  *string `json:"vehicleMake,omitempty"`
	VehicleModel *string `json:"vehicleModel,omitempty"`
	VehicleYear  *int    `json:"vehicleYear,omitempty"`

	BranchID   int64   `json:"branchId"`
	ServiceIDs []int64 `json:"serviceIds"`
	Date       string  `json:"date"` // "2026-03-14"
	Time       string  `json:"time"` // "10:30"
	Status     string  `json:"status"`

	VoucherCode *string `json:"voucherCode,omitempty"`
	Notes       *string `json:"notes,omitempty"`
	Source      *string `json:"source,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromDomainAppointment converts a domain model into a DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	serviceIDs := a.ServiceIDs
	if serviceIDs == nil {
		serviceIDs = []int64{}
	}

	return &AppointmentResponse{
		ID:            a.ID,
		CustomerName:  a.CustomerName,
		CustomerEmail: a.CustomerEmail,
		CustomerPhone: a.CustomerPhone,
		VehicleMake:   a.VehicleMake,
		VehicleModel:  a.VehicleModel,
		VehicleYear:   a.VehicleYear,
		BranchID:      a.BranchID,
		ServiceIDs:    serviceIDs,
		Date:          a.Date.Format(domain.DateFormat),
		Time:          a.Time.String(),
		Status:        string(a.Status),
		VoucherCode:   a.VoucherCode,
		Notes:         a.Notes,
		Source:        a.Source,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}
