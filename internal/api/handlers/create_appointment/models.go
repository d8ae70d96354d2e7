package create_appointment

import (
	"time"

	"github.com/tyrehub/appointment-service/internal/domain"
	createAppointment "github.com/tyrehub/appointment-service/internal/usecase/create_appointment"
	"github.com/tyrehub/appointment-service/pkg/types"
)

// CreateAppointmentRequest is the booking submission body. ServiceIDs
// is the canonical selection; serviceType is accepted from older
// consumers and resolved by catalog name when serviceIds is absent.
type CreateAppointmentRequest struct {
	CustomerName  string  `json:"customerName"`
	CustomerEmail *string `json:"customerEmail,omitempty"`
	CustomerPhone *string `json:"customerPhone,omitempty"`

	VehicleMake  *string `json:"vehicleMake,omitempty"`
	VehicleModel *string `json:"vehicleModel,omitempty"`
	VehicleYear  *int    `json:"vehicleYear,omitempty"`

	BranchID    int64   `json:"branchId"`
	ServiceIDs  []int64 `json:"serviceIds,omitempty"`
	ServiceType *string `json:"serviceType,omitempty"`

	Date string `json:"date"` // "2026-03-14"
	Time string `json:"time"` // "10:30"

	Notes       *string `json:"notes,omitempty"`
	VoucherCode *string `json:"voucherCode,omitempty"`
	Source      *string `json:"source,omitempty"`
}

// ToUseCaseRequest parses the wire date and time into their typed
// forms.
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	t, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		CustomerName:      r.CustomerName,
		CustomerEmail:     r.CustomerEmail,
		CustomerPhone:     r.CustomerPhone,
		VehicleMake:       r.VehicleMake,
		VehicleModel:      r.VehicleModel,
		VehicleYear:       r.VehicleYear,
		BranchID:          r.BranchID,
		ServiceIDs:        r.ServiceIDs,
		LegacyServiceType: r.ServiceType,
		Date:              date,
		Time:              t,
		Notes:             r.Notes,
		VoucherCode:       r.VoucherCode,
		Source:            r.Source,
	}, nil
}

type CreateAppointmentResponse struct {
	ID            int64   `json:"id"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail *string `json:"customerEmail,omitempty"`
	CustomerPhone *string `json:"customerPhone,omitempty"`

	BranchID    int64   `json:"branchId"`
	ServiceIDs  []int64 `json:"serviceIds"`
	ServiceType string  `json:"serviceType"`

	Date   string `json:"date"`
	Time   string `json:"time"`
	Status string `json:"status"`

	TotalPrice  float64 `json:"totalPrice"`
	VoucherCode *string `json:"voucherCode,omitempty"`
	Notes       *string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromUseCaseResponse(r *createAppointment.Response) *CreateAppointmentResponse {
	if r == nil {
		return nil
	}

	serviceIDs := r.ServiceIDs
	if serviceIDs == nil {
		serviceIDs = []int64{}
	}

	return &CreateAppointmentResponse{
		ID:            r.ID,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		BranchID:      r.BranchID,
		ServiceIDs:    serviceIDs,
		ServiceType:   r.ServiceType,
		Date:          r.Date.Format(domain.DateFormat),
		Time:          r.Time.String(),
		Status:        r.Status,
		TotalPrice:    r.TotalPrice,
		VoucherCode:   r.VoucherCode,
		Notes:         r.Notes,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}
