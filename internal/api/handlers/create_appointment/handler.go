package create_appointment

import (
	"errors"
	"net/http"

	"github.com/tyrehub/appointment-service/internal/api/handlers"
	createAppointment "github.com/tyrehub/appointment-service/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateOrTime  = "invalid date or time, expected YYYY-MM-DD and HH:MM"
	msgSlotNotAvailable   = "the selected time slot is fully booked"
	msgBranchNotFound     = "branch not found"
	msgServiceNotFound    = "service not found"
	msgBranchClosed       = "the branch is closed on the selected date"
	msgInvalidDate        = "the selected date is not bookable"
	msgInvalidTimeSlot    = "the selected time is not a bookable slot"
	msgTimePassed         = "the selected time has already passed"
	msgVoucherNotUsable   = "the voucher code cannot be applied"
	msgInvalidInput       = "invalid appointment data"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotNotAvailable):
			h.logger.Warn("POST /appointments - Slot not available: branch_id=%d, date=%s, time=%s",
				req.BranchID, req.Date, req.Time)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createAppointment.ErrBranchNotFound):
			h.logger.Warn("POST /appointments - Branch not found: branch_id=%d", req.BranchID)
			handlers.RespondNotFound(w, msgBranchNotFound)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: branch_id=%d", req.BranchID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrBranchClosed):
			h.logger.Warn("POST /appointments - Branch closed: branch_id=%d, date=%s", req.BranchID, req.Date)
			handlers.RespondBadRequest(w, msgBranchClosed)

		case errors.Is(err, createAppointment.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createAppointment.ErrInvalidTimeSlot):
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createAppointment.ErrTimePassed):
			handlers.RespondBadRequest(w, msgTimePassed)

		case errors.Is(err, createAppointment.ErrVoucherNotUsable):
			handlers.RespondBadRequest(w, msgVoucherNotUsable)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: branch_id=%d, error=%v",
				req.BranchID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: appointment_id=%d, branch_id=%d, date=%s, time=%s",
		result.ID, result.BranchID, req.Date, req.Time)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
