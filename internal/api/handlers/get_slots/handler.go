package get_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/tyrehub/appointment-service/internal/api/handlers"
	"github.com/tyrehub/appointment-service/internal/domain"
	getAvailableSlots "github.com/tyrehub/appointment-service/internal/usecase/get_available_slots"
)

const (
	msgInvalidBranchID = "invalid branch id"
	msgInvalidDate     = "invalid date, expected YYYY-MM-DD"
	msgBranchNotFound  = "branch not found"
)

type SlotResponse struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

type SlotListResponse struct {
	BranchID int64          `json:"branchId"`
	Date     string         `json:"date"`
	Slots    []SlotResponse `json:"slots"`
}

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/branches/{branchId}/slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	branchID, err := strconv.ParseInt(mux.Vars(r)["branchId"], 10, 64)
	if err != nil || branchID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidBranchID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		BranchID: branchID,
		Date:     date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrBranchNotFound):
			h.logger.Warn("GET /branches/%d/slots - Branch not found", branchID)
			handlers.RespondNotFound(w, msgBranchNotFound)
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidDate)
		default:
			h.logger.Error("GET /branches/%d/slots - Failed to fetch slots: %v", branchID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	resp := SlotListResponse{
		BranchID: result.BranchID,
		Date:     result.Date.Format(domain.DateFormat),
		Slots:    make([]SlotResponse, 0, len(result.Slots)),
	}
	for _, slot := range result.Slots {
		resp.Slots = append(resp.Slots, SlotResponse{
			Time:      slot.Time.String(),
			Available: slot.Available,
		})
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
