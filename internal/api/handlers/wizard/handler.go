package wizard

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tyrehub/appointment-service/internal/api/handlers"
	wizardSession "github.com/tyrehub/appointment-service/internal/usecase/wizard_session"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgSessionNotFound    = "session not found or expired"
	msgNotSubmittable     = "session is not ready to submit"
)

type Handler struct {
	useCase WizardSessionUseCase
	logger  Logger
}

func NewHandler(useCase WizardSessionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Start POST /api/v1/wizard/sessions
//
// Deep-link parameters arrive as the query string; an empty query
// opens a fresh session at the welcome step.
func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Start(r.Context(), r.URL.RawQuery)
	if err != nil {
		h.logger.Error("POST /wizard/sessions - Failed to start session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /wizard/sessions - Session started: session_id=%s, step=%s", result.SessionID, result.Step)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Get GET /api/v1/wizard/sessions/{sessionId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	result, err := h.useCase.Get(r.Context(), sessionID)
	if err != nil {
		h.respondSessionError(w, "GET", sessionID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Advance POST /api/v1/wizard/sessions/{sessionId}/advance
func (h *Handler) Advance(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req wizardSession.UpdateRequest
	if r.ContentLength > 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("POST /wizard/sessions/%s/advance - Invalid request body: %v", sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
	}

	result, err := h.useCase.Advance(r.Context(), sessionID, &req)
	if err != nil {
		h.respondSessionError(w, "POST", sessionID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Back POST /api/v1/wizard/sessions/{sessionId}/back
func (h *Handler) Back(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	result, err := h.useCase.Back(r.Context(), sessionID)
	if err != nil {
		h.respondSessionError(w, "POST", sessionID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Submit POST /api/v1/wizard/sessions/{sessionId}/submit
//
// A capacity or validation rejection comes back as 200 with the
// session still on the contact step and a user-facing error in the
// body; only transport-level failures surface as error statuses.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	result, err := h.useCase.Submit(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, wizardSession.ErrNotSubmittable) {
			h.logger.Warn("POST /wizard/sessions/%s/submit - Session not submittable", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgNotSubmittable)
			return
		}
		h.respondSessionError(w, "POST", sessionID, err)
		return
	}

	if result.AppointmentID != 0 {
		h.logger.Info("POST /wizard/sessions/%s/submit - Appointment created: appointment_id=%d",
			sessionID, result.AppointmentID)
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Reset POST /api/v1/wizard/sessions/{sessionId}/reset
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	result, err := h.useCase.Reset(r.Context(), sessionID)
	if err != nil {
		h.respondSessionError(w, "POST", sessionID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) respondSessionError(w http.ResponseWriter, method, sessionID string, err error) {
	switch {
	case errors.Is(err, wizardSession.ErrSessionNotFound):
		h.logger.Warn("%s /wizard/sessions/%s - Session not found", method, sessionID)
		handlers.RespondNotFound(w, msgSessionNotFound)
	case errors.Is(err, wizardSession.ErrInvalidInput):
		handlers.RespondBadRequest(w, err.Error())
	default:
		h.logger.Error("%s /wizard/sessions/%s - Internal error: %v", method, sessionID, err)
		handlers.RespondInternalError(w)
	}
}
