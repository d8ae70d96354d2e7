package get_branches

import (
	"net/http"

	"github.com/tyrehub/appointment-service/internal/api/handlers"
)

type Handler struct {
	branches BranchProvider
	logger   Logger
}

func NewHandler(branches BranchProvider, logger Logger) *Handler {
	return &Handler{
		branches: branches,
		logger:   logger,
	}
}

// Handle GET /api/v1/branches
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	branches, err := h.branches.GetAllActive(r.Context())
	if err != nil {
		h.logger.Error("GET /branches - Failed to fetch branches: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromDomainBranchList(branches))
}
