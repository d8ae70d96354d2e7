package get_services

import (
	"net/http"

	"github.com/tyrehub/appointment-service/internal/api/handlers"
	"github.com/tyrehub/appointment-service/internal/domain"
)

type ServiceResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	VoucherEligible bool    `json:"voucherEligible"`
}

type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

type Handler struct {
	catalog ServiceProvider
	logger  Logger
}

func NewHandler(catalog ServiceProvider, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	services, err := h.catalog.GetAll(r.Context())
	if err != nil {
		h.logger.Error("GET /services - Failed to fetch services: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	resp := ServiceListResponse{Services: make([]ServiceResponse, 0, len(services))}
	for _, s := range services {
		resp.Services = append(resp.Services, fromDomainService(s))
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}

func fromDomainService(s domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		DurationMinutes: s.DurationMinutes,
		Price:           s.Price,
		VoucherEligible: s.VoucherEligible,
	}
}
