package validate_voucher

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tyrehub/appointment-service/internal/api/handlers"
	"github.com/tyrehub/appointment-service/internal/service/vouchers"
)

const (
	msgVoucherNotFound = "voucher code not recognized"

	reasonRedeemed = "redeemed"
	reasonExpired  = "expired"
)

// ValidateVoucherResponse reports whether a code can be applied. For
// usable vouchers it carries the holder's contact details so the
// client can pre-fill the booking form.
type ValidateVoucherResponse struct {
	Code  string `json:"code"`
	Valid bool   `json:"valid"`

	// Reason is set when Valid is false.
	Reason string `json:"reason,omitempty"`

	CustomerName  string  `json:"customerName,omitempty"`
	CustomerEmail *string `json:"customerEmail,omitempty"`
	CustomerPhone *string `json:"customerPhone,omitempty"`
}

type Handler struct {
	service VoucherService
	logger  Logger
}

func NewHandler(service VoucherService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/vouchers/{code}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	result, err := h.service.Validate(r.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, vouchers.ErrVoucherNotFound):
			h.logger.Warn("GET /vouchers/%s - Voucher not found", code)
			handlers.RespondNotFound(w, msgVoucherNotFound)

		// A recognized but unusable code is a successful
		// classification, not an error response.
		case errors.Is(err, vouchers.ErrVoucherRedeemed):
			handlers.RespondJSON(w, http.StatusOK, ValidateVoucherResponse{
				Code:   code,
				Valid:  false,
				Reason: reasonRedeemed,
			})

		case errors.Is(err, vouchers.ErrVoucherExpired):
			handlers.RespondJSON(w, http.StatusOK, ValidateVoucherResponse{
				Code:   code,
				Valid:  false,
				Reason: reasonExpired,
			})

		default:
			h.logger.Error("GET /vouchers/%s - Failed to validate voucher: %v", code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ValidateVoucherResponse{
		Code:          result.Code,
		Valid:         true,
		CustomerName:  result.CustomerName,
		CustomerEmail: result.CustomerEmail,
		CustomerPhone: result.CustomerPhone,
	})
}
