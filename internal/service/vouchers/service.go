package vouchers

import (
	"context"
	"errors"
	"fmt"

	"github.com/tyrehub/appointment-service/internal/domain"
	"github.com/tyrehub/appointment-service/internal/infra/storage/voucher"
)

// Result carries the voucher holder's contact details for pre-filling
// the booking form. It never exposes the voucher's internal state.
type Result struct {
	Code          string
	CustomerName  string
	CustomerEmail *string
	CustomerPhone *string
}

type Service struct {
	repo VoucherRepository
	time TimeProvider
	log  Logger
}

func New(repo VoucherRepository, timeProvider TimeProvider, log Logger) *Service {
	return &Service{
		repo: repo,
		time: timeProvider,
		log:  log,
	}
}

// Validate checks whether the voucher identified by code can still be
// applied to a new appointment. Expiry is decided against the current
// clock, so a voucher whose stored status was never flipped to expired
// is still rejected once valid_until has passed.
func (s *Service) Validate(ctx context.Context, code string) (*Result, error) {
	if code == "" {
		return nil, ErrVoucherNotFound
	}

	v, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, voucher.ErrVoucherNotFound) {
			return nil, ErrVoucherNotFound
		}
		s.log.Error("[vouchers.Service.Validate] lookup failed for code %q: %v", code, err)
		return nil, fmt.Errorf("%w: Validate - fetch voucher: %v", ErrInternal, err)
	}

	switch v.Status {
	case domain.VoucherRedeemed:
		return nil, ErrVoucherRedeemed
	case domain.VoucherExpired:
		return nil, ErrVoucherExpired
	}

	if v.IsExpiredAt(s.time.Now()) {
		return nil, ErrVoucherExpired
	}

	return &Result{
		Code:          v.Code,
		CustomerName:  v.CustomerName,
		CustomerEmail: v.CustomerEmail,
		CustomerPhone: v.CustomerPhone,
	}, nil
}
