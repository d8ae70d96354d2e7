package vouchers

import (
	"context"
	"time"

	"github.com/tyrehub/appointment-service/internal/domain"
)

// VoucherRepository is the read-only voucher lookup this service
// needs.
type VoucherRepository interface {
	GetByCode(ctx context.Context, code string) (*domain.Voucher, error)
}

// TimeProvider supplies the current time, injectable for tests.
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface the service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production clock.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
