package create_appointment

import (
	"context"
	"time"

	"github.com/tyrehub/appointment-service/internal/domain"
	"github.com/tyrehub/appointment-service/internal/service/vouchers"
)

// AppointmentRepository is the slice of the appointment store this
// use case needs.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	GetByBranchAndDate(ctx context.Context, branchID int64, date time.Time) ([]*domain.Appointment, error)
}

// BranchRepository resolves branch reference data.
type BranchRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Branch, error)
}

// CatalogRepository resolves the fixed service catalog.
type CatalogRepository interface {
	GetAll(ctx context.Context) ([]domain.Service, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Service, error)
}

// VoucherValidator classifies a voucher code; failures use the
// vouchers service sentinels.
type VoucherValidator interface {
	Validate(ctx context.Context, code string) (*vouchers.Result, error)
}

// TransactionManager runs the capacity check and the insert as one
// atomic unit.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider supplies the current time, injectable for tests.
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface the use case needs.
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
