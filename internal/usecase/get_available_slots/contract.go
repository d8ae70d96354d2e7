package get_available_slots

import (
	"context"
	"time"

	"github.com/tyrehub/appointment-service/internal/domain"
)

// AppointmentRepository is the slice of the appointment store this
// use case needs.
type AppointmentRepository interface {
	// GetByBranchAndDate returns every non-cancelled appointment at the
	// branch on the date.
	GetByBranchAndDate(ctx context.Context, branchID int64, date time.Time) ([]*domain.Appointment, error)
}

// BranchRepository resolves branch reference data.
type BranchRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Branch, error)
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
