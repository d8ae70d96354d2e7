package wizard_session

import (
	"context"
	"time"

	"github.com/tyrehub/appointment-service/internal/domain"
	"github.com/tyrehub/appointment-service/internal/usecase/create_appointment"
	"github.com/tyrehub/appointment-service/internal/wizard"
	"github.com/tyrehub/appointment-service/pkg/types"
)

// SessionStore persists form state between requests.
type SessionStore interface {
	Save(ctx context.Context, sessionID string, state wizard.FormState) error
	Get(ctx context.Context, sessionID string) (wizard.FormState, error)
	Delete(ctx context.Context, sessionID string) error
}

// BranchRepository resolves branch reference data.
type BranchRepository interface {
	GetAllActive(ctx context.Context) ([]domain.Branch, error)
	GetByID(ctx context.Context, id int64) (*domain.Branch, error)
}

// CatalogRepository resolves the fixed service catalog.
type CatalogRepository interface {
	GetAll(ctx context.Context) ([]domain.Service, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Service, error)
}

// SlotChecker answers whether one slot is currently bookable. It must
// agree with the slot listing, which is why it is backed by the same
// use case.
type SlotChecker interface {
	IsAvailable(ctx context.Context, branchID int64, date time.Time, t types.TimeString) (bool, error)
}

// AppointmentCreator turns a completed session into a booked
// appointment.
type AppointmentCreator interface {
	Execute(ctx context.Context, req *create_appointment.Request) (*create_appointment.Response, error)
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
