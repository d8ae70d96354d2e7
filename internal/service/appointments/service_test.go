package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tyrehub/appointment-service/internal/domain"
	appointmentRepo "github.com/tyrehub/appointment-service/internal/infra/storage/appointment"
	"github.com/tyrehub/appointment-service/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRepo struct {
	appointment *domain.Appointment
	getErr      error
	cancelErr   error
	cancelled   []int64
}

func (r *fakeRepo) GetByID(_ context.Context, _ int64) (*domain.Appointment, error) {
	return r.appointment, r.getErr
}

func (r *fakeRepo) Cancel(_ context.Context, id int64) error {
	if r.cancelErr != nil {
		return r.cancelErr
	}
	r.cancelled = append(r.cancelled, id)
	return nil
}

func pendingAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:           7,
		CustomerName: "Alice",
		BranchID:     3,
		ServiceIDs:   []int64{1},
		Date:         time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		Time:         types.TimeString("10:00"),
		Status:       domain.StatusPending,
	}
}

func TestGetByID(t *testing.T) {
	svc := NewService(&fakeRepo{appointment: pendingAppointment()}, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "2026-03-10", resp.Date)
	assert.Equal(t, "10:00", resp.Time)
	assert.Equal(t, "pending", resp.Status)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&fakeRepo{getErr: appointmentRepo.ErrAppointmentNotFound}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 7)

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestGetByID_InvalidID(t *testing.T) {
	svc := NewService(&fakeRepo{}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 0)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel_PendingAppointment(t *testing.T) {
	repo := &fakeRepo{appointment: pendingAppointment()}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, []int64{7}, repo.cancelled)
}

func TestCancel_CompletedAppointmentRejected(t *testing.T) {
	appt := pendingAppointment()
	appt.Status = domain.StatusCompleted
	repo := &fakeRepo{appointment: appt}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 7)

	assert.ErrorIs(t, err, ErrCannotCancel)
	assert.Empty(t, repo.cancelled)
}

func TestCancel_AlreadyCancelledRejected(t *testing.T) {
	appt := pendingAppointment()
	appt.Status = domain.StatusCancelled
	svc := NewService(&fakeRepo{appointment: appt}, nopLogger{})

	err := svc.Cancel(context.Background(), 7)

	assert.ErrorIs(t, err, ErrCannotCancel)
}
