package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tyrehub/appointment-service/internal/domain"
	"github.com/tyrehub/appointment-service/internal/service/vouchers"
	"github.com/tyrehub/appointment-service/pkg/ptr"
	"github.com/tyrehub/appointment-service/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fakeAppointmentRepo struct {
	existing []*domain.Appointment
	created  *domain.Appointment
	nextID   int64
}

func (r *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	out := *appt
	out.ID = r.nextID
	now := time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)
	out.CreatedAt = now
	out.UpdatedAt = now
	r.created = &out
	return &out, nil
}

func (r *fakeAppointmentRepo) GetByBranchAndDate(_ context.Context, _ int64, _ time.Time) ([]*domain.Appointment, error) {
	return r.existing, nil
}

type fakeBranchRepo struct {
	branch *domain.Branch
	err    error
}

func (r *fakeBranchRepo) GetByID(_ context.Context, _ int64) (*domain.Branch, error) {
	return r.branch, r.err
}

type fakeCatalogRepo struct {
	services []domain.Service
}

func (r *fakeCatalogRepo) GetAll(_ context.Context) ([]domain.Service, error) {
	return r.services, nil
}

func (r *fakeCatalogRepo) GetByIDs(_ context.Context, ids []int64) ([]domain.Service, error) {
	var out []domain.Service
	for _, id := range ids {
		found := false
		for _, s := range r.services {
			if s.ID == id {
				out = append(out, s)
				found = true
				break
			}
		}
		if !found {
			return nil, assert.AnError
		}
	}
	return out, nil
}

type fakeVoucherValidator struct {
	result *vouchers.Result
	err    error
}

func (v *fakeVoucherValidator) Validate(_ context.Context, _ string) (*vouchers.Result, error) {
	return v.result, v.err
}

// fakeTxManager runs the function inline; atomicity is the real
// manager's concern, the use case only needs the callback shape.
type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

func activeBranch() *domain.Branch {
	return &domain.Branch{
		ID:       1,
		Name:     "Centro",
		Province: "Madrid",
		Hours:    domain.DefaultWeeklyHours(),
		Active:   true,
	}
}

func catalog() []domain.Service {
	return []domain.Service{
		{ID: 1, Name: "Tire Change", DurationMinutes: 30, Price: 40},
		{ID: 2, Name: "Wheel Alignment", DurationMinutes: 30, Price: 60},
	}
}

// Monday 2026-03-09 08:00, before opening.
var testNow = time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)

func newTestUseCase(apptRepo *fakeAppointmentRepo, branch *domain.Branch) (*UseCase, *fakeTxManager) {
	txMgr := &fakeTxManager{}
	uc := NewUseCase(
		apptRepo,
		&fakeBranchRepo{branch: branch},
		&fakeCatalogRepo{services: catalog()},
		&fakeVoucherValidator{result: &vouchers.Result{Code: "PROMO"}},
		txMgr,
		nopLogger{},
	)
	uc.timeProvider = fixedClock{now: testNow}
	return uc, txMgr
}

func validRequest() *Request {
	return &Request{
		CustomerName: "Alice Example",
		BranchID:     1,
		ServiceIDs:   []int64{1},
		Date:         time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), // Tuesday
		Time:         types.TimeString("10:00"),
	}
}

func TestExecute_CreatesPendingAppointment(t *testing.T) {
	repo := &fakeAppointmentRepo{nextID: 42}
	uc, txMgr := newTestUseCase(repo, activeBranch())

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, []int64{1}, resp.ServiceIDs)
	assert.Equal(t, "Tire Change", resp.ServiceType)
	assert.Equal(t, 40.0, resp.TotalPrice)
	assert.Equal(t, 1, txMgr.calls)
	require.NotNil(t, repo.created)
	assert.Equal(t, domain.StatusPending, repo.created.Status)
}

func TestExecute_RejectsFullSlot(t *testing.T) {
	taken := func(tm string) *domain.Appointment {
		return &domain.Appointment{
			BranchID: 1,
			Time:     types.TimeString(tm),
			Status:   domain.StatusPending,
		}
	}
	repo := &fakeAppointmentRepo{
		existing: []*domain.Appointment{taken("10:00"), taken("10:00")},
		nextID:   43,
	}
	uc, _ := newTestUseCase(repo, activeBranch())

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, repo.created)
}

func TestExecute_CancelledAppointmentsFreeTheSlot(t *testing.T) {
	repo := &fakeAppointmentRepo{
		existing: []*domain.Appointment{
			{BranchID: 1, Time: types.TimeString("10:00"), Status: domain.StatusPending},
			{BranchID: 1, Time: types.TimeString("10:00"), Status: domain.StatusCancelled},
		},
		nextID: 44,
	}
	uc, _ := newTestUseCase(repo, activeBranch())

	_, err := uc.Execute(context.Background(), validRequest())

	assert.NoError(t, err)
}

func TestExecute_RejectsClosedDay(t *testing.T) {
	uc, _ := newTestUseCase(&fakeAppointmentRepo{nextID: 1}, activeBranch())

	req := validRequest()
	req.Date = time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC) // Sunday

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrBranchClosed)
}

func TestExecute_RejectsPastDate(t *testing.T) {
	uc, _ := newTestUseCase(&fakeAppointmentRepo{nextID: 1}, activeBranch())

	req := validRequest()
	req.Date = time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_RejectsNonCandidateTime(t *testing.T) {
	uc, _ := newTestUseCase(&fakeAppointmentRepo{nextID: 1}, activeBranch())

	req := validRequest()
	req.Time = types.TimeString("10:15")

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_RejectsTimeOutsideSaturdayHours(t *testing.T) {
	uc, _ := newTestUseCase(&fakeAppointmentRepo{nextID: 1}, activeBranch())

	// Saturday closes at 14:00; 15:00 is a candidate time but outside
	// the day's window.
	req := validRequest()
	req.Date = time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	req.Time = types.TimeString("15:00")

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_RejectsSameDayPastTime(t *testing.T) {
	repo := &fakeAppointmentRepo{nextID: 1}
	uc, _ := newTestUseCase(repo, activeBranch())
	uc.timeProvider = fixedClock{now: time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC)}

	req := validRequest() // 2026-03-10 at 10:00

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrTimePassed)
}

func TestExecute_RejectsInactiveBranch(t *testing.T) {
	branch := activeBranch()
	branch.Active = false
	uc, _ := newTestUseCase(&fakeAppointmentRepo{nextID: 1}, branch)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrBranchNotFound)
}

func TestExecute_ResolvesLegacyServiceType(t *testing.T) {
	repo := &fakeAppointmentRepo{nextID: 45}
	uc, _ := newTestUseCase(repo, activeBranch())

	req := validRequest()
	req.ServiceIDs = nil
	req.LegacyServiceType = ptr.Ptr("wheel alignment")

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, []int64{2}, resp.ServiceIDs)
	assert.Equal(t, "Wheel Alignment", resp.ServiceType)
	assert.Equal(t, 60.0, resp.TotalPrice)
}

func TestExecute_RejectsUnknownLegacyServiceType(t *testing.T) {
	uc, _ := newTestUseCase(&fakeAppointmentRepo{nextID: 1}, activeBranch())

	req := validRequest()
	req.ServiceIDs = nil
	req.LegacyServiceType = ptr.Ptr("oil change")

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_RejectsUnusableVoucher(t *testing.T) {
	repo := &fakeAppointmentRepo{nextID: 1}
	uc, _ := newTestUseCase(repo, activeBranch())
	uc.voucherValidator = &fakeVoucherValidator{err: vouchers.ErrVoucherExpired}

	req := validRequest()
	req.VoucherCode = ptr.Ptr("PROMO2024")

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrVoucherNotUsable)
	assert.Nil(t, repo.created)
}

func TestExecute_RejectsMissingFields(t *testing.T) {
	uc, _ := newTestUseCase(&fakeAppointmentRepo{nextID: 1}, activeBranch())

	for name, mutate := range map[string]func(*Request){
		"empty name":      func(r *Request) { r.CustomerName = "  " },
		"no services":     func(r *Request) { r.ServiceIDs = nil },
		"zero branch":     func(r *Request) { r.BranchID = 0 },
		"zero date":       func(r *Request) { r.Date = time.Time{} },
		"zero time":       func(r *Request) { r.Time = "" },
		"implausible car": func(r *Request) { r.VehicleYear = ptr.Ptr(1900) },
	} {
		t.Run(name, func(t *testing.T) {
			req := validRequest()
			mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
