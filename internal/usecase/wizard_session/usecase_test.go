package wizard_session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tyrehub/appointment-service/internal/domain"
	"github.com/tyrehub/appointment-service/internal/infra/session"
	"github.com/tyrehub/appointment-service/internal/usecase/create_appointment"
	"github.com/tyrehub/appointment-service/internal/wizard"
	"github.com/tyrehub/appointment-service/pkg/ptr"
	"github.com/tyrehub/appointment-service/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fakeStore struct {
	states map[string]wizard.FormState
}

func newFakeStore() *fakeStore {
	return &fakeStore{states: make(map[string]wizard.FormState)}
}

func (s *fakeStore) Save(_ context.Context, id string, state wizard.FormState) error {
	s.states[id] = state
	return nil
}

func (s *fakeStore) Get(_ context.Context, id string) (wizard.FormState, error) {
	state, ok := s.states[id]
	if !ok {
		return wizard.FormState{}, session.ErrSessionNotFound
	}
	return state, nil
}

func (s *fakeStore) Delete(_ context.Context, id string) error {
	delete(s.states, id)
	return nil
}

type fakeBranchRepo struct {
	branches []domain.Branch
}

func (r *fakeBranchRepo) GetAllActive(_ context.Context) ([]domain.Branch, error) {
	return r.branches, nil
}

func (r *fakeBranchRepo) GetByID(_ context.Context, id int64) (*domain.Branch, error) {
	for i := range r.branches {
		if r.branches[i].ID == id {
			return &r.branches[i], nil
		}
	}
	return nil, assert.AnError
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

type fakeSlotChecker struct {
	available bool
	err       error
}

func (c *fakeSlotChecker) IsAvailable(_ context.Context, _ int64, _ time.Time, _ types.TimeString) (bool, error) {
	return c.available, c.err
}

type fakeBooker struct {
	resp *create_appointment.Response
	err  error
	got  *create_appointment.Request
}

func (b *fakeBooker) Execute(_ context.Context, req *create_appointment.Request) (*create_appointment.Response, error) {
	b.got = req
	return b.resp, b.err
}

// Monday 2026-03-09 08:00.
var testNow = time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)

type fixture struct {
	uc     *UseCase
	store  *fakeStore
	slots  *fakeSlotChecker
	booker *fakeBooker
}

func newFixture() *fixture {
	store := newFakeStore()
	slots := &fakeSlotChecker{available: true}
	booker := &fakeBooker{resp: &create_appointment.Response{ID: 99}}

	branches := []domain.Branch{
		{ID: 3, Name: "Centro", Province: "Madrid", Hours: domain.DefaultWeeklyHours(), Active: true},
	}
	services := []domain.Service{
		{ID: 1, Name: "Tire Change"},
		{ID: 2, Name: "Wheel Alignment"},
	}

	uc := NewUseCase(
		store,
		&fakeBranchRepo{branches: branches},
		&fakeCatalogRepo{services: services},
		slots,
		booker,
		fixedClock{now: testNow},
		nopLogger{},
	)
	return &fixture{uc: uc, store: store, slots: slots, booker: booker}
}

func contactReadySession(f *fixture) string {
	id := "ready"
	f.store.states[id] = wizard.FormState{
		Step:             wizard.StepContact,
		SelectedProvince: "Madrid",
		BranchID:         3,
		SelectedServices: []int64{1},
		Date:             time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		Time:             types.TimeString("10:00"),
		CustomerName:     "Alice",
	}
	return id
}

func TestStart_EmptyQueryOpensAtWelcome(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Start(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, "welcome", resp.Step)
	assert.NotEmpty(t, resp.SessionID)
	_, saved := f.store.states[resp.SessionID]
	assert.True(t, saved)
}

func TestStart_FullDeepLinkResumesAtContact(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Start(context.Background(),
		"branch_id=3&services=1,2&preferred_date=2026-03-10&preferred_time=10:00&source=wa")

	require.NoError(t, err)
	assert.Equal(t, "contact", resp.Step)
	assert.Equal(t, "Madrid", resp.SelectedProvince)
	assert.Equal(t, int64(3), resp.BranchID)
	assert.Equal(t, []int64{1, 2}, resp.SelectedServices)
	assert.Equal(t, "10:00", resp.Time)
	assert.Equal(t, "wa", resp.Source)
	assert.Empty(t, resp.Error)
	assert.Contains(t, resp.DeepLink, "branch_id=3")
}

func TestStart_FullyBookedTimeStopsAtTimeStep(t *testing.T) {
	f := newFixture()
	f.slots.available = false

	resp, err := f.uc.Start(context.Background(),
		"branch_id=3&services=1&preferred_date=2026-03-10&preferred_time=10:00")

	require.NoError(t, err)
	assert.Equal(t, "time", resp.Step)
	assert.Equal(t, msgSlotTaken, resp.Error)
	assert.Equal(t, "2026-03-10", resp.Date, "valid date before the broken link is kept")
	assert.Empty(t, resp.Time)
}

func TestStart_AvailabilityErrorFailsClosed(t *testing.T) {
	f := newFixture()
	f.slots.err = assert.AnError

	resp, err := f.uc.Start(context.Background(),
		"branch_id=3&services=1&preferred_date=2026-03-10&preferred_time=10:00")

	require.NoError(t, err)
	assert.Equal(t, "time", resp.Step)
	assert.Equal(t, msgSlotTaken, resp.Error)
}

func TestStart_UnknownBranchStopsAtProvince(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Start(context.Background(), "branch_id=999&services=1")

	require.NoError(t, err)
	assert.Equal(t, "province", resp.Step)
	assert.NotEmpty(t, resp.Error)
}

func TestGet_UnknownSession(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestAdvance_AppliesFieldsAndMovesForward(t *testing.T) {
	f := newFixture()
	f.store.states["s1"] = wizard.FormState{Step: wizard.StepBranch, SelectedProvince: "Madrid"}

	resp, err := f.uc.Advance(context.Background(), "s1", &UpdateRequest{BranchID: ptr.Ptr(int64(3))})

	require.NoError(t, err)
	assert.Equal(t, "service", resp.Step)
	assert.Equal(t, int64(3), resp.BranchID)
}

func TestAdvance_MissingFieldStaysWithStepError(t *testing.T) {
	f := newFixture()
	f.store.states["s1"] = wizard.FormState{Step: wizard.StepProvince}

	resp, err := f.uc.Advance(context.Background(), "s1", nil)

	require.NoError(t, err)
	assert.Equal(t, "province", resp.Step)
	assert.NotEmpty(t, resp.Error)
}

func TestAdvance_UnknownBranchRejected(t *testing.T) {
	f := newFixture()
	f.store.states["s1"] = wizard.FormState{Step: wizard.StepBranch, SelectedProvince: "Madrid"}

	_, err := f.uc.Advance(context.Background(), "s1", &UpdateRequest{BranchID: ptr.Ptr(int64(999))})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSubmit_CreatesAppointmentAndEndsSession(t *testing.T) {
	f := newFixture()
	id := contactReadySession(f)

	resp, err := f.uc.Submit(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, "success", resp.Step)
	assert.Equal(t, int64(99), resp.AppointmentID)
	require.NotNil(t, f.booker.got)
	assert.Equal(t, int64(3), f.booker.got.BranchID)
	assert.Equal(t, "Alice", f.booker.got.CustomerName)

	_, still := f.store.states[id]
	assert.False(t, still, "session is removed after a successful submit")
}

func TestSubmit_SlotTakenKeepsSessionOnContact(t *testing.T) {
	f := newFixture()
	f.booker.err = create_appointment.ErrSlotNotAvailable
	id := contactReadySession(f)

	resp, err := f.uc.Submit(context.Background(), id)

	require.NoError(t, err, "a capacity rejection is a recoverable outcome")
	assert.Equal(t, "contact", resp.Step)
	assert.Equal(t, msgSlotTaken, resp.Error)

	saved := f.store.states[id]
	assert.Equal(t, wizard.StepContact, saved.Step)
	assert.Equal(t, msgSlotTaken, saved.Error)
}

func TestSubmit_InternalBookingErrorSurfaces(t *testing.T) {
	f := newFixture()
	f.booker.err = assert.AnError
	id := contactReadySession(f)

	_, err := f.uc.Submit(context.Background(), id)

	assert.ErrorIs(t, err, ErrInternal)
}

func TestSubmit_NotReady(t *testing.T) {
	f := newFixture()
	f.store.states["early"] = wizard.FormState{Step: wizard.StepDate}

	_, err := f.uc.Submit(context.Background(), "early")

	assert.ErrorIs(t, err, ErrNotSubmittable)
}

func TestReset_RestartsAtWelcomeUnderSameID(t *testing.T) {
	f := newFixture()
	id := contactReadySession(f)

	resp, err := f.uc.Reset(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, "welcome", resp.Step)
	assert.Zero(t, resp.BranchID)
	assert.Equal(t, id, resp.SessionID)
}
