package wizard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tyrehub/appointment-service/internal/deeplink"
	"github.com/tyrehub/appointment-service/internal/domain"
	"github.com/tyrehub/appointment-service/pkg/types"
)

func completeState() FormState {
	return FormState{
		Step:             StepContact,
		SelectedProvince: "Madrid",
		BranchID:         1,
		SelectedServices: []int64{2},
		Date:             time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		Time:             types.TimeString("10:00"),
		CustomerName:     "Alice",
	}
}

func TestAdvance_WalksThePipelineWhenFieldsPresent(t *testing.T) {
	s := completeState()
	s.Step = StepWelcome

	order := []Step{StepProvince, StepBranch, StepService, StepDate, StepTime, StepContact}
	for _, want := range order {
		s = Advance(s)
		assert.Equal(t, want, s.Step)
		assert.Empty(t, s.Error)
	}

	// Contact is the last step Advance can reach; success needs a
	// submit.
	s = Advance(s)
	assert.Equal(t, StepContact, s.Step)
}

func TestAdvance_MissingFieldStaysWithError(t *testing.T) {
	s := NewFormState()
	s = Advance(s) // welcome -> province, no field needed at welcome
	require.Equal(t, StepProvince, s.Step)

	s = Advance(s)
	assert.Equal(t, StepProvince, s.Step)
	assert.Equal(t, msgProvinceRequired, s.Error)

	// Supplying the field clears the error on the next advance.
	s.SelectedProvince = "Madrid"
	s = Advance(s)
	assert.Equal(t, StepBranch, s.Step)
	assert.Empty(t, s.Error)
}

func TestBack_KeepsDataAndClearsError(t *testing.T) {
	s := completeState()
	s.Step = StepTime
	s.Error = "something"

	s = Back(s)

	assert.Equal(t, StepDate, s.Step)
	assert.Empty(t, s.Error)
	assert.Equal(t, int64(1), s.BranchID)
	assert.True(t, s.HasDate())
}

func TestBack_NoOpAtWelcomeAndSuccess(t *testing.T) {
	s := NewFormState()
	assert.Equal(t, StepWelcome, Back(s).Step)

	done := MarkSubmitted(completeState(), 7)
	assert.Equal(t, StepSuccess, Back(done).Step)
}

func TestCanSubmit(t *testing.T) {
	assert.NoError(t, CanSubmit(completeState()))

	onTime := completeState()
	onTime.Step = StepTime
	assert.ErrorIs(t, CanSubmit(onTime), ErrNotSubmittable)

	noName := completeState()
	noName.CustomerName = ""
	assert.ErrorIs(t, CanSubmit(noName), ErrNotSubmittable)
}

func TestMarkSubmitFailed_StaysOnContact(t *testing.T) {
	s := MarkSubmitFailed(completeState(), "slot taken")
	assert.Equal(t, StepContact, s.Step)
	assert.Equal(t, "slot taken", s.Error)
}

func madridBranch() *domain.Branch {
	return &domain.Branch{ID: 3, Name: "Centro", Province: "Madrid", Active: true}
}

func fullParams() *deeplink.Params {
	return &deeplink.Params{
		BranchID:   "3",
		ServiceIDs: []string{"2"},
		Date:       "2026-03-10",
		Time:       "10:00",
		Source:     "wa",
	}
}

func fullValidation() *deeplink.Result {
	return &deeplink.Result{
		Branch:     madridBranch(),
		ServiceIDs: []int64{2},
		Date:       time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		Time:       types.TimeString("10:00"),
	}
}

func TestResumeFromDeepLink_FullValidPrefixLandsOnContact(t *testing.T) {
	s := ResumeFromDeepLink(NewFormState(), fullParams(), fullValidation())

	assert.Equal(t, StepContact, s.Step)
	assert.Equal(t, "Madrid", s.SelectedProvince)
	assert.Equal(t, int64(3), s.BranchID)
	assert.Equal(t, []int64{2}, s.SelectedServices)
	assert.Equal(t, types.TimeString("10:00"), s.Time)
	assert.Equal(t, "wa", s.Source)
	assert.Empty(t, s.Error)
}

func TestResumeFromDeepLink_AbsentFieldStopsSilently(t *testing.T) {
	params := fullParams()
	params.Date = ""
	params.Time = ""

	s := ResumeFromDeepLink(NewFormState(), params, fullValidation())

	assert.Equal(t, StepDate, s.Step)
	assert.Empty(t, s.Error)
}

func TestResumeFromDeepLink_InvalidTimeStopsWithMessage(t *testing.T) {
	validation := fullValidation()
	validation.AddFinding(deeplink.FieldTime, "time not bookable")

	s := ResumeFromDeepLink(NewFormState(), fullParams(), validation)

	assert.Equal(t, StepTime, s.Step)
	assert.Equal(t, "time not bookable", s.Error)
	assert.True(t, s.HasDate(), "valid date before the broken link is kept")
	assert.True(t, s.Time.IsZero(), "invalid time is not applied")
}

func TestResumeFromDeepLink_InvalidBranchStopsAtProvince(t *testing.T) {
	validation := &deeplink.Result{}
	validation.AddFinding(deeplink.FieldBranch, "branch not recognized")

	s := ResumeFromDeepLink(NewFormState(), fullParams(), validation)

	assert.Equal(t, StepProvince, s.Step)
	assert.Equal(t, "branch not recognized", s.Error)
	assert.Zero(t, s.BranchID)
}

func TestResumeFromDeepLink_LaterValidFieldsIgnoredPastAHole(t *testing.T) {
	params := fullParams()
	params.ServiceIDs = nil // hole in the chain

	s := ResumeFromDeepLink(NewFormState(), params, fullValidation())

	assert.Equal(t, StepService, s.Step)
	assert.True(t, s.Time.IsZero(), "time past the hole is not applied")
	assert.False(t, s.HasDate(), "date past the hole is not applied")
}

func TestResumeFromDeepLink_ContactFieldsPrefillWithoutGating(t *testing.T) {
	params := &deeplink.Params{
		CustomerName:  "Alice",
		CustomerPhone: "+34 600 000 000",
	}

	s := ResumeFromDeepLink(NewFormState(), params, &deeplink.Result{})

	assert.Equal(t, StepProvince, s.Step)
	assert.Equal(t, "Alice", s.CustomerName)
	assert.Equal(t, "+34 600 000 000", s.CustomerPhone)
}

func TestResumeFromDeepLink_NilParamsUntouched(t *testing.T) {
	s := ResumeFromDeepLink(NewFormState(), nil, nil)
	assert.Equal(t, StepWelcome, s.Step)
}

func TestToDeepLink_RoundTripsCollectedFields(t *testing.T) {
	p := ToDeepLink(completeState())

	assert.Equal(t, "1", p.BranchID)
	assert.Equal(t, []string{"2"}, p.ServiceIDs)
	assert.Equal(t, "2026-03-10", p.Date)
	assert.Equal(t, "10:00", p.Time)
}
