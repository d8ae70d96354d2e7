package wizard

import (
	"errors"
	"strconv"

	"github.com/tyrehub/appointment-service/internal/deeplink"
	"github.com/tyrehub/appointment-service/internal/domain"
)

// Required-field messages, scoped to the step that reports them.
const (
	msgProvinceRequired = "select a province to continue"
	msgBranchRequired   = "select a branch to continue"
	msgServiceRequired  = "select at least one service to continue"
	msgDateRequired     = "select a date to continue"
	msgTimeRequired     = "select a time to continue"
	msgNameRequired     = "enter your name to continue"
)

// ErrNotSubmittable is returned by CanSubmit when the session is not
// on the contact step or required fields are missing.
var ErrNotSubmittable = errors.New("wizard: session is not ready to submit")

// Advance validates the current step's required fields and, when they
// are present, moves one step forward. On a missing field it records a
// step-scoped error and stays put. Advancing past contact is not
// possible; the success step is entered only through MarkSubmitted.
func Advance(s FormState) FormState {
	if s.Step.IsTerminal() || s.Step == StepContact {
		return s
	}

	if msg := missingFieldMessage(s, s.Step); msg != "" {
		s.Error = msg
		return s
	}

	s.Error = ""
	s.Step = s.Step.next()
	return s
}

// Back moves to the previous pipeline step and clears any error. It is
// legal from every non-initial, non-terminal step. Collected field
// values are kept, so moving forward again never forces re-entry.
func Back(s FormState) FormState {
	if s.Step == StepWelcome || s.Step.IsTerminal() {
		return s
	}
	s.Error = ""
	s.Step = s.Step.prev()
	return s
}

// CanSubmit reports whether the session can be handed to the booking
// collaborator: it must sit on the contact step with the full field
// set collected.
func CanSubmit(s FormState) error {
	if s.Step != StepContact {
		return ErrNotSubmittable
	}
	if s.BranchID == 0 || len(s.SelectedServices) == 0 || !s.HasDate() || s.Time.IsZero() || s.CustomerName == "" {
		return ErrNotSubmittable
	}
	return nil
}

// MarkSubmitted transitions to the terminal success step carrying the
// created appointment id.
func MarkSubmitted(s FormState, appointmentID int64) FormState {
	s.Error = ""
	s.AppointmentID = appointmentID
	s.Step = StepSuccess
	return s
}

// MarkSubmitFailed keeps the session on the contact step with the
// collaborator's error attached. Submission failures are recoverable:
// the user corrects (or picks another slot) and retries.
func MarkSubmitFailed(s FormState, message string) FormState {
	s.Step = StepContact
	s.Error = message
	return s
}

// ResumeFromDeepLink positions a fresh session at the furthest step
// reachable by a contiguous valid prefix of the supplied parameters.
//
// The walk follows the dependency chain province -> branch -> service
// -> date -> time: each link whose field is present in params and
// valid per validation is applied to the state and moves the target
// step forward; the first absent or invalid field stops the walk. An
// invalid field additionally surfaces its message on the step the walk
// stopped at. The walk never skips a hole: a later field that is
// individually valid is still ignored once the chain broke before it.
//
// The branch link also satisfies the province link, since a resolved
// branch carries its own province.
func ResumeFromDeepLink(s FormState, params *deeplink.Params, validation *deeplink.Result) FormState {
	if params == nil {
		return s
	}

	if params.Source != "" {
		s.Source = params.Source
	}

	// Contact fields are not chain links; they pre-fill the contact
	// step whenever they are usable.
	if params.CustomerName != "" {
		s.CustomerName = params.CustomerName
	}
	if params.CustomerPhone != "" && validation.Valid(deeplink.FieldPhone) {
		s.CustomerPhone = params.CustomerPhone
	}

	s.Step = StepProvince

	// province + branch (one field, two links)
	if params.BranchID == "" {
		return s
	}
	if !validation.Valid(deeplink.FieldBranch) {
		s.Error = validation.MessageFor(deeplink.FieldBranch)
		return s
	}
	s.SelectedProvince = validation.Branch.Province
	s.BranchID = validation.Branch.ID
	s.Step = StepService

	// service
	if len(params.ServiceIDs) == 0 {
		return s
	}
	if !validation.Valid(deeplink.FieldServices) {
		s.Error = validation.MessageFor(deeplink.FieldServices)
		return s
	}
	s.SelectedServices = validation.ServiceIDs
	s.Step = StepDate

	// date
	if params.Date == "" {
		return s
	}
	if !validation.Valid(deeplink.FieldDate) {
		s.Error = validation.MessageFor(deeplink.FieldDate)
		return s
	}
	s.Date = validation.Date
	s.Step = StepTime

	// time
	if params.Time == "" {
		return s
	}
	if !validation.Valid(deeplink.FieldTime) {
		s.Error = validation.MessageFor(deeplink.FieldTime)
		return s
	}
	s.Time = validation.Time
	s.Step = StepContact

	if params.CustomerPhone != "" && !validation.Valid(deeplink.FieldPhone) {
		s.Error = validation.MessageFor(deeplink.FieldPhone)
	}

	return s
}

// ToDeepLink serializes the collected fields back into deep-link
// params so every response can carry a shareable URL for the current
// position in the wizard.
func ToDeepLink(s FormState) deeplink.Params {
	p := deeplink.Params{
		CustomerName:  s.CustomerName,
		CustomerPhone: s.CustomerPhone,
		Source:        s.Source,
	}
	if s.BranchID != 0 {
		p.BranchID = strconv.FormatInt(s.BranchID, 10)
	}
	for _, id := range s.SelectedServices {
		p.ServiceIDs = append(p.ServiceIDs, strconv.FormatInt(id, 10))
	}
	if s.HasDate() {
		p.Date = s.Date.Format(domain.DateFormat)
	}
	if !s.Time.IsZero() {
		p.Time = s.Time.String()
	}
	return p
}

func missingFieldMessage(s FormState, step Step) string {
	switch step {
	case StepProvince:
		if s.SelectedProvince == "" {
			return msgProvinceRequired
		}
	case StepBranch:
		if s.BranchID == 0 {
			return msgBranchRequired
		}
	case StepService:
		if len(s.SelectedServices) == 0 {
			return msgServiceRequired
		}
	case StepDate:
		if !s.HasDate() {
			return msgDateRequired
		}
	case StepTime:
		if s.Time.IsZero() {
			return msgTimeRequired
		}
	case StepContact:
		if s.CustomerName == "" {
			return msgNameRequired
		}
	}
	return ""
}
