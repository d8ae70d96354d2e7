package wizard_session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tyrehub/appointment-service/internal/deeplink"
	"github.com/tyrehub/appointment-service/internal/domain"
	"github.com/tyrehub/appointment-service/internal/infra/session"
	"github.com/tyrehub/appointment-service/internal/usecase/create_appointment"
	"github.com/tyrehub/appointment-service/internal/wizard"
	"github.com/tyrehub/appointment-service/pkg/types"
)

const msgSlotTaken = "this time is no longer available, please pick another slot"

// UseCase drives wizard sessions: it owns the storage round trips and
// the collaborator calls, while every state transition itself is a
// pure function in the wizard package.
type UseCase struct {
	store        SessionStore
	branchRepo   BranchRepository
	catalogRepo  CatalogRepository
	slots        SlotChecker
	booker       AppointmentCreator
	timeProvider TimeProvider
	logger       Logger
}

func NewUseCase(
	store SessionStore,
	branchRepo BranchRepository,
	catalogRepo CatalogRepository,
	slots SlotChecker,
	booker AppointmentCreator,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		store:        store,
		branchRepo:   branchRepo,
		catalogRepo:  catalogRepo,
		slots:        slots,
		booker:       booker,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Start creates a new session. When rawQuery carries deep-link
// parameters, the session resumes at the furthest step the valid
// prefix of those parameters reaches; otherwise it opens at the
// welcome step.
func (uc *UseCase) Start(ctx context.Context, rawQuery string) (*Response, error) {
	sessionID := uuid.NewString()
	state := wizard.NewFormState()

	if params := deeplink.Decode(rawQuery); params != nil {
		validation, err := uc.validateParams(ctx, params)
		if err != nil {
			return nil, err
		}
		state = wizard.ResumeFromDeepLink(state, params, validation)
		uc.logger.Info("Start: session=%s resumed from deep link at step=%s", sessionID, state.Step)
	}

	if err := uc.store.Save(ctx, sessionID, state); err != nil {
		uc.logger.Error("Start: failed to save session=%s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: Start - save session: %v", ErrInternal, err)
	}

	return buildResponse(sessionID, state), nil
}

// Get returns the current state of a session.
func (uc *UseCase) Get(ctx context.Context, sessionID string) (*Response, error) {
	state, err := uc.load(ctx, sessionID, "Get")
	if err != nil {
		return nil, err
	}
	return buildResponse(sessionID, state), nil
}

// Advance applies the supplied field values to the session and moves
// one step forward when the current step's requirements are met. A
// missing required field keeps the session in place with a
// step-scoped error in the response.
func (uc *UseCase) Advance(ctx context.Context, sessionID string, req *UpdateRequest) (*Response, error) {
	state, err := uc.load(ctx, sessionID, "Advance")
	if err != nil {
		return nil, err
	}

	if req != nil {
		state, err = uc.applyUpdate(ctx, state, req)
		if err != nil {
			return nil, err
		}
	}

	state = wizard.Advance(state)

	if err := uc.store.Save(ctx, sessionID, state); err != nil {
		uc.logger.Error("Advance: failed to save session=%s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: Advance - save session: %v", ErrInternal, err)
	}

	return buildResponse(sessionID, state), nil
}

// Back moves the session one step back, keeping collected values.
func (uc *UseCase) Back(ctx context.Context, sessionID string) (*Response, error) {
	state, err := uc.load(ctx, sessionID, "Back")
	if err != nil {
		return nil, err
	}

	state = wizard.Back(state)

	if err := uc.store.Save(ctx, sessionID, state); err != nil {
		uc.logger.Error("Back: failed to save session=%s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: Back - save session: %v", ErrInternal, err)
	}

	return buildResponse(sessionID, state), nil
}

// Submit hands the completed session to the booking collaborator. On
// success the session moves to the terminal success step and is
// removed from the store. A capacity or validation rejection is a
// recoverable outcome: the session stays on the contact step with a
// user-facing error and a 200-level response, so the client can let
// the user retry.
func (uc *UseCase) Submit(ctx context.Context, sessionID string) (*Response, error) {
	state, err := uc.load(ctx, sessionID, "Submit")
	if err != nil {
		return nil, err
	}

	if err := wizard.CanSubmit(state); err != nil {
		uc.logger.Warn("Submit: session=%s not submittable at step=%s", sessionID, state.Step)
		return nil, ErrNotSubmittable
	}

	resp, err := uc.booker.Execute(ctx, submissionRequest(state))
	if err != nil {
		if msg, recoverable := submitFailureMessage(err); recoverable {
			uc.logger.Warn("Submit: session=%s rejected: %v", sessionID, err)
			state = wizard.MarkSubmitFailed(state, msg)
			if saveErr := uc.store.Save(ctx, sessionID, state); saveErr != nil {
				uc.logger.Error("Submit: failed to save session=%s: %v", sessionID, saveErr)
				return nil, fmt.Errorf("%w: Submit - save session: %v", ErrInternal, saveErr)
			}
			return buildResponse(sessionID, state), nil
		}
		uc.logger.Error("Submit: booking failed for session=%s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: Submit - create appointment: %v", ErrInternal, err)
	}

	state = wizard.MarkSubmitted(state, resp.ID)

	// The session has served its purpose; a failed delete only leaves
	// it to expire with the TTL.
	if err := uc.store.Delete(ctx, sessionID); err != nil {
		uc.logger.Warn("Submit: failed to delete session=%s: %v", sessionID, err)
	}

	uc.logger.Info("Submit: session=%s created appointment id=%d", sessionID, resp.ID)
	return buildResponse(sessionID, state), nil
}

// Reset discards the session's collected data and restarts it at the
// welcome step under the same id.
func (uc *UseCase) Reset(ctx context.Context, sessionID string) (*Response, error) {
	if _, err := uc.load(ctx, sessionID, "Reset"); err != nil {
		return nil, err
	}

	state := wizard.NewFormState()
	if err := uc.store.Save(ctx, sessionID, state); err != nil {
		uc.logger.Error("Reset: failed to save session=%s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: Reset - save session: %v", ErrInternal, err)
	}

	return buildResponse(sessionID, state), nil
}

func (uc *UseCase) load(ctx context.Context, sessionID string, op string) (wizard.FormState, error) {
	if sessionID == "" {
		return wizard.FormState{}, fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}

	state, err := uc.store.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			uc.logger.Warn("%s: session=%s not found", op, sessionID)
			return wizard.FormState{}, ErrSessionNotFound
		}
		uc.logger.Error("%s: failed to load session=%s: %v", op, sessionID, err)
		return wizard.FormState{}, fmt.Errorf("%w: %s - load session: %v", ErrInternal, op, err)
	}
	return state, nil
}

// validateParams checks decoded deep-link parameters against live
// reference data and folds the slot-availability outcome into the
// time field, so the resume walk sees a fully booked slot the same
// way it sees a malformed one.
func (uc *UseCase) validateParams(ctx context.Context, params *deeplink.Params) (*deeplink.Result, error) {
	branches, err := uc.branchRepo.GetAllActive(ctx)
	if err != nil {
		uc.logger.Error("Start: failed to fetch branches: %v", err)
		return nil, fmt.Errorf("%w: Start - fetch branches: %v", ErrInternal, err)
	}

	services, err := uc.catalogRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("Start: failed to fetch services: %v", err)
		return nil, fmt.Errorf("%w: Start - fetch services: %v", ErrInternal, err)
	}

	result := deeplink.Validate(params, deeplink.Context{
		Branches: branches,
		Services: services,
		Now:      uc.timeProvider.Now(),
	})

	if params.Time != "" && result.Branch != nil &&
		result.Valid(deeplink.FieldDate) && result.Valid(deeplink.FieldTime) && !result.Date.IsZero() {
		available, err := uc.slots.IsAvailable(ctx, result.Branch.ID, result.Date, result.Time)
		if err != nil {
			uc.logger.Error("Start: availability check failed: %v", err)
			// Fail closed: an unknown slot state is treated as taken.
			result.AddFinding(deeplink.FieldTime, msgSlotTaken)
		} else if !available {
			result.AddFinding(deeplink.FieldTime, msgSlotTaken)
		}
	}

	return result, nil
}

// applyUpdate copies the supplied fields into the state, resolving
// references against live data. Fields left nil in the request are
// untouched, so later-step values already collected never regress.
func (uc *UseCase) applyUpdate(ctx context.Context, state wizard.FormState, req *UpdateRequest) (wizard.FormState, error) {
	if req.Province != nil {
		state.SelectedProvince = *req.Province
	}

	if req.BranchID != nil {
		branch, err := uc.branchRepo.GetByID(ctx, *req.BranchID)
		if err != nil || !branch.Active {
			return state, fmt.Errorf("%w: unknown branch %d", ErrInvalidInput, *req.BranchID)
		}
		state.BranchID = branch.ID
		if state.SelectedProvince == "" {
			state.SelectedProvince = branch.Province
		}
	}

	if len(req.ServiceIDs) > 0 {
		if _, err := uc.catalogRepo.GetByIDs(ctx, req.ServiceIDs); err != nil {
			return state, fmt.Errorf("%w: unknown service selection", ErrInvalidInput)
		}
		state.SelectedServices = req.ServiceIDs
	}

	if req.Date != nil {
		date, err := time.Parse(domain.DateFormat, *req.Date)
		if err != nil {
			return state, fmt.Errorf("%w: invalid date %q", ErrInvalidInput, *req.Date)
		}
		state.Date = date
	}

	if req.Time != nil {
		t, err := types.NewTimeStringFromString(*req.Time)
		if err != nil || !domain.IsCandidateSlotTime(t) {
			return state, fmt.Errorf("%w: invalid time %q", ErrInvalidInput, *req.Time)
		}
		state.Time = t
	}

	if req.CustomerName != nil {
		state.CustomerName = *req.CustomerName
	}
	if req.CustomerEmail != nil {
		state.CustomerEmail = *req.CustomerEmail
	}
	if req.CustomerPhone != nil {
		state.CustomerPhone = *req.CustomerPhone
	}
	if req.VehicleMake != nil {
		state.VehicleMake = *req.VehicleMake
	}
	if req.VehicleModel != nil {
		state.VehicleModel = *req.VehicleModel
	}
	if req.VehicleYear != nil {
		state.VehicleYear = *req.VehicleYear
	}
	if req.VoucherCode != nil {
		state.VoucherCode = *req.VoucherCode
	}
	if req.Notes != nil {
		if len(*req.Notes) > domain.MaxNotesLength {
			return state, fmt.Errorf("%w: notes too long", ErrInvalidInput)
		}
		state.Notes = *req.Notes
	}

	return state, nil
}

func submissionRequest(state wizard.FormState) *create_appointment.Request {
	req := &create_appointment.Request{
		CustomerName: state.CustomerName,
		BranchID:     state.BranchID,
		ServiceIDs:   state.SelectedServices,
		Date:         state.Date,
		Time:         state.Time,
	}
	if state.CustomerEmail != "" {
		req.CustomerEmail = &state.CustomerEmail
	}
	if state.CustomerPhone != "" {
		req.CustomerPhone = &state.CustomerPhone
	}
	if state.VehicleMake != "" {
		req.VehicleMake = &state.VehicleMake
	}
	if state.VehicleModel != "" {
		req.VehicleModel = &state.VehicleModel
	}
	if state.VehicleYear != 0 {
		req.VehicleYear = &state.VehicleYear
	}
	if state.VoucherCode != "" {
		req.VoucherCode = &state.VoucherCode
	}
	if state.Notes != "" {
		req.Notes = &state.Notes
	}
	if state.Source != "" {
		req.Source = &state.Source
	}
	return req
}

// submitFailureMessage maps booking rejections the user can act on to
// a message shown on the contact step. Anything else is internal.
func submitFailureMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, create_appointment.ErrSlotNotAvailable):
		return msgSlotTaken, true
	case errors.Is(err, create_appointment.ErrTimePassed):
		return "this time has already passed, please pick another slot", true
	case errors.Is(err, create_appointment.ErrBranchClosed):
		return "the branch is closed on this date, please pick another day", true
	case errors.Is(err, create_appointment.ErrInvalidDate):
		return "the selected date is no longer bookable, please pick another day", true
	case errors.Is(err, create_appointment.ErrInvalidTimeSlot):
		return "the selected time is not bookable, please pick another slot", true
	case errors.Is(err, create_appointment.ErrVoucherNotUsable):
		return "the voucher code cannot be applied, remove it or use another one", true
	default:
		return "", false
	}
}
