package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tyrehub/appointment-service/internal/domain"
	branchRepo "github.com/tyrehub/appointment-service/internal/infra/storage/branch"
	"github.com/tyrehub/appointment-service/pkg/types"
)

// UseCase answers "which slots are bookable at (branch, date)?". Its
// output is a UI hint only: capacity is enforced again, atomically, at
// creation time.
type UseCase struct {
	appointmentRepo AppointmentRepository
	branchRepo      BranchRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the use case with the production clock.
func NewUseCase(
	appointmentRepo AppointmentRepository,
	branchRepo BranchRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		branchRepo:      branchRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute returns the full ordered slot list for (branch, date).
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: branch=%d, date=%s",
		req.BranchID, req.Date.Format(domain.DateFormat))

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Resolve the branch
	branch, err := uc.branchRepo.GetByID(ctx, req.BranchID)
	if err != nil {
		if errors.Is(err, branchRepo.ErrBranchNotFound) {
			uc.logger.Warn("GetAvailableSlots: branch id=%d not found", req.BranchID)
			return nil, ErrBranchNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get branch id=%d: %v", req.BranchID, err)
		return nil, fmt.Errorf("%w: failed to get branch: %v", ErrInternal, err)
	}
	if !branch.Active {
		uc.logger.Warn("GetAvailableSlots: branch id=%d is inactive", req.BranchID)
		return nil, ErrBranchNotFound
	}

	// 3. Fetch the day's non-cancelled appointments. A storage failure
	// propagates; the service never masks a transport error as an open
	// calendar.
	appointments, err := uc.appointmentRepo.GetByBranchAndDate(ctx, req.BranchID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 4. Compute per-slot availability
	slots := buildSlots(branch, req.Date, appointments, now)

	uc.logger.Info("GetAvailableSlots: computed %d slots for branch=%d, date=%s",
		len(slots), req.BranchID, req.Date.Format(domain.DateFormat))

	return &Response{
		BranchID: req.BranchID,
		Date:     req.Date,
		Slots:    slots,
	}, nil
}

// IsAvailable is the single-slot convenience check. It is computed
// from the same slot list Execute returns, so the two can never
// disagree for the same inputs.
func (uc *UseCase) IsAvailable(ctx context.Context, branchID int64, date time.Time, t types.TimeString) (bool, error) {
	resp, err := uc.Execute(ctx, &Request{BranchID: branchID, Date: date})
	if err != nil {
		return false, err
	}
	for _, slot := range resp.Slots {
		if slot.Time == t {
			return slot.Available, nil
		}
	}
	return false, nil
}
