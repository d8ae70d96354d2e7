package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tyrehub/appointment-service/internal/domain"
	branchRepo "github.com/tyrehub/appointment-service/internal/infra/storage/branch"
)

// UseCase creates an appointment with atomic capacity enforcement.
//
// The earlier availability read (get_available_slots) is only a hint:
// between that read and this call another session may take the last
// spot. Inside a serializable transaction the day's appointments are
// re-read with FOR UPDATE, the slot's count is checked against
// capacity, and the insert happens in the same transaction. A
// concurrent creation therefore either serializes behind this one and
// sees its row, or aborts and is retried by the database driver's
// serialization error surfacing to the caller.
type UseCase struct {
	appointmentRepo  AppointmentRepository
	branchRepo       BranchRepository
	catalogRepo      CatalogRepository
	voucherValidator VoucherValidator
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase creates the use case with the production clock.
func NewUseCase(
	appointmentRepo AppointmentRepository,
	branchRepo BranchRepository,
	catalogRepo CatalogRepository,
	voucherValidator VoucherValidator,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:  appointmentRepo,
		branchRepo:       branchRepo,
		catalogRepo:      catalogRepo,
		voucherValidator: voucherValidator,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute validates and creates the appointment.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: branch=%d, date=%s, time=%s, services=%v",
		req.BranchID, req.Date.Format(domain.DateFormat), req.Time, req.ServiceIDs)

	// 1. Validate input shape
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Resolve the branch
	branch, err := uc.branchRepo.GetByID(ctx, req.BranchID)
	if err != nil {
		if errors.Is(err, branchRepo.ErrBranchNotFound) {
			uc.logger.Warn("CreateAppointment: branch id=%d not found", req.BranchID)
			return nil, ErrBranchNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get branch id=%d: %v", req.BranchID, err)
		return nil, fmt.Errorf("%w: failed to get branch: %v", ErrInternal, err)
	}
	if !branch.Active {
		uc.logger.Warn("CreateAppointment: branch id=%d is inactive", req.BranchID)
		return nil, ErrBranchNotFound
	}

	// 3. Check date and time against calendar, clock and branch hours
	if err := validateSchedule(branch, req.Date, req.Time, now); err != nil {
		uc.logger.Warn("CreateAppointment: schedule validation failed: %v", err)
		return nil, err
	}

	// 4. Resolve services; the legacy single service_type is folded
	// into the canonical id list here and never stored
	services, err := uc.resolveServices(ctx, req)
	if err != nil {
		return nil, err
	}
	serviceIDs := make([]int64, len(services))
	totalPrice := 0.0
	for i, s := range services {
		serviceIDs[i] = s.ID
		totalPrice += s.Price
	}

	// 5. Validate the voucher when one is supplied. Vouchers are
	// optional; a bad code rejects only this request, the user removes
	// it and retries.
	if req.VoucherCode != nil && *req.VoucherCode != "" {
		if _, err := uc.voucherValidator.Validate(ctx, *req.VoucherCode); err != nil {
			uc.logger.Warn("CreateAppointment: voucher %q not usable: %v", *req.VoucherCode, err)
			return nil, fmt.Errorf("%w: %v", ErrVoucherNotUsable, err)
		}
	}

	var result *domain.Appointment

	// 6. Capacity check and insert as one atomic unit
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Re-read the day's appointments with FOR UPDATE
		appointments, err := uc.appointmentRepo.GetByBranchAndDate(txCtx, req.BranchID, req.Date)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 6.2. Enforce capacity on the fresh count
		occupied := countAtSlot(appointments, req.Time)
		if occupied >= domain.SlotCapacity {
			uc.logger.Warn("CreateAppointment: slot full, %d/%d spots taken at branch=%d %s %s",
				occupied, domain.SlotCapacity, req.BranchID, req.Date.Format(domain.DateFormat), req.Time)
			return ErrSlotNotAvailable
		}

		uc.logger.Info("CreateAppointment: slot open, %d/%d spots taken", occupied, domain.SlotCapacity)

		// 6.3. Insert
		appt := &domain.Appointment{
			CustomerName:  strings.TrimSpace(req.CustomerName),
			CustomerEmail: req.CustomerEmail,
			CustomerPhone: req.CustomerPhone,
			VehicleMake:   req.VehicleMake,
			VehicleModel:  req.VehicleModel,
			VehicleYear:   req.VehicleYear,
			BranchID:      req.BranchID,
			ServiceIDs:    serviceIDs,
			Date:          req.Date,
			Time:          req.Time,
			Status:        domain.StatusPending,
			VoucherCode:   req.VoucherCode,
			Notes:         req.Notes,
			Source:        req.Source,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: created appointment id=%d", result.ID)

	return &Response{
		ID:            result.ID,
		CustomerName:  result.CustomerName,
		CustomerEmail: result.CustomerEmail,
		CustomerPhone: result.CustomerPhone,
		BranchID:      result.BranchID,
		ServiceIDs:    result.ServiceIDs,
		ServiceType:   services[0].Name,
		Date:          result.Date,
		Time:          result.Time,
		Status:        string(result.Status),
		TotalPrice:    totalPrice,
		VoucherCode:   result.VoucherCode,
		Notes:         result.Notes,
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}

// resolveServices returns the catalog entries for the request. When
// only the legacy service_type name is supplied it is matched against
// the catalog case-insensitively.
func (uc *UseCase) resolveServices(ctx context.Context, req *Request) ([]domain.Service, error) {
	if len(req.ServiceIDs) > 0 {
		services, err := uc.catalogRepo.GetByIDs(ctx, req.ServiceIDs)
		if err != nil {
			uc.logger.Warn("CreateAppointment: service ids %v did not resolve: %v", req.ServiceIDs, err)
			return nil, ErrServiceNotFound
		}
		return services, nil
	}

	all, err := uc.catalogRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to load catalog: %v", err)
		return nil, fmt.Errorf("%w: failed to load catalog: %v", ErrInternal, err)
	}

	want := strings.ToLower(strings.TrimSpace(*req.LegacyServiceType))
	for _, s := range all {
		if strings.ToLower(s.Name) == want {
			return []domain.Service{s}, nil
		}
	}
	uc.logger.Warn("CreateAppointment: legacy service_type %q not in catalog", *req.LegacyServiceType)
	return nil, ErrServiceNotFound
}
