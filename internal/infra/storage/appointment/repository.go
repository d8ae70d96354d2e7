package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/tyrehub/appointment-service/internal/domain"
	"github.com/tyrehub/appointment-service/pkg/psqlbuilder"
	"github.com/tyrehub/appointment-service/pkg/txmanager"
)

var appointmentColumns = []string{
	"id",
	"customer_name",
	"customer_email",
	"customer_phone",
	"vehicle_make",
	"vehicle_model",
	"vehicle_year",
	"branch_id",
	"appointment_date",
	"appointment_time",
	"status",
	"voucher_code",
	"notes",
	"source",
	"created_at",
	"updated_at",
}

// Repository persists appointments. The service-id list lives in the
// appointment_services join table and is written in the same executor
// (and therefore the same transaction) as the appointment row.
type Repository struct {
	db DBExecutor
}

// NewRepository creates an appointment repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts an appointment and its service links. When called
// inside a transaction (via txmanager) the insert joins it, which is
// how the capacity check and the insert become one atomic unit.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"customer_name",
			"customer_email",
			"customer_phone",
			"vehicle_make",
			"vehicle_model",
			"vehicle_year",
			"branch_id",
			"appointment_date",
			"appointment_time",
			"status",
			"voucher_code",
			"notes",
			"source",
		).
		Values(
			appt.CustomerName,
			appt.CustomerEmail,
			appt.CustomerPhone,
			appt.VehicleMake,
			appt.VehicleModel,
			appt.VehicleYear,
			appt.BranchID,
			appt.Date,
			appt.Time,
			appt.Status,
			appt.VoucherCode,
			appt.Notes,
			appt.Source,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	if len(appt.ServiceIDs) > 0 {
		insert := psqlbuilder.Insert("appointment_services").
			Columns("appointment_id", "service_id")
		for _, serviceID := range appt.ServiceIDs {
			insert = insert.Values(appt.ID, serviceID)
		}
		query, args, err = insert.ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: Create - build services insert: %v", ErrBuildQuery, err)
		}
		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return nil, fmt.Errorf("%w: Create - insert services: %v", ErrExecQuery, err)
		}
	}

	return appt, nil
}

// GetByID fetches an appointment with its service-id list.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	appt, err := scanAppointment(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	if err := r.loadServiceIDs(ctx, executor, appt); err != nil {
		return nil, err
	}
	return appt, nil
}

// GetByBranchAndDate returns every non-cancelled appointment at the
// branch on the given date, ordered by time. Inside a transaction the
// rows are locked with FOR UPDATE so a concurrent creation cannot slip
// between the capacity count and the insert.
func (r *Repository) GetByBranchAndDate(ctx context.Context, branchID int64, date time.Time) ([]*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"branch_id": branchID}).
		Where(squirrel.Eq{"appointment_date": date}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		OrderBy("appointment_time ASC")

	if txmanager.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBranchAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBranchAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	appts := make([]*domain.Appointment, 0)
	for rows.Next() {
		appt, err := scanAppointment(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByBranchAndDate - scan appointment: %v", ErrScanRow, err)
		}
		appts = append(appts, appt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByBranchAndDate - rows error: %v", ErrScanRow, err)
	}

	return appts, nil
}

// Cancel moves the appointment to the cancelled status.
func (r *Repository) Cancel(ctx context.Context, id int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", domain.StatusCancelled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}

func (r *Repository) loadServiceIDs(ctx context.Context, executor DBExecutor, appt *domain.Appointment) error {
	query, args, err := psqlbuilder.Select("service_id").
		From("appointment_services").
		Where(squirrel.Eq{"appointment_id": appt.ID}).
		OrderBy("service_id ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadServiceIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadServiceIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var serviceID int64
		if err := rows.Scan(&serviceID); err != nil {
			return fmt.Errorf("%w: loadServiceIDs - scan service_id: %v", ErrScanRow, err)
		}
		appt.ServiceIDs = append(appt.ServiceIDs, serviceID)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadServiceIDs - rows error: %v", ErrScanRow, err)
	}
	return nil
}

func scanAppointment(scan func(dest ...interface{}) error) (*domain.Appointment, error) {
	var appt domain.Appointment
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&appt.ID,
		&appt.CustomerName,
		&appt.CustomerEmail,
		&appt.CustomerPhone,
		&appt.VehicleMake,
		&appt.VehicleModel,
		&appt.VehicleYear,
		&appt.BranchID,
		&appt.Date,
		&appt.Time,
		&appt.Status,
		&appt.VoucherCode,
		&appt.Notes,
		&appt.Source,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time
	return &appt, nil
}
