package branch

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/tyrehub/appointment-service/internal/domain"
	"github.com/tyrehub/appointment-service/pkg/psqlbuilder"
	"github.com/tyrehub/appointment-service/pkg/txmanager"
)

// Repository reads branch reference data. Branches and their weekly
// hours are immutable from this service's point of view; staff tooling
// maintains them elsewhere.
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository creates a branch repository.
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetAllActive returns every active branch with its weekly-hours
// table, ordered by province and name.
func (r *Repository) GetAllActive(ctx context.Context) ([]domain.Branch, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "name", "address", "city", "province", "phone", "whatsapp", "active",
	).
		From("branches").
		Where(squirrel.Eq{"active": true}).
		OrderBy("province ASC", "name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAllActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAllActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	branches := make([]domain.Branch, 0)
	for rows.Next() {
		var b domain.Branch
		if err := rows.Scan(&b.ID, &b.Name, &b.Address, &b.City, &b.Province, &b.Phone, &b.WhatsApp, &b.Active); err != nil {
			return nil, fmt.Errorf("%w: GetAllActive - scan branch: %v", ErrScanRow, err)
		}
		branches = append(branches, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAllActive - rows error: %v", ErrScanRow, err)
	}

	for i := range branches {
		hours, err := r.loadHours(ctx, executor, branches[i].ID)
		if err != nil {
			return nil, err
		}
		branches[i].Hours = hours
	}

	return branches, nil
}

// GetByID fetches one branch with its hours.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Branch, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "name", "address", "city", "province", "phone", "whatsapp", "active",
	).
		From("branches").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var b domain.Branch
	err = executor.QueryRowContext(ctx, query, args...).
		Scan(&b.ID, &b.Name, &b.Address, &b.City, &b.Province, &b.Phone, &b.WhatsApp, &b.Active)
	if err == sql.ErrNoRows {
		return nil, ErrBranchNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan branch: %v", ErrScanRow, err)
	}

	hours, err := r.loadHours(ctx, executor, b.ID)
	if err != nil {
		return nil, err
	}
	b.Hours = hours

	return &b, nil
}

// loadHours assembles the weekly-hours table from branch_hours rows.
// A branch without rows gets the canonical default schedule.
func (r *Repository) loadHours(ctx context.Context, executor txmanager.DBExecutor, branchID int64) (domain.WeeklyHours, error) {
	var hours domain.WeeklyHours

	query, args, err := psqlbuilder.Select("weekday", "closed", "open_time", "close_time").
		From("branch_hours").
		Where(squirrel.Eq{"branch_id": branchID}).
		OrderBy("weekday ASC").
		ToSql()
	if err != nil {
		return hours, fmt.Errorf("%w: loadHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return hours, fmt.Errorf("%w: loadHours - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	found := 0
	for rows.Next() {
		var weekday int
		var day domain.DayHours
		if err := rows.Scan(&weekday, &day.Closed, &day.Open, &day.Close); err != nil {
			return hours, fmt.Errorf("%w: loadHours - scan hours: %v", ErrScanRow, err)
		}
		if weekday < 0 || weekday > 6 {
			continue
		}
		hours[weekday] = day
		found++
	}
	if err := rows.Err(); err != nil {
		return hours, fmt.Errorf("%w: loadHours - rows error: %v", ErrScanRow, err)
	}

	if found == 0 {
		return domain.DefaultWeeklyHours(), nil
	}
	return hours, nil
}
