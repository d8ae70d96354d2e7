package voucher

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/tyrehub/appointment-service/internal/domain"
	"github.com/tyrehub/appointment-service/pkg/psqlbuilder"
	"github.com/tyrehub/appointment-service/pkg/txmanager"
)

// Repository reads vouchers. The booking flow never writes them;
// redemption happens in staff tooling outside this service.
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository creates a voucher repository.
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByCode fetches a voucher by its code. Codes are matched
// case-insensitively; they are printed on physical coupons and users
// type them by hand.
func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.Voucher, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"code", "customer_name", "customer_email", "customer_phone", "status", "valid_until",
	).
		From("vouchers").
		Where(squirrel.Eq{"UPPER(code)": strings.ToUpper(code)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - build select query: %v", ErrBuildQuery, err)
	}

	var v domain.Voucher
	err = executor.QueryRowContext(ctx, query, args...).
		Scan(&v.Code, &v.CustomerName, &v.CustomerEmail, &v.CustomerPhone, &v.Status, &v.ValidUntil)
	if err == sql.ErrNoRows {
		return nil, ErrVoucherNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - scan voucher: %v", ErrScanRow, err)
	}

	return &v, nil
}
