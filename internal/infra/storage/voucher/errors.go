package voucher

import "errors"

var (
	// ErrVoucherNotFound is returned when no voucher has the code
	ErrVoucherNotFound = errors.New("voucher.repository: voucher not found")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("voucher.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("voucher.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("voucher.repository: failed to scan row")
)
