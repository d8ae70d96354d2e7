package branch

import "errors"

var (
	// ErrBranchNotFound is returned when the branch does not exist
	ErrBranchNotFound = errors.New("branch.repository: branch not found")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("branch.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("branch.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("branch.repository: failed to scan row")
)
