package create_appointment

import (
	"time"

	"github.com/tyrehub/appointment-service/pkg/types"
)

// Request is the full booking submission. ServiceIDs is canonical;
// LegacyServiceType is the migration shim some older consumers still
// send and is resolved against the catalog by name when ServiceIDs is
// empty.
type Request struct {
	CustomerName  string
	CustomerEmail *string
	CustomerPhone *string

	VehicleMake  *string
	VehicleModel *string
	VehicleYear  *int

	BranchID          int64
	ServiceIDs        []int64
	LegacyServiceType *string

	Date time.Time
	Time types.TimeString

	Notes       *string
	VoucherCode *string
	Source      *string
}

// Response echoes the created appointment. ServiceType carries the
// derived legacy single-service field for consumers that still expect
// it; it is computed from the first selected service at this boundary
// and nowhere else.
type Response struct {
	ID            int64
	CustomerName  string
	CustomerEmail *string
	CustomerPhone *string

	BranchID    int64
	ServiceIDs  []int64
	ServiceType string

	Date   time.Time
	Time   types.TimeString
	Status string

	TotalPrice  float64
	VoucherCode *string
	Notes       *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
