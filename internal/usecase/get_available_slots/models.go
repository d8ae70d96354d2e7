package get_available_slots

import (
	"time"

	"github.com/tyrehub/appointment-service/internal/domain"
)

// Request asks for the slot states of one branch on one date.
type Request struct {
	BranchID int64
	Date     time.Time // calendar date, time part ignored
}

// Response is the ordered slot list for the requested (branch, date).
type Response struct {
	BranchID int64
	Date     time.Time
	Slots    []domain.TimeSlot
}
