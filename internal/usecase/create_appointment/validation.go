package create_appointment

import (
	"fmt"
	"strings"
	"time"

	"github.com/tyrehub/appointment-service/internal/domain"
	"github.com/tyrehub/appointment-service/pkg/types"
)

// validateRequest checks the request shape. Reference-data resolution
// (branch, services, voucher) happens in Execute.
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	if len(req.CustomerName) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customer name is too long", ErrInvalidInput)
	}
	if req.BranchID <= 0 {
		return fmt.Errorf("%w: branchID must be positive", ErrInvalidInput)
	}
	if len(req.ServiceIDs) == 0 && (req.LegacyServiceType == nil || *req.LegacyServiceType == "") {
		return fmt.Errorf("%w: at least one service is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}
	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are too long", ErrInvalidInput)
	}
	if req.VehicleYear != nil && *req.VehicleYear < domain.MinVehicleYear {
		return fmt.Errorf("%w: vehicle year is implausible", ErrInvalidInput)
	}
	return nil
}

// validateSchedule checks the (date, time) pair against the calendar,
// the clock and the branch's opening hours.
func validateSchedule(branch *domain.Branch, date time.Time, t types.TimeString, now time.Time) error {
	if isDateInPast(date, now) {
		return ErrInvalidDate
	}
	if !branch.IsOpenOn(date) {
		return ErrBranchClosed
	}
	if !domain.IsCandidateSlotTime(t) {
		return ErrInvalidTimeSlot
	}
	if !branch.HoursFor(date.Weekday()).Covers(t, domain.SlotIntervalMinutes) {
		return ErrInvalidTimeSlot
	}
	if isSameDay(date, now) && t.IsBefore(types.NewTimeString(now)) {
		return ErrTimePassed
	}
	return nil
}

// countAtSlot counts the appointments occupying one slot time.
func countAtSlot(appointments []*domain.Appointment, t types.TimeString) int {
	count := 0
	for _, appt := range appointments {
		if !appt.CountsTowardCapacity() {
			continue
		}
		if appt.Time == t {
			count++
		}
	}
	return count
}

// isSameDay checks that two timestamps fall on the same calendar day.
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast checks that the date is before today, comparing
// calendar dates only.
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
