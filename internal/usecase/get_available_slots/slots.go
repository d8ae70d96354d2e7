package get_available_slots

import (
	"time"

	"github.com/tyrehub/appointment-service/internal/domain"
	"github.com/tyrehub/appointment-service/pkg/types"
)

// buildSlots computes the availability state of every candidate time
// for one branch and date. A time is unavailable when its booked count
// reached capacity, when it lies outside the branch's opening hours
// for the weekday, or when the date is today and the time is already
// past the clock. The returned list always carries every candidate
// time exactly once, in ascending order.
func buildSlots(
	branch *domain.Branch,
	date time.Time,
	appointments []*domain.Appointment,
	now time.Time,
) []domain.TimeSlot {
	counts := countByTime(appointments)
	hours := branch.HoursFor(date.Weekday())

	candidates := domain.CandidateSlotTimes()
	slots := make([]domain.TimeSlot, 0, len(candidates))
	for _, t := range candidates {
		slots = append(slots, domain.TimeSlot{
			Time:      t,
			Available: slotAvailable(t, counts[t], hours, date, now),
		})
	}
	return slots
}

func slotAvailable(
	t types.TimeString,
	bookedCount int,
	hours domain.DayHours,
	date time.Time,
	now time.Time,
) bool {
	if bookedCount >= domain.SlotCapacity {
		return false
	}
	if !hours.Covers(t, domain.SlotIntervalMinutes) {
		return false
	}
	if isDateInPast(date, now) {
		return false
	}
	// Same-day: a time even one minute behind the clock is gone. The
	// comparison is on the calendar date only, matching the original
	// behavior; there is no timezone adjustment.
	if isSameDay(date, now) && t.IsBefore(types.NewTimeString(now)) {
		return false
	}
	return true
}

// countByTime buckets appointments by their slot time. Cancelled
// appointments do not occupy capacity; the repository already filters
// them, the predicate here keeps the rule local.
func countByTime(appointments []*domain.Appointment) map[types.TimeString]int {
	counts := make(map[types.TimeString]int, len(appointments))
	for _, appt := range appointments {
		if !appt.CountsTowardCapacity() {
			continue
		}
		counts[appt.Time]++
	}
	return counts
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
