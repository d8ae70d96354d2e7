package domain

import (
	"time"

	"github.com/tyrehub/appointment-service/pkg/types"
)

// DayHours is the opening schedule for a single weekday.
type DayHours struct {
	Closed bool
	Open   types.TimeString
	Close  types.TimeString
}

// WeeklyHours is the opening-hours table for a branch, indexed by
// time.Weekday (Sunday = 0). This is the single source of truth for
// business hours: slot listing and deep-link date validation both read
// it through Branch.HoursFor, never through ad-hoc weekday checks.
type WeeklyHours [7]DayHours

// Branch represents a physical service location.
type Branch struct {
	ID       int64
	Name     string
	Address  string
	City     string
	Province string
	Phone    *string
	WhatsApp *string
	Hours    WeeklyHours
	Active   bool
}

// HoursFor returns the opening hours for the given weekday.
func (b *Branch) HoursFor(weekday time.Weekday) DayHours {
	return b.Hours[weekday]
}

// IsOpenOn returns true if the branch opens at all on the weekday of
// the given date.
func (b *Branch) IsOpenOn(date time.Time) bool {
	return !b.HoursFor(date.Weekday()).Closed
}

// Covers reports whether a slot starting at t of the given duration
// fits inside the day's opening hours.
func (h DayHours) Covers(t types.TimeString, durationMinutes int) bool {
	if h.Closed {
		return false
	}
	if t.IsBefore(h.Open) {
		return false
	}
	end, err := t.AddMinutes(durationMinutes)
	if err != nil {
		return false
	}
	return !end.IsAfter(h.Close)
}

// DefaultWeeklyHours is the canonical branch schedule: Monday-Friday
// 09:00-18:00, Saturday 09:00-14:00, Sunday closed.
func DefaultWeeklyHours() WeeklyHours {
	weekday := DayHours{Open: "09:00", Close: "18:00"}
	return WeeklyHours{
		time.Sunday:    {Closed: true},
		time.Monday:    weekday,
		time.Tuesday:   weekday,
		time.Wednesday: weekday,
		time.Thursday:  weekday,
		time.Friday:    weekday,
		time.Saturday:  {Open: "09:00", Close: "14:00"},
	}
}
