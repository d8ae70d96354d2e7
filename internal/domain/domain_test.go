package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tyrehub/appointment-service/pkg/types"
)

func TestCandidateSlotTimes(t *testing.T) {
	times := CandidateSlotTimes()

	require.Len(t, times, 18)
	assert.Equal(t, types.TimeString("09:00"), times[0])
	assert.Equal(t, types.TimeString("17:30"), times[17])

	for i := 1; i < len(times); i++ {
		prev, err := times[i-1].Minutes()
		require.NoError(t, err)
		cur, err := times[i].Minutes()
		require.NoError(t, err)
		assert.Equal(t, SlotIntervalMinutes, cur-prev)
	}
}

func TestIsCandidateSlotTime(t *testing.T) {
	assert.True(t, IsCandidateSlotTime("09:00"))
	assert.True(t, IsCandidateSlotTime("12:30"))
	assert.False(t, IsCandidateSlotTime("08:30"))
	assert.False(t, IsCandidateSlotTime("18:00"))
	assert.False(t, IsCandidateSlotTime("10:15"))
}

func TestDefaultWeeklyHours(t *testing.T) {
	hours := DefaultWeeklyHours()

	assert.True(t, hours[time.Sunday].Closed)

	for day := time.Monday; day <= time.Friday; day++ {
		assert.False(t, hours[day].Closed)
		assert.Equal(t, types.TimeString("09:00"), hours[day].Open)
		assert.Equal(t, types.TimeString("18:00"), hours[day].Close)
	}

	assert.False(t, hours[time.Saturday].Closed)
	assert.Equal(t, types.TimeString("14:00"), hours[time.Saturday].Close)
}

func TestDayHoursCovers(t *testing.T) {
	day := DayHours{Open: "09:00", Close: "14:00"}

	assert.True(t, day.Covers("09:00", 30))
	assert.True(t, day.Covers("13:30", 30), "slot ending exactly at close fits")
	assert.False(t, day.Covers("14:00", 30))
	assert.False(t, day.Covers("08:30", 30))
	assert.False(t, DayHours{Closed: true}.Covers("10:00", 30))
}

func TestAppointmentCapacityPredicate(t *testing.T) {
	for _, status := range []AppointmentStatus{StatusPending, StatusConfirmed, StatusCompleted} {
		a := &Appointment{Status: status}
		assert.True(t, a.CountsTowardCapacity(), "status %s", status)
	}
	assert.False(t, (&Appointment{Status: StatusCancelled}).CountsTowardCapacity())
}

func TestAppointmentCanBeCancelled(t *testing.T) {
	assert.True(t, (&Appointment{Status: StatusPending}).CanBeCancelled())
	assert.True(t, (&Appointment{Status: StatusConfirmed}).CanBeCancelled())
	assert.False(t, (&Appointment{Status: StatusCompleted}).CanBeCancelled())
	assert.False(t, (&Appointment{Status: StatusCancelled}).CanBeCancelled())
}

func TestVoucherIsExpiredAt(t *testing.T) {
	until := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	v := &Voucher{ValidUntil: until}

	assert.False(t, v.IsExpiredAt(until), "boundary instant is still valid")
	assert.False(t, v.IsExpiredAt(until.Add(-time.Minute)))
	assert.True(t, v.IsExpiredAt(until.Add(time.Minute)))
}
