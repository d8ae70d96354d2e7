package domain

import "github.com/tyrehub/appointment-service/pkg/types"

// TimeSlot is the availability state of one candidate time on one
// date at one branch. It is computed on demand, never persisted.
type TimeSlot struct {
	Time      types.TimeString
	Available bool
}

// CandidateSlotTimes returns the fixed, ordered list of times a slot
// may start at: 09:00 through 17:30 in 30-minute steps. Branch opening
// hours then narrow the list per weekday.
func CandidateSlotTimes() []types.TimeString {
	times := make([]types.TimeString, 0, 18)
	current := types.TimeString(FirstSlotTime)
	for !current.IsAfter(types.TimeString(LastSlotTime)) {
		times = append(times, current)
		next, err := current.AddMinutes(SlotIntervalMinutes)
		if err != nil {
			break
		}
		current = next
	}
	return times
}

// IsCandidateSlotTime reports whether t is one of the fixed candidate
// times.
func IsCandidateSlotTime(t types.TimeString) bool {
	for _, candidate := range CandidateSlotTimes() {
		if candidate == t {
			return true
		}
	}
	return false
}
