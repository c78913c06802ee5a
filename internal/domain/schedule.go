package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// SalonSchedule describes the fixed daily slot grid of the salon.
// The grid is configuration, not a computed timetable: slots run from
// OpenTime at SlotDurationMinutes cadence, the last slot starts before CloseTime.
type SalonSchedule struct {
	OpenTime            types.TimeString
	CloseTime           types.TimeString
	SlotDurationMinutes int
	ClosedWeekday       time.Weekday
}

// IsClosedOn returns true for the salon's fixed weekly non-working day
func (s SalonSchedule) IsClosedOn(date time.Time) bool {
	return date.Weekday() == s.ClosedWeekday
}

// Slots returns the ordered daily grid of bookable start times
func (s SalonSchedule) Slots() []types.TimeString {
	slots := make([]types.TimeString, 0)

	current := s.OpenTime
	for current.IsBefore(s.CloseTime) {
		end, err := current.AddMinutes(s.SlotDurationMinutes)
		if err != nil {
			break
		}
		if end.IsAfter(s.CloseTime) {
			break
		}

		slots = append(slots, current)

		next, err := current.AddMinutes(s.SlotDurationMinutes)
		if err != nil || !next.IsAfter(current) {
			// guard against wrapping past midnight
			break
		}
		current = next
	}

	return slots
}

// ContainsSlot reports whether the given label is one of the grid's start times
func (s SalonSchedule) ContainsSlot(slot types.TimeString) bool {
	for _, gridSlot := range s.Slots() {
		if gridSlot == slot {
			return true
		}
	}
	return false
}
