// Package capacity defines the per-slot staffing limits.
//
// Limits vary by shift type and day of week only; they are not
// configurable per instance:
//
//   - Shift A: 2 on weekdays, 3 on weekends
//   - Shift B: 2 on Tue/Thu/Sat/Sun, 1 on Mon/Wed/Fri
//   - Shift C: 1 every day
package capacity

import (
	"time"

	"github.com/lamnguyen-se/shiftreg/pkg/core/model"
)

// Limit returns the maximum employee count for a shift type on a date.
// The result is at least 1 for every valid shift type.
func Limit(shift model.ShiftType, date time.Time) int {
	switch shift {
	case model.ShiftC:
		return 1
	case model.ShiftA:
		if isWeekend(date) {
			return 3
		}
		return 2
	case model.ShiftB:
		switch date.Weekday() {
		case time.Tuesday, time.Thursday, time.Saturday, time.Sunday:
			return 2
		default:
			return 1
		}
	}
	// Unreachable for valid shift types; parsing gates inputs through
	// model.ParseShiftType before they get here.
	return 0
}

// SlotLimit is Limit for a ShiftSlot carrying its date as a string.
func SlotLimit(slot model.ShiftSlot) (int, error) {
	date, err := slot.ParseDate()
	if err != nil {
		return 0, err
	}
	return Limit(slot.Shift, date), nil
}

func isWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
