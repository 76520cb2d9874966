// Package registration validates an employee's weekly shift selection
// against the per-day and per-week work rules.
package registration

import (
	"fmt"

	"github.com/lamnguyen-se/shiftreg/pkg/core/model"
)

const (
	// MaxShiftsPerDay is the most shifts one employee may pick on a
	// single day.
	MaxShiftsPerDay = 3
	// MaxRestDays is the most days in the week an employee may leave
	// with no shift selected.
	MaxRestDays = 1
	// MinWorkingDays is the fewest days in the week an employee must
	// select at least one shift on.
	MinWorkingDays = 6
)

// Result is the outcome of validating one selection. When OK is false,
// Reason carries a human-readable explanation naming the offending
// rule or date.
type Result struct {
	OK     bool
	Reason string
}

func ok() Result {
	return Result{OK: true}
}

func rejected(format string, args ...any) Result {
	return Result{Reason: fmt.Sprintf(format, args...)}
}

// Validate checks a proposed selection against the week's rules.
// Checks run in order and stop at the first failure:
//
//  1. at least one shift selected
//  2. every date inside the week range
//  3. at most MaxShiftsPerDay shifts on any single day
//  4. at most MaxRestDays days with no shift
//  5. at least MinWorkingDays days with a shift
//
// The error return is reserved for a malformed week range; rule
// violations come back as a rejected Result.
func Validate(selection []model.ShiftSlot, week model.WeekRange) (Result, error) {
	weekDates, err := week.Dates()
	if err != nil {
		return Result{}, err
	}

	if len(selection) == 0 {
		return rejected("you must select at least one shift"), nil
	}

	inWeek := make(map[string]bool, len(weekDates))
	for _, d := range weekDates {
		inWeek[d] = true
	}

	perDay := make(map[string]int)
	for _, slot := range selection {
		if !inWeek[slot.Date] {
			return rejected("date %s is outside the registration week %s to %s",
				slot.Date, week.From, week.To), nil
		}
		perDay[slot.Date]++
	}

	workingDays := 0
	restDays := 0
	for _, date := range weekDates {
		count := perDay[date]
		switch {
		case count == 0:
			restDays++
		case count <= MaxShiftsPerDay:
			workingDays++
		default:
			return rejected("at most %d shifts may be selected on %s (got %d)",
				MaxShiftsPerDay, date, count), nil
		}
	}

	if restDays > MaxRestDays {
		return rejected("at most %d rest day per week is allowed (got %d)",
			MaxRestDays, restDays), nil
	}
	if workingDays < MinWorkingDays {
		return rejected("you must work at least %d days per week (got %d)",
			MinWorkingDays, workingDays), nil
	}

	return ok(), nil
}
