// Package schedule builds, merges, and conflict-checks finalized
// week schedules.
package schedule

import (
	"github.com/lamnguyen-se/shiftreg/pkg/core/capacity"
	"github.com/lamnguyen-se/shiftreg/pkg/core/model"
)

// Conflict describes one slot that would exceed capacity if the
// proposed employees were merged in.
type Conflict struct {
	Date      string
	Shift     model.ShiftType
	Current   int
	Max       int
	Employees []string // the proposed employees that would not fit
}

// ConflictReport is the outcome of checking a proposed merge.
type ConflictReport struct {
	HasConflict bool
	Conflicts   []Conflict
}

// CheckConflict compares proposed assignments against an existing
// finalized schedule. A nil schedule means nothing has been committed
// for the week yet, so nothing can conflict. A conflict is recorded for
// each proposed slot whose existing occupancy plus proposed employees
// exceeds the capacity limit. The schedule is not mutated.
func CheckConflict(existing *model.WeekSchedule, proposed []model.ShiftAssignment) (ConflictReport, error) {
	report := ConflictReport{Conflicts: []Conflict{}}
	if existing == nil {
		return report, nil
	}

	for _, p := range proposed {
		current := findAssignment(existing.Shifts, p.Date, p.Shift)
		if current == nil {
			continue
		}

		limit, err := capacity.SlotLimit(model.ShiftSlot{Date: p.Date, Shift: p.Shift})
		if err != nil {
			return ConflictReport{}, err
		}

		if len(current.Employees)+len(p.Employees) > limit {
			report.Conflicts = append(report.Conflicts, Conflict{
				Date:      p.Date,
				Shift:     p.Shift,
				Current:   len(current.Employees),
				Max:       limit,
				Employees: p.Employees,
			})
		}
	}

	report.HasConflict = len(report.Conflicts) > 0
	return report, nil
}

func findAssignment(shifts []model.ShiftAssignment, date string, shift model.ShiftType) *model.ShiftAssignment {
	for i := range shifts {
		if shifts[i].Date == date && shifts[i].Shift == shift {
			return &shifts[i]
		}
	}
	return nil
}
