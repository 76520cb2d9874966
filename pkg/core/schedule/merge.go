package schedule

import (
	"sort"

	"github.com/lamnguyen-se/shiftreg/pkg/core/model"
)

// Merge folds incoming assignments into an existing assignment list.
// Matching (date, shift) entries union their employee sets, preserving
// existing order and skipping duplicates; unmatched entries append.
// The inputs are not mutated.
func Merge(existing, incoming []model.ShiftAssignment) []model.ShiftAssignment {
	merged := make([]model.ShiftAssignment, len(existing))
	for i, a := range existing {
		merged[i] = model.ShiftAssignment{
			Date:      a.Date,
			Shift:     a.Shift,
			Employees: append([]string(nil), a.Employees...),
		}
	}

	for _, in := range incoming {
		target := findAssignment(merged, in.Date, in.Shift)
		if target == nil {
			merged = append(merged, model.ShiftAssignment{
				Date:      in.Date,
				Shift:     in.Shift,
				Employees: append([]string(nil), in.Employees...),
			})
			continue
		}

		for _, emp := range in.Employees {
			if !containsEmployee(target.Employees, emp) {
				target.Employees = append(target.Employees, emp)
			}
		}
	}

	return merged
}

// AssignmentsFromRegistrations groups registrations into per-slot
// assignments, sorted by date then shift type for stable output.
func AssignmentsFromRegistrations(regs []model.Registration) []model.ShiftAssignment {
	bySlot := make(map[model.ShiftSlot][]string)
	for _, reg := range regs {
		for _, slot := range reg.Shifts {
			if !containsEmployee(bySlot[slot], reg.EmployeeName) {
				bySlot[slot] = append(bySlot[slot], reg.EmployeeName)
			}
		}
	}

	assignments := make([]model.ShiftAssignment, 0, len(bySlot))
	for slot, employees := range bySlot {
		assignments = append(assignments, model.ShiftAssignment{
			Date:      slot.Date,
			Shift:     slot.Shift,
			Employees: employees,
		})
	}

	sort.Slice(assignments, func(i, j int) bool {
		if assignments[i].Date != assignments[j].Date {
			return assignments[i].Date < assignments[j].Date
		}
		return assignments[i].Shift < assignments[j].Shift
	})

	return assignments
}

// AssignmentsFromRegistration builds single-employee assignments for
// one registration, used on the manual approval path.
func AssignmentsFromRegistration(reg model.Registration) []model.ShiftAssignment {
	return AssignmentsFromRegistrations([]model.Registration{reg})
}

func containsEmployee(employees []string, name string) bool {
	for _, e := range employees {
		if e == name {
			return true
		}
	}
	return false
}
