// Package warnings reports staffing gaps in an allocated week.
package warnings

import (
	"fmt"
	"time"

	"github.com/lamnguyen-se/shiftreg/pkg/core/capacity"
	"github.com/lamnguyen-se/shiftreg/pkg/core/model"
)

// Warning flags one slot staffed below its capacity limit.
type Warning struct {
	Date    string
	Day     time.Weekday
	Shift   model.ShiftType
	Current int
	Limit   int
	Missing int
}

func (w Warning) String() string {
	return fmt.Sprintf("missing %d employee(s) for shift %s on %s %s (%d/%d)",
		w.Missing, w.Shift, w.Day, w.Date, w.Current, w.Limit)
}

// Report is the result of a gap scan over one week.
type Report struct {
	HasWarnings  bool
	Warnings     []Warning
	TotalMissing int
}

// CheckGaps scans every slot of the week against the allocated
// registrations and reports each one staffed below its limit. Purely a
// read-side report; nothing is mutated.
func CheckGaps(week model.WeekRange, allocated []model.Registration) (Report, error) {
	dates, err := week.Dates()
	if err != nil {
		return Report{}, err
	}

	report := Report{Warnings: []Warning{}}
	for _, date := range dates {
		day, err := time.Parse(model.DateLayout, date)
		if err != nil {
			return Report{}, fmt.Errorf("invalid week date %q: %w", date, err)
		}

		for _, shift := range model.AllShiftTypes {
			limit := capacity.Limit(shift, day)
			current := countEmployeesForSlot(allocated, model.ShiftSlot{Date: date, Shift: shift})
			if current >= limit {
				continue
			}

			report.Warnings = append(report.Warnings, Warning{
				Date:    date,
				Day:     day.Weekday(),
				Shift:   shift,
				Current: current,
				Limit:   limit,
				Missing: limit - current,
			})
			report.TotalMissing += limit - current
		}
	}

	report.HasWarnings = len(report.Warnings) > 0
	return report, nil
}

// Statistics is an overview of an allocated week.
type Statistics struct {
	TotalEmployees    int
	TotalShifts       int
	ShiftDistribution map[model.ShiftType]int
	WeekdayShifts     int
	WeekendShifts     int
}

// ComputeStatistics tallies shift totals and distribution across the
// allocated registrations.
func ComputeStatistics(allocated []model.Registration) (Statistics, error) {
	stats := Statistics{
		TotalEmployees:    len(allocated),
		ShiftDistribution: make(map[model.ShiftType]int),
	}

	for _, reg := range allocated {
		for _, slot := range reg.Shifts {
			date, err := slot.ParseDate()
			if err != nil {
				return Statistics{}, err
			}

			stats.TotalShifts++
			stats.ShiftDistribution[slot.Shift]++
			if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
				stats.WeekendShifts++
			} else {
				stats.WeekdayShifts++
			}
		}
	}

	return stats, nil
}

func countEmployeesForSlot(regs []model.Registration, slot model.ShiftSlot) int {
	count := 0
	for i := range regs {
		if regs[i].HasSlot(slot) {
			count++
		}
	}
	return count
}
