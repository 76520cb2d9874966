package services

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/lamnguyen-se/shiftreg/pkg/core/model"
)

// ScheduleHistoryStore defines the database operations needed to
// browse and prune finalized schedule history.
type ScheduleHistoryStore interface {
	GetSchedules(ctx context.Context) ([]model.WeekSchedule, error)
	DeleteSchedule(ctx context.Context, weekOf string) error
}

// WeekHistory is one finalized week reshaped for display: the per-slot
// assignments regrouped per employee.
type WeekHistory struct {
	WeekOf         string
	DateRange      model.WeekRange
	EmployeeShifts map[string][]model.ShiftSlot
}

// ScheduleHistory lists every finalized week schedule, newest first.
func ScheduleHistory(ctx context.Context, store ScheduleHistoryStore, logger *zap.Logger) ([]WeekHistory, error) {
	schedules, err := store.GetSchedules(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedules: %w", err)
	}

	history := make([]WeekHistory, 0, len(schedules))
	for _, sched := range schedules {
		dateRange, err := model.WeekOf(sched.WeekOf)
		if err != nil {
			return nil, fmt.Errorf("stored schedule has bad week key: %w", err)
		}

		byEmployee := make(map[string][]model.ShiftSlot)
		for _, assignment := range sched.Shifts {
			for _, emp := range assignment.Employees {
				byEmployee[emp] = append(byEmployee[emp], model.ShiftSlot{
					Date:  assignment.Date,
					Shift: assignment.Shift,
				})
			}
		}

		history = append(history, WeekHistory{
			WeekOf:         sched.WeekOf,
			DateRange:      dateRange,
			EmployeeShifts: byEmployee,
		})
	}

	sort.Slice(history, func(i, j int) bool {
		return history[i].WeekOf > history[j].WeekOf
	})

	logger.Debug("Listed schedule history", zap.Int("weeks", len(history)))
	return history, nil
}

// DeleteScheduleWeek removes one finalized week from history.
func DeleteScheduleWeek(ctx context.Context, store ScheduleHistoryStore, weekOf string, logger *zap.Logger) error {
	if _, err := model.WeekOf(weekOf); err != nil {
		return err
	}
	if err := store.DeleteSchedule(ctx, weekOf); err != nil {
		return fmt.Errorf("failed to delete schedule for week %s: %w", weekOf, err)
	}
	logger.Info("Deleted schedule from history", zap.String("week_of", weekOf))
	return nil
}
