package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/lamnguyen-se/shiftreg/pkg/core/model"
	"github.com/lamnguyen-se/shiftreg/pkg/core/schedule"
)

// PublishScheduleStore defines the database operations needed to
// publish the allocated week as a finalized schedule.
type PublishScheduleStore interface {
	GetWeekSettings(ctx context.Context) (*model.WeekSettings, error)
	GetRegistrations(ctx context.Context) ([]model.Registration, error)
	MergeSchedule(ctx context.Context, weekOf string, shifts []model.ShiftAssignment) error
}

// PublishResult reports what was committed.
type PublishResult struct {
	WeekOf      string
	Employees   int
	Assignments []model.ShiftAssignment
}

// PublishSchedule converts every allocated registration into shift
// assignments and merges them into the week's finalized schedule.
// Running it again with the same data is a no-op thanks to the store's
// union merge semantics.
func PublishSchedule(ctx context.Context, store PublishScheduleStore, logger *zap.Logger) (*PublishResult, error) {
	settings, err := store.GetWeekSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch week settings: %w", err)
	}
	if settings == nil {
		return nil, fmt.Errorf("no registration week has been defined")
	}
	weekOf := settings.DateRange.From

	regs, err := store.GetRegistrations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch registrations: %w", err)
	}

	allocated := filterAllocated(regs)
	result := &PublishResult{WeekOf: weekOf, Employees: len(allocated)}
	if len(allocated) == 0 {
		logger.Info("Nothing to publish, no allocated registrations", zap.String("week_of", weekOf))
		return result, nil
	}

	result.Assignments = schedule.AssignmentsFromRegistrations(allocated)
	if err := store.MergeSchedule(ctx, weekOf, result.Assignments); err != nil {
		return nil, fmt.Errorf("failed to merge schedule: %w", err)
	}

	logger.Info("Schedule published",
		zap.String("week_of", weekOf),
		zap.Int("employees", result.Employees),
		zap.Int("assignments", len(result.Assignments)))
	return result, nil
}
