package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/lamnguyen-se/shiftreg/pkg/core/model"
	"github.com/lamnguyen-se/shiftreg/pkg/core/schedule"
)

// ApproveRegistrationStore defines the database operations needed to
// approve a single registration into the finalized schedule.
type ApproveRegistrationStore interface {
	GetWeekSettings(ctx context.Context) (*model.WeekSettings, error)
	GetRegistrations(ctx context.Context) ([]model.Registration, error)
	SaveRegistration(ctx context.Context, reg *model.Registration) error
	GetSchedule(ctx context.Context, weekOf string) (*model.WeekSchedule, error)
	MergeSchedule(ctx context.Context, weekOf string, shifts []model.ShiftAssignment) error
}

// ApproveResult is the outcome of one manual approval.
type ApproveResult struct {
	Registration *model.Registration
	Conflict     schedule.ConflictReport
	// Merged is false when a capacity conflict blocked the merge and
	// force was not set.
	Merged bool
}

// ApproveRegistration flips a registration to approved and merges its
// shifts into the week's finalized schedule, unless doing so would
// push any already-committed slot over capacity. force overrides the
// conflict gate. The conflict check and merge are not atomic; a single
// admin session at a time is assumed.
func ApproveRegistration(
	ctx context.Context,
	store ApproveRegistrationStore,
	id string,
	force bool,
	logger *zap.Logger,
) (*ApproveResult, error) {
	logger.Debug("Approving registration", zap.String("id", id), zap.Bool("force", force))

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
	reg := findRegistration(regs, id)
	if reg == nil {
		return nil, fmt.Errorf("registration %s not found", id)
	}

	proposed := schedule.AssignmentsFromRegistration(*reg)

	existing, err := store.GetSchedule(ctx, weekOf)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch finalized schedule: %w", err)
	}

	report, err := schedule.CheckConflict(existing, proposed)
	if err != nil {
		return nil, fmt.Errorf("conflict check failed: %w", err)
	}
	if report.HasConflict && !force {
		logger.Info("Approval blocked by capacity conflicts",
			zap.String("id", id),
			zap.Int("conflicts", len(report.Conflicts)))
		return &ApproveResult{Registration: reg, Conflict: report}, nil
	}

	reg.Approved = true
	if err := store.SaveRegistration(ctx, reg); err != nil {
		return nil, fmt.Errorf("failed to save approved registration: %w", err)
	}
	if err := store.MergeSchedule(ctx, weekOf, proposed); err != nil {
		return nil, fmt.Errorf("failed to merge schedule: %w", err)
	}

	logger.Info("Registration approved and merged",
		zap.String("id", id),
		zap.String("employee", reg.EmployeeName),
		zap.String("week_of", weekOf),
		zap.Bool("forced", report.HasConflict))
	return &ApproveResult{Registration: reg, Conflict: report, Merged: true}, nil
}
