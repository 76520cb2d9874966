package services

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/lamnguyen-se/shiftreg/pkg/core/allocator"
	"github.com/lamnguyen-se/shiftreg/pkg/core/model"
)

// AllocateWeekStore defines the database operations needed to run an
// allocation pass.
type AllocateWeekStore interface {
	GetWeekSettings(ctx context.Context) (*model.WeekSettings, error)
	GetRegistrations(ctx context.Context) ([]model.Registration, error)
	SaveRegistration(ctx context.Context, reg *model.Registration) error
	GetAllocationConfig(ctx context.Context) (*model.AllocationConfig, error)
}

// AllocateWeekResult contains the allocation results.
type AllocateWeekResult struct {
	Week    model.WeekRange
	Config  model.AllocationConfig
	Outcome *allocator.Outcome
	DryRun  bool
	// Saved is how many registrations were persisted after the pass.
	Saved int
}

// AllocateWeek runs one allocation pass over every stored registration
// for the active week and persists the trimmed results. Concurrent
// passes for the same week are not safe; the caller serializes
// (a single admin session in practice). If dryRun is true, nothing is
// persisted. A nil rng gets a time-seeded source.
func AllocateWeek(
	ctx context.Context,
	store AllocateWeekStore,
	rng *rand.Rand,
	logger *zap.Logger,
	dryRun bool,
) (*AllocateWeekResult, error) {
	logger.Debug("Starting allocateWeek", zap.Bool("dry_run", dryRun))

	settings, err := store.GetWeekSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch week settings: %w", err)
	}
	if settings == nil {
		return nil, fmt.Errorf("no registration week has been defined - please define a week first")
	}

	regs, err := store.GetRegistrations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch registrations: %w", err)
	}
	logger.Debug("Found registrations", zap.Int("count", len(regs)))

	config, err := store.GetAllocationConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch allocation config: %w", err)
	}
	cfg := model.DefaultAllocationConfig()
	if config != nil {
		cfg = *config
	}

	pointers := make([]*model.Registration, len(regs))
	for i := range regs {
		pointers[i] = &regs[i]
	}

	engine := allocator.New(cfg, rng)
	outcome, err := engine.Allocate(pointers, settings.DateRange, time.Now())
	if err != nil {
		return nil, fmt.Errorf("allocation pass failed: %w", err)
	}

	result := &AllocateWeekResult{
		Week:    settings.DateRange,
		Config:  cfg,
		Outcome: outcome,
		DryRun:  dryRun,
	}

	if dryRun || outcome.Processed == 0 {
		logger.Info("Allocation pass finished (nothing persisted)",
			zap.Int("processed", outcome.Processed),
			zap.Int("overloaded_slots", outcome.OverloadedSlots),
			zap.Bool("dry_run", dryRun))
		return result, nil
	}

	// Saving is idempotent per registration, so a partial failure here
	// is recovered by simply re-running the command.
	for _, reg := range pointers {
		if err := store.SaveRegistration(ctx, reg); err != nil {
			return result, fmt.Errorf("failed to save registration %s (%d of %d saved): %w",
				reg.ID, result.Saved, len(pointers), err)
		}
		result.Saved++
	}

	logger.Info("Allocation pass complete",
		zap.Int("processed", outcome.Processed),
		zap.Int("overloaded_slots", outcome.OverloadedSlots),
		zap.Int("saved", result.Saved))
	return result, nil
}
