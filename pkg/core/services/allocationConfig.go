package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/lamnguyen-se/shiftreg/pkg/core/model"
)

// AllocationConfigStore defines the database operations for the
// allocation configuration.
type AllocationConfigStore interface {
	GetAllocationConfig(ctx context.Context) (*model.AllocationConfig, error)
	SaveAllocationConfig(ctx context.Context, config *model.AllocationConfig) error
}

// GetAllocationConfig returns the stored config, falling back to the
// defaults when nothing has been saved yet.
func GetAllocationConfig(ctx context.Context, store AllocationConfigStore) (model.AllocationConfig, error) {
	config, err := store.GetAllocationConfig(ctx)
	if err != nil {
		return model.AllocationConfig{}, fmt.Errorf("failed to fetch allocation config: %w", err)
	}
	if config == nil {
		return model.DefaultAllocationConfig(), nil
	}
	return *config, nil
}

// SetAllocationConfig validates and stores the allocation config.
func SetAllocationConfig(ctx context.Context, store AllocationConfigStore, config model.AllocationConfig, logger *zap.Logger) error {
	if config.MaxShiftsPerEmployee < 0 {
		return fmt.Errorf("max shifts per employee must not be negative (got %d)", config.MaxShiftsPerEmployee)
	}
	if err := store.SaveAllocationConfig(ctx, &config); err != nil {
		return fmt.Errorf("failed to save allocation config: %w", err)
	}
	logger.Info("Allocation config updated",
		zap.Bool("fairness", config.FairnessEnabled),
		zap.Int("max_shifts_per_employee", config.MaxShiftsPerEmployee))
	return nil
}
