package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/lamnguyen-se/shiftreg/pkg/core/model"
)

// GetAllocationConfig returns the stored allocation config, or nil
// when nothing has been saved yet.
func (db *DB) GetAllocationConfig(ctx context.Context) (*model.AllocationConfig, error) {
	var config model.AllocationConfig
	err := db.pool.QueryRow(ctx, `
		SELECT fairness_enabled, max_shifts_per_employee
		FROM allocation_config
		WHERE id = 'current'
	`).Scan(&config.FairnessEnabled, &config.MaxShiftsPerEmployee)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query allocation config: %w", err)
	}
	return &config, nil
}

// SaveAllocationConfig inserts or replaces the allocation config.
func (db *DB) SaveAllocationConfig(ctx context.Context, config *model.AllocationConfig) error {
	_, err := db.pool.Exec(ctx, `
		INSERT INTO allocation_config (id, fairness_enabled, max_shifts_per_employee)
		VALUES ('current', $1, $2)
		ON CONFLICT (id) DO UPDATE
		SET fairness_enabled = EXCLUDED.fairness_enabled,
		    max_shifts_per_employee = EXCLUDED.max_shifts_per_employee
	`, config.FairnessEnabled, config.MaxShiftsPerEmployee)
	if err != nil {
		return fmt.Errorf("failed to save allocation config: %w", err)
	}
	return nil
}
