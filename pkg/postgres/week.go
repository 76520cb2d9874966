package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/lamnguyen-se/shiftreg/pkg/core/model"
)

// GetWeekSettings returns the active week settings, or nil when none
// have been defined yet.
func (db *DB) GetWeekSettings(ctx context.Context) (*model.WeekSettings, error) {
	var (
		settings  model.WeekSettings
		employees []byte
	)
	err := db.pool.QueryRow(ctx, `
		SELECT date_from, date_to, active, employees
		FROM week_settings
		WHERE id = 'current'
	`).Scan(&settings.DateRange.From, &settings.DateRange.To, &settings.Active, &employees)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query week settings: %w", err)
	}

	if err := json.Unmarshal(employees, &settings.Employees); err != nil {
		return nil, fmt.Errorf("failed to decode employee roster: %w", err)
	}
	return &settings, nil
}

// SaveWeekSettings inserts or replaces the active week settings.
func (db *DB) SaveWeekSettings(ctx context.Context, settings *model.WeekSettings) error {
	employees, err := json.Marshal(settings.Employees)
	if err != nil {
		return fmt.Errorf("failed to encode employee roster: %w", err)
	}

	_, err = db.pool.Exec(ctx, `
		INSERT INTO week_settings (id, date_from, date_to, active, employees)
		VALUES ('current', $1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET date_from = EXCLUDED.date_from,
		    date_to = EXCLUDED.date_to,
		    active = EXCLUDED.active,
		    employees = EXCLUDED.employees
	`, settings.DateRange.From, settings.DateRange.To, settings.Active, employees)
	if err != nil {
		return fmt.Errorf("failed to save week settings: %w", err)
	}
	return nil
}
