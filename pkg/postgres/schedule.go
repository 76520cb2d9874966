package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/lamnguyen-se/shiftreg/pkg/core/model"
	"github.com/lamnguyen-se/shiftreg/pkg/core/schedule"
)

// GetSchedule returns the finalized schedule for a week, or nil when
// none has been committed.
func (db *DB) GetSchedule(ctx context.Context, weekOf string) (*model.WeekSchedule, error) {
	var shifts []byte
	err := db.pool.QueryRow(ctx, `
		SELECT shifts FROM schedule WHERE week_of = $1
	`, weekOf).Scan(&shifts)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query schedule for week %s: %w", weekOf, err)
	}

	sched := &model.WeekSchedule{WeekOf: weekOf}
	if err := json.Unmarshal(shifts, &sched.Shifts); err != nil {
		return nil, fmt.Errorf("failed to decode schedule for week %s: %w", weekOf, err)
	}
	return sched, nil
}

// MergeSchedule folds assignments into the stored schedule for a week:
// matching (date, shift) entries union their employee sets, the rest
// append. The read-merge-write happens inside one transaction with the
// row locked, so two approvals cannot silently overwrite each other.
func (db *DB) MergeSchedule(ctx context.Context, weekOf string, shifts []model.ShiftAssignment) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var existingRaw []byte
	var existing []model.ShiftAssignment
	err = tx.QueryRow(ctx, `
		SELECT shifts FROM schedule WHERE week_of = $1 FOR UPDATE
	`, weekOf).Scan(&existingRaw)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		// First commit for this week.
	case err != nil:
		return fmt.Errorf("failed to lock schedule for week %s: %w", weekOf, err)
	default:
		if err := json.Unmarshal(existingRaw, &existing); err != nil {
			return fmt.Errorf("failed to decode schedule for week %s: %w", weekOf, err)
		}
	}

	merged, err := json.Marshal(schedule.Merge(existing, shifts))
	if err != nil {
		return fmt.Errorf("failed to encode merged schedule: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO schedule (week_of, shifts)
		VALUES ($1, $2)
		ON CONFLICT (week_of) DO UPDATE SET shifts = EXCLUDED.shifts
	`, weekOf, merged)
	if err != nil {
		return fmt.Errorf("failed to save schedule for week %s: %w", weekOf, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit schedule merge: %w", err)
	}
	return nil
}

// DeleteSchedule removes one week's finalized schedule from history.
func (db *DB) DeleteSchedule(ctx context.Context, weekOf string) error {
	if _, err := db.pool.Exec(ctx, `DELETE FROM schedule WHERE week_of = $1`, weekOf); err != nil {
		return fmt.Errorf("failed to delete schedule for week %s: %w", weekOf, err)
	}
	return nil
}

// GetSchedules retrieves every finalized schedule, newest week first.
func (db *DB) GetSchedules(ctx context.Context) ([]model.WeekSchedule, error) {
	rows, err := db.pool.Query(ctx, `
		SELECT week_of, shifts FROM schedule ORDER BY week_of DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedules: %w", err)
	}
	defer rows.Close()

	var schedules []model.WeekSchedule
	for rows.Next() {
		var (
			sched model.WeekSchedule
			raw   []byte
		)
		if err := rows.Scan(&sched.WeekOf, &raw); err != nil {
			return nil, fmt.Errorf("failed to scan schedule: %w", err)
		}
		if err := json.Unmarshal(raw, &sched.Shifts); err != nil {
			return nil, fmt.Errorf("failed to decode schedule for week %s: %w", sched.WeekOf, err)
		}
		schedules = append(schedules, sched)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating schedules: %w", err)
	}

	return schedules, nil
}
