package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lamnguyen-se/shiftreg/pkg/core/model"
)

// GetRegistrations retrieves every registration, newest first.
func (db *DB) GetRegistrations(ctx context.Context) ([]model.Registration, error) {
	rows, err := db.pool.Query(ctx, `
		SELECT id, employee_name, shifts, submitted_at, approved, allocated, allocated_at
		FROM registration
		ORDER BY submitted_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query registrations: %w", err)
	}
	defer rows.Close()

	var regs []model.Registration
	for rows.Next() {
		var (
			reg    model.Registration
			shifts []byte
		)
		if err := rows.Scan(&reg.ID, &reg.EmployeeName, &shifts, &reg.Timestamp,
			&reg.Approved, &reg.Allocated, &reg.AllocatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan registration: %w", err)
		}
		if err := json.Unmarshal(shifts, &reg.Shifts); err != nil {
			return nil, fmt.Errorf("failed to decode shifts for registration %s: %w", reg.ID, err)
		}
		regs = append(regs, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating registrations: %w", err)
	}

	return regs, nil
}

// SaveRegistration inserts a registration or fully replaces it by id.
// Re-applying the same state is a harmless no-op, which keeps partial
// allocation persistence retryable.
func (db *DB) SaveRegistration(ctx context.Context, reg *model.Registration) error {
	shifts, err := json.Marshal(reg.Shifts)
	if err != nil {
		return fmt.Errorf("failed to encode shifts: %w", err)
	}

	_, err = db.pool.Exec(ctx, `
		INSERT INTO registration (id, employee_name, shifts, submitted_at, approved, allocated, allocated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE
		SET employee_name = EXCLUDED.employee_name,
		    shifts = EXCLUDED.shifts,
		    approved = EXCLUDED.approved,
		    allocated = EXCLUDED.allocated,
		    allocated_at = EXCLUDED.allocated_at
	`, reg.ID, reg.EmployeeName, shifts, reg.Timestamp, reg.Approved, reg.Allocated, reg.AllocatedAt)
	if err != nil {
		return fmt.Errorf("failed to save registration %s: %w", reg.ID, err)
	}
	return nil
}

// DeleteRegistration removes one registration by id.
func (db *DB) DeleteRegistration(ctx context.Context, id string) error {
	tag, err := db.pool.Exec(ctx, `DELETE FROM registration WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete registration %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("registration %s not found", id)
	}
	return nil
}

// ClearRegistrations removes every registration; used when the active
// week moves to a new date range.
func (db *DB) ClearRegistrations(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, `DELETE FROM registration`); err != nil {
		return fmt.Errorf("failed to clear registrations: %w", err)
	}
	return nil
}
