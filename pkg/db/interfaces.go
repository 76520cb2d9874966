// Package db defines the store interfaces the core consumes. The
// postgres package provides the production implementation; tests use
// hand-rolled fakes.
package db

import (
	"context"

	"github.com/lamnguyen-se/shiftreg/pkg/core/model"
)

// WeekStore persists the single active week settings document.
type WeekStore interface {
	// GetWeekSettings returns nil, nil when no week has been defined.
	GetWeekSettings(ctx context.Context) (*model.WeekSettings, error)
	SaveWeekSettings(ctx context.Context, settings *model.WeekSettings) error
}

// RegistrationStore persists employee registrations for the active week.
type RegistrationStore interface {
	GetRegistrations(ctx context.Context) ([]model.Registration, error)
	// SaveRegistration inserts or fully replaces by ID. Re-saving an
	// unchanged registration is a no-op, which keeps partial
	// allocation persistence safely retryable.
	SaveRegistration(ctx context.Context, reg *model.Registration) error
	DeleteRegistration(ctx context.Context, id string) error
	// ClearRegistrations removes every registration; used when the
	// admin moves the active week to a new date range.
	ClearRegistrations(ctx context.Context) error
}

// ScheduleStore persists finalized week schedules, keyed by the Monday
// the week starts on. History is retained across week resets.
type ScheduleStore interface {
	// GetSchedule returns nil, nil when no schedule exists for the week.
	GetSchedule(ctx context.Context, weekOf string) (*model.WeekSchedule, error)
	// MergeSchedule folds assignments into the stored schedule:
	// matching (date, shift) entries union employee sets, others append.
	MergeSchedule(ctx context.Context, weekOf string, shifts []model.ShiftAssignment) error
	DeleteSchedule(ctx context.Context, weekOf string) error
	GetSchedules(ctx context.Context) ([]model.WeekSchedule, error)
}

// ConfigStore persists the allocation engine configuration.
type ConfigStore interface {
	// GetAllocationConfig returns nil, nil when nothing has been stored.
	GetAllocationConfig(ctx context.Context) (*model.AllocationConfig, error)
	SaveAllocationConfig(ctx context.Context, config *model.AllocationConfig) error
}

// Store is the full surface implemented by the postgres backend.
type Store interface {
	WeekStore
	RegistrationStore
	ScheduleStore
	ConfigStore
}
