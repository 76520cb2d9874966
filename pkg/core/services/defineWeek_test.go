package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lamnguyen-se/shiftreg/pkg/core/model"
)

func activeWeekSettings() *model.WeekSettings {
	return &model.WeekSettings{
		DateRange: model.WeekRange{From: "2025-01-06", To: "2025-01-12"},
		Active:    true,
		Employees: []string{"An", "Binh", "Chi"},
	}
}

func TestDefineWeek_FirstDefinition(t *testing.T) {
	store := newMockStore()

	result, err := DefineWeek(context.Background(), store, activeWeekSettings(), zap.NewNop())
	require.NoError(t, err)
	assert.False(t, result.RegistrationsCleared)
	require.NotNil(t, store.settings)
	assert.Equal(t, "2025-01-06", store.settings.DateRange.From)
}

func TestDefineWeek_RangeChangeClearsRegistrations(t *testing.T) {
	store := newMockStore()
	store.settings = activeWeekSettings()
	store.registrations = []model.Registration{{ID: "r1", EmployeeName: "An"}}

	next := activeWeekSettings()
	next.DateRange = model.WeekRange{From: "2025-01-13", To: "2025-01-19"}

	result, err := DefineWeek(context.Background(), store, next, zap.NewNop())
	require.NoError(t, err)
	assert.True(t, result.RegistrationsCleared)
	assert.True(t, store.cleared)
	assert.Empty(t, store.registrations)
}

func TestDefineWeek_SameRangeKeepsRegistrations(t *testing.T) {
	store := newMockStore()
	store.settings = activeWeekSettings()
	store.registrations = []model.Registration{{ID: "r1", EmployeeName: "An"}}

	// Toggling active without moving the range must not discard
	// registrations.
	next := activeWeekSettings()
	next.Active = false

	result, err := DefineWeek(context.Background(), store, next, zap.NewNop())
	require.NoError(t, err)
	assert.False(t, result.RegistrationsCleared)
	assert.Len(t, store.registrations, 1)
	assert.False(t, store.settings.Active)
}

func TestDefineWeek_RejectsNonMondayStart(t *testing.T) {
	store := newMockStore()
	settings := activeWeekSettings()
	settings.DateRange = model.WeekRange{From: "2025-01-08", To: "2025-01-14"}

	_, err := DefineWeek(context.Background(), store, settings, zap.NewNop())
	assert.ErrorIs(t, err, model.ErrInvalidWeek)
	assert.Nil(t, store.settings)
}

func TestDefineWeek_RejectsWrongSpan(t *testing.T) {
	store := newMockStore()
	settings := activeWeekSettings()
	settings.DateRange = model.WeekRange{From: "2025-01-06", To: "2025-01-11"}

	_, err := DefineWeek(context.Background(), store, settings, zap.NewNop())
	assert.ErrorIs(t, err, model.ErrInvalidWeek)
}
