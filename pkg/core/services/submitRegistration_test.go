package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lamnguyen-se/shiftreg/pkg/core/model"
)

// sixDaySelection works the first six days of the test week.
func sixDaySelection() []model.ShiftSlot {
	return []model.ShiftSlot{
		{Date: "2025-01-06", Shift: model.ShiftA},
		{Date: "2025-01-07", Shift: model.ShiftA},
		{Date: "2025-01-08", Shift: model.ShiftA},
		{Date: "2025-01-09", Shift: model.ShiftA},
		{Date: "2025-01-10", Shift: model.ShiftA},
		{Date: "2025-01-11", Shift: model.ShiftA},
	}
}

func TestSubmitRegistration_HappyPath(t *testing.T) {
	store := newMockStore()
	store.settings = activeWeekSettings()
	notifier := &mockNotifier{}

	result, err := SubmitRegistration(context.Background(), store, notifier, "An", sixDaySelection(), zap.NewNop())
	require.NoError(t, err)
	assert.True(t, result.Validation.OK)
	require.NotNil(t, result.Registration)
	assert.NotEmpty(t, result.Registration.ID)
	assert.False(t, result.Registration.Approved)
	assert.False(t, result.Registration.Allocated)

	require.Len(t, store.registrations, 1)
	assert.Equal(t, "An", store.registrations[0].EmployeeName)
	assert.Equal(t, []string{"An"}, notifier.notified)
}

func TestSubmitRegistration_NoWeekDefined(t *testing.T) {
	store := newMockStore()

	_, err := SubmitRegistration(context.Background(), store, NopNotifier{}, "An", sixDaySelection(), zap.NewNop())
	assert.Error(t, err)
}

func TestSubmitRegistration_WeekInactive(t *testing.T) {
	store := newMockStore()
	store.settings = activeWeekSettings()
	store.settings.Active = false

	result, err := SubmitRegistration(context.Background(), store, NopNotifier{}, "An", sixDaySelection(), zap.NewNop())
	require.NoError(t, err)
	assert.False(t, result.Validation.OK)
	assert.Contains(t, result.Validation.Reason, "closed")
	assert.Empty(t, store.registrations)
}

func TestSubmitRegistration_UnknownEmployeeRejected(t *testing.T) {
	store := newMockStore()
	store.settings = activeWeekSettings()

	result, err := SubmitRegistration(context.Background(), store, NopNotifier{}, "Stranger", sixDaySelection(), zap.NewNop())
	require.NoError(t, err)
	assert.False(t, result.Validation.OK)
	assert.Contains(t, result.Validation.Reason, "Stranger")
}

func TestSubmitRegistration_RuleViolationRejected(t *testing.T) {
	store := newMockStore()
	store.settings = activeWeekSettings()

	// Only five working days.
	result, err := SubmitRegistration(context.Background(), store, NopNotifier{}, "An", sixDaySelection()[:5], zap.NewNop())
	require.NoError(t, err)
	assert.False(t, result.Validation.OK)
	assert.Nil(t, result.Registration)
	assert.Empty(t, store.registrations)
}

func TestSubmitRegistration_NotifierFailureDoesNotBlock(t *testing.T) {
	store := newMockStore()
	store.settings = activeWeekSettings()
	notifier := &mockNotifier{err: fmt.Errorf("smtp down")}

	result, err := SubmitRegistration(context.Background(), store, notifier, "An", sixDaySelection(), zap.NewNop())
	require.NoError(t, err)
	assert.True(t, result.Validation.OK)
	assert.Len(t, store.registrations, 1)
}

func TestSubmitRegistration_StoreFailurePropagates(t *testing.T) {
	store := newMockStore()
	store.settings = activeWeekSettings()
	store.err["SaveRegistration"] = fmt.Errorf("connection reset")

	_, err := SubmitRegistration(context.Background(), store, NopNotifier{}, "An", sixDaySelection(), zap.NewNop())
	assert.Error(t, err)
}
