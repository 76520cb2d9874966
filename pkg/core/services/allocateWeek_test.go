package services

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lamnguyen-se/shiftreg/pkg/core/model"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func pendingRegistration(id, name string, slots ...model.ShiftSlot) model.Registration {
	return model.Registration{
		ID:           id,
		EmployeeName: name,
		Shifts:       slots,
		Timestamp:    time.Date(2025, 1, 3, 9, 0, 0, 0, time.UTC),
	}
}

func TestAllocateWeek_TrimsOverloadedSlotAndPersists(t *testing.T) {
	store := newMockStore()
	store.settings = activeWeekSettings()

	// Monday shift C takes one person; three want it.
	slot := model.ShiftSlot{Date: "2025-01-06", Shift: model.ShiftC}
	store.registrations = []model.Registration{
		pendingRegistration("r1", "An", slot),
		pendingRegistration("r2", "Binh", slot),
		pendingRegistration("r3", "Chi", slot),
	}

	result, err := AllocateWeek(context.Background(), store, testRNG(), zap.NewNop(), false)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Outcome.Processed)
	assert.Equal(t, 1, result.Outcome.OverloadedSlots)
	assert.Equal(t, 3, result.Saved)

	holders := 0
	for _, reg := range store.registrations {
		assert.True(t, reg.Allocated)
		require.NotNil(t, reg.AllocatedAt)
		if reg.HasSlot(slot) {
			holders++
		}
	}
	assert.Equal(t, 1, holders)
}

func TestAllocateWeek_DryRunDoesNotPersist(t *testing.T) {
	store := newMockStore()
	store.settings = activeWeekSettings()
	slot := model.ShiftSlot{Date: "2025-01-06", Shift: model.ShiftC}
	store.registrations = []model.Registration{
		pendingRegistration("r1", "An", slot),
		pendingRegistration("r2", "Binh", slot),
	}

	result, err := AllocateWeek(context.Background(), store, testRNG(), zap.NewNop(), true)
	require.NoError(t, err)
	assert.True(t, result.DryRun)
	assert.Equal(t, 0, result.Saved)
	assert.Equal(t, 0, store.saveCount)

	// Stored registrations untouched.
	for _, reg := range store.registrations {
		assert.False(t, reg.Allocated)
		assert.True(t, reg.HasSlot(slot))
	}
}

func TestAllocateWeek_EmptyRegistrationsIsNeutral(t *testing.T) {
	store := newMockStore()
	store.settings = activeWeekSettings()

	result, err := AllocateWeek(context.Background(), store, testRNG(), zap.NewNop(), false)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Outcome.Processed)
	assert.Equal(t, 0, result.Saved)
}

func TestAllocateWeek_NoWeekDefined(t *testing.T) {
	store := newMockStore()

	_, err := AllocateWeek(context.Background(), store, testRNG(), zap.NewNop(), false)
	assert.Error(t, err)
}

func TestAllocateWeek_UsesStoredConfig(t *testing.T) {
	store := newMockStore()
	store.settings = activeWeekSettings()
	store.config = &model.AllocationConfig{FairnessEnabled: false, MaxShiftsPerEmployee: 4}
	store.registrations = []model.Registration{
		pendingRegistration("r1", "An", model.ShiftSlot{Date: "2025-01-06", Shift: model.ShiftA}),
	}

	result, err := AllocateWeek(context.Background(), store, testRNG(), zap.NewNop(), false)
	require.NoError(t, err)
	assert.False(t, result.Config.FairnessEnabled)
	assert.Equal(t, 4, result.Config.MaxShiftsPerEmployee)
}

func TestAllocateWeek_DefaultsWhenNoConfigStored(t *testing.T) {
	store := newMockStore()
	store.settings = activeWeekSettings()
	store.registrations = []model.Registration{
		pendingRegistration("r1", "An", model.ShiftSlot{Date: "2025-01-06", Shift: model.ShiftA}),
	}

	result, err := AllocateWeek(context.Background(), store, testRNG(), zap.NewNop(), false)
	require.NoError(t, err)
	assert.True(t, result.Config.FairnessEnabled)
	assert.Equal(t, 0, result.Config.MaxShiftsPerEmployee)
}

func TestAllocateWeek_SaveFailureReportsProgress(t *testing.T) {
	store := newMockStore()
	store.settings = activeWeekSettings()
	store.registrations = []model.Registration{
		pendingRegistration("r1", "An", model.ShiftSlot{Date: "2025-01-06", Shift: model.ShiftA}),
	}
	store.err["SaveRegistration"] = fmt.Errorf("write timeout")

	result, err := AllocateWeek(context.Background(), store, testRNG(), zap.NewNop(), false)
	require.Error(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 0, result.Saved)
}
