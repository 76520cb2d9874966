package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lamnguyen-se/shiftreg/pkg/core/model"
)

func allocatedRegistration(id, name string, slots ...model.ShiftSlot) model.Registration {
	reg := pendingRegistration(id, name, slots...)
	reg.Allocated = true
	return reg
}

func TestPublishSchedule_MergesAllocatedRegistrations(t *testing.T) {
	store := newMockStore()
	store.settings = activeWeekSettings()
	store.registrations = []model.Registration{
		allocatedRegistration("r1", "An",
			model.ShiftSlot{Date: "2025-01-06", Shift: model.ShiftA},
		),
		allocatedRegistration("r2", "Binh",
			model.ShiftSlot{Date: "2025-01-06", Shift: model.ShiftA},
			model.ShiftSlot{Date: "2025-01-07", Shift: model.ShiftB},
		),
		// Pending registration is ignored.
		pendingRegistration("r3", "Chi",
			model.ShiftSlot{Date: "2025-01-06", Shift: model.ShiftA},
		),
	}

	result, err := PublishSchedule(context.Background(), store, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "2025-01-06", result.WeekOf)
	assert.Equal(t, 2, result.Employees)

	sched := store.schedules["2025-01-06"]
	require.NotNil(t, sched)
	require.Len(t, sched.Shifts, 2)
	assert.ElementsMatch(t, []string{"An", "Binh"}, sched.Shifts[0].Employees)
	assert.Equal(t, []string{"Binh"}, sched.Shifts[1].Employees)
}

func TestPublishSchedule_NothingAllocated(t *testing.T) {
	store := newMockStore()
	store.settings = activeWeekSettings()
	store.registrations = []model.Registration{
		pendingRegistration("r1", "An", model.ShiftSlot{Date: "2025-01-06", Shift: model.ShiftA}),
	}

	result, err := PublishSchedule(context.Background(), store, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 0, result.Employees)
	assert.Empty(t, store.schedules)
}

func TestPublishSchedule_RepublishIsNoOp(t *testing.T) {
	store := newMockStore()
	store.settings = activeWeekSettings()
	store.registrations = []model.Registration{
		allocatedRegistration("r1", "An", model.ShiftSlot{Date: "2025-01-06", Shift: model.ShiftA}),
	}

	_, err := PublishSchedule(context.Background(), store, zap.NewNop())
	require.NoError(t, err)
	_, err = PublishSchedule(context.Background(), store, zap.NewNop())
	require.NoError(t, err)

	sched := store.schedules["2025-01-06"]
	require.NotNil(t, sched)
	require.Len(t, sched.Shifts, 1)
	assert.Equal(t, []string{"An"}, sched.Shifts[0].Employees)
}
