package capacity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamnguyen-se/shiftreg/pkg/core/model"
)

// Week of 2025-01-06: Monday through Sunday.
func dayOfWeek(t *testing.T, offset int) time.Time {
	t.Helper()
	monday, err := time.Parse(model.DateLayout, "2025-01-06")
	require.NoError(t, err)
	return monday.AddDate(0, 0, offset)
}

func TestLimit_ShiftC_AlwaysOne(t *testing.T) {
	for offset := 0; offset < 7; offset++ {
		date := dayOfWeek(t, offset)
		assert.Equal(t, 1, Limit(model.ShiftC, date), "shift C on %s", date.Weekday())
	}
}

func TestLimit_ShiftA_WeekdayVsWeekend(t *testing.T) {
	tests := []struct {
		offset int
		want   int
	}{
		{0, 2}, // Mon
		{1, 2}, // Tue
		{2, 2}, // Wed
		{3, 2}, // Thu
		{4, 2}, // Fri
		{5, 3}, // Sat
		{6, 3}, // Sun
	}
	for _, tt := range tests {
		date := dayOfWeek(t, tt.offset)
		assert.Equal(t, tt.want, Limit(model.ShiftA, date), "shift A on %s", date.Weekday())
	}
}

func TestLimit_ShiftB_TueThuSatSunGetTwo(t *testing.T) {
	tests := []struct {
		offset int
		want   int
	}{
		{0, 1}, // Mon
		{1, 2}, // Tue
		{2, 1}, // Wed
		{3, 2}, // Thu
		{4, 1}, // Fri
		{5, 2}, // Sat
		{6, 2}, // Sun
	}
	for _, tt := range tests {
		date := dayOfWeek(t, tt.offset)
		assert.Equal(t, tt.want, Limit(model.ShiftB, date), "shift B on %s", date.Weekday())
	}
}

func TestSlotLimit(t *testing.T) {
	limit, err := SlotLimit(model.ShiftSlot{Date: "2025-01-11", Shift: model.ShiftA})
	require.NoError(t, err)
	assert.Equal(t, 3, limit)
}

func TestSlotLimit_InvalidDate(t *testing.T) {
	_, err := SlotLimit(model.ShiftSlot{Date: "11/01/2025", Shift: model.ShiftA})
	assert.Error(t, err)
}
