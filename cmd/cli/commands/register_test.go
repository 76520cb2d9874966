package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamnguyen-se/shiftreg/pkg/core/model"
)

func writeSelection(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "selection.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestReadSelection(t *testing.T) {
	path := writeSelection(t, `
- date: "2025-01-06"
  shift: A
- date: "2025-01-06"
  shift: C
`)

	selection, err := readSelection(path)
	require.NoError(t, err)
	assert.Equal(t, []model.ShiftSlot{
		{Date: "2025-01-06", Shift: model.ShiftA},
		{Date: "2025-01-06", Shift: model.ShiftC},
	}, selection)
}

func TestReadSelection_CollapsesDuplicateSlots(t *testing.T) {
	path := writeSelection(t, `
- date: "2025-01-06"
  shift: A
- date: "2025-01-06"
  shift: A
- date: "2025-01-07"
  shift: B
- date: "2025-01-06"
  shift: A
`)

	selection, err := readSelection(path)
	require.NoError(t, err)
	assert.Equal(t, []model.ShiftSlot{
		{Date: "2025-01-06", Shift: model.ShiftA},
		{Date: "2025-01-07", Shift: model.ShiftB},
	}, selection)
}

func TestReadSelection_RejectsUnknownShiftType(t *testing.T) {
	path := writeSelection(t, `
- date: "2025-01-06"
  shift: D
`)

	_, err := readSelection(path)
	assert.ErrorContains(t, err, "unknown shift type")
}

func TestReadSelection_MissingFile(t *testing.T) {
	_, err := readSelection(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "failed to read selection file")
}
