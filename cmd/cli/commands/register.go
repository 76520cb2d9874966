package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lamnguyen-se/shiftreg/pkg/core/model"
	"github.com/lamnguyen-se/shiftreg/pkg/core/services"
)

// RegisterCmd creates the register command
func RegisterCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register <employee>",
		Short: "Submit an employee's weekly shift selection from a file",
		Long: `Submit a weekly shift selection for an employee. The selection is read
from a YAML file listing the requested slots:

  - date: 2025-01-06
    shift: A
  - date: 2025-01-06
    shift: C`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			employee := args[0]
			file, _ := cmd.Flags().GetString("file")

			selection, err := readSelection(file)
			if err != nil {
				return err
			}

			result, err := services.SubmitRegistration(app.Ctx, app.Database, services.NopNotifier{}, employee, selection, app.Logger)
			if err != nil {
				return err
			}

			if !result.Validation.OK {
				fmt.Printf("\n❌ Registration rejected: %s\n\n", result.Validation.Reason)
				return nil
			}

			// Display results
			fmt.Printf("\n✓ Registration submitted!\n\n")
			fmt.Printf("ID:       %s\n", result.Registration.ID)
			fmt.Printf("Employee: %s\n", result.Registration.EmployeeName)
			fmt.Printf("Shifts:   %d\n\n", len(result.Registration.Shifts))
			for _, slot := range result.Registration.Shifts {
				fmt.Printf("  %s  shift %s\n", slot.Date, slot.Shift)
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().String("file", "selection.yaml", "YAML file with the requested shift slots")

	return cmd
}

func readSelection(path string) ([]model.ShiftSlot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read selection file: %w", err)
	}

	var parsed []model.ShiftSlot
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse selection file: %w", err)
	}

	// A selection is a set of slots; repeated entries in the file
	// collapse to one.
	seen := make(map[model.ShiftSlot]bool, len(parsed))
	selection := make([]model.ShiftSlot, 0, len(parsed))
	for _, slot := range parsed {
		if !slot.Shift.IsValid() {
			return nil, fmt.Errorf("unknown shift type %q in selection file", slot.Shift)
		}
		if seen[slot] {
			continue
		}
		seen[slot] = true
		selection = append(selection, slot)
	}
	return selection, nil
}
