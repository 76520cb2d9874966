package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lamnguyen-se/shiftreg/pkg/core/services"
)

// SetAllocationConfigCmd creates the setAllocationConfig command
func SetAllocationConfigCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setAllocationConfig",
		Short: "Show or change how contested slots are allocated",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := services.GetAllocationConfig(app.Ctx, app.Database)
			if err != nil {
				return err
			}

			changed := false
			if cmd.Flags().Changed("fairness") {
				config.FairnessEnabled, _ = cmd.Flags().GetBool("fairness")
				changed = true
			}
			if cmd.Flags().Changed("max-shifts") {
				config.MaxShiftsPerEmployee, _ = cmd.Flags().GetInt("max-shifts")
				changed = true
			}

			if changed {
				if err := services.SetAllocationConfig(app.Ctx, app.Database, config, app.Logger); err != nil {
					return err
				}
				fmt.Printf("\n✓ Allocation config updated!\n\n")
			} else {
				fmt.Printf("\nCurrent allocation config:\n\n")
			}

			if config.FairnessEnabled {
				fmt.Printf("Fairness:   on (fewer shifts win contested slots)\n")
			} else {
				fmt.Printf("Fairness:   off (contested slots drawn at random)\n")
			}
			if config.MaxShiftsPerEmployee > 0 {
				fmt.Printf("Weekly cap: %d shifts per employee\n\n", config.MaxShiftsPerEmployee)
			} else {
				fmt.Printf("Weekly cap: none\n\n")
			}

			return nil
		},
	}

	cmd.Flags().Bool("fairness", true, "Prefer employees with fewer shifts on contested slots")
	cmd.Flags().Int("max-shifts", 0, "Weekly shift cap per employee (0 disables the cap)")

	return cmd
}
