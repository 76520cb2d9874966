package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lamnguyen-se/shiftreg/pkg/core/services"
)

// ApproveCmd creates the approve command
func ApproveCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "approve <registration_id>",
		Short: "Approve a registration and merge it into the week's schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")

			result, err := services.ApproveRegistration(app.Ctx, app.Database, args[0], force, app.Logger)
			if err != nil {
				return err
			}

			if !result.Merged {
				fmt.Printf("\n❌ Approval blocked by capacity conflicts:\n\n")
				for _, c := range result.Conflict.Conflicts {
					fmt.Printf("  %s shift %s: %d/%d already committed (%s)\n",
						c.Date, c.Shift, c.Current, c.Max, strings.Join(c.Employees, ", "))
				}
				fmt.Println("\n💡 Use --force to merge anyway.")
				return nil
			}

			fmt.Printf("\n✓ Registration approved!\n\n")
			fmt.Printf("Employee: %s\n", result.Registration.EmployeeName)
			fmt.Printf("Shifts:   %d merged into the schedule\n", len(result.Registration.Shifts))
			if result.Conflict.HasConflict {
				fmt.Printf("\n⚠️  Merged despite %d capacity conflicts (--force).\n", len(result.Conflict.Conflicts))
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().Bool("force", false, "Merge even if a slot would exceed capacity")

	return cmd
}
