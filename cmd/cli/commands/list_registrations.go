package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lamnguyen-se/shiftreg/pkg/core/model"
	"github.com/lamnguyen-se/shiftreg/pkg/core/services"
)

// ListRegistrationsCmd creates the listRegistrations command
func ListRegistrationsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listRegistrations",
		Short: "List all registrations for the current week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deleteID, _ := cmd.Flags().GetString("delete")

			if deleteID != "" {
				reg, err := services.DeleteRegistration(app.Ctx, app.Database, deleteID, app.Logger)
				if err != nil {
					return err
				}
				fmt.Printf("\n✓ Deleted registration %s (%s).\n\n", reg.ID, reg.EmployeeName)
				return nil
			}

			regs, err := services.ListRegistrations(app.Ctx, app.Database, app.Logger)
			if err != nil {
				return err
			}

			if len(regs) == 0 {
				fmt.Println("\nNo registrations found.")
				return nil
			}

			fmt.Printf("\nFound %d registrations:\n\n", len(regs))
			for _, reg := range regs {
				fmt.Printf("- %s (%s) - %d shifts - %s - %s\n",
					reg.EmployeeName,
					reg.ID,
					len(reg.Shifts),
					registrationStatus(reg),
					reg.Timestamp.Format("2006-01-02 15:04"),
				)
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().String("delete", "", "Delete the registration with the given id")

	return cmd
}

func registrationStatus(reg model.Registration) string {
	switch {
	case reg.Approved:
		return "approved"
	case reg.Allocated:
		return "allocated"
	default:
		return "pending"
	}
}
