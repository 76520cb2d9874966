package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lamnguyen-se/shiftreg/pkg/core/services"
)

// PublishCmd creates the publish command
func PublishCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "publish",
		Short: "Publish all allocated registrations into the finalized schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := services.PublishSchedule(app.Ctx, app.Database, app.Logger)
			if err != nil {
				return err
			}

			if len(result.Assignments) == 0 {
				fmt.Println("\nNothing to publish - no allocated registrations found.")
				return nil
			}

			fmt.Printf("\n✓ Schedule published!\n\n")
			fmt.Printf("Week of:   %s\n", result.WeekOf)
			fmt.Printf("Employees: %d\n\n", result.Employees)
			for _, a := range result.Assignments {
				fmt.Printf("  %s  shift %s  %s\n", a.Date, a.Shift, strings.Join(a.Employees, ", "))
			}
			fmt.Println()

			return nil
		},
	}
}
