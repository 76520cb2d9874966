package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lamnguyen-se/shiftreg/pkg/core/model"
	"github.com/lamnguyen-se/shiftreg/pkg/core/services"
)

// DefineWeekCmd creates the defineWeek command
func DefineWeekCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "defineWeek <monday>",
		Short: "Open a registration week starting on the given Monday",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			employees, _ := cmd.Flags().GetStringSlice("employees")
			closed, _ := cmd.Flags().GetBool("closed")

			week, err := model.WeekOf(args[0])
			if err != nil {
				return err
			}

			settings := &model.WeekSettings{
				DateRange: week,
				Active:    !closed,
				Employees: employees,
			}

			result, err := services.DefineWeek(app.Ctx, app.Database, settings, app.Logger)
			if err != nil {
				return err
			}

			// Display results
			fmt.Printf("\n✓ Registration week defined!\n\n")
			fmt.Printf("Week:   %s to %s\n", result.Week.From, result.Week.To)
			if closed {
				fmt.Printf("Status: closed to registrations\n")
			} else {
				fmt.Printf("Status: open for registrations\n")
			}
			if len(employees) > 0 {
				fmt.Printf("Roster: %d employees\n", len(employees))
			} else {
				fmt.Printf("Roster: open to anyone\n")
			}
			if result.RegistrationsCleared {
				fmt.Printf("\n⚠️  Existing registrations were cleared (week changed).\n")
			}

			dates, err := result.Week.Dates()
			if err != nil {
				return err
			}
			fmt.Printf("\nDays:\n")
			for i, date := range dates {
				day, _ := time.Parse(model.DateLayout, date)
				fmt.Printf("  %d. %s (%s)\n", i+1, date, day.Weekday())
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().StringSlice("employees", nil, "Roster of employees allowed to register (empty admits anyone)")
	cmd.Flags().Bool("closed", false, "Define the week without opening it for registrations")

	return cmd
}
