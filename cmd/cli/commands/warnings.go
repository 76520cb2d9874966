package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lamnguyen-se/shiftreg/pkg/core/model"
	"github.com/lamnguyen-se/shiftreg/pkg/core/services"
)

// WarningsCmd creates the warnings command
func WarningsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "warnings",
		Short: "Show under-staffed slots in the allocated week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := services.CheckWarnings(app.Ctx, app.Database, app.Logger)
			if err != nil {
				return err
			}

			fmt.Printf("\nWeek: %s to %s\n\n", result.Week.From, result.Week.To)

			if !result.Report.HasWarnings {
				fmt.Println("✓ Every slot is fully staffed.")
			} else {
				fmt.Printf("⚠️  %d under-staffed slots (%d missing in total):\n\n",
					len(result.Report.Warnings), result.Report.TotalMissing)
				for _, w := range result.Report.Warnings {
					fmt.Printf("  %s (%s) shift %s: %d/%d staffed, %d missing\n",
						w.Date, w.Day, w.Shift, w.Current, w.Limit, w.Missing)
				}
			}

			stats := result.Statistics
			fmt.Printf("\nStatistics:\n")
			fmt.Printf("  Employees:      %d\n", stats.TotalEmployees)
			fmt.Printf("  Total shifts:   %d\n", stats.TotalShifts)
			for _, shift := range model.AllShiftTypes {
				fmt.Printf("  Shift %s:        %d\n", shift, stats.ShiftDistribution[shift])
			}
			fmt.Printf("  Weekday shifts: %d\n", stats.WeekdayShifts)
			fmt.Printf("  Weekend shifts: %d\n", stats.WeekendShifts)
			fmt.Println()

			return nil
		},
	}
}
