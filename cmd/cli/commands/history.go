package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/lamnguyen-se/shiftreg/pkg/core/services"
)

// HistoryCmd creates the history command
func HistoryCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List finalized week schedules, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deleteWeek, _ := cmd.Flags().GetString("delete")

			if deleteWeek != "" {
				if err := services.DeleteScheduleWeek(app.Ctx, app.Database, deleteWeek, app.Logger); err != nil {
					return err
				}
				fmt.Printf("\n✓ Deleted schedule for week of %s.\n\n", deleteWeek)
				return nil
			}

			weeks, err := services.ScheduleHistory(app.Ctx, app.Database, app.Logger)
			if err != nil {
				return err
			}

			if len(weeks) == 0 {
				fmt.Println("\nNo finalized schedules yet.")
				return nil
			}

			fmt.Printf("\nFound %d finalized weeks:\n", len(weeks))
			for _, week := range weeks {
				fmt.Printf("\nWeek of %s (%s to %s):\n", week.WeekOf, week.DateRange.From, week.DateRange.To)

				names := make([]string, 0, len(week.EmployeeShifts))
				for name := range week.EmployeeShifts {
					names = append(names, name)
				}
				sort.Strings(names)

				for _, name := range names {
					fmt.Printf("  %s:\n", name)
					for _, slot := range week.EmployeeShifts[name] {
						fmt.Printf("    %s  shift %s\n", slot.Date, slot.Shift)
					}
				}
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().String("delete", "", "Delete the schedule for the given week key (Monday date)")

	return cmd
}
