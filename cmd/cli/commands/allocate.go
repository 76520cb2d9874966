package commands

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lamnguyen-se/shiftreg/pkg/core/services"
)

// AllocateCmd creates the allocate command
func AllocateCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "allocate",
		Short: "Run the allocation pass over the week's registrations",
		Long:  "Trim over-capacity slots across all registrations and mark them allocated",
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			seed, _ := cmd.Flags().GetInt64("seed")

			app.Logger.Debug("allocate command",
				zap.Bool("dry_run", dryRun),
				zap.Int64("seed", seed))

			var rng *rand.Rand
			if cmd.Flags().Changed("seed") {
				rng = rand.New(rand.NewSource(seed))
			}

			result, err := services.AllocateWeek(app.Ctx, app.Database, rng, app.Logger, dryRun)
			if err != nil {
				return fmt.Errorf("allocation failed: %w", err)
			}

			// Display header
			fmt.Printf("\n🎯 Allocation Results\n\n")
			fmt.Printf("Week:             %s to %s\n", result.Week.From, result.Week.To)
			fmt.Printf("Registrations:    %d\n", result.Outcome.Processed)
			fmt.Printf("Overloaded slots: %d\n", result.Outcome.OverloadedSlots)
			if result.Config.FairnessEnabled {
				fmt.Printf("Fairness:         on\n")
			} else {
				fmt.Printf("Fairness:         off (random draw)\n")
			}
			if result.Config.MaxShiftsPerEmployee > 0 {
				fmt.Printf("Weekly cap:       %d shifts per employee\n", result.Config.MaxShiftsPerEmployee)
			}
			if dryRun {
				fmt.Printf("Mode:             🧪 DRY RUN (not saved)\n")
			} else {
				fmt.Printf("Saved:            %d registrations\n", result.Saved)
			}
			fmt.Println()

			// Display per-slot decisions
			if len(result.Outcome.Decisions) > 0 {
				fmt.Printf("Contested slots:\n\n")
				for _, d := range result.Outcome.Decisions {
					fmt.Printf("  %s shift %s: %d registered, limit %d\n",
						d.Slot.Date, d.Slot.Shift, d.Registered, d.Limit)
					fmt.Printf("    kept:    %s\n", strings.Join(d.Kept, ", "))
					fmt.Printf("    removed: %s\n", strings.Join(d.Removed, ", "))
				}
				fmt.Println()
			}

			if dryRun {
				fmt.Println("💡 This was a dry run. Use without --dry-run to save the results.")
			}

			return nil
		},
	}

	cmd.Flags().Bool("dry-run", false, "Run without saving to database")
	cmd.Flags().Int64("seed", 0, "Seed for random tie-breaking decisions")

	return cmd
}
