package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/trolleypm/internal/core/pm"
	"github.com/example/trolleypm/internal/ports/primary"
	"github.com/example/trolleypm/internal/wire"
)

var damageCmd = &cobra.Command{
	Use:   "damage [trolley-id]",
	Short: "Report a trolley damage",
	Long:  "Record a damage event for a trolley. Three damages of the same type raise a chronic alert.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		failureDate, err := dateFlag(cmd, "date")
		if err != nil {
			return err
		}

		failureRaw, _ := cmd.Flags().GetString("failure")
		failureType, err := pm.ParseFailureType(failureRaw)
		if err != nil {
			return err
		}

		note, _ := cmd.Flags().GetString("note")
		amount, _ := cmd.Flags().GetString("amount")

		result, err := wire.MaintenanceService().ReportDamage(ctx, primary.ReportDamageRequest{
			TrolleyID:   args[0],
			FailureDate: failureDate,
			FailureType: failureType,
			FailureNote: note,
			Technician:  technicianOrDefault(cmd),
			Amount:      amount,
		})
		if err != nil {
			return fmt.Errorf("failed to report damage: %w", err)
		}

		fmt.Printf("✓ Reported %s damage for %s\n", failureType, result.TrolleyID)
		fmt.Printf("  Next due: %s\n", pm.FormatDate(result.NextDue))
		if result.AlertRaised {
			fmt.Printf("  %s chronic %s alert (%d occurrences)\n", red("⚠"), failureType, result.AlertOccurrences)
		}
		return nil
	},
}

func init() {
	damageCmd.Flags().StringP("date", "d", "", "Failure date (YYYY-MM-DD, defaults to today)")
	damageCmd.Flags().StringP("failure", "f", "", "Failure type (HANDLE_BREAK, WHEEL_ISSUE, FRAME_BEND, OTHER)")
	damageCmd.Flags().StringP("note", "n", "", "Failure note")
	damageCmd.Flags().StringP("technician", "t", "", "Technician name (defaults to config)")
	damageCmd.Flags().StringP("amount", "a", "", "Repair cost (defaults to NA)")
	damageCmd.MarkFlagRequired("failure")
}

func DamageCmd() *cobra.Command {
	return damageCmd
}
