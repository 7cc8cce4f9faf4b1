package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/trolleypm/internal/core/pm"
	"github.com/example/trolleypm/internal/ports/primary"
	"github.com/example/trolleypm/internal/wire"
)

var logCmd = &cobra.Command{
	Use:   "log [trolley-id]",
	Short: "Log a preventive maintenance event",
	Long:  "Record a PM performance for a trolley. The next due date is scheduled 90 days out.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		pmDate, err := dateFlag(cmd, "date")
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

		result, err := wire.MaintenanceService().LogMaintenance(ctx, primary.LogMaintenanceRequest{
			TrolleyID:   args[0],
			PMDate:      pmDate,
			FailureType: failureType,
			FailureNote: note,
			Technician:  technicianOrDefault(cmd),
			Amount:      amount,
		})
		if err != nil {
			return fmt.Errorf("failed to log maintenance: %w", err)
		}

		fmt.Printf("✓ Logged maintenance for %s\n", result.TrolleyID)
		fmt.Printf("  Next due: %s\n", pm.FormatDate(result.NextDue))
		if result.AlertRaised {
			fmt.Printf("  %s chronic %s alert (%d occurrences)\n", red("⚠"), failureType, result.AlertOccurrences)
		}
		return nil
	},
}

func init() {
	logCmd.Flags().StringP("date", "d", "", "PM date (YYYY-MM-DD, defaults to today)")
	logCmd.Flags().StringP("failure", "f", "", "Failure observed during PM (HANDLE_BREAK, WHEEL_ISSUE, FRAME_BEND, OTHER)")
	logCmd.Flags().StringP("note", "n", "", "Failure note")
	logCmd.Flags().StringP("technician", "t", "", "Technician name (defaults to config)")
	logCmd.Flags().StringP("amount", "a", "", "Repair cost (defaults to NA)")
}

func LogCmd() *cobra.Command {
	return logCmd
}
