package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/example/trolleypm/internal/wire"
)

var alertsCmd = &cobra.Command{
	Use:   "alerts",
	Short: "List chronic failure alerts",
	RunE: func(cmd *cobra.Command, args []string) error {
		includeAcked, _ := cmd.Flags().GetBool("all")

		alerts, err := wire.AlertService().ListAlerts(context.Background(), includeAcked)
		if err != nil {
			return fmt.Errorf("failed to list alerts: %w", err)
		}

		if len(alerts) == 0 {
			fmt.Println("No alerts.")
			return nil
		}

		w := newTable()
		fmt.Fprintln(w, "ID\tTROLLEY\tFAILURE\tOCCURRENCES\tSTATUS")
		for _, a := range alerts {
			status := red("open")
			if a.Acknowledged {
				status = green("acknowledged")
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n", a.ID, a.TrolleyID, a.FailureType, a.Occurrences, status)
		}
		return w.Flush()
	},
}

var alertsAckCmd = &cobra.Command{
	Use:   "ack [alert-id]",
	Short: "Acknowledge an alert",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid alert ID %q", args[0])
		}

		if err := wire.AlertService().AcknowledgeAlert(context.Background(), id); err != nil {
			return fmt.Errorf("failed to acknowledge alert: %w", err)
		}

		fmt.Printf("✓ Acknowledged alert %d\n", id)
		return nil
	},
}

func init() {
	alertsCmd.Flags().Bool("all", false, "Include acknowledged alerts")
	alertsCmd.AddCommand(alertsAckCmd)
}

func AlertsCmd() *cobra.Command {
	return alertsCmd
}
