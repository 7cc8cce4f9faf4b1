package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/trolleypm/internal/core/pm"
	"github.com/example/trolleypm/internal/wire"
)

var remindersCmd = &cobra.Command{
	Use:   "reminders",
	Short: "Show overdue and upcoming PM reminders",
	Long:  "List trolleys whose PM is overdue or due within the next 7 days.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		now := today()

		reminders, err := wire.ReminderService().ComputeReminders(ctx, now)
		if err != nil {
			return fmt.Errorf("failed to compute reminders: %w", err)
		}

		if len(reminders.Overdue) == 0 && len(reminders.Upcoming) == 0 {
			fmt.Println("No reminders. All trolleys are up to date.")
			return nil
		}

		if len(reminders.Overdue) > 0 {
			fmt.Printf("%s %d overdue:\n", red("⚠"), len(reminders.Overdue))
			for _, r := range reminders.Overdue {
				days := int(now.Sub(r.NextDue).Hours() / 24)
				fmt.Printf("  %s\tdue %s (%d days overdue)\n", r.TrolleyID, pm.FormatDate(r.NextDue), days)
			}
		}

		if len(reminders.Upcoming) > 0 {
			fmt.Printf("%s %d due within 7 days:\n", yellow("•"), len(reminders.Upcoming))
			for _, r := range reminders.Upcoming {
				fmt.Printf("  %s\tdue %s\n", r.TrolleyID, pm.FormatDate(r.NextDue))
			}
		}

		return nil
	},
}

var remindersDoneCmd = &cobra.Command{
	Use:   "done [trolley-id]",
	Short: "Mark a trolley's PM as done today",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := wire.MaintenanceService().MarkDone(context.Background(), args[0], today())
		if err != nil {
			return fmt.Errorf("failed to mark done: %w", err)
		}

		fmt.Printf("✓ Marked %s done\n", result.TrolleyID)
		fmt.Printf("  Next due: %s\n", pm.FormatDate(result.NextDue))
		return nil
	},
}

func init() {
	remindersCmd.AddCommand(remindersDoneCmd)
}

func RemindersCmd() *cobra.Command {
	return remindersCmd
}
