package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/trolleypm/internal/ports/primary"
	"github.com/example/trolleypm/internal/wire"
)

var trolleyCmd = &cobra.Command{
	Use:   "trolley [trolley-id]",
	Short: "Show a trolley's history, cost and risk",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		summary, err := wire.TrolleyService().Lookup(ctx, args[0], today())
		if errors.Is(err, primary.ErrTrolleyNotFound) {
			fmt.Printf("No records for trolley %s.\n", args[0])
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to look up trolley: %w", err)
		}

		fmt.Printf("Trolley %s\n", summary.TrolleyID)
		if summary.Scrapped {
			fmt.Printf("  %s SCRAPPED on %s", red("✗"), summary.Scrap.ScrapDate)
			if summary.Scrap.Reason != "" {
				fmt.Printf(" (%s)", summary.Scrap.Reason)
			}
			fmt.Println()
		}

		if summary.LastPM != "" {
			fmt.Printf("  Last PM:   %s\n", summary.LastPM)
			if summary.Overdue {
				fmt.Printf("  Next due:  %s %s\n", summary.NextDue, red("(overdue)"))
			} else {
				fmt.Printf("  Next due:  %s\n", summary.NextDue)
			}
		}

		fmt.Printf("  Risk:      %s\n", riskColored(summary.Risk))
		fmt.Printf("  Failures:  %d total, %d in last 90 days\n", summary.TotalFailures, summary.FailuresLast90)
		fmt.Printf("  Cost:      %s\n", summary.TotalCost.StringFixed(2))

		if len(summary.History) > 0 {
			fmt.Println()
			w := newTable()
			fmt.Fprintln(w, "PM DATE\tNEXT DUE\tFAILURE\tNOTE\tTECHNICIAN\tAMOUNT")
			for _, e := range summary.History {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					e.PMDate, e.NextDue, orNA(e.FailureType), orNA(e.FailureNote), orNA(e.Technician), orNA(e.Amount))
			}
			w.Flush()
		}

		return nil
	},
}

func TrolleyCmd() *cobra.Command {
	return trolleyCmd
}
