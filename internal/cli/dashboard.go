package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/trolleypm/internal/core/pm"
	"github.com/example/trolleypm/internal/wire"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show fleet metrics for a timeframe",
	Long:  "Aggregate maintained, overdue, damage, scrap and cost metrics. The overdue count reflects today regardless of timeframe.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		now := today()

		timeframe, _ := cmd.Flags().GetString("timeframe")
		windowStart, err := resolveWindowStart(timeframe, now)
		if err != nil {
			return err
		}

		metrics, err := wire.ReportService().Metrics(ctx, windowStart, now)
		if err != nil {
			return fmt.Errorf("failed to load metrics: %w", err)
		}

		fmt.Printf("Dashboard (%s, since %s)\n\n", timeframe, pm.FormatDate(windowStart))

		w := newTable()
		fmt.Fprintf(w, "Trolleys maintained\t%d\n", metrics.MaintainedCount)
		if metrics.OverdueCount > 0 {
			fmt.Fprintf(w, "Trolleys overdue\t%s\n", red(fmt.Sprintf("%d", metrics.OverdueCount)))
		} else {
			fmt.Fprintf(w, "Trolleys overdue\t%d\n", metrics.OverdueCount)
		}
		fmt.Fprintf(w, "Damages reported\t%d\n", metrics.DamagesCount)
		fmt.Fprintf(w, "Trolleys scrapped\t%d\n", metrics.ScrappedCount)
		fmt.Fprintf(w, "Maintenance cost\t%s\n", metrics.TotalCost.StringFixed(2))
		w.Flush()

		return nil
	},
}

func init() {
	dashboardCmd.Flags().StringP("timeframe", "t", "month", "Timeframe (week, month, year)")
}

func DashboardCmd() *cobra.Command {
	return dashboardCmd
}
