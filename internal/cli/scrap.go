package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/trolleypm/internal/ports/primary"
	"github.com/example/trolleypm/internal/wire"
)

var scrapCmd = &cobra.Command{
	Use:   "scrap [trolley-id]",
	Short: "Mark a trolley as scrapped",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scrapDate, err := dateFlag(cmd, "date")
		if err != nil {
			return err
		}
		reason, _ := cmd.Flags().GetString("reason")
		recordedBy, _ := cmd.Flags().GetString("by")

		err = wire.ScrapService().ScrapTrolley(context.Background(), primary.ScrapTrolleyRequest{
			TrolleyID:  args[0],
			ScrapDate:  scrapDate,
			Reason:     reason,
			RecordedBy: recordedBy,
		})
		if err != nil {
			return fmt.Errorf("failed to scrap trolley: %w", err)
		}

		fmt.Printf("✓ Scrapped trolley %s\n", args[0])
		return nil
	},
}

func init() {
	scrapCmd.Flags().StringP("date", "d", "", "Scrap date (YYYY-MM-DD, defaults to today)")
	scrapCmd.Flags().StringP("reason", "r", "", "Scrap reason")
	scrapCmd.Flags().String("by", "", "Recorded by")
}

func ScrapCmd() *cobra.Command {
	return scrapCmd
}
