package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/trolleypm/internal/cli"
	"github.com/example/trolleypm/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "trolleypm",
		Short:   "trolleypm - preventive maintenance tracker for the trolley fleet",
		Version: version.String(),
		Long: `trolleypm tracks preventive maintenance for mail trolleys: PM logs,
damage reports, due-date reminders, chronic failure alerts and fleet metrics.`,
	}

	rootCmd.AddCommand(cli.LogCmd())
	rootCmd.AddCommand(cli.DamageCmd())
	rootCmd.AddCommand(cli.RemindersCmd())
	rootCmd.AddCommand(cli.TrolleyCmd())
	rootCmd.AddCommand(cli.DashboardCmd())
	rootCmd.AddCommand(cli.RecordsCmd())
	rootCmd.AddCommand(cli.RegisterCmd())
	rootCmd.AddCommand(cli.RemapCmd())
	rootCmd.AddCommand(cli.ScrapCmd())
	rootCmd.AddCommand(cli.AlertsCmd())
	rootCmd.AddCommand(cli.BackupCmd())
	rootCmd.AddCommand(cli.RestoreCmd())
	rootCmd.AddCommand(cli.ConfigCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
