// Package cli contains the cobra commands for the trolleypm binary.
package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/trolleypm/internal/config"
	"github.com/example/trolleypm/internal/core/pm"
)

var (
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
)

// dateFlag reads a --name flag as an ISO date, defaulting to today
// when the flag was left empty.
func dateFlag(cmd *cobra.Command, name string) (time.Time, error) {
	raw, _ := cmd.Flags().GetString(name)
	if raw == "" {
		return today(), nil
	}
	d, err := pm.ParseDate(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s: %w", name, err)
	}
	return d, nil
}

// today returns the current calendar day, truncated to midnight so
// date comparisons work on whole days.
func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// resolveWindowStart maps a timeframe preset to its window start.
func resolveWindowStart(timeframe string, today time.Time) (time.Time, error) {
	switch timeframe {
	case "week":
		return today.AddDate(0, 0, -7), nil
	case "month":
		return time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location()), nil
	case "year":
		return time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, today.Location()), nil
	}
	return time.Time{}, fmt.Errorf("unknown timeframe %q (valid: week, month, year)", timeframe)
}

// technicianOrDefault falls back to the configured default technician
// when the flag was left empty.
func technicianOrDefault(cmd *cobra.Command) string {
	technician, _ := cmd.Flags().GetString("technician")
	if technician != "" {
		return technician
	}
	cfg, err := config.Load()
	if err != nil {
		return ""
	}
	return cfg.DefaultTechnician
}

// newTable returns a tabwriter on stdout with the house settings.
func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

// riskColored renders a risk level with its color.
func riskColored(risk pm.RiskLevel) string {
	switch risk {
	case pm.RiskHigh:
		return red(string(risk))
	case pm.RiskMedium:
		return yellow(string(risk))
	default:
		return green(string(risk))
	}
}

// orNA substitutes "NA" for empty display fields.
func orNA(s string) string {
	if s == "" {
		return "NA"
	}
	return s
}
