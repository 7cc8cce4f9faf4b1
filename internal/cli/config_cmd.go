package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/trolleypm/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		dataDir, err := cfg.ResolveDataDir()
		if err != nil {
			return err
		}

		fmt.Printf("Data dir:            %s\n", dataDir)
		fmt.Printf("Default technician:  %s\n", orNA(cfg.DefaultTechnician))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update configuration values",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		changed := false
		if cmd.Flags().Changed("data-dir") {
			cfg.DataDir, _ = cmd.Flags().GetString("data-dir")
			changed = true
		}
		if cmd.Flags().Changed("technician") {
			cfg.DefaultTechnician, _ = cmd.Flags().GetString("technician")
			changed = true
		}
		if !changed {
			return fmt.Errorf("nothing to change (use --data-dir or --technician)")
		}

		if err := config.Save(cfg); err != nil {
			return err
		}

		fmt.Println("✓ Configuration saved")
		return nil
	},
}

func init() {
	configSetCmd.Flags().String("data-dir", "", "Directory holding the database file")
	configSetCmd.Flags().String("technician", "", "Default technician for log/damage commands")
	configCmd.AddCommand(configSetCmd)
}

func ConfigCmd() *cobra.Command {
	return configCmd
}
