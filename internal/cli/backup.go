package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/trolleypm/internal/config"
	"github.com/example/trolleypm/internal/db"
	"github.com/example/trolleypm/internal/wire"
)

var backupCmd = &cobra.Command{
	Use:   "backup [dest-dir]",
	Short: "Back up the database",
	Long:  "Copy the database file into a backup directory. Defaults to the backups/ directory under the data dir.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		destDir := ""
		if len(args) == 1 {
			destDir = args[0]
		} else {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			dataDir, err := cfg.ResolveDataDir()
			if err != nil {
				return err
			}
			destDir = filepath.Join(dataDir, "backups")
		}

		path, err := wire.BackupService().Backup(context.Background(), destDir)
		if err != nil {
			return fmt.Errorf("failed to back up database: %w", err)
		}

		fmt.Printf("✓ Backed up database to %s\n", path)
		return nil
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore [backup-file]",
	Short: "Restore the database from a backup",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		service := wire.BackupService()

		// release the live connection before overwriting the file
		if err := db.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}

		if err := service.Restore(context.Background(), args[0]); err != nil {
			return fmt.Errorf("failed to restore database: %w", err)
		}

		fmt.Printf("✓ Restored database from %s\n", args[0])
		return nil
	},
}

func BackupCmd() *cobra.Command {
	return backupCmd
}

func RestoreCmd() *cobra.Command {
	return restoreCmd
}
