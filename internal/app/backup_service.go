package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/example/trolleypm/internal/ports/primary"
)

// BackupServiceImpl implements primary.BackupService with plain file
// copies of the SQLite database.
type BackupServiceImpl struct {
	dbPath string
}

// NewBackupService creates a backup service for the database at dbPath.
func NewBackupService(dbPath string) *BackupServiceImpl {
	return &BackupServiceImpl{dbPath: dbPath}
}

// Backup writes a timestamped copy of the database into destDir and
// returns the backup path.
func (s *BackupServiceImpl) Backup(ctx context.Context, destDir string) (string, error) {
	if _, err := os.Stat(s.dbPath); err != nil {
		return "", fmt.Errorf("database file not found: %w", err)
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	name := fmt.Sprintf("trolleypm_backup_%s.db", time.Now().Format("20060102_150405"))
	dest := filepath.Join(destDir, name)

	if err := copyFile(s.dbPath, dest); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}

	logrus.WithField("path", dest).Info("database backed up")
	return dest, nil
}

// Restore overwrites the database file with the given backup.
func (s *BackupServiceImpl) Restore(ctx context.Context, backupPath string) error {
	if _, err := os.Stat(backupPath); err != nil {
		return fmt.Errorf("backup file not found: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if err := copyFile(backupPath, s.dbPath); err != nil {
		return fmt.Errorf("failed to restore backup: %w", err)
	}

	logrus.WithField("path", backupPath).Info("database restored")
	return nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}

// Ensure BackupServiceImpl implements the interface
var _ primary.BackupService = (*BackupServiceImpl)(nil)
