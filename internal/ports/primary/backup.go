package primary

import "context"

// BackupService copies the database file out and back. Storage errors
// are fatal to the operation; there is no retry.
type BackupService interface {
	// Backup writes a timestamped copy of the database into destDir
	// and returns the backup path.
	Backup(ctx context.Context, destDir string) (string, error)

	// Restore overwrites the database file with the given backup.
	Restore(ctx context.Context, backupPath string) error
}
