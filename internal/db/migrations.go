package db

import (
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"
)

// optionalMaintenanceColumns were added after the first release; older
// database files may lack them.
var optionalMaintenanceColumns = map[string]string{
	"failure_type": "TEXT",
	"failure_note": "TEXT",
	"technician":   "TEXT",
	"amount":       "TEXT",
}

// EnsureMaintenanceColumns adds any missing optional columns to the
// maintenance table. Additive only; existing data is untouched.
func EnsureMaintenanceColumns(database *sql.DB) error {
	rows, err := database.Query("PRAGMA table_info(maintenance)")
	if err != nil {
		return fmt.Errorf("failed to inspect maintenance table: %w", err)
	}
	defer rows.Close()

	existing := make(map[string]bool)
	for rows.Next() {
		var (
			cid     int
			name    string
			colType string
			notNull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dflt, &pk); err != nil {
			return fmt.Errorf("failed to scan column info: %w", err)
		}
		existing[name] = true
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read column info: %w", err)
	}

	for col, colType := range optionalMaintenanceColumns {
		if existing[col] {
			continue
		}
		stmt := fmt.Sprintf("ALTER TABLE maintenance ADD COLUMN %s %s", col, colType)
		if _, err := database.Exec(stmt); err != nil {
			return fmt.Errorf("failed to add column %s: %w", col, err)
		}
		logrus.WithField("column", col).Info("added missing maintenance column")
	}

	return nil
}
