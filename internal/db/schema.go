package db

// SchemaSQL is the authoritative schema for fresh installs.
//
// All tests create their databases from GetSchemaSQL() so test and
// production schemas cannot drift: a repository referencing a column
// missing here fails immediately with "no such column".
//
// All date columns (pm_date, next_due, scrap_date) hold ISO dates
// (YYYY-MM-DD); created_at/updated_at hold RFC 3339 timestamps. Rows in
// maintenance, trolley_registry and scrapped are append-only.
const SchemaSQL = `
-- Maintenance events (one row per PM performance or damage report)
CREATE TABLE IF NOT EXISTS maintenance (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	trolley_id TEXT NOT NULL,
	pm_date TEXT NOT NULL,
	next_due TEXT NOT NULL,
	failure_type TEXT,
	failure_note TEXT,
	technician TEXT,
	amount TEXT,
	created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_maintenance_trolley ON maintenance(trolley_id);
CREATE INDEX IF NOT EXISTS idx_maintenance_pm_date ON maintenance(pm_date);
CREATE INDEX IF NOT EXISTS idx_maintenance_next_due ON maintenance(next_due);

-- Chronic alerts (repeated failures of one category on one trolley)
CREATE TABLE IF NOT EXISTS alerts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	trolley_id TEXT NOT NULL,
	failure_type TEXT NOT NULL,
	occurrences INTEGER NOT NULL,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL,
	acknowledged INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_alerts_open ON alerts(trolley_id, failure_type, acknowledged);

-- Trolley ID registry (ADD / MODIFY audit log)
CREATE TABLE IF NOT EXISTS trolley_registry (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	old_id TEXT,
	new_id TEXT,
	action TEXT NOT NULL CHECK(action IN ('ADD', 'MODIFY')),
	note TEXT,
	created_at TEXT NOT NULL
);

-- Scrapped trolleys (permanently retired)
CREATE TABLE IF NOT EXISTS scrapped (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	trolley_id TEXT NOT NULL,
	scrap_date TEXT NOT NULL,
	reason TEXT,
	recorded_by TEXT,
	created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_scrapped_trolley ON scrapped(trolley_id);
CREATE INDEX IF NOT EXISTS idx_scrapped_date ON scrapped(scrap_date);
`

// InitSchema creates the database schema and backfills optional
// columns on databases created by older builds.
func InitSchema() error {
	database, err := GetDB()
	if err != nil {
		return err
	}

	if _, err := database.Exec(SchemaSQL); err != nil {
		return err
	}

	return EnsureMaintenanceColumns(database)
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
