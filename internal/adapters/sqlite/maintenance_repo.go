// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/trolleypm/internal/ports/secondary"
)

const maintenanceColumns = "id, trolley_id, pm_date, next_due, failure_type, failure_note, technician, amount, created_at"

// MaintenanceRepository implements secondary.MaintenanceRepository with SQLite.
type MaintenanceRepository struct {
	db *sql.DB
}

// NewMaintenanceRepository creates a new SQLite maintenance repository.
func NewMaintenanceRepository(db *sql.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

// Create appends a maintenance event. CreatedAt is assigned here when
// the caller left it empty.
func (r *MaintenanceRepository) Create(ctx context.Context, rec *secondary.MaintenanceRecord) error {
	if rec.CreatedAt == "" {
		rec.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	res, err := r.db.ExecContext(ctx,
		"INSERT INTO maintenance (trolley_id, pm_date, next_due, failure_type, failure_note, technician, amount, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		rec.TrolleyID, rec.PMDate, rec.NextDue,
		nullable(rec.FailureType), nullable(rec.FailureNote), nullable(rec.Technician), nullable(rec.Amount),
		rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create maintenance event: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read maintenance event id: %w", err)
	}
	rec.ID = id

	return nil
}

// ListByTrolley returns a trolley's full history, newest pm_date first.
func (r *MaintenanceRepository) ListByTrolley(ctx context.Context, trolleyID string) ([]*secondary.MaintenanceRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+maintenanceColumns+" FROM maintenance WHERE trolley_id = ? ORDER BY pm_date DESC",
		trolleyID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenance history: %w", err)
	}
	defer rows.Close()

	return scanMaintenanceRows(rows)
}

// List returns filtered records, newest pm_date first.
func (r *MaintenanceRepository) List(ctx context.Context, filters secondary.MaintenanceFilters) ([]*secondary.MaintenanceRecord, error) {
	query := "SELECT " + maintenanceColumns + " FROM maintenance WHERE 1=1"
	args := []any{}

	if filters.TrolleyID != "" {
		query += " AND trolley_id = ?"
		args = append(args, filters.TrolleyID)
	}
	if filters.Year != "" {
		query += " AND strftime('%Y', pm_date) = ?"
		args = append(args, filters.Year)
	}
	if filters.Month != "" {
		query += " AND strftime('%m', pm_date) = ?"
		args = append(args, filters.Month)
	}
	if filters.FailuresOnly {
		query += " AND failure_type IS NOT NULL"
	}

	query += " ORDER BY pm_date DESC LIMIT 5000"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenance events: %w", err)
	}
	defer rows.Close()

	return scanMaintenanceRows(rows)
}

// CountByFailure counts all rows for an exact (trolley, failure type)
// pair, cumulative over all time.
func (r *MaintenanceRepository) CountByFailure(ctx context.Context, trolleyID, failureType string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM maintenance WHERE trolley_id = ? AND failure_type = ?",
		trolleyID, failureType,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count failures: %w", err)
	}
	return count, nil
}

// MaxDuePerTrolley returns every trolley with maintenance history and
// its maximum next_due.
func (r *MaintenanceRepository) MaxDuePerTrolley(ctx context.Context) ([]secondary.TrolleyDue, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT trolley_id, MAX(next_due) FROM maintenance GROUP BY trolley_id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query due dates: %w", err)
	}
	defer rows.Close()

	var dues []secondary.TrolleyDue
	for rows.Next() {
		var d secondary.TrolleyDue
		if err := rows.Scan(&d.TrolleyID, &d.NextDue); err != nil {
			return nil, fmt.Errorf("failed to scan due date: %w", err)
		}
		dues = append(dues, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read due dates: %w", err)
	}

	return dues, nil
}

// CountDistinctMaintainedSince counts distinct trolleys with an event
// dated on or after start.
func (r *MaintenanceRepository) CountDistinctMaintainedSince(ctx context.Context, startISO string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(DISTINCT trolley_id) FROM maintenance WHERE pm_date >= ?",
		startISO,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count maintained trolleys: %w", err)
	}
	return count, nil
}

// CountDistinctOverdue counts distinct trolleys with any event whose
// next_due is on or before today.
func (r *MaintenanceRepository) CountDistinctOverdue(ctx context.Context, todayISO string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(DISTINCT trolley_id) FROM maintenance WHERE next_due <= ?",
		todayISO,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count overdue trolleys: %w", err)
	}
	return count, nil
}

// CountFailuresSince counts failure rows dated on or after start.
func (r *MaintenanceRepository) CountFailuresSince(ctx context.Context, startISO string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM maintenance WHERE failure_type IS NOT NULL AND pm_date >= ?",
		startISO,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count damage reports: %w", err)
	}
	return count, nil
}

// AmountsSince returns the raw amount fields of events dated on or
// after start.
func (r *MaintenanceRepository) AmountsSince(ctx context.Context, startISO string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT amount FROM maintenance WHERE pm_date >= ?",
		startISO,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query amounts: %w", err)
	}
	defer rows.Close()

	var amounts []string
	for rows.Next() {
		var amt sql.NullString
		if err := rows.Scan(&amt); err != nil {
			return nil, fmt.Errorf("failed to scan amount: %w", err)
		}
		amounts = append(amounts, amt.String)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read amounts: %w", err)
	}

	return amounts, nil
}

func scanMaintenanceRows(rows *sql.Rows) ([]*secondary.MaintenanceRecord, error) {
	var records []*secondary.MaintenanceRecord
	for rows.Next() {
		var (
			failureType sql.NullString
			failureNote sql.NullString
			technician  sql.NullString
			amt         sql.NullString
		)

		rec := &secondary.MaintenanceRecord{}
		err := rows.Scan(&rec.ID, &rec.TrolleyID, &rec.PMDate, &rec.NextDue, &failureType, &failureNote, &technician, &amt, &rec.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan maintenance event: %w", err)
		}

		rec.FailureType = failureType.String
		rec.FailureNote = failureNote.String
		rec.Technician = technician.String
		rec.Amount = amt.String

		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read maintenance events: %w", err)
	}

	return records, nil
}

// nullable maps empty strings to NULL columns.
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// Ensure MaintenanceRepository implements the interface
var _ secondary.MaintenanceRepository = (*MaintenanceRepository)(nil)
