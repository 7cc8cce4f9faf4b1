package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/trolleypm/internal/ports/secondary"
)

const alertColumns = "id, trolley_id, failure_type, occurrences, created_at, updated_at, acknowledged"

// AlertRepository implements secondary.AlertRepository with SQLite.
type AlertRepository struct {
	db *sql.DB
}

// NewAlertRepository creates a new SQLite alert repository.
func NewAlertRepository(db *sql.DB) *AlertRepository {
	return &AlertRepository{db: db}
}

// FindOpen returns the unacknowledged alert for a (trolley, failure
// type) pair, or nil when none exists.
func (r *AlertRepository) FindOpen(ctx context.Context, trolleyID, failureType string) (*secondary.AlertRecord, error) {
	rec := &secondary.AlertRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT "+alertColumns+" FROM alerts WHERE trolley_id = ? AND failure_type = ? AND acknowledged = 0",
		trolleyID, failureType,
	).Scan(&rec.ID, &rec.TrolleyID, &rec.FailureType, &rec.Occurrences, &rec.CreatedAt, &rec.UpdatedAt, &rec.Acknowledged)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find open alert: %w", err)
	}

	return rec, nil
}

// Create inserts a new alert row.
func (r *AlertRepository) Create(ctx context.Context, rec *secondary.AlertRecord) error {
	now := time.Now().UTC().Format(time.RFC3339)
	if rec.CreatedAt == "" {
		rec.CreatedAt = now
	}
	if rec.UpdatedAt == "" {
		rec.UpdatedAt = now
	}

	res, err := r.db.ExecContext(ctx,
		"INSERT INTO alerts (trolley_id, failure_type, occurrences, created_at, updated_at, acknowledged) VALUES (?, ?, ?, ?, ?, ?)",
		rec.TrolleyID, rec.FailureType, rec.Occurrences, rec.CreatedAt, rec.UpdatedAt, rec.Acknowledged,
	)
	if err != nil {
		return fmt.Errorf("failed to create alert: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read alert id: %w", err)
	}
	rec.ID = id

	return nil
}

// UpdateOccurrences sets the occurrence count and refreshes the
// updated timestamp.
func (r *AlertRepository) UpdateOccurrences(ctx context.Context, id int64, occurrences int) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE alerts SET occurrences = ?, updated_at = ? WHERE id = ?",
		occurrences, time.Now().UTC().Format(time.RFC3339), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update alert: %w", err)
	}

	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("alert %d not found", id)
	}

	return nil
}

// List returns alerts newest first.
func (r *AlertRepository) List(ctx context.Context, includeAcknowledged bool) ([]*secondary.AlertRecord, error) {
	query := "SELECT " + alertColumns + " FROM alerts"
	if !includeAcknowledged {
		query += " WHERE acknowledged = 0"
	}
	query += " ORDER BY updated_at DESC"

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	defer rows.Close()

	var alerts []*secondary.AlertRecord
	for rows.Next() {
		rec := &secondary.AlertRecord{}
		err := rows.Scan(&rec.ID, &rec.TrolleyID, &rec.FailureType, &rec.Occurrences, &rec.CreatedAt, &rec.UpdatedAt, &rec.Acknowledged)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert: %w", err)
		}
		alerts = append(alerts, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read alerts: %w", err)
	}

	return alerts, nil
}

// Acknowledge closes an alert.
func (r *AlertRepository) Acknowledge(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE alerts SET acknowledged = 1, updated_at = ? WHERE id = ?",
		time.Now().UTC().Format(time.RFC3339), id,
	)
	if err != nil {
		return fmt.Errorf("failed to acknowledge alert: %w", err)
	}

	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("alert %d not found", id)
	}

	return nil
}

// Ensure AlertRepository implements the interface
var _ secondary.AlertRepository = (*AlertRepository)(nil)
