package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/trolleypm/internal/ports/secondary"
)

const scrapColumns = "id, trolley_id, scrap_date, reason, recorded_by, created_at"

// ScrapRepository implements secondary.ScrapRepository with SQLite.
type ScrapRepository struct {
	db *sql.DB
}

// NewScrapRepository creates a new SQLite scrap repository.
func NewScrapRepository(db *sql.DB) *ScrapRepository {
	return &ScrapRepository{db: db}
}

// Create appends a scrap row.
func (r *ScrapRepository) Create(ctx context.Context, rec *secondary.ScrapRecord) error {
	if rec.CreatedAt == "" {
		rec.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	res, err := r.db.ExecContext(ctx,
		"INSERT INTO scrapped (trolley_id, scrap_date, reason, recorded_by, created_at) VALUES (?, ?, ?, ?, ?)",
		rec.TrolleyID, rec.ScrapDate, nullable(rec.Reason), nullable(rec.RecordedBy), rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create scrap record: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read scrap record id: %w", err)
	}
	rec.ID = id

	return nil
}

// LatestByTrolley returns the most recent scrap row for a trolley, or
// nil when it was never scrapped.
func (r *ScrapRepository) LatestByTrolley(ctx context.Context, trolleyID string) (*secondary.ScrapRecord, error) {
	var reason, recordedBy sql.NullString

	rec := &secondary.ScrapRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT "+scrapColumns+" FROM scrapped WHERE trolley_id = ? ORDER BY scrap_date DESC LIMIT 1",
		trolleyID,
	).Scan(&rec.ID, &rec.TrolleyID, &rec.ScrapDate, &reason, &recordedBy, &rec.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scrap record: %w", err)
	}

	rec.Reason = reason.String
	rec.RecordedBy = recordedBy.String

	return rec, nil
}

// CountSince counts scrap rows dated on or after start.
func (r *ScrapRepository) CountSince(ctx context.Context, startISO string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM scrapped WHERE scrap_date >= ?",
		startISO,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count scrapped trolleys: %w", err)
	}
	return count, nil
}

// List returns scrap rows, newest scrap_date first.
func (r *ScrapRepository) List(ctx context.Context, filters secondary.ScrapFilters) ([]*secondary.ScrapRecord, error) {
	query := "SELECT " + scrapColumns + " FROM scrapped WHERE 1=1"
	args := []any{}

	if filters.TrolleyID != "" {
		query += " AND trolley_id = ?"
		args = append(args, filters.TrolleyID)
	}
	if filters.Year != "" {
		query += " AND strftime('%Y', scrap_date) = ?"
		args = append(args, filters.Year)
	}
	if filters.Month != "" {
		query += " AND strftime('%m', scrap_date) = ?"
		args = append(args, filters.Month)
	}

	query += " ORDER BY scrap_date DESC LIMIT 5000"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list scrap records: %w", err)
	}
	defer rows.Close()

	var records []*secondary.ScrapRecord
	for rows.Next() {
		var reason, recordedBy sql.NullString

		rec := &secondary.ScrapRecord{}
		if err := rows.Scan(&rec.ID, &rec.TrolleyID, &rec.ScrapDate, &reason, &recordedBy, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan scrap record: %w", err)
		}

		rec.Reason = reason.String
		rec.RecordedBy = recordedBy.String

		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read scrap records: %w", err)
	}

	return records, nil
}

// Ensure ScrapRepository implements the interface
var _ secondary.ScrapRepository = (*ScrapRepository)(nil)
