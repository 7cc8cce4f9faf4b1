package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/trolleypm/internal/ports/secondary"
)

// RegistryRepository implements secondary.RegistryRepository with SQLite.
type RegistryRepository struct {
	db *sql.DB
}

// NewRegistryRepository creates a new SQLite registry repository.
func NewRegistryRepository(db *sql.DB) *RegistryRepository {
	return &RegistryRepository{db: db}
}

// Create appends a registry action.
func (r *RegistryRepository) Create(ctx context.Context, rec *secondary.RegistryRecord) error {
	if rec.CreatedAt == "" {
		rec.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	res, err := r.db.ExecContext(ctx,
		"INSERT INTO trolley_registry (old_id, new_id, action, note, created_at) VALUES (?, ?, ?, ?, ?)",
		nullable(rec.OldID), nullable(rec.NewID), rec.Action, nullable(rec.Note), rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create registry action: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read registry action id: %w", err)
	}
	rec.ID = id

	return nil
}

// List returns registry actions, newest first. The trolley filter
// matches old_id.
func (r *RegistryRepository) List(ctx context.Context, filters secondary.RegistryFilters) ([]*secondary.RegistryRecord, error) {
	query := "SELECT id, old_id, new_id, action, note, created_at FROM trolley_registry WHERE 1=1"
	args := []any{}

	if filters.TrolleyID != "" {
		query += " AND old_id = ?"
		args = append(args, filters.TrolleyID)
	}
	if filters.Year != "" {
		query += " AND strftime('%Y', created_at) = ?"
		args = append(args, filters.Year)
	}
	if filters.Month != "" {
		query += " AND strftime('%m', created_at) = ?"
		args = append(args, filters.Month)
	}

	query += " ORDER BY created_at DESC LIMIT 5000"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list registry actions: %w", err)
	}
	defer rows.Close()

	var records []*secondary.RegistryRecord
	for rows.Next() {
		var oldID, newID, note sql.NullString

		rec := &secondary.RegistryRecord{}
		if err := rows.Scan(&rec.ID, &oldID, &newID, &rec.Action, &note, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan registry action: %w", err)
		}

		rec.OldID = oldID.String
		rec.NewID = newID.String
		rec.Note = note.String

		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read registry actions: %w", err)
	}

	return records, nil
}

// Ensure RegistryRepository implements the interface
var _ secondary.RegistryRepository = (*RegistryRepository)(nil)
