// Package secondary defines the driven ports: repository interfaces
// the application core depends on, implemented by storage adapters.
package secondary

import "context"

// MaintenanceRecord is one maintenance event row. Dates are ISO
// (YYYY-MM-DD) strings; CreatedAt is an RFC 3339 timestamp. An empty
// FailureType means a routine PM with no failure.
type MaintenanceRecord struct {
	ID          int64
	TrolleyID   string
	PMDate      string
	NextDue     string
	FailureType string
	FailureNote string
	Technician  string
	Amount      string
	CreatedAt   string
}

// MaintenanceFilters narrows record listings. Year is "2025", Month is
// "01".."12"; empty fields match everything.
type MaintenanceFilters struct {
	TrolleyID    string
	Year         string
	Month        string
	FailuresOnly bool
}

// TrolleyDue is a trolley's current due date: the maximum next_due
// across its history.
type TrolleyDue struct {
	TrolleyID string
	NextDue   string
}

// MaintenanceRepository persists and aggregates maintenance events.
// Rows are append-only: there is no update or delete.
type MaintenanceRepository interface {
	Create(ctx context.Context, rec *MaintenanceRecord) error

	// ListByTrolley returns a trolley's full history, newest pm_date
	// first.
	ListByTrolley(ctx context.Context, trolleyID string) ([]*MaintenanceRecord, error)

	// List returns filtered records, newest pm_date first.
	List(ctx context.Context, filters MaintenanceFilters) ([]*MaintenanceRecord, error)

	// CountByFailure counts all rows for an exact (trolley, failure
	// type) pair, cumulative over all time.
	CountByFailure(ctx context.Context, trolleyID, failureType string) (int, error)

	// MaxDuePerTrolley returns every trolley with maintenance history
	// and its maximum next_due.
	MaxDuePerTrolley(ctx context.Context) ([]TrolleyDue, error)

	// CountDistinctMaintainedSince counts distinct trolleys with an
	// event dated on or after start.
	CountDistinctMaintainedSince(ctx context.Context, startISO string) (int, error)

	// CountDistinctOverdue counts distinct trolleys with any event
	// whose next_due is on or before today. Deliberately not
	// window-scoped.
	CountDistinctOverdue(ctx context.Context, todayISO string) (int, error)

	// CountFailuresSince counts failure rows (not distinct trolleys)
	// dated on or after start.
	CountFailuresSince(ctx context.Context, startISO string) (int, error)

	// AmountsSince returns the raw amount fields of events dated on
	// or after start.
	AmountsSince(ctx context.Context, startISO string) ([]string, error)
}

// AlertRecord is a chronic-failure alert row.
type AlertRecord struct {
	ID           int64
	TrolleyID    string
	FailureType  string
	Occurrences  int
	CreatedAt    string
	UpdatedAt    string
	Acknowledged bool
}

// AlertRepository maintains chronic alerts. At most one unacknowledged
// alert exists per (trolley, failure type) pair.
type AlertRepository interface {
	// FindOpen returns the unacknowledged alert for a pair, or nil
	// when none exists.
	FindOpen(ctx context.Context, trolleyID, failureType string) (*AlertRecord, error)

	Create(ctx context.Context, rec *AlertRecord) error

	// UpdateOccurrences sets the occurrence count and refreshes the
	// updated timestamp on an existing alert.
	UpdateOccurrences(ctx context.Context, id int64, occurrences int) error

	// List returns alerts newest first; unacknowledged only unless
	// includeAcknowledged is set.
	List(ctx context.Context, includeAcknowledged bool) ([]*AlertRecord, error)

	Acknowledge(ctx context.Context, id int64) error
}

// RegistryRecord is one trolley ID registry action (ADD or MODIFY).
type RegistryRecord struct {
	ID        int64
	OldID     string
	NewID     string
	Action    string
	Note      string
	CreatedAt string
}

// RegistryFilters narrows registry listings. The trolley filter
// matches old_id, mirroring how record views have always filtered
// this table.
type RegistryFilters struct {
	TrolleyID string
	Year      string
	Month     string
}

// RegistryRepository is the append-only trolley ID audit log.
type RegistryRepository interface {
	Create(ctx context.Context, rec *RegistryRecord) error
	List(ctx context.Context, filters RegistryFilters) ([]*RegistryRecord, error)
}

// ScrapRecord marks a trolley as permanently retired.
type ScrapRecord struct {
	ID         int64
	TrolleyID  string
	ScrapDate  string
	Reason     string
	RecordedBy string
	CreatedAt  string
}

// ScrapFilters narrows scrap listings.
type ScrapFilters struct {
	TrolleyID string
	Year      string
	Month     string
}

// ScrapRepository is the append-only scrap log. Multiple scrap rows
// per trolley are permitted; the latest by scrap_date wins for
// display.
type ScrapRepository interface {
	Create(ctx context.Context, rec *ScrapRecord) error

	// LatestByTrolley returns the most recent scrap row for a
	// trolley, or nil when it was never scrapped.
	LatestByTrolley(ctx context.Context, trolleyID string) (*ScrapRecord, error)

	// CountSince counts scrap rows dated on or after start.
	CountSince(ctx context.Context, startISO string) (int, error)

	List(ctx context.Context, filters ScrapFilters) ([]*ScrapRecord, error)
}
