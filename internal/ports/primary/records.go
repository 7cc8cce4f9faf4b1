package primary

import (
	"context"

	"github.com/example/trolleypm/internal/ports/secondary"
)

// RecordFilters narrows record views: optional trolley ID, year
// ("2025") and month ("01".."12").
type RecordFilters struct {
	TrolleyID string
	Year      string
	Month     string
}

// RecordsService serves the filtered record views backing history
// screens and exports.
type RecordsService interface {
	Maintenance(ctx context.Context, filters RecordFilters) ([]*secondary.MaintenanceRecord, error)

	// Failures is the maintenance view restricted to rows carrying a
	// failure type.
	Failures(ctx context.Context, filters RecordFilters) ([]*secondary.MaintenanceRecord, error)

	Registry(ctx context.Context, filters RecordFilters) ([]*secondary.RegistryRecord, error)
	Scrapped(ctx context.Context, filters RecordFilters) ([]*secondary.ScrapRecord, error)
}
