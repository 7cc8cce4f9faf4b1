package primary

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DashboardMetrics are the timeframe-scoped dashboard counters.
// OverdueCount reflects current overdue status and ignores the window;
// every other field is scoped to events dated on or after the window
// start.
type DashboardMetrics struct {
	MaintainedCount int
	OverdueCount    int
	DamagesCount    int
	ScrappedCount   int
	TotalCost       decimal.Decimal
}

// ReportService aggregates dashboard metrics. The caller resolves the
// timeframe preset to a concrete window start.
type ReportService interface {
	Metrics(ctx context.Context, windowStart, today time.Time) (*DashboardMetrics, error)
}
