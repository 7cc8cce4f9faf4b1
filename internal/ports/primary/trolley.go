package primary

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/example/trolleypm/internal/core/pm"
)

// ErrTrolleyNotFound is returned by Lookup for a trolley with no
// maintenance history and no scrap record. It is an explicit
// empty-result condition, distinct from a Low-risk classification.
var ErrTrolleyNotFound = errors.New("trolley not found")

// MaintenanceEvent is a history row as rendered to callers.
type MaintenanceEvent struct {
	PMDate      string
	NextDue     string
	FailureType string
	FailureNote string
	Technician  string
	Amount      string
	CreatedAt   string
}

// ScrapInfo surfaces the most recent scrap row for a trolley.
type ScrapInfo struct {
	ScrapDate string
	Reason    string
}

// TrolleySummary is the full lookup result for one trolley.
type TrolleySummary struct {
	TrolleyID string
	Scrapped  bool
	Scrap     *ScrapInfo

	// LastPM and NextDue come from the newest row by pm_date; empty
	// when the trolley has scrap history but no maintenance rows.
	LastPM  string
	NextDue string

	Overdue        bool
	TotalFailures  int
	FailuresLast90 int
	TotalCost      decimal.Decimal
	Risk           pm.RiskLevel

	History []MaintenanceEvent
}

// TrolleyService resolves per-trolley history, cost and risk.
type TrolleyService interface {
	Lookup(ctx context.Context, trolleyID string, today time.Time) (*TrolleySummary, error)
}
