package primary

import "context"

// Alert is a chronic-failure alert as rendered to callers.
type Alert struct {
	ID           int64
	TrolleyID    string
	FailureType  string
	Occurrences  int
	CreatedAt    string
	UpdatedAt    string
	Acknowledged bool
}

// AlertService exposes chronic alerts. Alerts are raised by the
// maintenance service; nothing closes them automatically.
type AlertService interface {
	ListAlerts(ctx context.Context, includeAcknowledged bool) ([]*Alert, error)
	AcknowledgeAlert(ctx context.Context, id int64) error
}
