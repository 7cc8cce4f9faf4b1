package app

import (
	"context"
	"fmt"

	"github.com/example/trolleypm/internal/ports/primary"
	"github.com/example/trolleypm/internal/ports/secondary"
)

// AlertServiceImpl implements primary.AlertService.
type AlertServiceImpl struct {
	alertRepo secondary.AlertRepository
}

// NewAlertService creates a new alert service.
func NewAlertService(alertRepo secondary.AlertRepository) *AlertServiceImpl {
	return &AlertServiceImpl{alertRepo: alertRepo}
}

// ListAlerts returns alerts newest first.
func (s *AlertServiceImpl) ListAlerts(ctx context.Context, includeAcknowledged bool) ([]*primary.Alert, error) {
	records, err := s.alertRepo.List(ctx, includeAcknowledged)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}

	alerts := make([]*primary.Alert, 0, len(records))
	for _, rec := range records {
		alerts = append(alerts, &primary.Alert{
			ID:           rec.ID,
			TrolleyID:    rec.TrolleyID,
			FailureType:  rec.FailureType,
			Occurrences:  rec.Occurrences,
			CreatedAt:    rec.CreatedAt,
			UpdatedAt:    rec.UpdatedAt,
			Acknowledged: rec.Acknowledged,
		})
	}

	return alerts, nil
}

// AcknowledgeAlert closes an alert by ID.
func (s *AlertServiceImpl) AcknowledgeAlert(ctx context.Context, id int64) error {
	if err := s.alertRepo.Acknowledge(ctx, id); err != nil {
		return fmt.Errorf("failed to acknowledge alert: %w", err)
	}
	return nil
}

// Ensure AlertServiceImpl implements the interface
var _ primary.AlertService = (*AlertServiceImpl)(nil)
