package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/example/trolleypm/internal/core/amount"
	"github.com/example/trolleypm/internal/core/pm"
	"github.com/example/trolleypm/internal/ports/primary"
	"github.com/example/trolleypm/internal/ports/secondary"
)

// TrolleyServiceImpl implements primary.TrolleyService.
type TrolleyServiceImpl struct {
	maintenanceRepo secondary.MaintenanceRepository
	scrapRepo       secondary.ScrapRepository
}

// NewTrolleyService creates a new trolley lookup service.
func NewTrolleyService(maintenanceRepo secondary.MaintenanceRepository, scrapRepo secondary.ScrapRepository) *TrolleyServiceImpl {
	return &TrolleyServiceImpl{
		maintenanceRepo: maintenanceRepo,
		scrapRepo:       scrapRepo,
	}
}

// Lookup resolves a trolley's history, cost and risk. A trolley with
// neither maintenance nor scrap history returns ErrTrolleyNotFound.
//
// Due status here reads the newest row by pm_date, not the maximum
// next_due the reminder view uses. Out-of-order backfilled entries can
// make the two disagree; record views have always shown the newest
// entry's due date, so lookup keeps doing the same.
func (s *TrolleyServiceImpl) Lookup(ctx context.Context, trolleyID string, today time.Time) (*primary.TrolleySummary, error) {
	trolleyID = strings.TrimSpace(trolleyID)
	if trolleyID == "" {
		return nil, fmt.Errorf("trolley ID is required")
	}

	history, err := s.maintenanceRepo.ListByTrolley(ctx, trolleyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load maintenance history: %w", err)
	}

	scrap, err := s.scrapRepo.LatestByTrolley(ctx, trolleyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load scrap record: %w", err)
	}

	if len(history) == 0 && scrap == nil {
		return nil, primary.ErrTrolleyNotFound
	}

	summary := &primary.TrolleySummary{TrolleyID: trolleyID}

	if scrap != nil {
		summary.Scrapped = true
		summary.Scrap = &primary.ScrapInfo{
			ScrapDate: scrap.ScrapDate,
			Reason:    scrap.Reason,
		}
	}

	amounts := make([]string, 0, len(history))
	for _, rec := range history {
		summary.History = append(summary.History, primary.MaintenanceEvent{
			PMDate:      rec.PMDate,
			NextDue:     rec.NextDue,
			FailureType: rec.FailureType,
			FailureNote: rec.FailureNote,
			Technician:  rec.Technician,
			Amount:      rec.Amount,
			CreatedAt:   rec.CreatedAt,
		})
		amounts = append(amounts, rec.Amount)

		if rec.FailureType != "" {
			summary.TotalFailures++

			eventDate, err := pm.ParseDate(rec.PMDate)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"trolley_id": trolleyID,
					"pm_date":    rec.PMDate,
				}).Warn("skipping failure with unparseable date")
				continue
			}
			if pm.WithinTrailingWindow(today, eventDate) {
				summary.FailuresLast90++
			}
		}
	}
	summary.TotalCost = amount.Sum(amounts)

	if len(history) > 0 {
		newest := history[0]
		summary.LastPM = newest.PMDate
		summary.NextDue = newest.NextDue

		if due, err := pm.ParseDate(newest.NextDue); err == nil {
			summary.Overdue = !due.After(today)
		} else {
			logrus.WithFields(logrus.Fields{
				"trolley_id": trolleyID,
				"next_due":   newest.NextDue,
			}).Warn("skipping unparseable due date")
		}
	}

	summary.Risk = pm.ClassifyRisk(summary.Overdue, summary.FailuresLast90)

	return summary, nil
}

// Ensure TrolleyServiceImpl implements the interface
var _ primary.TrolleyService = (*TrolleyServiceImpl)(nil)
