// Package app contains the application services implementing the
// primary ports on top of the repository interfaces.
package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/example/trolleypm/internal/core/pm"
	"github.com/example/trolleypm/internal/ports/primary"
	"github.com/example/trolleypm/internal/ports/secondary"
)

// MaintenanceServiceImpl implements primary.MaintenanceService.
type MaintenanceServiceImpl struct {
	maintenanceRepo secondary.MaintenanceRepository
	alertRepo       secondary.AlertRepository
}

// NewMaintenanceService creates a new maintenance service.
func NewMaintenanceService(maintenanceRepo secondary.MaintenanceRepository, alertRepo secondary.AlertRepository) *MaintenanceServiceImpl {
	return &MaintenanceServiceImpl{
		maintenanceRepo: maintenanceRepo,
		alertRepo:       alertRepo,
	}
}

// LogMaintenance records a PM performance and, when a failure was
// observed, feeds the chronic-alert check.
func (s *MaintenanceServiceImpl) LogMaintenance(ctx context.Context, req primary.LogMaintenanceRequest) (*primary.MaintenanceResult, error) {
	if strings.TrimSpace(req.TrolleyID) == "" {
		return nil, fmt.Errorf("trolley ID is required")
	}
	if req.PMDate.IsZero() {
		return nil, fmt.Errorf("PM date is required")
	}

	return s.record(ctx, req.TrolleyID, req.PMDate, req.FailureType, req.FailureNote, req.Technician, req.Amount)
}

// ReportDamage records a damage event. Unlike LogMaintenance, a
// failure type is mandatory here.
func (s *MaintenanceServiceImpl) ReportDamage(ctx context.Context, req primary.ReportDamageRequest) (*primary.MaintenanceResult, error) {
	if strings.TrimSpace(req.TrolleyID) == "" {
		return nil, fmt.Errorf("trolley ID is required")
	}
	if req.FailureDate.IsZero() {
		return nil, fmt.Errorf("failure date is required")
	}
	if req.FailureType == pm.FailureNone {
		return nil, fmt.Errorf("failure type is required")
	}

	return s.record(ctx, req.TrolleyID, req.FailureDate, req.FailureType, req.FailureNote, req.Technician, req.Amount)
}

// MarkDone inserts a fresh no-failure event dated today. The max
// next_due convention means this supersedes the trolley's current due
// date without touching existing rows.
func (s *MaintenanceServiceImpl) MarkDone(ctx context.Context, trolleyID string, today time.Time) (*primary.MaintenanceResult, error) {
	if strings.TrimSpace(trolleyID) == "" {
		return nil, fmt.Errorf("trolley ID is required")
	}

	return s.record(ctx, trolleyID, today, pm.FailureNone, "", "", "")
}

func (s *MaintenanceServiceImpl) record(ctx context.Context, trolleyID string, eventDate time.Time, failureType pm.FailureType, failureNote, technician, amount string) (*primary.MaintenanceResult, error) {
	trolleyID = strings.TrimSpace(trolleyID)
	nextDue := pm.NextDue(eventDate)

	if strings.TrimSpace(amount) == "" {
		amount = "NA"
	}

	rec := &secondary.MaintenanceRecord{
		TrolleyID:   trolleyID,
		PMDate:      pm.FormatDate(eventDate),
		NextDue:     pm.FormatDate(nextDue),
		FailureType: string(failureType),
		FailureNote: strings.TrimSpace(failureNote),
		Technician:  strings.TrimSpace(technician),
		Amount:      amount,
	}
	if err := s.maintenanceRepo.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to record maintenance event: %w", err)
	}

	result := &primary.MaintenanceResult{
		TrolleyID: trolleyID,
		NextDue:   nextDue,
	}

	if failureType != pm.FailureNone {
		raised, occurrences, err := s.checkChronic(ctx, trolleyID, failureType)
		if err != nil {
			return nil, err
		}
		result.AlertRaised = raised
		result.AlertOccurrences = occurrences
	}

	return result, nil
}

// checkChronic raises or refreshes the open alert for a (trolley,
// failure type) pair once its cumulative count reaches the threshold.
func (s *MaintenanceServiceImpl) checkChronic(ctx context.Context, trolleyID string, failureType pm.FailureType) (bool, int, error) {
	count, err := s.maintenanceRepo.CountByFailure(ctx, trolleyID, string(failureType))
	if err != nil {
		return false, 0, fmt.Errorf("failed to count failures: %w", err)
	}
	if count < pm.AlertThreshold {
		return false, count, nil
	}

	open, err := s.alertRepo.FindOpen(ctx, trolleyID, string(failureType))
	if err != nil {
		return false, 0, fmt.Errorf("failed to look up open alert: %w", err)
	}

	if open != nil {
		if err := s.alertRepo.UpdateOccurrences(ctx, open.ID, count); err != nil {
			return false, 0, fmt.Errorf("failed to update alert: %w", err)
		}
	} else {
		alert := &secondary.AlertRecord{
			TrolleyID:   trolleyID,
			FailureType: string(failureType),
			Occurrences: count,
		}
		if err := s.alertRepo.Create(ctx, alert); err != nil {
			return false, 0, fmt.Errorf("failed to create alert: %w", err)
		}
		logrus.WithFields(logrus.Fields{
			"trolley_id":   trolleyID,
			"failure_type": failureType,
			"occurrences":  count,
		}).Warn("chronic failure alert raised")
	}

	return true, count, nil
}

// Ensure MaintenanceServiceImpl implements the interface
var _ primary.MaintenanceService = (*MaintenanceServiceImpl)(nil)
