package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/trolleypm/internal/core/amount"
	"github.com/example/trolleypm/internal/core/pm"
	"github.com/example/trolleypm/internal/ports/primary"
	"github.com/example/trolleypm/internal/ports/secondary"
)

// ReportServiceImpl implements primary.ReportService.
type ReportServiceImpl struct {
	maintenanceRepo secondary.MaintenanceRepository
	scrapRepo       secondary.ScrapRepository
}

// NewReportService creates a new report service.
func NewReportService(maintenanceRepo secondary.MaintenanceRepository, scrapRepo secondary.ScrapRepository) *ReportServiceImpl {
	return &ReportServiceImpl{
		maintenanceRepo: maintenanceRepo,
		scrapRepo:       scrapRepo,
	}
}

// Metrics aggregates the dashboard counters for a window. The overdue
// count is a point-in-time fact about today and ignores the window
// start; narrowing the timeframe never shrinks it.
func (s *ReportServiceImpl) Metrics(ctx context.Context, windowStart, today time.Time) (*primary.DashboardMetrics, error) {
	start := pm.FormatDate(windowStart)
	todayISO := pm.FormatDate(today)

	maintained, err := s.maintenanceRepo.CountDistinctMaintainedSince(ctx, start)
	if err != nil {
		return nil, fmt.Errorf("failed to count maintained trolleys: %w", err)
	}

	overdue, err := s.maintenanceRepo.CountDistinctOverdue(ctx, todayISO)
	if err != nil {
		return nil, fmt.Errorf("failed to count overdue trolleys: %w", err)
	}

	damages, err := s.maintenanceRepo.CountFailuresSince(ctx, start)
	if err != nil {
		return nil, fmt.Errorf("failed to count damage reports: %w", err)
	}

	scrapped, err := s.scrapRepo.CountSince(ctx, start)
	if err != nil {
		return nil, fmt.Errorf("failed to count scrapped trolleys: %w", err)
	}

	amounts, err := s.maintenanceRepo.AmountsSince(ctx, start)
	if err != nil {
		return nil, fmt.Errorf("failed to load amounts: %w", err)
	}

	return &primary.DashboardMetrics{
		MaintainedCount: maintained,
		OverdueCount:    overdue,
		DamagesCount:    damages,
		ScrappedCount:   scrapped,
		TotalCost:       amount.Sum(amounts),
	}, nil
}

// Ensure ReportServiceImpl implements the interface
var _ primary.ReportService = (*ReportServiceImpl)(nil)
