package app

import (
	"context"
	"fmt"

	"github.com/example/trolleypm/internal/ports/primary"
	"github.com/example/trolleypm/internal/ports/secondary"
)

// RecordsServiceImpl implements primary.RecordsService.
type RecordsServiceImpl struct {
	maintenanceRepo secondary.MaintenanceRepository
	registryRepo    secondary.RegistryRepository
	scrapRepo       secondary.ScrapRepository
}

// NewRecordsService creates a new records service.
func NewRecordsService(maintenanceRepo secondary.MaintenanceRepository, registryRepo secondary.RegistryRepository, scrapRepo secondary.ScrapRepository) *RecordsServiceImpl {
	return &RecordsServiceImpl{
		maintenanceRepo: maintenanceRepo,
		registryRepo:    registryRepo,
		scrapRepo:       scrapRepo,
	}
}

// Maintenance returns filtered maintenance records, newest first.
func (s *RecordsServiceImpl) Maintenance(ctx context.Context, filters primary.RecordFilters) ([]*secondary.MaintenanceRecord, error) {
	records, err := s.maintenanceRepo.List(ctx, secondary.MaintenanceFilters{
		TrolleyID: filters.TrolleyID,
		Year:      filters.Year,
		Month:     filters.Month,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenance records: %w", err)
	}
	return records, nil
}

// Failures returns the maintenance view restricted to failure rows.
func (s *RecordsServiceImpl) Failures(ctx context.Context, filters primary.RecordFilters) ([]*secondary.MaintenanceRecord, error) {
	records, err := s.maintenanceRepo.List(ctx, secondary.MaintenanceFilters{
		TrolleyID:    filters.TrolleyID,
		Year:         filters.Year,
		Month:        filters.Month,
		FailuresOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list failure records: %w", err)
	}
	return records, nil
}

// Registry returns filtered registry actions, newest first.
func (s *RecordsServiceImpl) Registry(ctx context.Context, filters primary.RecordFilters) ([]*secondary.RegistryRecord, error) {
	records, err := s.registryRepo.List(ctx, secondary.RegistryFilters{
		TrolleyID: filters.TrolleyID,
		Year:      filters.Year,
		Month:     filters.Month,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list registry records: %w", err)
	}
	return records, nil
}

// Scrapped returns filtered scrap rows, newest first.
func (s *RecordsServiceImpl) Scrapped(ctx context.Context, filters primary.RecordFilters) ([]*secondary.ScrapRecord, error) {
	records, err := s.scrapRepo.List(ctx, secondary.ScrapFilters{
		TrolleyID: filters.TrolleyID,
		Year:      filters.Year,
		Month:     filters.Month,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list scrap records: %w", err)
	}
	return records, nil
}

// Ensure RecordsServiceImpl implements the interface
var _ primary.RecordsService = (*RecordsServiceImpl)(nil)
