package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/trolleypm/internal/core/pm"
	"github.com/example/trolleypm/internal/ports/primary"
	"github.com/example/trolleypm/internal/ports/secondary"
)

// ScrapServiceImpl implements primary.ScrapService.
type ScrapServiceImpl struct {
	scrapRepo secondary.ScrapRepository
}

// NewScrapService creates a new scrap service.
func NewScrapService(scrapRepo secondary.ScrapRepository) *ScrapServiceImpl {
	return &ScrapServiceImpl{scrapRepo: scrapRepo}
}

// ScrapTrolley appends a scrap row. Scrapping the same trolley twice
// is allowed; the latest row wins for display.
func (s *ScrapServiceImpl) ScrapTrolley(ctx context.Context, req primary.ScrapTrolleyRequest) error {
	if strings.TrimSpace(req.TrolleyID) == "" {
		return fmt.Errorf("trolley ID is required")
	}
	if req.ScrapDate.IsZero() {
		return fmt.Errorf("scrap date is required")
	}

	rec := &secondary.ScrapRecord{
		TrolleyID:  strings.TrimSpace(req.TrolleyID),
		ScrapDate:  pm.FormatDate(req.ScrapDate),
		Reason:     strings.TrimSpace(req.Reason),
		RecordedBy: strings.TrimSpace(req.RecordedBy),
	}
	if err := s.scrapRepo.Create(ctx, rec); err != nil {
		return fmt.Errorf("failed to scrap trolley: %w", err)
	}

	return nil
}

// Ensure ScrapServiceImpl implements the interface
var _ primary.ScrapService = (*ScrapServiceImpl)(nil)
