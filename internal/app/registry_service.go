package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/trolleypm/internal/ports/primary"
	"github.com/example/trolleypm/internal/ports/secondary"
)

// RegistryServiceImpl implements primary.RegistryService.
type RegistryServiceImpl struct {
	registryRepo secondary.RegistryRepository
}

// NewRegistryService creates a new registry service.
func NewRegistryService(registryRepo secondary.RegistryRepository) *RegistryServiceImpl {
	return &RegistryServiceImpl{registryRepo: registryRepo}
}

// RegisterTrolley appends an ADD action for a new trolley ID.
func (s *RegistryServiceImpl) RegisterTrolley(ctx context.Context, req primary.RegisterTrolleyRequest) error {
	if strings.TrimSpace(req.NewID) == "" {
		return fmt.Errorf("trolley ID is required")
	}

	rec := &secondary.RegistryRecord{
		NewID:  strings.TrimSpace(req.NewID),
		Action: "ADD",
		Note:   strings.TrimSpace(req.Note),
	}
	if err := s.registryRepo.Create(ctx, rec); err != nil {
		return fmt.Errorf("failed to register trolley: %w", err)
	}

	return nil
}

// RemapTrolley appends a MODIFY action renumbering an existing ID.
func (s *RegistryServiceImpl) RemapTrolley(ctx context.Context, req primary.RemapTrolleyRequest) error {
	if strings.TrimSpace(req.OldID) == "" {
		return fmt.Errorf("old trolley ID is required")
	}
	if strings.TrimSpace(req.NewID) == "" {
		return fmt.Errorf("new trolley ID is required")
	}

	rec := &secondary.RegistryRecord{
		OldID:  strings.TrimSpace(req.OldID),
		NewID:  strings.TrimSpace(req.NewID),
		Action: "MODIFY",
		Note:   strings.TrimSpace(req.Note),
	}
	if err := s.registryRepo.Create(ctx, rec); err != nil {
		return fmt.Errorf("failed to remap trolley: %w", err)
	}

	return nil
}

// Ensure RegistryServiceImpl implements the interface
var _ primary.RegistryService = (*RegistryServiceImpl)(nil)
