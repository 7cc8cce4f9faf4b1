package app_test

import (
	"context"
	"errors"
	"strings"

	"github.com/example/trolleypm/internal/ports/secondary"
)

var errNotFound = errors.New("not found")

// mockMaintenanceRepository is an in-memory secondary.MaintenanceRepository.
type mockMaintenanceRepository struct {
	records []*secondary.MaintenanceRecord
	nextID  int64

	createErr error
	queryErr  error
}

func newMockMaintenanceRepository() *mockMaintenanceRepository {
	return &mockMaintenanceRepository{}
}

func (m *mockMaintenanceRepository) Create(ctx context.Context, rec *secondary.MaintenanceRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.nextID++
	rec.ID = m.nextID
	if rec.CreatedAt == "" {
		rec.CreatedAt = "2025-01-01T00:00:00Z"
	}
	m.records = append(m.records, rec)
	return nil
}

func (m *mockMaintenanceRepository) ListByTrolley(ctx context.Context, trolleyID string) ([]*secondary.MaintenanceRecord, error) {
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	var out []*secondary.MaintenanceRecord
	for _, rec := range m.records {
		if rec.TrolleyID == trolleyID {
			out = append(out, rec)
		}
	}
	// newest pm_date first, matching the SQL adapter
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].PMDate > out[i].PMDate {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

func (m *mockMaintenanceRepository) List(ctx context.Context, filters secondary.MaintenanceFilters) ([]*secondary.MaintenanceRecord, error) {
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	var out []*secondary.MaintenanceRecord
	for _, rec := range m.records {
		if filters.TrolleyID != "" && rec.TrolleyID != filters.TrolleyID {
			continue
		}
		if filters.Year != "" && !strings.HasPrefix(rec.PMDate, filters.Year) {
			continue
		}
		if filters.Month != "" && len(rec.PMDate) >= 7 && rec.PMDate[5:7] != filters.Month {
			continue
		}
		if filters.FailuresOnly && rec.FailureType == "" {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (m *mockMaintenanceRepository) CountByFailure(ctx context.Context, trolleyID, failureType string) (int, error) {
	if m.queryErr != nil {
		return 0, m.queryErr
	}
	count := 0
	for _, rec := range m.records {
		if rec.TrolleyID == trolleyID && rec.FailureType == failureType && rec.FailureType != "" {
			count++
		}
	}
	return count, nil
}

func (m *mockMaintenanceRepository) MaxDuePerTrolley(ctx context.Context) ([]secondary.TrolleyDue, error) {
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	max := make(map[string]string)
	var order []string
	for _, rec := range m.records {
		if cur, ok := max[rec.TrolleyID]; !ok {
			max[rec.TrolleyID] = rec.NextDue
			order = append(order, rec.TrolleyID)
		} else if rec.NextDue > cur {
			max[rec.TrolleyID] = rec.NextDue
		}
	}
	var dues []secondary.TrolleyDue
	for _, id := range order {
		dues = append(dues, secondary.TrolleyDue{TrolleyID: id, NextDue: max[id]})
	}
	return dues, nil
}

func (m *mockMaintenanceRepository) CountDistinctMaintainedSince(ctx context.Context, startISO string) (int, error) {
	if m.queryErr != nil {
		return 0, m.queryErr
	}
	seen := make(map[string]bool)
	for _, rec := range m.records {
		if rec.PMDate >= startISO {
			seen[rec.TrolleyID] = true
		}
	}
	return len(seen), nil
}

func (m *mockMaintenanceRepository) CountDistinctOverdue(ctx context.Context, todayISO string) (int, error) {
	if m.queryErr != nil {
		return 0, m.queryErr
	}
	seen := make(map[string]bool)
	for _, rec := range m.records {
		if rec.NextDue <= todayISO {
			seen[rec.TrolleyID] = true
		}
	}
	return len(seen), nil
}

func (m *mockMaintenanceRepository) CountFailuresSince(ctx context.Context, startISO string) (int, error) {
	if m.queryErr != nil {
		return 0, m.queryErr
	}
	count := 0
	for _, rec := range m.records {
		if rec.FailureType != "" && rec.PMDate >= startISO {
			count++
		}
	}
	return count, nil
}

func (m *mockMaintenanceRepository) AmountsSince(ctx context.Context, startISO string) ([]string, error) {
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	var amounts []string
	for _, rec := range m.records {
		if rec.PMDate >= startISO {
			amounts = append(amounts, rec.Amount)
		}
	}
	return amounts, nil
}

var _ secondary.MaintenanceRepository = (*mockMaintenanceRepository)(nil)

// mockAlertRepository is an in-memory secondary.AlertRepository.
type mockAlertRepository struct {
	alerts []*secondary.AlertRecord
	nextID int64

	createErr error
	queryErr  error
}

func newMockAlertRepository() *mockAlertRepository {
	return &mockAlertRepository{}
}

func (m *mockAlertRepository) FindOpen(ctx context.Context, trolleyID, failureType string) (*secondary.AlertRecord, error) {
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	for _, a := range m.alerts {
		if a.TrolleyID == trolleyID && a.FailureType == failureType && !a.Acknowledged {
			return a, nil
		}
	}
	return nil, nil
}

func (m *mockAlertRepository) Create(ctx context.Context, rec *secondary.AlertRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.nextID++
	rec.ID = m.nextID
	m.alerts = append(m.alerts, rec)
	return nil
}

func (m *mockAlertRepository) UpdateOccurrences(ctx context.Context, id int64, occurrences int) error {
	for _, a := range m.alerts {
		if a.ID == id {
			a.Occurrences = occurrences
			return nil
		}
	}
	return errNotFound
}

func (m *mockAlertRepository) List(ctx context.Context, includeAcknowledged bool) ([]*secondary.AlertRecord, error) {
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	var out []*secondary.AlertRecord
	for _, a := range m.alerts {
		if !includeAcknowledged && a.Acknowledged {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (m *mockAlertRepository) Acknowledge(ctx context.Context, id int64) error {
	for _, a := range m.alerts {
		if a.ID == id {
			a.Acknowledged = true
			return nil
		}
	}
	return errNotFound
}

var _ secondary.AlertRepository = (*mockAlertRepository)(nil)

// mockRegistryRepository is an in-memory secondary.RegistryRepository.
type mockRegistryRepository struct {
	records []*secondary.RegistryRecord
	nextID  int64

	createErr error
}

func newMockRegistryRepository() *mockRegistryRepository {
	return &mockRegistryRepository{}
}

func (m *mockRegistryRepository) Create(ctx context.Context, rec *secondary.RegistryRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.nextID++
	rec.ID = m.nextID
	m.records = append(m.records, rec)
	return nil
}

func (m *mockRegistryRepository) List(ctx context.Context, filters secondary.RegistryFilters) ([]*secondary.RegistryRecord, error) {
	var out []*secondary.RegistryRecord
	for _, rec := range m.records {
		if filters.TrolleyID != "" && rec.OldID != filters.TrolleyID {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

var _ secondary.RegistryRepository = (*mockRegistryRepository)(nil)

// mockScrapRepository is an in-memory secondary.ScrapRepository.
type mockScrapRepository struct {
	records []*secondary.ScrapRecord
	nextID  int64

	createErr error
	queryErr  error
}

func newMockScrapRepository() *mockScrapRepository {
	return &mockScrapRepository{}
}

func (m *mockScrapRepository) Create(ctx context.Context, rec *secondary.ScrapRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.nextID++
	rec.ID = m.nextID
	m.records = append(m.records, rec)
	return nil
}

func (m *mockScrapRepository) LatestByTrolley(ctx context.Context, trolleyID string) (*secondary.ScrapRecord, error) {
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	var latest *secondary.ScrapRecord
	for _, rec := range m.records {
		if rec.TrolleyID != trolleyID {
			continue
		}
		if latest == nil || rec.ScrapDate > latest.ScrapDate {
			latest = rec
		}
	}
	return latest, nil
}

func (m *mockScrapRepository) CountSince(ctx context.Context, startISO string) (int, error) {
	if m.queryErr != nil {
		return 0, m.queryErr
	}
	count := 0
	for _, rec := range m.records {
		if rec.ScrapDate >= startISO {
			count++
		}
	}
	return count, nil
}

func (m *mockScrapRepository) List(ctx context.Context, filters secondary.ScrapFilters) ([]*secondary.ScrapRecord, error) {
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	var out []*secondary.ScrapRecord
	for _, rec := range m.records {
		if filters.TrolleyID != "" && rec.TrolleyID != filters.TrolleyID {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

var _ secondary.ScrapRepository = (*mockScrapRepository)(nil)
