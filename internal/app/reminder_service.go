package app

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/example/trolleypm/internal/core/pm"
	"github.com/example/trolleypm/internal/ports/primary"
	"github.com/example/trolleypm/internal/ports/secondary"
)

// ReminderServiceImpl implements primary.ReminderService.
type ReminderServiceImpl struct {
	maintenanceRepo secondary.MaintenanceRepository
}

// NewReminderService creates a new reminder service.
func NewReminderService(maintenanceRepo secondary.MaintenanceRepository) *ReminderServiceImpl {
	return &ReminderServiceImpl{maintenanceRepo: maintenanceRepo}
}

// ComputeReminders partitions every trolley with maintenance history
// into overdue and upcoming buckets for the given day. Rows with
// unparseable due dates are skipped, not fatal.
func (s *ReminderServiceImpl) ComputeReminders(ctx context.Context, today time.Time) (*primary.Reminders, error) {
	dues, err := s.maintenanceRepo.MaxDuePerTrolley(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load due dates: %w", err)
	}

	entries := make([]pm.DueEntry, 0, len(dues))
	for _, d := range dues {
		due, err := pm.ParseDate(d.NextDue)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"trolley_id": d.TrolleyID,
				"next_due":   d.NextDue,
			}).Warn("skipping trolley with unparseable due date")
			continue
		}
		entries = append(entries, pm.DueEntry{TrolleyID: d.TrolleyID, Due: due})
	}

	overdue, upcoming := pm.PartitionReminders(entries, today)

	result := &primary.Reminders{}
	for _, e := range overdue {
		result.Overdue = append(result.Overdue, primary.Reminder{TrolleyID: e.TrolleyID, NextDue: e.Due})
	}
	for _, e := range upcoming {
		result.Upcoming = append(result.Upcoming, primary.Reminder{TrolleyID: e.TrolleyID, NextDue: e.Due})
	}

	return result, nil
}

// Ensure ReminderServiceImpl implements the interface
var _ primary.ReminderService = (*ReminderServiceImpl)(nil)
