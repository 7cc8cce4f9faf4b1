package app_test

import (
	"context"
	"testing"

	"github.com/example/trolleypm/internal/app"
	"github.com/example/trolleypm/internal/ports/secondary"
)

func TestComputeReminders(t *testing.T) {
	maintenanceRepo := newMockMaintenanceRepository()
	ctx := context.Background()

	seed := func(trolleyID, pmDate, nextDue string) {
		t.Helper()
		err := maintenanceRepo.Create(ctx, &secondary.MaintenanceRecord{
			TrolleyID: trolleyID, PMDate: pmDate, NextDue: nextDue,
		})
		if err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	seed("TRL-001", "2025-01-01", "2025-04-01") // overdue
	seed("TRL-002", "2025-03-10", "2025-06-08") // due in 7 days: upcoming
	seed("TRL-003", "2025-03-11", "2025-06-09") // beyond window
	seed("TRL-004", "2025-03-03", "2025-06-01") // due today: overdue
	// TRL-001 superseded by a later PM, so its max due is upcoming
	seed("TRL-001", "2025-03-05", "2025-06-03")

	service := app.NewReminderService(maintenanceRepo)

	reminders, err := service.ComputeReminders(ctx, date("2025-06-01"))
	if err != nil {
		t.Fatalf("ComputeReminders failed: %v", err)
	}

	if len(reminders.Overdue) != 1 {
		t.Fatalf("expected 1 overdue, got %d", len(reminders.Overdue))
	}
	if reminders.Overdue[0].TrolleyID != "TRL-004" {
		t.Errorf("expected TRL-004 overdue, got %s", reminders.Overdue[0].TrolleyID)
	}

	if len(reminders.Upcoming) != 2 {
		t.Fatalf("expected 2 upcoming, got %d", len(reminders.Upcoming))
	}
	// sorted ascending by due date: TRL-001 (06-03) before TRL-002 (06-08)
	if reminders.Upcoming[0].TrolleyID != "TRL-001" {
		t.Errorf("expected TRL-001 first, got %s", reminders.Upcoming[0].TrolleyID)
	}
	if reminders.Upcoming[1].TrolleyID != "TRL-002" {
		t.Errorf("expected TRL-002 second, got %s", reminders.Upcoming[1].TrolleyID)
	}
}

func TestComputeReminders_SkipsUnparseableDates(t *testing.T) {
	maintenanceRepo := newMockMaintenanceRepository()
	ctx := context.Background()

	err := maintenanceRepo.Create(ctx, &secondary.MaintenanceRecord{
		TrolleyID: "TRL-001", PMDate: "2025-01-01", NextDue: "not-a-date",
	})
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	err = maintenanceRepo.Create(ctx, &secondary.MaintenanceRecord{
		TrolleyID: "TRL-002", PMDate: "2025-01-01", NextDue: "2025-04-01",
	})
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	service := app.NewReminderService(maintenanceRepo)

	reminders, err := service.ComputeReminders(ctx, date("2025-06-01"))
	if err != nil {
		t.Fatalf("ComputeReminders failed: %v", err)
	}

	if len(reminders.Overdue) != 1 {
		t.Fatalf("expected 1 overdue, got %d", len(reminders.Overdue))
	}
	if reminders.Overdue[0].TrolleyID != "TRL-002" {
		t.Errorf("expected TRL-002, got %s", reminders.Overdue[0].TrolleyID)
	}
}

func TestComputeReminders_EmptyDatabase(t *testing.T) {
	service := app.NewReminderService(newMockMaintenanceRepository())

	reminders, err := service.ComputeReminders(context.Background(), date("2025-06-01"))
	if err != nil {
		t.Fatalf("ComputeReminders failed: %v", err)
	}
	if len(reminders.Overdue) != 0 || len(reminders.Upcoming) != 0 {
		t.Errorf("expected empty reminders, got %+v", reminders)
	}
}
