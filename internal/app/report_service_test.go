package app_test

import (
	"context"
	"testing"

	"github.com/example/trolleypm/internal/app"
	"github.com/example/trolleypm/internal/ports/secondary"
)

func TestMetrics(t *testing.T) {
	maintenanceRepo := newMockMaintenanceRepository()
	scrapRepo := newMockScrapRepository()
	ctx := context.Background()

	seedMaintenance(t, maintenanceRepo, &secondary.MaintenanceRecord{
		TrolleyID: "TRL-001", PMDate: "2025-06-05", NextDue: "2025-09-03", Amount: "450",
	})
	seedMaintenance(t, maintenanceRepo, &secondary.MaintenanceRecord{
		TrolleyID: "TRL-001", PMDate: "2025-06-10", NextDue: "2025-09-08", FailureType: "WHEEL_ISSUE", Amount: "NA",
	})
	seedMaintenance(t, maintenanceRepo, &secondary.MaintenanceRecord{
		TrolleyID: "TRL-002", PMDate: "2025-03-01", NextDue: "2025-05-30", Amount: "999",
	})
	if err := scrapRepo.Create(ctx, &secondary.ScrapRecord{TrolleyID: "TRL-009", ScrapDate: "2025-06-08"}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	service := app.NewReportService(maintenanceRepo, scrapRepo)

	metrics, err := service.Metrics(ctx, date("2025-06-01"), date("2025-06-15"))
	if err != nil {
		t.Fatalf("Metrics failed: %v", err)
	}

	if metrics.MaintainedCount != 1 {
		t.Errorf("expected 1 maintained trolley, got %d", metrics.MaintainedCount)
	}
	if metrics.DamagesCount != 1 {
		t.Errorf("expected 1 damage report, got %d", metrics.DamagesCount)
	}
	if metrics.ScrappedCount != 1 {
		t.Errorf("expected 1 scrapped trolley, got %d", metrics.ScrappedCount)
	}
	// TRL-002 is overdue (due 2025-05-30), counted even though its
	// event falls outside the window.
	if metrics.OverdueCount != 1 {
		t.Errorf("expected 1 overdue trolley, got %d", metrics.OverdueCount)
	}
	// cost sums window events only; NA contributes nothing
	if got := metrics.TotalCost.StringFixed(2); got != "450.00" {
		t.Errorf("expected total cost 450.00, got %s", got)
	}
}

func TestMetrics_OverdueIgnoresWindow(t *testing.T) {
	maintenanceRepo := newMockMaintenanceRepository()
	seedMaintenance(t, maintenanceRepo, &secondary.MaintenanceRecord{
		TrolleyID: "TRL-001", PMDate: "2024-01-01", NextDue: "2024-04-01",
	})
	service := app.NewReportService(maintenanceRepo, newMockScrapRepository())
	ctx := context.Background()

	week, err := service.Metrics(ctx, date("2025-06-08"), date("2025-06-15"))
	if err != nil {
		t.Fatalf("Metrics failed: %v", err)
	}
	year, err := service.Metrics(ctx, date("2025-01-01"), date("2025-06-15"))
	if err != nil {
		t.Fatalf("Metrics failed: %v", err)
	}

	if week.OverdueCount != 1 || year.OverdueCount != 1 {
		t.Errorf("overdue count must not shrink with the window: week=%d year=%d", week.OverdueCount, year.OverdueCount)
	}
	if week.MaintainedCount != 0 {
		t.Errorf("expected 0 maintained in week window, got %d", week.MaintainedCount)
	}
}

func TestMetrics_EmptyDatabase(t *testing.T) {
	service := app.NewReportService(newMockMaintenanceRepository(), newMockScrapRepository())

	metrics, err := service.Metrics(context.Background(), date("2025-06-01"), date("2025-06-15"))
	if err != nil {
		t.Fatalf("Metrics failed: %v", err)
	}

	if metrics.MaintainedCount != 0 || metrics.OverdueCount != 0 || metrics.DamagesCount != 0 || metrics.ScrappedCount != 0 {
		t.Errorf("expected zero counts, got %+v", metrics)
	}
	if !metrics.TotalCost.IsZero() {
		t.Errorf("expected zero cost, got %s", metrics.TotalCost)
	}
}
