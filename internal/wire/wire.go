// Package wire provides dependency injection for the trolleypm
// application. It creates singleton services with lazy initialization.
package wire

import (
	"log"
	"sync"

	"github.com/example/trolleypm/internal/adapters/sqlite"
	"github.com/example/trolleypm/internal/app"
	"github.com/example/trolleypm/internal/db"
	"github.com/example/trolleypm/internal/ports/primary"
)

var (
	maintenanceService primary.MaintenanceService
	reminderService    primary.ReminderService
	trolleyService     primary.TrolleyService
	reportService      primary.ReportService
	registryService    primary.RegistryService
	scrapService       primary.ScrapService
	alertService       primary.AlertService
	recordsService     primary.RecordsService
	backupService      primary.BackupService
	once               sync.Once
)

// MaintenanceService returns the singleton MaintenanceService instance.
func MaintenanceService() primary.MaintenanceService {
	once.Do(initServices)
	return maintenanceService
}

// ReminderService returns the singleton ReminderService instance.
func ReminderService() primary.ReminderService {
	once.Do(initServices)
	return reminderService
}

// TrolleyService returns the singleton TrolleyService instance.
func TrolleyService() primary.TrolleyService {
	once.Do(initServices)
	return trolleyService
}

// ReportService returns the singleton ReportService instance.
func ReportService() primary.ReportService {
	once.Do(initServices)
	return reportService
}

// RegistryService returns the singleton RegistryService instance.
func RegistryService() primary.RegistryService {
	once.Do(initServices)
	return registryService
}

// ScrapService returns the singleton ScrapService instance.
func ScrapService() primary.ScrapService {
	once.Do(initServices)
	return scrapService
}

// AlertService returns the singleton AlertService instance.
func AlertService() primary.AlertService {
	once.Do(initServices)
	return alertService
}

// RecordsService returns the singleton RecordsService instance.
func RecordsService() primary.RecordsService {
	once.Do(initServices)
	return recordsService
}

// BackupService returns the singleton BackupService instance.
func BackupService() primary.BackupService {
	once.Do(initServices)
	return backupService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	dbPath, err := db.GetDBPath()
	if err != nil {
		log.Fatalf("failed to resolve database path: %v", err)
	}

	// Repository adapters (secondary ports)
	maintenanceRepo := sqlite.NewMaintenanceRepository(database)
	alertRepo := sqlite.NewAlertRepository(database)
	registryRepo := sqlite.NewRegistryRepository(database)
	scrapRepo := sqlite.NewScrapRepository(database)

	// Services (primary ports implementation)
	maintenanceService = app.NewMaintenanceService(maintenanceRepo, alertRepo)
	reminderService = app.NewReminderService(maintenanceRepo)
	trolleyService = app.NewTrolleyService(maintenanceRepo, scrapRepo)
	reportService = app.NewReportService(maintenanceRepo, scrapRepo)
	registryService = app.NewRegistryService(registryRepo)
	scrapService = app.NewScrapService(scrapRepo)
	alertService = app.NewAlertService(alertRepo)
	recordsService = app.NewRecordsService(maintenanceRepo, registryRepo, scrapRepo)
	backupService = app.NewBackupService(dbPath)
}
