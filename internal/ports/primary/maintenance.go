// Package primary defines the driving ports: the service interfaces
// exposed to the CLI, with their request and response types.
package primary

import (
	"context"
	"time"

	"github.com/example/trolleypm/internal/core/pm"
)

// LogMaintenanceRequest records a PM performance, with or without an
// observed failure.
type LogMaintenanceRequest struct {
	TrolleyID   string
	PMDate      time.Time
	FailureType pm.FailureType
	FailureNote string
	Technician  string
	Amount      string
}

// ReportDamageRequest records a damage event. FailureType is required.
type ReportDamageRequest struct {
	TrolleyID   string
	FailureDate time.Time
	FailureType pm.FailureType
	FailureNote string
	Technician  string
	Amount      string
}

// MaintenanceResult reports the outcome of an event insert.
type MaintenanceResult struct {
	TrolleyID string
	NextDue   time.Time
	// AlertRaised is set when the insert pushed the (trolley,
	// failure type) pair to or past the chronic threshold.
	AlertRaised      bool
	AlertOccurrences int
}

// MaintenanceService ingests maintenance and damage events.
type MaintenanceService interface {
	LogMaintenance(ctx context.Context, req LogMaintenanceRequest) (*MaintenanceResult, error)
	ReportDamage(ctx context.Context, req ReportDamageRequest) (*MaintenanceResult, error)

	// MarkDone inserts a fresh no-failure event dated today,
	// superseding the trolley's current due date.
	MarkDone(ctx context.Context, trolleyID string, today time.Time) (*MaintenanceResult, error)
}
