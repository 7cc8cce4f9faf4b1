// Package pm holds the preventive-maintenance rule set: due-date
// arithmetic, reminder partitioning, failure categories and risk
// classification. Everything here is pure; callers pass today's date
// explicitly.
package pm

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

const (
	// IntervalDays is the fixed PM interval: the next due date is the
	// event date plus this many days.
	IntervalDays = 90

	// AlertThreshold is the cumulative failure count at which a
	// chronic alert is raised for a (trolley, failure type) pair.
	AlertThreshold = 3

	// UpcomingWindowDays is the reminder look-ahead window.
	UpcomingWindowDays = 7
)

// FailureType is a closed failure category. The zero value means no
// failure (a routine PM event).
type FailureType string

const (
	FailureNone        FailureType = ""
	FailureHandleBreak FailureType = "HANDLE_BREAK"
	FailureWheelIssue  FailureType = "WHEEL_ISSUE"
	FailureFrameBend   FailureType = "FRAME_BEND"
	FailureOther       FailureType = "OTHER"
)

// ParseFailureType maps operator input to a failure category.
// "", "NA" and "NONE" (any case) mean no failure.
func ParseFailureType(s string) (FailureType, error) {
	switch FailureType(strings.ToUpper(strings.TrimSpace(s))) {
	case FailureNone, "NA", "NONE":
		return FailureNone, nil
	case FailureHandleBreak:
		return FailureHandleBreak, nil
	case FailureWheelIssue:
		return FailureWheelIssue, nil
	case FailureFrameBend:
		return FailureFrameBend, nil
	case FailureOther:
		return FailureOther, nil
	}
	return FailureNone, fmt.Errorf("unknown failure type %q (valid: HANDLE_BREAK, WHEEL_ISSUE, FRAME_BEND, OTHER, NA)", s)
}

// NextDue computes the next PM due date for an event date.
func NextDue(eventDate time.Time) time.Time {
	return eventDate.AddDate(0, 0, IntervalDays)
}

// DueEntry is one trolley's current due date (max next_due over its
// history).
type DueEntry struct {
	TrolleyID string
	Due       time.Time
}

// PartitionReminders splits trolleys into overdue and upcoming buckets.
// Overdue: due on or before today. Upcoming: due within the next
// UpcomingWindowDays, boundary day included. Trolleys due later than
// that appear in neither. Both buckets are sorted ascending by due
// date, so the most overdue and soonest-due come first.
func PartitionReminders(entries []DueEntry, today time.Time) (overdue, upcoming []DueEntry) {
	horizon := today.AddDate(0, 0, UpcomingWindowDays)

	for _, e := range entries {
		switch {
		case !e.Due.After(today):
			overdue = append(overdue, e)
		case !e.Due.After(horizon):
			upcoming = append(upcoming, e)
		}
	}

	byDue := func(s []DueEntry) func(i, j int) bool {
		return func(i, j int) bool { return s[i].Due.Before(s[j].Due) }
	}
	sort.Slice(overdue, byDue(overdue))
	sort.Slice(upcoming, byDue(upcoming))

	return overdue, upcoming
}

// RiskLevel is the three-tier trolley risk classification.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// ClassifyRisk derives the risk level from overdue status and the
// failure count in the trailing 90 days.
func ClassifyRisk(overdue bool, failuresLast90 int) RiskLevel {
	switch {
	case overdue || failuresLast90 >= 3:
		return RiskHigh
	case failuresLast90 >= 1:
		return RiskMedium
	default:
		return RiskLow
	}
}

// WithinTrailingWindow reports whether an event date falls inside the
// trailing 90-day window ending today, boundary day included.
func WithinTrailingWindow(today, eventDate time.Time) bool {
	days := int(today.Sub(eventDate) / (24 * time.Hour))
	return days <= IntervalDays
}
