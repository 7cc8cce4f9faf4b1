package pm_test

import (
	"testing"
	"time"

	"github.com/example/trolleypm/internal/core/pm"
)

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestNextDue(t *testing.T) {
	cases := []struct {
		event string
		want  string
	}{
		{"2025-01-01", "2025-04-01"},
		{"2025-12-15", "2026-03-15"}, // year boundary
		{"2024-11-30", "2025-02-28"}, // into a non-leap February
		{"2023-11-30", "2024-02-28"},
	}

	for _, c := range cases {
		got := pm.NextDue(date(c.event))
		if !got.Equal(date(c.want)) {
			t.Errorf("NextDue(%s) = %s, want %s", c.event, got.Format("2006-01-02"), c.want)
		}
	}
}

func TestParseFailureType(t *testing.T) {
	cases := []struct {
		in   string
		want pm.FailureType
	}{
		{"", pm.FailureNone},
		{"NA", pm.FailureNone},
		{"na", pm.FailureNone},
		{"none", pm.FailureNone},
		{"HANDLE_BREAK", pm.FailureHandleBreak},
		{"wheel_issue", pm.FailureWheelIssue},
		{" FRAME_BEND ", pm.FailureFrameBend},
		{"other", pm.FailureOther},
	}

	for _, c := range cases {
		got, err := pm.ParseFailureType(c.in)
		if err != nil {
			t.Errorf("ParseFailureType(%q) failed: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseFailureType(%q) = %q, want %q", c.in, got, c.want)
		}
	}

	if _, err := pm.ParseFailureType("AXLE_SNAP"); err == nil {
		t.Error("expected error for unknown failure type")
	}
}

func TestPartitionReminders_Boundaries(t *testing.T) {
	today := date("2025-06-10")

	entries := []pm.DueEntry{
		{TrolleyID: "TRL-DUE-TODAY", Due: today},
		{TrolleyID: "TRL-DAY-7", Due: today.AddDate(0, 0, 7)},
		{TrolleyID: "TRL-DAY-8", Due: today.AddDate(0, 0, 8)},
		{TrolleyID: "TRL-PAST", Due: today.AddDate(0, 0, -30)},
		{TrolleyID: "TRL-DAY-1", Due: today.AddDate(0, 0, 1)},
	}

	overdue, upcoming := pm.PartitionReminders(entries, today)

	if len(overdue) != 2 {
		t.Fatalf("expected 2 overdue, got %d", len(overdue))
	}
	// Most overdue first.
	if overdue[0].TrolleyID != "TRL-PAST" || overdue[1].TrolleyID != "TRL-DUE-TODAY" {
		t.Errorf("overdue ordering wrong: %v", overdue)
	}

	if len(upcoming) != 2 {
		t.Fatalf("expected 2 upcoming, got %d", len(upcoming))
	}
	if upcoming[0].TrolleyID != "TRL-DAY-1" || upcoming[1].TrolleyID != "TRL-DAY-7" {
		t.Errorf("upcoming ordering wrong: %v", upcoming)
	}

	for _, e := range append(overdue, upcoming...) {
		if e.TrolleyID == "TRL-DAY-8" {
			t.Error("trolley due on day 8 must appear in neither bucket")
		}
	}
}

func TestPartitionReminders_Empty(t *testing.T) {
	overdue, upcoming := pm.PartitionReminders(nil, date("2025-06-10"))
	if len(overdue) != 0 || len(upcoming) != 0 {
		t.Error("expected empty partitions")
	}
}

func TestClassifyRisk(t *testing.T) {
	cases := []struct {
		overdue  bool
		failures int
		want     pm.RiskLevel
	}{
		{false, 0, pm.RiskLow},
		{false, 1, pm.RiskMedium},
		{false, 2, pm.RiskMedium},
		{false, 3, pm.RiskHigh},
		{true, 0, pm.RiskHigh},
		{true, 5, pm.RiskHigh},
	}

	for _, c := range cases {
		if got := pm.ClassifyRisk(c.overdue, c.failures); got != c.want {
			t.Errorf("ClassifyRisk(%v, %d) = %q, want %q", c.overdue, c.failures, got, c.want)
		}
	}
}

func TestWithinTrailingWindow(t *testing.T) {
	today := date("2025-06-10")

	if !pm.WithinTrailingWindow(today, today.AddDate(0, 0, -90)) {
		t.Error("day 90 should be inside the window")
	}
	if pm.WithinTrailingWindow(today, today.AddDate(0, 0, -91)) {
		t.Error("day 91 should be outside the window")
	}
	if !pm.WithinTrailingWindow(today, today) {
		t.Error("today should be inside the window")
	}
}

func TestParseDate(t *testing.T) {
	d, err := pm.ParseDate("2025-03-04")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	if pm.FormatDate(d) != "2025-03-04" {
		t.Errorf("round trip gave %s", pm.FormatDate(d))
	}

	// Timestamps keep only the day.
	d, err = pm.ParseDate("2025-03-04T15:30:00Z")
	if err != nil {
		t.Fatalf("ParseDate timestamp failed: %v", err)
	}
	if pm.FormatDate(d) != "2025-03-04" {
		t.Errorf("timestamp parse gave %s", pm.FormatDate(d))
	}

	if _, err := pm.ParseDate("04/03/2025"); err == nil {
		t.Error("expected error for non-ISO date")
	}
	if _, err := pm.ParseDate(""); err == nil {
		t.Error("expected error for empty date")
	}
}
