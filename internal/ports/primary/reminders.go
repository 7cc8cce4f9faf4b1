package primary

import (
	"context"
	"time"
)

// Reminder is one trolley due (or soon due) for PM.
type Reminder struct {
	TrolleyID string
	NextDue   time.Time
}

// Reminders partitions trolleys by due status. Both lists are sorted
// ascending by due date.
type Reminders struct {
	Overdue  []Reminder
	Upcoming []Reminder
}

// ReminderService computes the overdue/upcoming partition for a given
// day.
type ReminderService interface {
	ComputeReminders(ctx context.Context, today time.Time) (*Reminders, error)
}
