package pm

import (
	"fmt"
	"time"
)

// DateLayout is the on-disk format for all date columns.
const DateLayout = "2006-01-02"

// ParseDate parses a stored date column. Columns hold either a plain
// date or a full timestamp; only the calendar day matters here.
func ParseDate(s string) (time.Time, error) {
	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return d, nil
}

// FormatDate renders a date for storage.
func FormatDate(d time.Time) string {
	return d.Format(DateLayout)
}
