package primary

import (
	"context"
	"time"
)

// ScrapTrolleyRequest marks a trolley as permanently retired.
type ScrapTrolleyRequest struct {
	TrolleyID  string
	ScrapDate  time.Time
	Reason     string
	RecordedBy string
}

// ScrapService appends scrap rows. Repeated scraps of the same trolley
// are permitted.
type ScrapService interface {
	ScrapTrolley(ctx context.Context, req ScrapTrolleyRequest) error
}
