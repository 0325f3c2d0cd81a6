package submission

import (
	"context"
	"time"
)

// Filter restricts a submission query by submitted date. The zero value
// means unbounded. Either TargetDate alone or both StartDate and EndDate
// (inclusive) may be set; any other combination is rejected by the
// repository.
type Filter struct {
	TargetDate time.Time
	StartDate  time.Time
	EndDate    time.Time
}

// Repository sources form submissions from the upstream store.
type Repository interface {
	// List returns the submissions of the given form type matching the
	// filter, newest first. Rows with null payloads or submitted dates,
	// undecodable payloads and purged submissions are excluded.
	List(ctx context.Context, formType string, filter Filter) ([]*Submission, error)
}
