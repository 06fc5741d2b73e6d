package report

import (
	"context"
)

// ReportRepository defines persistence for assembled reports.
// Save replaces any existing report for the same (user, year-month) pair
// together with its daily records in a single transaction.
type ReportRepository interface {
	Save(ctx context.Context, report Report) (Report, error)
	Find(ctx context.Context, userID string, ym YearMonth) (Report, error)
	Delete(ctx context.Context, userID string, ym YearMonth) error

	// ListDraftRefs returns the (user, year-month) keys of all draft
	// reports, without loading their daily records.
	ListDraftRefs(ctx context.Context) ([]DraftRef, error)
}

// DraftRef identifies a draft report eligible for background regeneration.
type DraftRef struct {
	UserID    string
	YearMonth YearMonth
}
