package report

import (
	"context"
)

// ReportService defines business logic for monthly attendance reports.
type ReportService interface {
	// Generate assembles the report for the authenticated user's period and
	// persists it as a draft, replacing any previous draft for the same month.
	Generate(ctx context.Context, req GenerateReportRequest) (ReportResponse, error)

	// Get retrieves a previously generated report.
	Get(ctx context.Context, req GetReportRequest) (ReportResponse, error)

	// Delete removes a draft report.
	Delete(ctx context.Context, req GetReportRequest) error

	// Regenerate re-assembles an existing draft in place. Finalized or
	// missing reports are left untouched. Used by background jobs; the
	// user comes as an argument rather than from request context.
	Regenerate(ctx context.Context, userID string, ym YearMonth) error
}
