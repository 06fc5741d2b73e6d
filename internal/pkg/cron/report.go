package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kintai-hq/kintai-backend-go/internal/domain/report"
)

// ReportJobs regenerates draft reports in the background so drafts keep up
// with location pings recorded after the report was first assembled.
type ReportJobs struct {
	reportRepo report.ReportRepository
	reportSvc  report.ReportService
	interval   time.Duration
}

func NewReportJobs(reportRepo report.ReportRepository, reportSvc report.ReportService, interval time.Duration) *ReportJobs {
	return &ReportJobs{
		reportRepo: reportRepo,
		reportSvc:  reportSvc,
		interval:   interval,
	}
}

func (j *ReportJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob(Job{
		Name:     "regenerate_draft_reports",
		Interval: j.interval,
		Timeout:  30 * time.Minute,
		Fn:       j.RegenerateDrafts,
	})
}

// RegenerateDrafts rebuilds every draft report. Finalized reports are never
// touched; a failure on one draft does not stop the rest.
func (j *ReportJobs) RegenerateDrafts(ctx context.Context) error {
	slog.Info("Cron: Starting draft report regeneration job")

	refs, err := j.reportRepo.ListDraftRefs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list draft reports: %w", err)
	}

	if len(refs) == 0 {
		slog.Info("Cron: No draft reports found")
		return nil
	}

	regenerated := 0
	for _, ref := range refs {
		if err := j.reportSvc.Regenerate(ctx, ref.UserID, ref.YearMonth); err != nil {
			slog.Error("Cron: Failed to regenerate draft report",
				"user_id", ref.UserID,
				"year", ref.YearMonth.Year,
				"month", int(ref.YearMonth.Month),
				"error", err)
			continue
		}
		regenerated++
	}

	slog.Info("Cron: Regenerated draft reports", "count", regenerated)
	return nil
}
