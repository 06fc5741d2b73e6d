package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kintai-hq/kintai-backend-go/internal/domain/location"
	"github.com/kintai-hq/kintai-backend-go/internal/domain/report"
	"github.com/kintai-hq/kintai-backend-go/internal/pkg/jwt"
	"github.com/kintai-hq/kintai-backend-go/internal/pkg/timeutil"
	workruleService "github.com/kintai-hq/kintai-backend-go/internal/service/workrule"
)

type ReportServiceImpl struct {
	reportRepo report.ReportRepository
	pingRepo   location.PingRepository
	resolver   *workruleService.Resolver

	// strictLocation aborts assembly for dates without a configured
	// workplace instead of falling back to unfiltered pings.
	strictLocation bool
}

func NewReportService(
	reportRepo report.ReportRepository,
	pingRepo location.PingRepository,
	resolver *workruleService.Resolver,
	strictLocation bool,
) report.ReportService {
	return &ReportServiceImpl{
		reportRepo:     reportRepo,
		pingRepo:       pingRepo,
		resolver:       resolver,
		strictLocation: strictLocation,
	}
}

// isHoliday marks weekends; weekday holidays enter records later through
// leave-category edits.
func isHoliday(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// Generate implements report.ReportService.
func (s *ReportServiceImpl) Generate(ctx context.Context, req report.GenerateReportRequest) (report.ReportResponse, error) {
	if err := req.Validate(); err != nil {
		return report.ReportResponse{}, err
	}

	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return report.ReportResponse{}, err
	}

	ym := report.YearMonth{Year: req.Year, Month: time.Month(req.Month)}

	existing, err := s.reportRepo.Find(ctx, userID, ym)
	if err != nil && !errors.Is(err, report.ErrReportNotFound) {
		return report.ReportResponse{}, fmt.Errorf("failed to look up existing report: %w", err)
	}
	if err == nil && existing.Status.IsFinalized() {
		return report.ReportResponse{}, report.ErrReportAlreadyFinalized
	}

	assembled, err := s.assemble(ctx, userID, ym)
	if err != nil {
		return report.ReportResponse{}, err
	}

	// Regenerating a draft keeps its identity.
	if existing.ID != "" {
		assembled.ID = existing.ID
		assembled.CreatedAt = existing.CreatedAt
	}

	saved, err := s.reportRepo.Save(ctx, assembled)
	if err != nil {
		return report.ReportResponse{}, fmt.Errorf("failed to save report: %w", err)
	}

	return report.ToResponse(saved), nil
}

// Get implements report.ReportService.
func (s *ReportServiceImpl) Get(ctx context.Context, req report.GetReportRequest) (report.ReportResponse, error) {
	if err := req.Validate(); err != nil {
		return report.ReportResponse{}, err
	}

	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return report.ReportResponse{}, err
	}

	found, err := s.reportRepo.Find(ctx, userID, report.YearMonth{Year: req.Year, Month: time.Month(req.Month)})
	if err != nil {
		if errors.Is(err, report.ErrReportNotFound) {
			return report.ReportResponse{}, report.ErrReportNotFound
		}
		return report.ReportResponse{}, fmt.Errorf("failed to get report: %w", err)
	}

	return report.ToResponse(found), nil
}

// Delete implements report.ReportService.
func (s *ReportServiceImpl) Delete(ctx context.Context, req report.GetReportRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return err
	}

	ym := report.YearMonth{Year: req.Year, Month: time.Month(req.Month)}

	existing, err := s.reportRepo.Find(ctx, userID, ym)
	if err != nil {
		if errors.Is(err, report.ErrReportNotFound) {
			return report.ErrReportNotFound
		}
		return fmt.Errorf("failed to get report: %w", err)
	}
	if existing.Status.IsFinalized() {
		return report.ErrReportAlreadyFinalized
	}

	if err := s.reportRepo.Delete(ctx, userID, ym); err != nil {
		return fmt.Errorf("failed to delete report: %w", err)
	}

	return nil
}

// Regenerate implements report.ReportService.
func (s *ReportServiceImpl) Regenerate(ctx context.Context, userID string, ym report.YearMonth) error {
	existing, err := s.reportRepo.Find(ctx, userID, ym)
	if err != nil {
		if errors.Is(err, report.ErrReportNotFound) {
			return nil
		}
		return fmt.Errorf("failed to look up report: %w", err)
	}
	if existing.Status != report.StatusDraft {
		return nil
	}

	assembled, err := s.assemble(ctx, userID, ym)
	if err != nil {
		return err
	}
	assembled.ID = existing.ID
	assembled.CreatedAt = existing.CreatedAt

	if _, err := s.reportRepo.Save(ctx, assembled); err != nil {
		return fmt.Errorf("failed to save regenerated report: %w", err)
	}

	return nil
}

// assemble builds the full report for the user's period: one daily record per
// calendar date, then the aggregated summary. Any collaborator failure aborts
// the whole month; partial reports are never returned.
func (s *ReportServiceImpl) assemble(ctx context.Context, userID string, ym report.YearMonth) (report.Report, error) {
	setting, err := s.resolver.GetUserSetting(ctx, userID)
	if err != nil {
		return report.Report{}, err
	}

	period, err := ResolvePeriod(ym, setting.ClosingDay)
	if err != nil {
		return report.Report{}, err
	}

	pings, err := s.pingRepo.FindPings(ctx, userID, period.Start, period.End.AddDate(0, 0, 1))
	if err != nil {
		return report.Report{}, fmt.Errorf("failed to find location pings: %w", err)
	}

	byDate := make(map[string][]location.Ping)
	for _, p := range pings {
		key := p.RecordedAt.UTC().Format("2006-01-02")
		byDate[key] = append(byDate[key], p)
	}

	days := period.Days()
	records := make([]report.DailyRecord, 0, len(days))
	for _, day := range days {
		rec, err := s.buildDailyRecord(ctx, userID, day, byDate[day.Format("2006-01-02")], setting.RoundingUnitMinutes)
		if err != nil {
			return report.Report{}, err
		}
		records = append(records, rec)
	}

	now := time.Now().UTC()
	return report.Report{
		ID:           uuid.NewString(),
		UserID:       userID,
		YearMonth:    ym,
		Status:       report.StatusDraft,
		Period:       period,
		DailyRecords: records,
		Summary:      Aggregate(records),
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func (s *ReportServiceImpl) buildDailyRecord(ctx context.Context, userID string, day time.Time, pings []location.Ping, roundingUnit int) (report.DailyRecord, error) {
	workplace, err := s.resolver.ResolveWorkplace(ctx, userID, day)
	if err != nil {
		return report.DailyRecord{}, err
	}

	dayPings := pings
	if workplace != nil {
		dayPings, err = filterByWorkplace(pings, *workplace, float64(workplace.RadiusMeters))
		if err != nil {
			return report.DailyRecord{}, err
		}
	} else if s.strictLocation {
		return report.DailyRecord{}, fmt.Errorf("%s: %w", day.Format("2006-01-02"), report.ErrMissingWorkplace)
	}
	// Lenient mode: no workplace means no distance evidence, so all
	// same-day pings stay in.

	rec := report.DailyRecord{
		WorkDate:  day,
		IsHoliday: isHoliday(day),
		Leave:     report.LeaveNone,
	}

	if len(dayPings) == 0 {
		return rec, nil
	}

	earliest, latest := dayPings[0].RecordedAt, dayPings[0].RecordedAt
	for _, p := range dayPings[1:] {
		if p.RecordedAt.Before(earliest) {
			earliest = p.RecordedAt
		}
		if p.RecordedAt.After(latest) {
			latest = p.RecordedAt
		}
	}

	clockIn, err := timeutil.CeilToUnit(earliest, roundingUnit)
	if err != nil {
		return report.DailyRecord{}, report.ErrInvalidRoundingUnit
	}
	clockOut, err := timeutil.CeilToUnit(latest, roundingUnit)
	if err != nil {
		return report.DailyRecord{}, report.ErrInvalidRoundingUnit
	}

	template, err := s.resolver.Resolve(ctx, userID, day)
	if err != nil {
		return report.DailyRecord{}, err
	}

	// A single ping or a break longer than the presence window would go
	// negative; clamp instead of failing the month.
	worked := clockOut.Sub(clockIn) - template.BreakDuration()
	if worked < 0 {
		worked = 0
	}

	rec.ClockIn = &clockIn
	rec.ClockOut = &clockOut
	rec.Worked = worked

	if rec.IsHoliday {
		rec.HolidayWork = worked
	} else if overtime := worked - template.StandardWorkDuration(); overtime > 0 {
		rec.Overtime = overtime
	}

	return rec, nil
}
