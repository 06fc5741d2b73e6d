package report

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kintai-hq/kintai-backend-go/internal/domain/location"
	"github.com/kintai-hq/kintai-backend-go/internal/domain/report"
	"github.com/kintai-hq/kintai-backend-go/internal/domain/workrule"
	workruleService "github.com/kintai-hq/kintai-backend-go/internal/service/workrule"
)

type fakeReportRepo struct {
	saveFn          func(ctx context.Context, rep report.Report) (report.Report, error)
	findFn          func(ctx context.Context, userID string, ym report.YearMonth) (report.Report, error)
	deleteFn        func(ctx context.Context, userID string, ym report.YearMonth) error
	listDraftRefsFn func(ctx context.Context) ([]report.DraftRef, error)
}

func (f *fakeReportRepo) Save(ctx context.Context, rep report.Report) (report.Report, error) {
	if f.saveFn == nil {
		return rep, nil
	}
	return f.saveFn(ctx, rep)
}

func (f *fakeReportRepo) Find(ctx context.Context, userID string, ym report.YearMonth) (report.Report, error) {
	if f.findFn == nil {
		return report.Report{}, report.ErrReportNotFound
	}
	return f.findFn(ctx, userID, ym)
}

func (f *fakeReportRepo) Delete(ctx context.Context, userID string, ym report.YearMonth) error {
	if f.deleteFn == nil {
		return nil
	}
	return f.deleteFn(ctx, userID, ym)
}

func (f *fakeReportRepo) ListDraftRefs(ctx context.Context) ([]report.DraftRef, error) {
	if f.listDraftRefsFn == nil {
		return nil, nil
	}
	return f.listDraftRefsFn(ctx)
}

type fakePingRepo struct {
	pings []location.Ping
}

func (f *fakePingRepo) Create(ctx context.Context, p location.Ping) (location.Ping, error) {
	f.pings = append(f.pings, p)
	return p, nil
}

func (f *fakePingRepo) FindPings(ctx context.Context, userID string, start, end time.Time) ([]location.Ping, error) {
	var out []location.Ping
	for _, p := range f.pings {
		if !p.RecordedAt.Before(start) && p.RecordedAt.Before(end) {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeRuleRepo struct {
	defaults []workrule.Rule
	setting  *workrule.UserSetting
}

func (f *fakeRuleRepo) FindAssignmentRules(ctx context.Context, userID string, date time.Time) ([]workrule.Assignment, error) {
	return nil, nil
}

func (f *fakeRuleRepo) FindDefaultRules(ctx context.Context, userID string) ([]workrule.Rule, error) {
	return f.defaults, nil
}

func (f *fakeRuleRepo) GetUserSetting(ctx context.Context, userID string) (workrule.UserSetting, error) {
	if f.setting == nil {
		return workrule.UserSetting{}, workrule.ErrUserSettingNotFound
	}
	return *f.setting, nil
}

// officeRule is a default rule at Tokyo Station: 09:00-18:00 with a
// 12:00-13:00 break (8h standard work).
func officeRule() workrule.Rule {
	breakStart := workrule.At(12, 0)
	breakEnd := workrule.At(13, 0)
	return workrule.Rule{
		ID: "rule-1",
		Template: workrule.Template{
			StandardStart: workrule.At(9, 0),
			StandardEnd:   workrule.At(18, 0),
			BreakStart:    &breakStart,
			BreakEnd:      &breakEnd,
		},
		Workplace: &workrule.Workplace{
			Latitude:     35.6812,
			Longitude:    139.7671,
			RadiusMeters: 100,
		},
	}
}

func draftFor(userID string, ym report.YearMonth) report.Report {
	return report.Report{
		ID:        "rep-1",
		UserID:    userID,
		YearMonth: ym,
		Status:    report.StatusDraft,
		CreatedAt: date(2025, time.June, 1),
	}
}

func newService(reportRepo *fakeReportRepo, pingRepo *fakePingRepo, ruleRepo *fakeRuleRepo, strict bool) report.ReportService {
	return NewReportService(reportRepo, pingRepo, workruleService.NewResolver(ruleRepo), strict)
}

// authedContext builds a request context carrying a verified token for userID.
func authedContext(t *testing.T, userID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	_, tokenString, err := ja.Encode(map[string]interface{}{"user_id": userID, "type": "access"})
	require.NoError(t, err)
	token, err := ja.Decode(tokenString)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestRegenerate_AssemblesFullPeriod(t *testing.T) {
	ym := report.YearMonth{Year: 2025, Month: time.June}
	var saved report.Report

	reportRepo := &fakeReportRepo{
		findFn: func(ctx context.Context, userID string, got report.YearMonth) (report.Report, error) {
			return draftFor(userID, ym), nil
		},
		saveFn: func(ctx context.Context, rep report.Report) (report.Report, error) {
			saved = rep
			return rep, nil
		},
	}
	ruleRepo := &fakeRuleRepo{
		defaults: []workrule.Rule{officeRule()},
		setting:  &workrule.UserSetting{UserID: "user-1", ClosingDay: 15, RoundingUnitMinutes: 15},
	}
	// Monday 2025-06-02: ping near the office at 08:50 and 18:10, plus one
	// far away that must be filtered out.
	workday := date(2025, time.June, 2)
	pingRepo := &fakePingRepo{pings: []location.Ping{
		ping(35.6812, 139.7671, workday.Add(8*time.Hour+50*time.Minute)),
		ping(35.6896, 139.7006, workday.Add(12*time.Hour)), // Shinjuku, outside radius
		ping(35.68125, 139.76715, workday.Add(18*time.Hour+10*time.Minute)),
	}}

	svc := newService(reportRepo, pingRepo, ruleRepo, false)
	err := svc.Regenerate(context.Background(), "user-1", ym)
	require.NoError(t, err)

	// Period [2025-05-16, 2025-06-15] has 31 days.
	require.Len(t, saved.DailyRecords, 31)
	assert.Equal(t, "rep-1", saved.ID, "regeneration keeps the draft's identity")
	assert.Equal(t, report.StatusDraft, saved.Status)

	// Records come out in ascending date order.
	for i := 1; i < len(saved.DailyRecords); i++ {
		assert.True(t, saved.DailyRecords[i-1].WorkDate.Before(saved.DailyRecords[i].WorkDate))
	}

	var rec report.DailyRecord
	for _, r := range saved.DailyRecords {
		if r.WorkDate.Equal(workday) {
			rec = r
		}
	}

	require.NotNil(t, rec.ClockIn)
	require.NotNil(t, rec.ClockOut)
	// 08:50 ceils to 09:00, 18:10 ceils to 18:15 with a 15 minute unit.
	assert.True(t, rec.ClockIn.Equal(workday.Add(9*time.Hour)))
	assert.True(t, rec.ClockOut.Equal(workday.Add(18*time.Hour+15*time.Minute)))
	// 9h15m presence minus 1h break, 15m over the 8h standard.
	assert.Equal(t, 8*time.Hour+15*time.Minute, rec.Worked)
	assert.Equal(t, 15*time.Minute, rec.Overtime)
	assert.Equal(t, time.Duration(0), rec.HolidayWork)

	assert.Equal(t, 8*time.Hour+15*time.Minute, saved.Summary.TotalWorked)
	assert.Equal(t, 15*time.Minute, saved.Summary.TotalOvertime)
}

func TestRegenerate_WeekendWorkCountsAsHolidayWork(t *testing.T) {
	ym := report.YearMonth{Year: 2025, Month: time.June}
	var saved report.Report

	reportRepo := &fakeReportRepo{
		findFn: func(ctx context.Context, userID string, got report.YearMonth) (report.Report, error) {
			return draftFor(userID, ym), nil
		},
		saveFn: func(ctx context.Context, rep report.Report) (report.Report, error) {
			saved = rep
			return rep, nil
		},
	}
	ruleRepo := &fakeRuleRepo{
		defaults: []workrule.Rule{officeRule()},
		setting:  &workrule.UserSetting{UserID: "user-1", ClosingDay: 15, RoundingUnitMinutes: 1},
	}
	// Saturday 2025-06-07.
	saturday := date(2025, time.June, 7)
	pingRepo := &fakePingRepo{pings: []location.Ping{
		ping(35.6812, 139.7671, saturday.Add(10*time.Hour)),
		ping(35.6812, 139.7671, saturday.Add(15*time.Hour)),
	}}

	svc := newService(reportRepo, pingRepo, ruleRepo, false)
	require.NoError(t, svc.Regenerate(context.Background(), "user-1", ym))

	var rec report.DailyRecord
	for _, r := range saved.DailyRecords {
		if r.WorkDate.Equal(saturday) {
			rec = r
		}
	}

	assert.True(t, rec.IsHoliday)
	// 5h presence minus 1h break, all booked as holiday work.
	assert.Equal(t, 4*time.Hour, rec.Worked)
	assert.Equal(t, 4*time.Hour, rec.HolidayWork)
	assert.Equal(t, time.Duration(0), rec.Overtime)
	assert.Equal(t, 4*time.Hour, saved.Summary.TotalHolidayWork)
}

func TestRegenerate_SinglePingClampsToZero(t *testing.T) {
	ym := report.YearMonth{Year: 2025, Month: time.June}
	var saved report.Report

	reportRepo := &fakeReportRepo{
		findFn: func(ctx context.Context, userID string, got report.YearMonth) (report.Report, error) {
			return draftFor(userID, ym), nil
		},
		saveFn: func(ctx context.Context, rep report.Report) (report.Report, error) {
			saved = rep
			return rep, nil
		},
	}
	ruleRepo := &fakeRuleRepo{
		defaults: []workrule.Rule{officeRule()},
		setting:  &workrule.UserSetting{UserID: "user-1", ClosingDay: 15, RoundingUnitMinutes: 1},
	}
	workday := date(2025, time.June, 3)
	pingRepo := &fakePingRepo{pings: []location.Ping{
		ping(35.6812, 139.7671, workday.Add(9*time.Hour)),
	}}

	svc := newService(reportRepo, pingRepo, ruleRepo, false)
	require.NoError(t, svc.Regenerate(context.Background(), "user-1", ym))

	for _, rec := range saved.DailyRecords {
		if rec.WorkDate.Equal(workday) {
			// Zero presence minus the break clamps to zero.
			assert.Equal(t, time.Duration(0), rec.Worked)
			assert.Equal(t, time.Duration(0), rec.Overtime)
			return
		}
	}
	t.Fatal("workday record not found")
}

func TestRegenerate_NoPingsStillCoversWholePeriod(t *testing.T) {
	ym := report.YearMonth{Year: 2025, Month: time.February}
	var saved report.Report

	reportRepo := &fakeReportRepo{
		findFn: func(ctx context.Context, userID string, got report.YearMonth) (report.Report, error) {
			return draftFor(userID, ym), nil
		},
		saveFn: func(ctx context.Context, rep report.Report) (report.Report, error) {
			saved = rep
			return rep, nil
		},
	}
	// No settings row: closing day defaults to month end.
	svc := newService(reportRepo, &fakePingRepo{}, &fakeRuleRepo{}, false)
	require.NoError(t, svc.Regenerate(context.Background(), "user-1", ym))

	// Calendar February 2025: 28 daily records, none with clock times.
	require.Len(t, saved.DailyRecords, 28)
	for _, rec := range saved.DailyRecords {
		assert.Nil(t, rec.ClockIn)
		assert.Nil(t, rec.ClockOut)
		assert.Equal(t, time.Duration(0), rec.Worked)
	}
	assert.Equal(t, time.Duration(0), saved.Summary.TotalWorked)
}

func TestRegenerate_StrictModeFailsWithoutWorkplace(t *testing.T) {
	ym := report.YearMonth{Year: 2025, Month: time.June}

	reportRepo := &fakeReportRepo{
		findFn: func(ctx context.Context, userID string, got report.YearMonth) (report.Report, error) {
			return draftFor(userID, ym), nil
		},
	}
	// Rules exist but carry no workplace.
	rule := officeRule()
	rule.Workplace = nil
	ruleRepo := &fakeRuleRepo{
		defaults: []workrule.Rule{rule},
		setting:  &workrule.UserSetting{UserID: "user-1", ClosingDay: 15, RoundingUnitMinutes: 1},
	}

	svc := newService(reportRepo, &fakePingRepo{}, ruleRepo, true)
	err := svc.Regenerate(context.Background(), "user-1", ym)
	assert.ErrorIs(t, err, report.ErrMissingWorkplace)
}

func TestRegenerate_LenientModeKeepsAllPingsWithoutWorkplace(t *testing.T) {
	ym := report.YearMonth{Year: 2025, Month: time.June}
	var saved report.Report

	reportRepo := &fakeReportRepo{
		findFn: func(ctx context.Context, userID string, got report.YearMonth) (report.Report, error) {
			return draftFor(userID, ym), nil
		},
		saveFn: func(ctx context.Context, rep report.Report) (report.Report, error) {
			saved = rep
			return rep, nil
		},
	}
	rule := officeRule()
	rule.Workplace = nil
	ruleRepo := &fakeRuleRepo{
		defaults: []workrule.Rule{rule},
		setting:  &workrule.UserSetting{UserID: "user-1", ClosingDay: 15, RoundingUnitMinutes: 1},
	}
	workday := date(2025, time.June, 4)
	pingRepo := &fakePingRepo{pings: []location.Ping{
		// Nowhere near any office; kept anyway in lenient mode.
		ping(51.5074, -0.1278, workday.Add(9*time.Hour)),
		ping(51.5074, -0.1278, workday.Add(17*time.Hour)),
	}}

	svc := newService(reportRepo, pingRepo, ruleRepo, false)
	require.NoError(t, svc.Regenerate(context.Background(), "user-1", ym))

	for _, rec := range saved.DailyRecords {
		if rec.WorkDate.Equal(workday) {
			require.NotNil(t, rec.ClockIn)
			assert.Equal(t, 7*time.Hour, rec.Worked)
			return
		}
	}
	t.Fatal("workday record not found")
}

func TestRegenerate_SkipsFinalizedReports(t *testing.T) {
	ym := report.YearMonth{Year: 2025, Month: time.June}
	saveCalled := false

	reportRepo := &fakeReportRepo{
		findFn: func(ctx context.Context, userID string, got report.YearMonth) (report.Report, error) {
			rep := draftFor(userID, ym)
			rep.Status = report.StatusApproved
			return rep, nil
		},
		saveFn: func(ctx context.Context, rep report.Report) (report.Report, error) {
			saveCalled = true
			return rep, nil
		},
	}

	svc := newService(reportRepo, &fakePingRepo{}, &fakeRuleRepo{}, false)
	require.NoError(t, svc.Regenerate(context.Background(), "user-1", ym))
	assert.False(t, saveCalled)
}

func TestGenerate_RejectsFinalizedReport(t *testing.T) {
	ym := report.YearMonth{Year: 2025, Month: time.June}
	reportRepo := &fakeReportRepo{
		findFn: func(ctx context.Context, userID string, got report.YearMonth) (report.Report, error) {
			rep := draftFor(userID, ym)
			rep.Status = report.StatusSubmitted
			return rep, nil
		},
	}

	svc := newService(reportRepo, &fakePingRepo{}, &fakeRuleRepo{}, false)
	_, err := svc.Generate(authedContext(t, "user-1"), report.GenerateReportRequest{Year: 2025, Month: 6})
	assert.ErrorIs(t, err, report.ErrReportAlreadyFinalized)
}

func TestGenerate_InvalidMonth(t *testing.T) {
	svc := newService(&fakeReportRepo{}, &fakePingRepo{}, &fakeRuleRepo{}, false)
	_, err := svc.Generate(authedContext(t, "user-1"), report.GenerateReportRequest{Year: 2025, Month: 13})
	assert.Error(t, err)
}

func TestDelete_FinalizedReportIsProtected(t *testing.T) {
	ym := report.YearMonth{Year: 2025, Month: time.June}
	reportRepo := &fakeReportRepo{
		findFn: func(ctx context.Context, userID string, got report.YearMonth) (report.Report, error) {
			rep := draftFor(userID, ym)
			rep.Status = report.StatusApproved
			return rep, nil
		},
	}

	svc := newService(reportRepo, &fakePingRepo{}, &fakeRuleRepo{}, false)
	err := svc.Delete(authedContext(t, "user-1"), report.GetReportRequest{Year: 2025, Month: 6})
	assert.ErrorIs(t, err, report.ErrReportAlreadyFinalized)
}
