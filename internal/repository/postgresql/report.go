package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/kintai-hq/kintai-backend-go/internal/domain/report"
	"github.com/kintai-hq/kintai-backend-go/internal/pkg/database"
)

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepositoryImpl{db: db}
}

// Save implements report.ReportRepository. The report row is upserted on its
// (user_id, year, month) key and the daily records are replaced wholesale, all
// in one transaction.
func (r *reportRepositoryImpl) Save(ctx context.Context, rep report.Report) (report.Report, error) {
	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO reports (
				id, user_id, year, month, status, period_start, period_end,
				work_days, paid_leave_days, compensatory_leave_days, special_leave_days,
				total_worked_minutes, total_overtime_minutes, total_holiday_work_minutes
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
			)
			ON CONFLICT (user_id, year, month) DO UPDATE SET
				status = EXCLUDED.status,
				period_start = EXCLUDED.period_start,
				period_end = EXCLUDED.period_end,
				work_days = EXCLUDED.work_days,
				paid_leave_days = EXCLUDED.paid_leave_days,
				compensatory_leave_days = EXCLUDED.compensatory_leave_days,
				special_leave_days = EXCLUDED.special_leave_days,
				total_worked_minutes = EXCLUDED.total_worked_minutes,
				total_overtime_minutes = EXCLUDED.total_overtime_minutes,
				total_holiday_work_minutes = EXCLUDED.total_holiday_work_minutes,
				updated_at = NOW()
			RETURNING id, created_at, updated_at
		`

		err := tx.QueryRow(ctx, query,
			rep.ID,
			rep.UserID,
			rep.YearMonth.Year,
			int(rep.YearMonth.Month),
			string(rep.Status),
			rep.Period.Start,
			rep.Period.End,
			rep.Summary.WorkDays,
			rep.Summary.PaidLeaveDays,
			rep.Summary.CompensatoryLeaveDays,
			rep.Summary.SpecialLeaveDays,
			int(rep.Summary.TotalWorked.Minutes()),
			int(rep.Summary.TotalOvertime.Minutes()),
			int(rep.Summary.TotalHolidayWork.Minutes()),
		).Scan(&rep.ID, &rep.CreatedAt, &rep.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to upsert report: %w", err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM report_daily_records WHERE report_id = $1`, rep.ID); err != nil {
			return fmt.Errorf("failed to clear daily records: %w", err)
		}

		insert := `
			INSERT INTO report_daily_records (
				report_id, work_date, is_holiday, leave_category,
				clock_in, clock_out, worked_minutes, overtime_minutes,
				holiday_work_minutes, note
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		`
		for _, rec := range rep.DailyRecords {
			_, err := tx.Exec(ctx, insert,
				rep.ID,
				rec.WorkDate,
				rec.IsHoliday,
				string(rec.Leave),
				rec.ClockIn,
				rec.ClockOut,
				int(rec.Worked.Minutes()),
				int(rec.Overtime.Minutes()),
				int(rec.HolidayWork.Minutes()),
				rec.Note,
			)
			if err != nil {
				return fmt.Errorf("failed to insert daily record for %s: %w", rec.WorkDate.Format("2006-01-02"), err)
			}
		}

		return nil
	})
	if err != nil {
		return report.Report{}, err
	}

	return rep, nil
}

// Find implements report.ReportRepository.
func (r *reportRepositoryImpl) Find(ctx context.Context, userID string, ym report.YearMonth) (report.Report, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, year, month, status, period_start, period_end,
			   work_days, paid_leave_days, compensatory_leave_days, special_leave_days,
			   total_worked_minutes, total_overtime_minutes, total_holiday_work_minutes,
			   created_at, updated_at
		FROM reports
		WHERE user_id = $1 AND year = $2 AND month = $3
	`

	var (
		rep                                                report.Report
		year, month                                        int
		status                                             string
		workedMinutes, overtimeMinutes, holidayWorkMinutes int
	)
	err := q.QueryRow(ctx, query, userID, ym.Year, int(ym.Month)).Scan(
		&rep.ID, &rep.UserID, &year, &month, &status,
		&rep.Period.Start, &rep.Period.End,
		&rep.Summary.WorkDays, &rep.Summary.PaidLeaveDays,
		&rep.Summary.CompensatoryLeaveDays, &rep.Summary.SpecialLeaveDays,
		&workedMinutes, &overtimeMinutes, &holidayWorkMinutes,
		&rep.CreatedAt, &rep.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return report.Report{}, report.ErrReportNotFound
		}
		return report.Report{}, fmt.Errorf("failed to get report: %w", err)
	}

	rep.YearMonth = report.YearMonth{Year: year, Month: time.Month(month)}
	rep.Status = report.Status(status)
	rep.Summary.TotalWorked = time.Duration(workedMinutes) * time.Minute
	rep.Summary.TotalOvertime = time.Duration(overtimeMinutes) * time.Minute
	rep.Summary.TotalHolidayWork = time.Duration(holidayWorkMinutes) * time.Minute

	records, err := r.findDailyRecords(ctx, rep.ID)
	if err != nil {
		return report.Report{}, err
	}
	rep.DailyRecords = records

	return rep, nil
}

func (r *reportRepositoryImpl) findDailyRecords(ctx context.Context, reportID string) ([]report.DailyRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT work_date, is_holiday, leave_category, clock_in, clock_out,
			   worked_minutes, overtime_minutes, holiday_work_minutes, note
		FROM report_daily_records
		WHERE report_id = $1
		ORDER BY work_date ASC
	`

	rows, err := q.Query(ctx, query, reportID)
	if err != nil {
		return nil, fmt.Errorf("failed to find daily records: %w", err)
	}
	defer rows.Close()

	var records []report.DailyRecord
	for rows.Next() {
		var (
			rec                                                report.DailyRecord
			leave                                              string
			workedMinutes, overtimeMinutes, holidayWorkMinutes int
		)
		err := rows.Scan(
			&rec.WorkDate, &rec.IsHoliday, &leave, &rec.ClockIn, &rec.ClockOut,
			&workedMinutes, &overtimeMinutes, &holidayWorkMinutes, &rec.Note,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan daily record: %w", err)
		}
		rec.Leave = report.LeaveCategory(leave)
		rec.Worked = time.Duration(workedMinutes) * time.Minute
		rec.Overtime = time.Duration(overtimeMinutes) * time.Minute
		rec.HolidayWork = time.Duration(holidayWorkMinutes) * time.Minute
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate daily records: %w", err)
	}

	return records, nil
}

// Delete implements report.ReportRepository. Daily records go with the report
// through the foreign key cascade.
func (r *reportRepositoryImpl) Delete(ctx context.Context, userID string, ym report.YearMonth) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM reports WHERE user_id = $1 AND year = $2 AND month = $3`,
		userID, ym.Year, int(ym.Month))
	if err != nil {
		return fmt.Errorf("failed to delete report: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return report.ErrReportNotFound
	}

	return nil
}

// ListDraftRefs implements report.ReportRepository.
func (r *reportRepositoryImpl) ListDraftRefs(ctx context.Context) ([]report.DraftRef, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT user_id, year, month FROM reports WHERE status = 'draft'`)
	if err != nil {
		return nil, fmt.Errorf("failed to list draft reports: %w", err)
	}
	defer rows.Close()

	var refs []report.DraftRef
	for rows.Next() {
		var (
			ref         report.DraftRef
			year, month int
		)
		if err := rows.Scan(&ref.UserID, &year, &month); err != nil {
			return nil, fmt.Errorf("failed to scan draft reference: %w", err)
		}
		ref.YearMonth = report.YearMonth{Year: year, Month: time.Month(month)}
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate draft references: %w", err)
	}

	return refs, nil
}
