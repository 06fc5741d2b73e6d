package report

import (
	"fmt"
	"time"

	"github.com/kintai-hq/kintai-backend-go/internal/pkg/validator"
)

type GenerateReportRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

func (r *GenerateReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	currentYear := time.Now().Year()
	if r.Year < 2020 || r.Year > currentYear+1 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: fmt.Sprintf("year must be between 2020 and %d", currentYear+1),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type GetReportRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

func (r *GetReportRequest) Validate() error {
	req := GenerateReportRequest{Year: r.Year, Month: r.Month}
	return req.Validate()
}

type ReportResponse struct {
	ID          string                `json:"id"`
	UserID      string                `json:"user_id"`
	YearMonth   string                `json:"year_month"`
	Status      string                `json:"status"`
	PeriodStart string                `json:"period_start"`
	PeriodEnd   string                `json:"period_end"`
	Summary     SummaryResponse       `json:"summary"`
	DailyLogs   []DailyRecordResponse `json:"daily_logs"`
	GeneratedAt string                `json:"generated_at"`
}

type SummaryResponse struct {
	WorkDays              float64 `json:"work_days"`
	PaidLeaveDays         float64 `json:"paid_leave_days"`
	CompensatoryLeaveDays float64 `json:"compensatory_leave_days"`
	SpecialLeaveDays      float64 `json:"special_leave_days"`
	TotalWorkedMinutes    int     `json:"total_worked_minutes"`
	TotalOvertimeMinutes  int     `json:"total_overtime_minutes"`
	TotalHolidayMinutes   int     `json:"total_holiday_work_minutes"`
}

type DailyRecordResponse struct {
	Date               string  `json:"date"`
	IsHoliday          bool    `json:"is_holiday"`
	LeaveCategory      string  `json:"leave_category,omitempty"`
	ClockIn            *string `json:"clock_in,omitempty"`
	ClockOut           *string `json:"clock_out,omitempty"`
	WorkedMinutes      int     `json:"worked_minutes"`
	OvertimeMinutes    int     `json:"overtime_minutes"`
	HolidayWorkMinutes int     `json:"holiday_work_minutes"`
	Note               *string `json:"note,omitempty"`
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

// ToResponse maps a Report entity to its API representation.
func ToResponse(rep Report) ReportResponse {
	logs := make([]DailyRecordResponse, 0, len(rep.DailyRecords))
	for _, rec := range rep.DailyRecords {
		logs = append(logs, DailyRecordResponse{
			Date:               rec.WorkDate.Format("2006-01-02"),
			IsHoliday:          rec.IsHoliday,
			LeaveCategory:      string(rec.Leave),
			ClockIn:            timePtrToString(rec.ClockIn),
			ClockOut:           timePtrToString(rec.ClockOut),
			WorkedMinutes:      int(rec.Worked.Minutes()),
			OvertimeMinutes:    int(rec.Overtime.Minutes()),
			HolidayWorkMinutes: int(rec.HolidayWork.Minutes()),
			Note:               rec.Note,
		})
	}

	return ReportResponse{
		ID:          rep.ID,
		UserID:      rep.UserID,
		YearMonth:   rep.YearMonth.String(),
		Status:      string(rep.Status),
		PeriodStart: rep.Period.Start.Format("2006-01-02"),
		PeriodEnd:   rep.Period.End.Format("2006-01-02"),
		Summary: SummaryResponse{
			WorkDays:              rep.Summary.WorkDays,
			PaidLeaveDays:         rep.Summary.PaidLeaveDays,
			CompensatoryLeaveDays: rep.Summary.CompensatoryLeaveDays,
			SpecialLeaveDays:      rep.Summary.SpecialLeaveDays,
			TotalWorkedMinutes:    int(rep.Summary.TotalWorked.Minutes()),
			TotalOvertimeMinutes:  int(rep.Summary.TotalOvertime.Minutes()),
			TotalHolidayMinutes:   int(rep.Summary.TotalHolidayWork.Minutes()),
		},
		DailyLogs:   logs,
		GeneratedAt: rep.UpdatedAt.Format(time.RFC3339),
	}
}
