package report

import (
	"fmt"
	"time"
)

// YearMonth identifies the calendar month a report covers.
type YearMonth struct {
	Year  int
	Month time.Month
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// Prev returns the calendar month preceding ym.
func (ym YearMonth) Prev() YearMonth {
	if ym.Month == time.January {
		return YearMonth{Year: ym.Year - 1, Month: time.December}
	}
	return YearMonth{Year: ym.Year, Month: ym.Month - 1}
}

// LastDay returns the number of days in the month.
func (ym YearMonth) LastDay() int {
	// Day zero of the next month normalizes to the last day of ym.
	return time.Date(ym.Year, ym.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Period is an inclusive [Start, End] date range covered by one report.
type Period struct {
	Start time.Time
	End   time.Time
}

// Contains returns true if the date d falls within the period [Start, End].
func (p Period) Contains(d time.Time) bool {
	return !d.Before(p.Start) && !d.After(p.End)
}

// Days returns every calendar date in the period in ascending order.
func (p Period) Days() []time.Time {
	var days []time.Time
	for d := p.Start; !d.After(p.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

type LeaveCategory string

const (
	LeaveNone           LeaveCategory = ""
	LeavePaid           LeaveCategory = "paid_leave"
	LeavePaidAM         LeaveCategory = "paid_leave_am"
	LeavePaidPM         LeaveCategory = "paid_leave_pm"
	LeaveCompensatory   LeaveCategory = "compensatory_leave"
	LeaveCompensatoryAM LeaveCategory = "compensatory_leave_am"
	LeaveCompensatoryPM LeaveCategory = "compensatory_leave_pm"
	LeaveSpecial        LeaveCategory = "special_leave"
)

var LeaveCategoryValues = []string{
	string(LeaveNone),
	string(LeavePaid),
	string(LeavePaidAM),
	string(LeavePaidPM),
	string(LeaveCompensatory),
	string(LeaveCompensatoryAM),
	string(LeaveCompensatoryPM),
	string(LeaveSpecial),
}

// ConsumedDays returns how many leave days the category consumes:
// 1.0 for full-day variants, 0.5 for AM/PM variants, 0 otherwise.
func (c LeaveCategory) ConsumedDays() float64 {
	switch c {
	case LeavePaid, LeaveCompensatory, LeaveSpecial:
		return 1.0
	case LeavePaidAM, LeavePaidPM, LeaveCompensatoryAM, LeaveCompensatoryPM:
		return 0.5
	default:
		return 0
	}
}

func (c LeaveCategory) IsPaid() bool {
	return c == LeavePaid || c == LeavePaidAM || c == LeavePaidPM
}

func (c LeaveCategory) IsCompensatory() bool {
	return c == LeaveCompensatory || c == LeaveCompensatoryAM || c == LeaveCompensatoryPM
}

func (c LeaveCategory) IsSpecial() bool {
	return c == LeaveSpecial
}

// DailyRecord is one day of attendance within a report.
type DailyRecord struct {
	WorkDate    time.Time
	IsHoliday   bool
	Leave       LeaveCategory
	ClockIn     *time.Time
	ClockOut    *time.Time
	Worked      time.Duration
	Overtime    time.Duration
	HolidayWork time.Duration
	Note        *string
}

// MonthlySummary holds aggregate totals over a report's daily records.
// It is always rebuilt from the full record list, never patched in place.
type MonthlySummary struct {
	WorkDays              float64
	PaidLeaveDays         float64
	CompensatoryLeaveDays float64
	SpecialLeaveDays      float64
	TotalWorked           time.Duration
	TotalOvertime         time.Duration
	TotalHolidayWork      time.Duration
}

type Status string

const (
	StatusDraft     Status = "draft"
	StatusSubmitted Status = "submitted"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
)

// IsFinalized reports whether the report may no longer be regenerated.
func (s Status) IsFinalized() bool {
	return s == StatusSubmitted || s == StatusApproved
}

type Report struct {
	ID           string
	UserID       string
	YearMonth    YearMonth
	Status       Status
	Period       Period
	DailyRecords []DailyRecord
	Summary      MonthlySummary
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
