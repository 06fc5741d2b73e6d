package report

import (
	"github.com/kintai-hq/kintai-backend-go/internal/domain/report"
)

// Aggregate folds daily records into the monthly summary. The result is a
// pure function of the record list: order of input does not matter, and an
// empty list yields the all-zero summary.
func Aggregate(records []report.DailyRecord) report.MonthlySummary {
	var summary report.MonthlySummary
	var attended float64

	for _, rec := range records {
		switch {
		case rec.Leave.IsPaid():
			summary.PaidLeaveDays += rec.Leave.ConsumedDays()
		case rec.Leave.IsCompensatory():
			summary.CompensatoryLeaveDays += rec.Leave.ConsumedDays()
		case rec.Leave.IsSpecial():
			// Special leave is counted per record, one day each.
			summary.SpecialLeaveDays += 1.0
		}

		// A holiday record without a leave category still counts as
		// attendance (unrequested holiday work).
		if !rec.IsHoliday || rec.Leave == report.LeaveNone {
			attended++
		}

		summary.TotalWorked += rec.Worked
		summary.TotalOvertime += rec.Overtime
		summary.TotalHolidayWork += rec.HolidayWork
	}

	summary.WorkDays = attended - summary.PaidLeaveDays - summary.CompensatoryLeaveDays - summary.SpecialLeaveDays

	return summary
}
