package report

import (
	"time"

	"github.com/kintai-hq/kintai-backend-go/internal/domain/report"
)

// ResolvePeriod converts a report month and a user's closing day into the
// inclusive [start, end] date range the report covers. The period runs from
// the day after the previous month's closing day through this month's closing
// day; a closing day past the end of either month clamps to that month's last
// day (closing day 31 in February ends on the 28th or 29th).
func ResolvePeriod(ym report.YearMonth, closingDay int) (report.Period, error) {
	if closingDay < 1 || closingDay > 31 {
		return report.Period{}, report.ErrInvalidClosingDay
	}

	prev := ym.Prev()
	prevClose := time.Date(prev.Year, prev.Month, min(closingDay, prev.LastDay()), 0, 0, 0, 0, time.UTC)

	return report.Period{
		Start: prevClose.AddDate(0, 0, 1),
		End:   time.Date(ym.Year, ym.Month, min(closingDay, ym.LastDay()), 0, 0, 0, 0, time.UTC),
	}, nil
}
