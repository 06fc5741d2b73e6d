package report

import (
	"github.com/kintai-hq/kintai-backend-go/internal/domain/location"
	"github.com/kintai-hq/kintai-backend-go/internal/domain/report"
	"github.com/kintai-hq/kintai-backend-go/internal/domain/workrule"
	"github.com/kintai-hq/kintai-backend-go/internal/pkg/geo"
)

// filterByWorkplace keeps the pings within toleranceMeters of the workplace,
// preserving input order.
func filterByWorkplace(pings []location.Ping, workplace workrule.Workplace, toleranceMeters float64) ([]location.Ping, error) {
	if toleranceMeters < 0 {
		return nil, report.ErrNegativeTolerance
	}

	kept := make([]location.Ping, 0, len(pings))
	for _, p := range pings {
		d, err := geo.Distance(p.Latitude, p.Longitude, workplace.Latitude, workplace.Longitude)
		if err != nil {
			return nil, err
		}
		if d <= toleranceMeters {
			kept = append(kept, p)
		}
	}

	return kept, nil
}
