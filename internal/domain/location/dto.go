package location

import (
	"time"

	"github.com/kintai-hq/kintai-backend-go/internal/pkg/validator"
)

type RecordPingRequest struct {
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	RecordedAt string  `json:"recorded_at"` // RFC3339; defaults to now when empty
}

func (r *RecordPingRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Latitude < -90 || r.Latitude > 90 {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}
	if r.Longitude < -180 || r.Longitude > 180 {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}
	if r.RecordedAt != "" {
		if _, ok := validator.IsValidDateTime(r.RecordedAt); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "recorded_at",
				Message: "recorded_at must be an RFC3339 timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PingResponse struct {
	ID         string  `json:"id"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	RecordedAt string  `json:"recorded_at"`
}

func ToPingResponse(p Ping) PingResponse {
	return PingResponse{
		ID:         p.ID,
		Latitude:   p.Latitude,
		Longitude:  p.Longitude,
		RecordedAt: p.RecordedAt.Format(time.RFC3339),
	}
}
