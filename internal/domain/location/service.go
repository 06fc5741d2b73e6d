package location

import (
	"context"
)

// LocationService defines business logic for raw location pings.
type LocationService interface {
	// RecordPing stores one GPS sample for the authenticated user.
	RecordPing(ctx context.Context, req RecordPingRequest) (PingResponse, error)
}
