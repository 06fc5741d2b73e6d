package location

import (
	"context"
	"time"
)

// PingRepository defines access to raw location pings.
type PingRepository interface {
	Create(ctx context.Context, ping Ping) (Ping, error)

	// FindPings returns the user's pings with RecordedAt in [start, end),
	// ordered by RecordedAt ascending.
	FindPings(ctx context.Context, userID string, start, end time.Time) ([]Ping, error)
}
