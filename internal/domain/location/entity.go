package location

import "time"

// Ping is one raw GPS location sample recorded by a user's device.
type Ping struct {
	ID         string
	UserID     string
	Latitude   float64
	Longitude  float64
	RecordedAt time.Time
	CreatedAt  time.Time
}
