package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/kintai-hq/kintai-backend-go/internal/domain/location"
	"github.com/kintai-hq/kintai-backend-go/internal/pkg/database"
)

type locationPingRepositoryImpl struct {
	db *database.DB
}

func NewLocationPingRepository(db *database.DB) location.PingRepository {
	return &locationPingRepositoryImpl{db: db}
}

// Create implements location.PingRepository.
func (r *locationPingRepositoryImpl) Create(ctx context.Context, ping location.Ping) (location.Ping, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO location_pings (user_id, latitude, longitude, recorded_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		ping.UserID,
		ping.Latitude,
		ping.Longitude,
		ping.RecordedAt,
	).Scan(&ping.ID, &ping.CreatedAt)

	if err != nil {
		return location.Ping{}, fmt.Errorf("failed to create location ping: %w", err)
	}

	return ping, nil
}

// FindPings implements location.PingRepository.
func (r *locationPingRepositoryImpl) FindPings(ctx context.Context, userID string, start, end time.Time) ([]location.Ping, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, latitude, longitude, recorded_at, created_at
		FROM location_pings
		WHERE user_id = $1
		  AND recorded_at >= $2
		  AND recorded_at < $3
		ORDER BY recorded_at ASC
	`

	rows, err := q.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to find location pings: %w", err)
	}
	defer rows.Close()

	var pings []location.Ping
	for rows.Next() {
		var p location.Ping
		if err := rows.Scan(&p.ID, &p.UserID, &p.Latitude, &p.Longitude, &p.RecordedAt, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan location ping: %w", err)
		}
		pings = append(pings, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate location pings: %w", err)
	}

	return pings, nil
}
