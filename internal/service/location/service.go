package location

import (
	"context"
	"fmt"
	"time"

	"github.com/kintai-hq/kintai-backend-go/internal/domain/location"
	"github.com/kintai-hq/kintai-backend-go/internal/pkg/jwt"
	"github.com/kintai-hq/kintai-backend-go/internal/pkg/validator"
)

type LocationServiceImpl struct {
	pingRepo location.PingRepository
}

func NewLocationService(pingRepo location.PingRepository) location.LocationService {
	return &LocationServiceImpl{pingRepo: pingRepo}
}

// RecordPing implements location.LocationService.
func (s *LocationServiceImpl) RecordPing(ctx context.Context, req location.RecordPingRequest) (location.PingResponse, error) {
	if err := req.Validate(); err != nil {
		return location.PingResponse{}, err
	}

	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return location.PingResponse{}, err
	}

	recordedAt := time.Now().UTC()
	if req.RecordedAt != "" {
		parsed, _ := validator.IsValidDateTime(req.RecordedAt)
		recordedAt = parsed.UTC()
	}

	created, err := s.pingRepo.Create(ctx, location.Ping{
		UserID:     userID,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		RecordedAt: recordedAt,
	})
	if err != nil {
		return location.PingResponse{}, fmt.Errorf("failed to create location ping: %w", err)
	}

	return location.ToPingResponse(created), nil
}
