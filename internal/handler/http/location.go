package http

import (
	"encoding/json"
	"net/http"

	"github.com/kintai-hq/kintai-backend-go/internal/domain/location"
	"github.com/kintai-hq/kintai-backend-go/internal/handler/http/response"
)

type LocationHandler interface {
	RecordPing(w http.ResponseWriter, r *http.Request)
}

type locationHandlerImpl struct {
	locationService location.LocationService
}

func NewLocationHandler(locationService location.LocationService) LocationHandler {
	return &locationHandlerImpl{
		locationService: locationService,
	}
}

// RecordPing handles POST /locations/pings
func (h *locationHandlerImpl) RecordPing(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req location.RecordPingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}

	result, err := h.locationService.RecordPing(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Location ping recorded", result)
}
