package usecase

import (
	"context"
	"strings"

	"github.com/prasongk/fleetview/internal/pkg/logger"
	"github.com/prasongk/fleetview/internal/pkg/models"
	"github.com/prasongk/fleetview/internal/utils"
)

// routeSignature identifies the coordinate sequence of an event window. The
// route is only re-derived when this changes, so a value-equal window rebuilt
// from the same events does not trigger another provider request.
func routeSignature(window []models.Event) string {
	if len(window) == 0 {
		return ""
	}
	parts := make([]string, len(window))
	for i, e := range window {
		parts[i] = e.CoordKey()
	}
	return strings.Join(parts, ";")
}

// deriveRoute computes the driving route from the oldest to the newest event
// of the window. It returns nil when the preconditions fail or the provider
// errors: fewer than two events, unparseable endpoints, or endpoints within
// the coincidence epsilon of each other (no meaningful movement).
func (uc *MapViewUC) deriveRoute(ctx context.Context, window []models.Event) *models.Route {
	if len(window) < 2 {
		return nil
	}

	// Window is sorted descending: newest first, oldest last.
	newest := window[0]
	oldest := window[len(window)-1]
	if !oldest.HasCoordinates() || !newest.HasCoordinates() {
		return nil
	}

	origin := models.LatLng{Latitude: oldest.Latitude.Value, Longitude: oldest.Longitude.Value}
	destination := models.LatLng{Latitude: newest.Latitude.Value, Longitude: newest.Longitude.Value}
	if utils.CoordinatesClose(origin, destination) {
		return nil
	}

	route, err := uc.directionsGW.DrivingRoute(ctx, origin, destination)
	if err != nil {
		logger.Error("Failed to derive driving route",
			logger.Float64("origin_lat", origin.Latitude),
			logger.Float64("origin_lng", origin.Longitude),
			logger.Float64("destination_lat", destination.Latitude),
			logger.Float64("destination_lng", destination.Longitude),
			logger.Err(err))
		return nil
	}
	return route
}
