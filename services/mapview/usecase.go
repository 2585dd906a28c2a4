package mapview

import (
	"context"

	"github.com/prasongk/fleetview/internal/pkg/models"
)

// MapViewUC defines the interface for the map-view engine: the fleet
// position feed, vehicle filtering, marker clustering, and the selected
// vehicle's event timeline session.
type MapViewUC interface {
	// Feed operations
	StartFeed(ctx context.Context)
	StopFeed()
	FeedRunning() bool
	Refresh(ctx context.Context)
	Snapshot() models.FleetSnapshot
	FeedStatus() models.FeedStatus

	// Filter and marker operations
	FilteredVehicles(search string, statuses []string) []models.VehiclePosition
	Markers(search string, statuses []string, zoom int) []models.MarkerCluster

	// Session operations
	SelectVehicle(ctx context.Context, vehicleID string) (*models.SessionView, error)
	CloseSelection()
	Session(ctx context.Context) models.SessionView
}

// Broadcaster pushes feed updates to connected map viewers.
type Broadcaster interface {
	Broadcast(event string, data interface{})
}
