package mapview

import (
	"context"

	"github.com/prasongk/fleetview/internal/pkg/models"
)

// FleetGW defines the interface for the upstream fleet backend API.
type FleetGW interface {
	// FetchVehicles retrieves the complete current fleet snapshot.
	FetchVehicles(ctx context.Context) ([]models.VehiclePosition, error)

	// FetchGeofences retrieves all geofence records.
	FetchGeofences(ctx context.Context) ([]models.Geofence, error)

	// FetchVehicleEvents retrieves one vehicle's event history for a date
	// (YYYY-MM-DD).
	FetchVehicleEvents(ctx context.Context, vehicleID, date string) (*models.EventsResponse, error)
}

// DirectionsGW defines the interface for the external directions provider.
type DirectionsGW interface {
	// DrivingRoute requests a driving route between two points.
	DrivingRoute(ctx context.Context, origin, destination models.LatLng) (*models.Route, error)
}

// GeocodeGW defines the interface for the external reverse-geocoding provider.
type GeocodeGW interface {
	// ReverseGeocode resolves a coordinate pair to a display address.
	ReverseGeocode(ctx context.Context, lat, lng float64) (string, error)
}
