package gateway_http

import (
	"context"
	"fmt"
	"net/url"
	"time"

	httpclient "github.com/prasongk/fleetview/internal/pkg/http"
	"github.com/prasongk/fleetview/internal/pkg/models"
)

// FleetClient is an HTTP client for the upstream fleet backend API.
type FleetClient struct {
	client *httpclient.Client
}

// NewFleetClient creates a new fleet API client
func NewFleetClient(cfg models.UpstreamConfig) *FleetClient {
	return &FleetClient{
		client: httpclient.NewClient(cfg.BaseURL, time.Duration(cfg.TimeoutSeconds)*time.Second),
	}
}

// FetchVehicles retrieves the complete current fleet snapshot. The upstream
// serves it as an array or as an id-keyed object; both decode.
func (g *FleetClient) FetchVehicles(ctx context.Context) ([]models.VehiclePosition, error) {
	var list models.VehiclePositionList
	if err := g.client.GetJSON(ctx, "/vehicles", &list); err != nil {
		return nil, fmt.Errorf("fleet vehicles request failed: %w", err)
	}
	return list, nil
}

// FetchGeofences retrieves all geofence records.
func (g *FleetClient) FetchGeofences(ctx context.Context) ([]models.Geofence, error) {
	var geofences []models.Geofence
	if err := g.client.GetJSON(ctx, "/geofences", &geofences); err != nil {
		return nil, fmt.Errorf("fleet geofences request failed: %w", err)
	}
	return geofences, nil
}

// FetchVehicleEvents retrieves one vehicle's event history for a date.
func (g *FleetClient) FetchVehicleEvents(ctx context.Context, vehicleID, date string) (*models.EventsResponse, error) {
	path := fmt.Sprintf("/vehicle/%s/view", url.PathEscape(vehicleID))
	if date != "" {
		path += "?date=" + url.QueryEscape(date)
	}

	var events models.EventsResponse
	if err := g.client.GetJSON(ctx, path, &events); err != nil {
		return nil, fmt.Errorf("vehicle events request failed: %w", err)
	}
	return &events, nil
}
