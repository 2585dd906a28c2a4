package gateway_http

import (
	"context"
	"fmt"
	"time"

	httpclient "github.com/prasongk/fleetview/internal/pkg/http"
	"github.com/prasongk/fleetview/internal/pkg/models"
)

// DirectionsClient is an HTTP client for an OSRM-compatible directions
// provider.
type DirectionsClient struct {
	client *httpclient.Client
	apiKey string
}

// NewDirectionsClient creates a new directions provider client
func NewDirectionsClient(cfg models.DirectionsConfig) *DirectionsClient {
	return &DirectionsClient{
		client: httpclient.NewClient(cfg.BaseURL, time.Duration(cfg.TimeoutSeconds)*time.Second),
		apiKey: cfg.APIKey,
	}
}

// osrmResponse is the provider's route payload. Coordinates are GeoJSON
// ordered: longitude first.
type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
		Legs []struct {
			Summary string `json:"summary"`
		} `json:"legs"`
	} `json:"routes"`
}

// DrivingRoute requests a driving route between two points.
func (g *DirectionsClient) DrivingRoute(ctx context.Context, origin, destination models.LatLng) (*models.Route, error) {
	path := fmt.Sprintf("/route/v1/driving/%f,%f;%f,%f?overview=full&geometries=geojson",
		origin.Longitude, origin.Latitude,
		destination.Longitude, destination.Latitude)
	if g.apiKey != "" {
		path += "&key=" + g.apiKey
	}

	var parsed osrmResponse
	if err := g.client.GetJSON(ctx, path, &parsed); err != nil {
		return nil, fmt.Errorf("directions request failed: %w", err)
	}
	if parsed.Code != "Ok" || len(parsed.Routes) == 0 {
		return nil, fmt.Errorf("directions provider returned no route (code: %s)", parsed.Code)
	}

	best := parsed.Routes[0]
	route := &models.Route{
		Origin:          origin,
		Destination:     destination,
		DistanceMeters:  best.Distance,
		DurationSeconds: best.Duration,
		Path:            make([]models.LatLng, 0, len(best.Geometry.Coordinates)),
	}
	for _, coord := range best.Geometry.Coordinates {
		if len(coord) < 2 {
			continue
		}
		route.Path = append(route.Path, models.LatLng{Latitude: coord[1], Longitude: coord[0]})
	}
	if len(best.Legs) > 0 {
		route.Summary = best.Legs[0].Summary
	}
	return route, nil
}
