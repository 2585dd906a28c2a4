package gateway_http

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	httpclient "github.com/prasongk/fleetview/internal/pkg/http"
	"github.com/prasongk/fleetview/internal/pkg/models"
)

// GeocodeClient is an HTTP client for a Nominatim-compatible reverse
// geocoding provider.
type GeocodeClient struct {
	client *httpclient.Client
	apiKey string
}

// NewGeocodeClient creates a new reverse-geocoding client
func NewGeocodeClient(cfg models.GeocodeConfig) *GeocodeClient {
	return &GeocodeClient{
		client: httpclient.NewClient(cfg.BaseURL, time.Duration(cfg.TimeoutSeconds)*time.Second),
		apiKey: cfg.APIKey,
	}
}

// ReverseGeocode resolves a coordinate pair to a display address. When the
// provider has no address for the point, the raw coordinate pair is returned
// rather than an error.
func (g *GeocodeClient) ReverseGeocode(ctx context.Context, lat, lng float64) (string, error) {
	params := url.Values{}
	params.Set("format", "jsonv2")
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lng, 'f', -1, 64))
	if g.apiKey != "" {
		params.Set("key", g.apiKey)
	}

	var parsed struct {
		DisplayName string `json:"display_name"`
	}
	if err := g.client.GetJSON(ctx, "/reverse?"+params.Encode(), &parsed); err != nil {
		return "", fmt.Errorf("geocode request failed: %w", err)
	}

	if parsed.DisplayName == "" {
		return fmt.Sprintf("%s,%s",
			strconv.FormatFloat(lat, 'f', -1, 64),
			strconv.FormatFloat(lng, 'f', -1, 64)), nil
	}
	return parsed.DisplayName, nil
}
