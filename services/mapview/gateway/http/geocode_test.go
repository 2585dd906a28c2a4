package gateway_http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prasongk/fleetview/internal/pkg/models"
)

func newGeocodeClient(serverURL, apiKey string) *GeocodeClient {
	return NewGeocodeClient(models.GeocodeConfig{BaseURL: serverURL, TimeoutSeconds: 5, APIKey: apiKey})
}

func TestReverseGeocode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)
		assert.Equal(t, "jsonv2", r.URL.Query().Get("format"))
		assert.Equal(t, "18.79", r.URL.Query().Get("lat"))
		assert.Equal(t, "98.98", r.URL.Query().Get("lon"))
		w.Write([]byte(`{"display_name":"Mueang Chiang Mai, Chiang Mai, Thailand"}`))
	}))
	defer server.Close()

	addr, err := newGeocodeClient(server.URL, "").ReverseGeocode(context.Background(), 18.79, 98.98)

	require.NoError(t, err)
	assert.Equal(t, "Mueang Chiang Mai, Chiang Mai, Thailand", addr)
}

func TestReverseGeocode_APIKeyAppended(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.URL.Query().Get("key"))
		w.Write([]byte(`{"display_name":"somewhere"}`))
	}))
	defer server.Close()

	_, err := newGeocodeClient(server.URL, "secret").ReverseGeocode(context.Background(), 18.79, 98.98)
	require.NoError(t, err)
}

func TestReverseGeocode_NoAddressFallsBackToCoordinates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	addr, err := newGeocodeClient(server.URL, "").ReverseGeocode(context.Background(), 18.79, 98.98)

	require.NoError(t, err)
	assert.Equal(t, "18.79,98.98", addr)
}

func TestReverseGeocode_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := newGeocodeClient(server.URL, "").ReverseGeocode(context.Background(), 18.79, 98.98)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}
