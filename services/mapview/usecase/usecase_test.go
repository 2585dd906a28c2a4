package usecase

import (
	"strconv"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/prasongk/fleetview/internal/pkg/models"
	"github.com/prasongk/fleetview/services/mapview/mocks"
)

// testMocks bundles the gomock doubles behind one use case instance.
type testMocks struct {
	fleet      *mocks.MockFleetGW
	directions *mocks.MockDirectionsGW
	geocode    *mocks.MockGeocodeGW
	cache      *mocks.MockGeocodeCacheRepo
}

func testConfig() *models.Config {
	return &models.Config{
		Map: models.MapConfig{
			PollIntervalSeconds: 1,
			WindowHours:         4,
			DefaultCenterLat:    18.7904,
			DefaultCenterLng:    98.9847,
			DefaultZoom:         6,
			SelectedZoom:        16,
		},
	}
}

func newTestUC(ctrl *gomock.Controller) (*MapViewUC, *testMocks) {
	m := &testMocks{
		fleet:      mocks.NewMockFleetGW(ctrl),
		directions: mocks.NewMockDirectionsGW(ctrl),
		geocode:    mocks.NewMockGeocodeGW(ctrl),
		cache:      mocks.NewMockGeocodeCacheRepo(ctrl),
	}
	uc := NewMapViewUC(testConfig(), m.fleet, m.directions, m.geocode, m.cache, nil)
	return uc, m
}

func makeVehicle(id, registration, status, lat, lng string) models.VehiclePosition {
	return models.VehiclePosition{
		VehicleID:       id,
		Registration:    registration,
		StatusClassName: status,
		Latitude:        lat,
		Longitude:       lng,
	}
}

func makeEvent(ts time.Time, lat, lng float64) models.Event {
	return models.Event{
		Timestamp:    ts,
		HasTimestamp: true,
		Latitude:     makeCoordinate(lat),
		Longitude:    makeCoordinate(lng),
	}
}

func makeCoordinate(v float64) models.Coordinate {
	return models.Coordinate{
		Raw:   strconv.FormatFloat(v, 'f', -1, 64),
		Value: v,
		Valid: true,
	}
}
