package usecase

import (
	"sync"
	"time"

	"github.com/prasongk/fleetview/internal/pkg/models"
	"github.com/prasongk/fleetview/internal/pkg/scheduler"
	"github.com/prasongk/fleetview/services/mapview"
)

// MapViewUC implements the mapview.MapViewUC interface.
type MapViewUC struct {
	cfg          *models.Config
	fleetGW      mapview.FleetGW
	directionsGW mapview.DirectionsGW
	geocodeGW    mapview.GeocodeGW
	geocodeCache mapview.GeocodeCacheRepo
	broadcaster  mapview.Broadcaster

	feedTask *scheduler.Task

	// Fleet snapshot; single writer (the poll tick), replaced wholesale.
	feedMu     sync.RWMutex
	snapshot   models.FleetSnapshot
	feedStatus models.FeedStatus

	// Selected-vehicle session.
	sess sessionState

	// Reverse-geocode resolution lifecycles, keyed by coordinate key.
	geoMu      sync.Mutex
	geoPending map[string]bool
	geoFailed  map[string]string
}

// NewMapViewUC creates a new map-view use case. The broadcaster may be nil
// when no live viewers are wired (tests).
func NewMapViewUC(
	cfg *models.Config,
	fleetGW mapview.FleetGW,
	directionsGW mapview.DirectionsGW,
	geocodeGW mapview.GeocodeGW,
	geocodeCache mapview.GeocodeCacheRepo,
	broadcaster mapview.Broadcaster,
) *MapViewUC {
	uc := &MapViewUC{
		cfg:          cfg,
		fleetGW:      fleetGW,
		directionsGW: directionsGW,
		geocodeGW:    geocodeGW,
		geocodeCache: geocodeCache,
		broadcaster:  broadcaster,
		geoPending:   make(map[string]bool),
		geoFailed:    make(map[string]string),
	}
	uc.sess.reset(uc.defaultViewport())
	uc.feedTask = scheduler.NewTask("fleet-poll", uc.pollInterval(), uc.Refresh)
	return uc
}

func (uc *MapViewUC) pollInterval() time.Duration {
	if uc.cfg.Map.PollIntervalSeconds <= 0 {
		return 20 * time.Second
	}
	return time.Duration(uc.cfg.Map.PollIntervalSeconds) * time.Second
}

func (uc *MapViewUC) windowDuration() time.Duration {
	if uc.cfg.Map.WindowHours <= 0 {
		return 4 * time.Hour
	}
	return time.Duration(uc.cfg.Map.WindowHours) * time.Hour
}

func (uc *MapViewUC) defaultViewport() models.Viewport {
	return models.Viewport{
		Center: models.LatLng{
			Latitude:  uc.cfg.Map.DefaultCenterLat,
			Longitude: uc.cfg.Map.DefaultCenterLng,
		},
		Zoom: uc.cfg.Map.DefaultZoom,
	}
}
