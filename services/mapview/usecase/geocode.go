package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/prasongk/fleetview/internal/pkg/logger"
	"github.com/prasongk/fleetview/internal/pkg/models"
)

// Display labels for the event position column.
const (
	NoPositionLabel        = "ไม่มีข้อมูลตำแหน่ง"
	ResolvingPositionLabel = "กำลังค้นหาตำแหน่ง..."
)

// resolvePosition returns the best available position label for an event,
// cheapest source first: the event's own descriptive field, then the geocode
// cache, then a background reverse-geocode request. While a request is in
// flight the transient resolving label is shown; a failed resolution falls
// back to the raw coordinate string for the rest of the session.
func (uc *MapViewUC) resolvePosition(ctx context.Context, e models.Event) string {
	// A descriptive field that is not itself a coordinate pair wins outright.
	if e.PositionLabel != "" && !strings.Contains(e.PositionLabel, ",") {
		return e.PositionLabel
	}

	key := e.CoordKey()
	if key == "" {
		if e.PositionLabel != "" {
			return e.PositionLabel
		}
		return NoPositionLabel
	}

	if !e.HasCoordinates() {
		return e.RawCoordLabel()
	}

	if addr, found, err := uc.geocodeCache.Get(ctx, key); err != nil {
		logger.Warn("Geocode cache lookup failed", logger.String("key", key), logger.Err(err))
	} else if found {
		return addr
	}

	uc.geoMu.Lock()
	defer uc.geoMu.Unlock()

	if fallback, ok := uc.geoFailed[key]; ok {
		return fallback
	}
	if uc.geoPending[key] {
		return ResolvingPositionLabel
	}

	uc.geoPending[key] = true
	go uc.resolveInBackground(key, e.Latitude.Value, e.Longitude.Value, e.RawCoordLabel())

	return ResolvingPositionLabel
}

// resolveInBackground performs the provider call for one coordinate key.
// Each distinct key gets exactly one in-flight request; the outcome is either
// cached for the session or recorded as a raw-coordinate fallback.
func (uc *MapViewUC) resolveInBackground(key string, lat, lng float64, fallback string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	addr, err := uc.geocodeGW.ReverseGeocode(ctx, lat, lng)

	uc.geoMu.Lock()
	defer uc.geoMu.Unlock()
	delete(uc.geoPending, key)

	if err != nil {
		logger.Error("Reverse geocoding failed", logger.String("key", key), logger.Err(err))
		uc.geoFailed[key] = fallback
		return
	}
	if setErr := uc.geocodeCache.Set(ctx, key, addr); setErr != nil {
		logger.Warn("Failed to cache geocode result", logger.String("key", key), logger.Err(setErr))
		// Keep the resolved address for this session even if the cache write
		// failed.
		uc.geoFailed[key] = addr
	}
}
