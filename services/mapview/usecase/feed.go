package usecase

import (
	"context"
	"sync"

	"github.com/prasongk/fleetview/internal/pkg/logger"
	"github.com/prasongk/fleetview/internal/pkg/models"
)

// StartFeed begins the periodic fleet poll: an immediate refresh, then one
// every poll interval until StopFeed.
func (uc *MapViewUC) StartFeed(ctx context.Context) {
	uc.feedTask.Start(ctx)
}

// StopFeed cancels the poll. No refresh runs after it returns.
func (uc *MapViewUC) StopFeed() {
	uc.feedTask.Stop()
}

// FeedRunning reports whether the poll loop is active.
func (uc *MapViewUC) FeedRunning() bool {
	return uc.feedTask.Running()
}

// Refresh fetches vehicle positions and geofences concurrently and replaces
// the fleet snapshot wholesale. If either fetch fails the previous snapshot
// is kept untouched; stale data beats no data.
func (uc *MapViewUC) Refresh(ctx context.Context) {
	var (
		wg           sync.WaitGroup
		vehicles     []models.VehiclePosition
		geofences    []models.Geofence
		vehiclesErr  error
		geofencesErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		vehicles, vehiclesErr = uc.fleetGW.FetchVehicles(ctx)
	}()
	go func() {
		defer wg.Done()
		geofences, geofencesErr = uc.fleetGW.FetchGeofences(ctx)
	}()
	wg.Wait()

	if vehiclesErr != nil || geofencesErr != nil {
		if vehiclesErr != nil {
			logger.Error("Failed to fetch vehicle positions", logger.Err(vehiclesErr))
		}
		if geofencesErr != nil {
			logger.Error("Failed to fetch geofences", logger.Err(geofencesErr))
		}
		uc.feedMu.Lock()
		uc.feedStatus.Failures++
		uc.feedMu.Unlock()
		return
	}

	snapshot := models.FleetSnapshot{
		Vehicles:  vehicles,
		Geofences: geofences,
		FetchedAt: models.Now(),
	}

	uc.feedMu.Lock()
	uc.snapshot = snapshot
	uc.feedStatus.LastSuccess = snapshot.FetchedAt
	uc.feedStatus.Failures = 0
	uc.feedMu.Unlock()

	logger.Debug("Fleet snapshot replaced",
		logger.Int("vehicles", len(vehicles)),
		logger.Int("geofences", len(geofences)))

	if uc.broadcaster != nil {
		uc.broadcaster.Broadcast("fleet_snapshot", snapshot)
	}
}

// Snapshot returns a copy of the most recently completed poll's full result.
func (uc *MapViewUC) Snapshot() models.FleetSnapshot {
	uc.feedMu.RLock()
	defer uc.feedMu.RUnlock()

	out := models.FleetSnapshot{FetchedAt: uc.snapshot.FetchedAt}
	out.Vehicles = append(out.Vehicles, uc.snapshot.Vehicles...)
	out.Geofences = append(out.Geofences, uc.snapshot.Geofences...)
	return out
}

// FeedStatus returns the freshness of the current snapshot.
func (uc *MapViewUC) FeedStatus() models.FeedStatus {
	uc.feedMu.RLock()
	defer uc.feedMu.RUnlock()
	return uc.feedStatus
}
