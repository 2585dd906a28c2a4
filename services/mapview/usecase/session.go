package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/prasongk/fleetview/internal/pkg/logger"
	"github.com/prasongk/fleetview/internal/pkg/models"
)

// ErrVehicleNotFound is returned when a selection targets a vehicle that is
// not in the current fleet snapshot.
var ErrVehicleNotFound = errors.New("vehicle not found in current snapshot")

// sessionState holds the selected vehicle's timeline session. The explicit
// state machine is idle -> loading -> ready, back to idle on close; loading
// without a selected vehicle cannot be represented.
type sessionState struct {
	mu          sync.Mutex
	state       models.SessionState
	vehicle     *models.VehiclePosition
	fetchToken  string
	events      []models.Event
	sensorNames map[string]string
	viewport    models.Viewport
	route       *models.Route
	routeSig    string
}

func (s *sessionState) reset(viewport models.Viewport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = models.SessionIdle
	s.vehicle = nil
	s.fetchToken = ""
	s.events = nil
	s.sensorNames = nil
	s.viewport = viewport
	s.route = nil
	s.routeSig = ""
}

// selection returns the selected vehicle id and whether the event panel is
// open. The panel is open in every non-idle state.
func (s *sessionState) selection() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == models.SessionIdle || s.vehicle == nil {
		return "", false
	}
	return s.vehicle.VehicleID, true
}

// SelectVehicle transitions the session to loading for the given vehicle,
// recenters the viewport on it, and fetches its events for today. The fetch
// result is applied only if this selection is still the current one when it
// lands; a superseded fetch is discarded.
func (uc *MapViewUC) SelectVehicle(ctx context.Context, vehicleID string) (*models.SessionView, error) {
	snapshot := uc.Snapshot()
	var vehicle *models.VehiclePosition
	for i := range snapshot.Vehicles {
		if snapshot.Vehicles[i].VehicleID == vehicleID {
			vehicle = &snapshot.Vehicles[i]
			break
		}
	}
	if vehicle == nil {
		return nil, ErrVehicleNotFound
	}

	token := uuid.New().String()

	uc.sess.mu.Lock()
	uc.sess.state = models.SessionLoading
	uc.sess.vehicle = vehicle
	uc.sess.fetchToken = token
	uc.sess.events = nil
	uc.sess.sensorNames = nil
	uc.sess.route = nil
	uc.sess.routeSig = ""
	if lat, lng, ok := vehicle.Coordinates(); ok {
		uc.sess.viewport = models.Viewport{
			Center: models.LatLng{Latitude: lat, Longitude: lng},
			Zoom:   uc.cfg.Map.SelectedZoom,
		}
	}
	uc.sess.mu.Unlock()

	today := models.Now().Format("2006-01-02")
	resp, err := uc.fleetGW.FetchVehicleEvents(ctx, vehicleID, today)

	uc.sess.mu.Lock()
	if uc.sess.fetchToken != token {
		// A newer selection (or a close) superseded this fetch.
		uc.sess.mu.Unlock()
		view := uc.Session(ctx)
		return &view, nil
	}
	if err != nil {
		logger.Error("Failed to fetch vehicle events",
			logger.String("vehicle_id", vehicleID),
			logger.String("date", today),
			logger.Err(err))
		uc.sess.events = nil
		uc.sess.sensorNames = nil
	} else {
		events := make([]models.Event, 0, len(resp.Events))
		for _, raw := range resp.Events {
			events = append(events, models.NormalizeEvent(raw))
		}
		uc.sess.events = events
		uc.sess.sensorNames = resp.SensorNames
	}
	uc.sess.state = models.SessionReady
	uc.sess.mu.Unlock()

	view := uc.Session(ctx)
	return &view, nil
}

// CloseSelection returns the session to idle: selection, events, sensor map,
// and route are cleared and the viewport resets to the default.
func (uc *MapViewUC) CloseSelection() {
	uc.sess.reset(uc.defaultViewport())
}

// Session returns the current session view. The event window is recomputed
// against wall-clock now on every call, the route is re-derived when the
// window's coordinate sequence changes, and each windowed event carries its
// best available position label.
func (uc *MapViewUC) Session(ctx context.Context) models.SessionView {
	uc.sess.mu.Lock()
	state := uc.sess.state
	vehicle := uc.sess.vehicle
	token := uc.sess.fetchToken
	events := uc.sess.events
	sensorNames := uc.sess.sensorNames
	viewport := uc.sess.viewport
	route := uc.sess.route
	routeSig := uc.sess.routeSig
	uc.sess.mu.Unlock()

	view := models.SessionView{
		State:    state,
		Viewport: viewport,
		Events:   []models.TimelineEvent{},
	}
	if state == models.SessionIdle {
		return view
	}

	now := models.Now()
	window := uc.windowDuration()
	windowed := WindowEvents(events, now, window)

	sig := routeSignature(windowed)
	if sig != routeSig {
		derived := uc.deriveRoute(ctx, windowed)

		uc.sess.mu.Lock()
		if uc.sess.fetchToken == token {
			uc.sess.route = derived
			uc.sess.routeSig = sig
			route = derived
		} else {
			route = uc.sess.route
		}
		uc.sess.mu.Unlock()
	}

	view.Vehicle = vehicle
	view.SensorNames = sensorNames
	view.Route = route
	view.TimeRange = models.TimeRangeLabel(now, window)
	view.Events = make([]models.TimelineEvent, 0, len(windowed))
	for _, e := range windowed {
		view.Events = append(view.Events, models.TimelineEvent{
			Event:    withDisplaySensors(e, sensorNames),
			Position: uc.resolvePosition(ctx, e),
		})
	}
	return view
}

// withDisplaySensors returns the event with fuel readings converted from raw
// units to liters, using the sensor legend to identify fuel sensors. The
// stored event keeps its raw values; only the view copy is converted.
func withDisplaySensors(e models.Event, sensorNames map[string]string) models.Event {
	if len(e.Sensors) == 0 {
		return e
	}
	out := make(map[string]float64, len(e.Sensors))
	for num, val := range e.Sensors {
		if models.IsFuelSensor(sensorNames[num]) {
			val = models.FuelRawToLiters(val)
		}
		out[num] = val
	}
	e.Sensors = out
	return e
}
