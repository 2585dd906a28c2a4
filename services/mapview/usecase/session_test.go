package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prasongk/fleetview/internal/pkg/models"
)

// seedSnapshot installs a fleet snapshot without going through the poll.
func seedSnapshot(uc *MapViewUC, vehicles ...models.VehiclePosition) {
	uc.feedMu.Lock()
	defer uc.feedMu.Unlock()
	uc.snapshot = models.FleetSnapshot{Vehicles: vehicles, FetchedAt: models.Now()}
}

// labeledRawEvent builds an upstream event with its own descriptive label,
// so Session never needs reverse geocoding for it.
func labeledRawEvent(ts time.Time, lat, lng float64, label string) models.RawEvent {
	return models.RawEvent{
		Date:    ts.Format(time.RFC3339),
		Lat:     makeCoordinate(lat),
		Lng:     makeCoordinate(lng),
		Address: label,
	}
}

func TestSession_IdleByDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, _ := newTestUC(ctrl)

	view := uc.Session(context.Background())

	assert.Equal(t, models.SessionIdle, view.State)
	assert.Nil(t, view.Vehicle)
	assert.Empty(t, view.Events)
	assert.Equal(t, models.LatLng{Latitude: 18.7904, Longitude: 98.9847}, view.Viewport.Center)
	assert.Equal(t, 6, view.Viewport.Zoom)
}

func TestSelectVehicle_NotInSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, _ := newTestUC(ctrl)

	_, err := uc.SelectVehicle(context.Background(), "v-missing")

	assert.ErrorIs(t, err, ErrVehicleNotFound)
	assert.Equal(t, models.SessionIdle, uc.Session(context.Background()).State)
}

func TestSelectVehicle_LoadsEventsAndRecenters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newTestUC(ctrl)
	ctx := context.Background()

	seedSnapshot(uc, makeVehicle("v-1", "กข-1234", "Driving", "18.7904", "98.9847"))

	now := models.Now()
	resp := &models.EventsResponse{
		Events: []models.RawEvent{
			labeledRawEvent(now.Add(-30*time.Minute), 18.7950, 98.9900, "Depot B"),
			labeledRawEvent(now.Add(-2*time.Hour), 18.7904, 98.9847, "Depot A"),
		},
		SensorNames: map[string]string{"1": "Fuel"},
	}
	today := now.Format("2006-01-02")
	m.fleet.EXPECT().FetchVehicleEvents(gomock.Any(), "v-1", today).Return(resp, nil)
	m.directions.EXPECT().DrivingRoute(gomock.Any(),
		models.LatLng{Latitude: 18.7904, Longitude: 98.9847},
		models.LatLng{Latitude: 18.7950, Longitude: 98.9900}).
		Return(&models.Route{DistanceMeters: 1200}, nil)

	view, err := uc.SelectVehicle(ctx, "v-1")
	require.NoError(t, err)

	assert.Equal(t, models.SessionReady, view.State)
	require.NotNil(t, view.Vehicle)
	assert.Equal(t, "v-1", view.Vehicle.VehicleID)
	assert.Equal(t, models.LatLng{Latitude: 18.7904, Longitude: 98.9847}, view.Viewport.Center)
	assert.Equal(t, 16, view.Viewport.Zoom)

	require.Len(t, view.Events, 2)
	assert.Equal(t, "Depot B", view.Events[0].Position)
	assert.Equal(t, "Depot A", view.Events[1].Position)
	assert.True(t, view.Events[0].Timestamp.After(view.Events[1].Timestamp))

	require.NotNil(t, view.Route)
	assert.Equal(t, 1200.0, view.Route.DistanceMeters)
	assert.Equal(t, map[string]string{"1": "Fuel"}, view.SensorNames)
	assert.NotEmpty(t, view.TimeRange)
}

func TestSelectVehicle_FetchErrorStillReady(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newTestUC(ctrl)

	seedSnapshot(uc, makeVehicle("v-1", "กข-1234", "Driving", "18.79", "98.98"))
	m.fleet.EXPECT().FetchVehicleEvents(gomock.Any(), "v-1", gomock.Any()).
		Return(nil, errors.New("upstream down"))

	view, err := uc.SelectVehicle(context.Background(), "v-1")
	require.NoError(t, err)

	assert.Equal(t, models.SessionReady, view.State)
	assert.Empty(t, view.Events)
	assert.Nil(t, view.Route)
}

func TestSelectVehicle_StaleFetchIsDiscarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newTestUC(ctrl)
	ctx := context.Background()

	seedSnapshot(uc,
		makeVehicle("v-a", "กข-1111", "Driving", "18.79", "98.98"),
		makeVehicle("v-b", "กข-2222", "Driving", "18.80", "98.99"),
	)

	now := models.Now()
	respA := &models.EventsResponse{Events: []models.RawEvent{
		labeledRawEvent(now.Add(-time.Hour), 18.79, 98.98, "Old Place"),
	}}
	respB := &models.EventsResponse{Events: []models.RawEvent{
		labeledRawEvent(now.Add(-time.Hour), 18.80, 98.99, "New Place"),
	}}

	started := make(chan struct{})
	release := make(chan struct{})
	m.fleet.EXPECT().FetchVehicleEvents(gomock.Any(), "v-a", gomock.Any()).
		DoAndReturn(func(context.Context, string, string) (*models.EventsResponse, error) {
			close(started)
			<-release
			return respA, nil
		})
	m.fleet.EXPECT().FetchVehicleEvents(gomock.Any(), "v-b", gomock.Any()).Return(respB, nil)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := uc.SelectVehicle(ctx, "v-a")
		assert.NoError(t, err)
	}()

	<-started
	_, err := uc.SelectVehicle(ctx, "v-b")
	require.NoError(t, err)

	close(release)
	<-done

	// The older selection's late-arriving events must not clobber the newer
	// selection.
	view := uc.Session(ctx)
	assert.Equal(t, models.SessionReady, view.State)
	require.NotNil(t, view.Vehicle)
	assert.Equal(t, "v-b", view.Vehicle.VehicleID)
	require.Len(t, view.Events, 1)
	assert.Equal(t, "New Place", view.Events[0].Position)
}

func TestSession_FuelSensorReadingsConvertedToLiters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, _ := newTestUC(ctrl)
	ctx := context.Background()

	now := models.Now()
	vehicle := makeVehicle("v-1", "กข-1234", "Driving", "18.79", "98.98")

	uc.sess.mu.Lock()
	uc.sess.state = models.SessionReady
	uc.sess.vehicle = &vehicle
	uc.sess.fetchToken = "token"
	uc.sess.sensorNames = map[string]string{"1": "Fuel", "2": "Door"}
	uc.sess.events = []models.Event{
		{
			Timestamp:     now.Add(-time.Hour),
			HasTimestamp:  true,
			Sensors:       map[string]float64{"1": 120, "2": 1},
			PositionLabel: "Depot A",
		},
	}
	uc.sess.mu.Unlock()

	view := uc.Session(ctx)

	require.Len(t, view.Events, 1)
	assert.Equal(t, 48.0, view.Events[0].Sensors["1"])
	assert.Equal(t, 1.0, view.Events[0].Sensors["2"])

	// The stored event keeps its raw reading; the window is recomputed on
	// every call and must not compound the conversion.
	uc.sess.mu.Lock()
	assert.Equal(t, 120.0, uc.sess.events[0].Sensors["1"])
	uc.sess.mu.Unlock()

	again := uc.Session(ctx)
	assert.Equal(t, 48.0, again.Events[0].Sensors["1"])
}

func TestCloseSelection_ResetsToIdle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newTestUC(ctrl)
	ctx := context.Background()

	seedSnapshot(uc, makeVehicle("v-1", "กข-1234", "Driving", "18.79", "98.98"))
	m.fleet.EXPECT().FetchVehicleEvents(gomock.Any(), "v-1", gomock.Any()).
		Return(&models.EventsResponse{}, nil)

	_, err := uc.SelectVehicle(ctx, "v-1")
	require.NoError(t, err)

	uc.CloseSelection()

	view := uc.Session(ctx)
	assert.Equal(t, models.SessionIdle, view.State)
	assert.Nil(t, view.Vehicle)
	assert.Empty(t, view.Events)
	assert.Equal(t, models.LatLng{Latitude: 18.7904, Longitude: 98.9847}, view.Viewport.Center)
	assert.Equal(t, 6, view.Viewport.Zoom)
}

func TestSelectVehicle_UnpositionedKeepsViewport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newTestUC(ctrl)

	seedSnapshot(uc, makeVehicle("v-1", "กข-1234", "Driving", "-", "-"))
	m.fleet.EXPECT().FetchVehicleEvents(gomock.Any(), "v-1", gomock.Any()).
		Return(&models.EventsResponse{}, nil)

	view, err := uc.SelectVehicle(context.Background(), "v-1")
	require.NoError(t, err)

	assert.Equal(t, models.SessionReady, view.State)
	assert.Equal(t, models.LatLng{Latitude: 18.7904, Longitude: 98.9847}, view.Viewport.Center)
	assert.Equal(t, 6, view.Viewport.Zoom)
}
