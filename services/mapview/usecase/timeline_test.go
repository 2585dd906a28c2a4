package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prasongk/fleetview/internal/pkg/models"
)

func TestWindowEvents(t *testing.T) {
	now := time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)
	window := 4 * time.Hour

	events := []models.Event{
		makeEvent(now.Add(-30*time.Minute), 18.79, 98.98),
		makeEvent(now.Add(-5*time.Hour), 18.70, 98.90),   // before the window
		makeEvent(now.Add(-1*time.Hour), 18.80, 98.99),
		makeEvent(now.Add(10*time.Minute), 18.81, 99.00), // after now
		{Latitude: makeCoordinate(18.82), Longitude: makeCoordinate(99.01)}, // no timestamp
		makeEvent(now.Add(-4*time.Hour), 18.77, 98.95),   // exactly at the cutoff
	}

	got := WindowEvents(events, now, window)

	require.Len(t, got, 3)
	assert.Equal(t, now.Add(-30*time.Minute), got[0].Timestamp)
	assert.Equal(t, now.Add(-1*time.Hour), got[1].Timestamp)
	assert.Equal(t, now.Add(-4*time.Hour), got[2].Timestamp)
}

func TestWindowEvents_SortStableForEqualTimestamps(t *testing.T) {
	now := time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)
	ts := now.Add(-time.Hour)

	events := []models.Event{
		makeEvent(ts, 1, 1),
		makeEvent(ts, 2, 2),
		makeEvent(ts, 3, 3),
	}

	got := WindowEvents(events, now, 4*time.Hour)

	require.Len(t, got, 3)
	assert.Equal(t, 1.0, got[0].Latitude.Value)
	assert.Equal(t, 2.0, got[1].Latitude.Value)
	assert.Equal(t, 3.0, got[2].Latitude.Value)
}

func TestWindowEvents_Empty(t *testing.T) {
	now := time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)

	assert.Nil(t, WindowEvents(nil, now, 4*time.Hour))
	assert.Empty(t, WindowEvents([]models.Event{
		makeEvent(now.Add(-24*time.Hour), 18.79, 98.98),
	}, now, 4*time.Hour))
}

func TestWindowEvents_DoesNotMutateInput(t *testing.T) {
	now := time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)
	events := []models.Event{
		makeEvent(now.Add(-2*time.Hour), 1, 1),
		makeEvent(now.Add(-1*time.Hour), 2, 2),
	}

	WindowEvents(events, now, 4*time.Hour)

	assert.Equal(t, 1.0, events[0].Latitude.Value)
	assert.Equal(t, 2.0, events[1].Latitude.Value)
}
