package usecase

import (
	"sort"
	"time"

	"github.com/prasongk/fleetview/internal/pkg/models"
)

// WindowEvents returns the events whose timestamp lies within the trailing
// window ending at now, sorted descending by timestamp (most recent first).
// Events without a parseable timestamp are excluded. Pure; the input slice
// is not modified.
func WindowEvents(events []models.Event, now time.Time, window time.Duration) []models.Event {
	if len(events) == 0 {
		return nil
	}
	cutoff := now.Add(-window)

	out := make([]models.Event, 0, len(events))
	for _, e := range events {
		if !e.HasTimestamp {
			continue
		}
		if e.Timestamp.Before(cutoff) || e.Timestamp.After(now) {
			continue
		}
		out = append(out, e)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}
