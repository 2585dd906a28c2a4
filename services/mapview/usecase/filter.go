package usecase

import (
	"strings"

	"github.com/prasongk/fleetview/internal/pkg/models"
)

// FilterVehicles returns the subset of vehicles whose registration contains
// the search text (case-insensitively) and whose normalized status key is in
// the selected status set. Pure; no side effects.
func FilterVehicles(vehicles []models.VehiclePosition, search string, statuses []string) []models.VehiclePosition {
	selected := make(map[string]bool, len(statuses))
	for _, s := range statuses {
		selected[s] = true
	}
	needle := strings.ToLower(search)

	out := make([]models.VehiclePosition, 0, len(vehicles))
	for _, v := range vehicles {
		if !strings.Contains(strings.ToLower(v.Registration), needle) {
			continue
		}
		if !selected[v.StatusKey()] {
			continue
		}
		out = append(out, v)
	}
	return out
}

// FilteredVehicles applies FilterVehicles to the current snapshot.
func (uc *MapViewUC) FilteredVehicles(search string, statuses []string) []models.VehiclePosition {
	snapshot := uc.Snapshot()
	return FilterVehicles(snapshot.Vehicles, search, statuses)
}
