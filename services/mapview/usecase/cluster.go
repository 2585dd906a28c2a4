package usecase

import (
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/prasongk/fleetview/internal/pkg/models"
	"github.com/prasongk/fleetview/internal/utils"
)

// BuildMarkers constructs one marker per vehicle with parseable coordinates.
// Vehicles with malformed coordinates stay off the map but remain in list
// views. While a vehicle is selected with the event panel open, the map
// focuses on that vehicle alone.
func BuildMarkers(vehicles []models.VehiclePosition, selectedVehicleID string, panelOpen bool) []models.Marker {
	markers := make([]models.Marker, 0, len(vehicles))
	for _, v := range vehicles {
		if panelOpen && selectedVehicleID != "" && v.VehicleID != selectedVehicleID {
			continue
		}
		lat, lng, ok := v.Coordinates()
		if !ok {
			continue
		}
		key := v.StatusKey()
		markers = append(markers, models.Marker{
			VehicleID:    v.VehicleID,
			Registration: v.Registration,
			Position:     models.LatLng{Latitude: lat, Longitude: lng},
			StatusKey:    key,
			Color:        models.StatusColor(key),
		})
	}
	return markers
}

// ClusterMarkers groups markers into geohash cells sized for the zoom level.
// The whole clustering is rebuilt from scratch on every call; nothing is
// carried over between marker sets.
func ClusterMarkers(markers []models.Marker, zoom int) []models.MarkerCluster {
	precision := utils.GeohashPrecisionForZoom(zoom)

	cells := make(map[string][]models.Marker)
	for _, m := range markers {
		cell := utils.EncodeCell(m.Position, precision)
		cells[cell] = append(cells[cell], m)
	}

	clusters := make([]models.MarkerCluster, 0, len(cells))
	for cell, members := range cells {
		points := make(orb.MultiPoint, len(members))
		for i, m := range members {
			points[i] = orb.Point{m.Position.Longitude, m.Position.Latitude}
		}
		center, _ := planar.CentroidArea(points)
		centerLL := models.LatLng{Latitude: center.Lat(), Longitude: center.Lon()}

		var radius float64
		for _, m := range members {
			if d := utils.CalculateDistance(centerLL, m.Position); d > radius {
				radius = d
			}
		}

		clusters = append(clusters, models.MarkerCluster{
			Cell:     cell,
			Count:    len(members),
			Center:   centerLL,
			RadiusKm: radius,
			Markers:  members,
		})
	}

	sort.Slice(clusters, func(i, j int) bool { return clusters[i].Cell < clusters[j].Cell })
	return clusters
}

// Markers returns the clustered marker set for the current snapshot under
// the given filter and zoom level.
func (uc *MapViewUC) Markers(search string, statuses []string, zoom int) []models.MarkerCluster {
	filtered := uc.FilteredVehicles(search, statuses)

	selectedID, panelOpen := uc.sess.selection()
	markers := BuildMarkers(filtered, selectedID, panelOpen)
	return ClusterMarkers(markers, zoom)
}
