package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prasongk/fleetview/internal/pkg/models"
	"github.com/prasongk/fleetview/internal/utils"
)

func TestBuildMarkers(t *testing.T) {
	fleet := []models.VehiclePosition{
		makeVehicle("v-1", "กข-1234", "Driving", "18.79", "98.98"),
		makeVehicle("v-2", "กข-5678", "Ignition Off", "18.80", "98.99"),
		makeVehicle("v-3", "AB-1234", "Driving", "-", "-"), // unpositioned
	}

	markers := BuildMarkers(fleet, "", false)

	require.Len(t, markers, 2)
	assert.Equal(t, "v-1", markers[0].VehicleID)
	assert.Equal(t, models.LatLng{Latitude: 18.79, Longitude: 98.98}, markers[0].Position)
	assert.Equal(t, "driving", markers[0].StatusKey)
	assert.Equal(t, models.StatusColor("driving"), markers[0].Color)
	assert.Equal(t, "ignition-off", markers[1].StatusKey)
}

func TestBuildMarkers_PanelOpenFocusesSelection(t *testing.T) {
	fleet := []models.VehiclePosition{
		makeVehicle("v-1", "กข-1234", "Driving", "18.79", "98.98"),
		makeVehicle("v-2", "กข-5678", "Driving", "18.80", "98.99"),
	}

	markers := BuildMarkers(fleet, "v-2", true)
	require.Len(t, markers, 1)
	assert.Equal(t, "v-2", markers[0].VehicleID)

	// A selection with the panel closed does not narrow the map.
	markers = BuildMarkers(fleet, "v-2", false)
	assert.Len(t, markers, 2)
}

func TestClusterMarkers_GroupsByZoom(t *testing.T) {
	// Two markers ~1.5 km apart in Chiang Mai, one in Bangkok.
	fleet := []models.VehiclePosition{
		makeVehicle("v-1", "กข-1234", "Driving", "18.7904", "98.9847"),
		makeVehicle("v-2", "กข-5678", "Driving", "18.8010", "98.9900"),
		makeVehicle("v-3", "AB-1234", "Driving", "13.7563", "100.5018"),
	}
	markers := BuildMarkers(fleet, "", false)

	// Zoomed out, the two Chiang Mai markers share a cell.
	coarse := ClusterMarkers(markers, 3)
	require.Len(t, coarse, 2)
	counts := []int{coarse[0].Count, coarse[1].Count}
	assert.ElementsMatch(t, []int{2, 1}, counts)

	// Zoomed in, everything separates.
	fine := ClusterMarkers(markers, 18)
	assert.Len(t, fine, 3)
	for _, c := range fine {
		assert.Equal(t, 1, c.Count)
	}
}

func TestClusterMarkers_CenterOfPairIsMidpoint(t *testing.T) {
	markers := []models.Marker{
		{VehicleID: "v-1", Position: models.LatLng{Latitude: 18.0, Longitude: 98.0}},
		{VehicleID: "v-2", Position: models.LatLng{Latitude: 18.2, Longitude: 98.2}},
	}

	clusters := ClusterMarkers(markers, 1)

	require.Len(t, clusters, 1)
	assert.Equal(t, 2, clusters[0].Count)
	assert.InDelta(t, 18.1, clusters[0].Center.Latitude, 1e-9)
	assert.InDelta(t, 98.1, clusters[0].Center.Longitude, 1e-9)

	// Radius reaches the farther member: half the pair's separation.
	half := utils.CalculateDistance(
		models.LatLng{Latitude: 18.0, Longitude: 98.0},
		models.LatLng{Latitude: 18.2, Longitude: 98.2}) / 2
	assert.InDelta(t, half, clusters[0].RadiusKm, 0.05)
}

func TestClusterMarkers_SingletonHasZeroRadius(t *testing.T) {
	markers := []models.Marker{
		{VehicleID: "v-1", Position: models.LatLng{Latitude: 18.79, Longitude: 98.98}},
	}

	clusters := ClusterMarkers(markers, 6)

	require.Len(t, clusters, 1)
	assert.Zero(t, clusters[0].RadiusKm)
}

func TestClusterMarkers_SortedByCell(t *testing.T) {
	markers := []models.Marker{
		{VehicleID: "v-1", Position: models.LatLng{Latitude: 13.7563, Longitude: 100.5018}},
		{VehicleID: "v-2", Position: models.LatLng{Latitude: 18.7904, Longitude: 98.9847}},
		{VehicleID: "v-3", Position: models.LatLng{Latitude: 7.8804, Longitude: 98.3923}},
	}

	clusters := ClusterMarkers(markers, 18)

	require.Len(t, clusters, 3)
	assert.Less(t, clusters[0].Cell, clusters[1].Cell)
	assert.Less(t, clusters[1].Cell, clusters[2].Cell)
}

func TestClusterMarkers_Empty(t *testing.T) {
	assert.Empty(t, ClusterMarkers(nil, 6))
}
