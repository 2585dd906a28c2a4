package models

import "time"

// LatLng is a parsed coordinate pair.
type LatLng struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// Viewport is the map camera: center plus zoom level.
type Viewport struct {
	Center LatLng `json:"center"`
	Zoom   int    `json:"zoom"`
}

// Marker is one renderable vehicle marker.
type Marker struct {
	VehicleID    string `json:"vehicle_id"`
	Registration string `json:"registration"`
	Position     LatLng `json:"position"`
	StatusKey    string `json:"status_key"`
	Color        string `json:"color"`
}

// MarkerCluster is one aggregate of visually close markers at a zoom level.
// A cluster of size one renders as a plain marker. RadiusKm is the distance
// from the center to the farthest member, for sizing the cluster badge.
type MarkerCluster struct {
	Cell     string   `json:"cell"`
	Count    int      `json:"count"`
	Center   LatLng   `json:"center"`
	RadiusKm float64  `json:"radius_km"`
	Markers  []Marker `json:"markers"`
}

// Route is a derived driving route between the oldest and newest events of
// an event window.
type Route struct {
	Origin          LatLng   `json:"origin"`
	Destination     LatLng   `json:"destination"`
	Path            []LatLng `json:"path"`
	DistanceMeters  float64  `json:"distance_meters"`
	DurationSeconds float64  `json:"duration_seconds"`
	Summary         string   `json:"summary,omitempty"`
}

// SessionState is the explicit state of the map-view selection machine.
type SessionState string

const (
	SessionIdle    SessionState = "idle"
	SessionLoading SessionState = "loading"
	SessionReady   SessionState = "ready"
)

// FeedStatus reports the freshness of the fleet snapshot.
type FeedStatus struct {
	LastSuccess time.Time `json:"last_success"`
	Failures    int       `json:"consecutive_failures"`
}

// FleetSnapshot is the complete current truth from one successful poll.
type FleetSnapshot struct {
	Vehicles  []VehiclePosition `json:"vehicles"`
	Geofences []Geofence        `json:"geofences"`
	FetchedAt time.Time         `json:"fetched_at"`
}

// TimelineEvent is a windowed event decorated for display.
type TimelineEvent struct {
	Event
	Position string `json:"position"`
}

// SessionView is the full externally visible map-view session state.
type SessionView struct {
	State       SessionState      `json:"state"`
	Vehicle     *VehiclePosition  `json:"vehicle,omitempty"`
	Viewport    Viewport          `json:"viewport"`
	Events      []TimelineEvent   `json:"events"`
	SensorNames map[string]string `json:"sensor_names,omitempty"`
	Route       *Route            `json:"route,omitempty"`
	TimeRange   string            `json:"time_range,omitempty"`
}
