package models

// Geofence is one geofence record from the upstream feed.
type Geofence struct {
	GeofenceID          string               `json:"geofence_id"`
	GeofenceName        string               `json:"geofence_name"`
	VehicleIDs          []string             `json:"vehicle_ids"`
	PositionDescription *PositionDescription `json:"position_description,omitempty"`
}
