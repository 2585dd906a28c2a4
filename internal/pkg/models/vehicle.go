package models

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// NormalizeStatusKey converts a free-form vehicle status label into the
// status key used to join against the status color/filter table: the label
// is lower-cased and every maximal run of whitespace becomes a single hyphen.
func NormalizeStatusKey(status string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(status), "-")
}

// DriverName is the optional nested driver identity on a vehicle position.
type DriverName struct {
	Name           *string `json:"name"`
	ClientDriverID *string `json:"client_driver_id"`
}

// PositionDescription is the upstream's nested human-readable location.
type PositionDescription struct {
	Principal *struct {
		Description string `json:"description"`
	} `json:"principal,omitempty"`
}

// Description returns the principal description, or "" when absent.
func (p *PositionDescription) Description() string {
	if p == nil || p.Principal == nil {
		return ""
	}
	return p.Principal.Description
}

// VehiclePosition is one fleet member's latest known state as reported by the
// upstream feed. Coordinates arrive as decimal-degree strings; non-numeric
// values mean the vehicle is unpositioned and stays off the map while still
// appearing in list views.
type VehiclePosition struct {
	VehicleID           string               `json:"vehicle_id"`
	Registration        string               `json:"registration"`
	Latitude            string               `json:"latitude"`
	Longitude           string               `json:"longitude"`
	Speed               float64              `json:"speed"`
	StatusClassName     string               `json:"statusClassName"`
	EventTimestamp      string               `json:"event_ts"`
	DriverName          *DriverName          `json:"driver_name,omitempty"`
	PositionDescription *PositionDescription `json:"position_description,omitempty"`
}

// StatusKey returns the normalized status key for this vehicle.
func (v *VehiclePosition) StatusKey() string {
	return NormalizeStatusKey(v.StatusClassName)
}

// Coordinates parses the position's latitude/longitude strings. ok is false
// when either value is missing or non-numeric.
func (v *VehiclePosition) Coordinates() (lat, lng float64, ok bool) {
	lat, errLat := strconv.ParseFloat(strings.TrimSpace(v.Latitude), 64)
	lng, errLng := strconv.ParseFloat(strings.TrimSpace(v.Longitude), 64)
	if errLat != nil || errLng != nil {
		return 0, 0, false
	}
	return lat, lng, true
}

// VehiclePositionList accepts the upstream snapshot payload, which is served
// either as an array of positions or as an id-keyed object of them.
type VehiclePositionList []VehiclePosition

// UnmarshalJSON implements the dual array/object shape of the feed.
func (l *VehiclePositionList) UnmarshalJSON(data []byte) error {
	var asArray []VehiclePosition
	if err := json.Unmarshal(data, &asArray); err == nil {
		*l = asArray
		return nil
	}

	var asMap map[string]VehiclePosition
	if err := json.Unmarshal(data, &asMap); err != nil {
		return err
	}
	out := make([]VehiclePosition, 0, len(asMap))
	for _, v := range asMap {
		out = append(out, v)
	}
	*l = out
	return nil
}
