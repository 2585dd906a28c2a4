package models

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Coordinate holds an upstream coordinate value, which may arrive as a JSON
// number or as a numeric string. Raw preserves the upstream textual form so
// coordinate cache keys match what the feed actually sent.
type Coordinate struct {
	Raw   string
	Value float64
	Valid bool
}

// UnmarshalJSON accepts numbers, numeric strings, and null. Values that do
// not parse leave the coordinate invalid rather than failing the decode;
// malformed coordinates mean "unpositioned", not a broken payload.
func (c *Coordinate) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		c.Raw = s
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			c.Value = f
			c.Valid = true
		}
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return nil
	}
	c.Raw = strconv.FormatFloat(f, 'f', -1, 64)
	c.Value = f
	c.Valid = true
	return nil
}

// MarshalJSON writes the parsed value when valid, the raw string otherwise.
func (c Coordinate) MarshalJSON() ([]byte, error) {
	if c.Valid {
		return json.Marshal(c.Value)
	}
	if c.Raw == "" {
		return []byte("null"), nil
	}
	return json.Marshal(c.Raw)
}

// Present reports whether the upstream sent any value at all.
func (c Coordinate) Present() bool {
	return c.Raw != ""
}

// flexString decodes a JSON string or number into a string.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

// RawEvent is one telemetry sample exactly as the upstream serves it. Field
// names and nesting vary between feed versions, so every known variant is a
// candidate here and NormalizeEvent applies the fixed priority order.
type RawEvent struct {
	Date           string `json:"date"`
	EventTimestamp string `json:"event_ts"`

	Lat    Coordinate `json:"lat"`
	Lng    Coordinate `json:"lng"`
	Coords *struct {
		Lat Coordinate `json:"lat"`
		Lng Coordinate `json:"lng"`
	} `json:"coords,omitempty"`
	Latitude  Coordinate `json:"latitude"`
	Longitude Coordinate `json:"longitude"`

	Speed         *float64               `json:"speed,omitempty"`
	VehicleStatus string                 `json:"vehicle_status,omitempty"`
	Sensors       map[string]json.Number `json:"sensors,omitempty"`

	PositionDescription *PositionDescription `json:"position_description,omitempty"`
	Address             string               `json:"address,omitempty"`
	Location            string               `json:"location,omitempty"`
	Description         string               `json:"description,omitempty"`
}

// Event is the canonical, immutable form of one telemetry sample.
type Event struct {
	Timestamp     time.Time          `json:"timestamp"`
	HasTimestamp  bool               `json:"has_timestamp"`
	Latitude      Coordinate         `json:"latitude"`
	Longitude     Coordinate         `json:"longitude"`
	Speed         *float64           `json:"speed,omitempty"`
	VehicleStatus string             `json:"vehicle_status,omitempty"`
	Sensors       map[string]float64 `json:"sensors,omitempty"`
	PositionLabel string             `json:"position_label,omitempty"`
}

// timestampLayouts are tried in order when parsing upstream datetimes.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05.000",
}

// ParseEventTimestamp parses the upstream's ISO-ish datetime strings.
func ParseEventTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// NormalizeEvent converts a raw upstream record into a canonical Event.
// Timestamp comes from date, falling back to event_ts. Coordinates come from
// the flat lat/lng pair, falling back to the nested coords object, then to
// latitude/longitude. The position label is the first usable descriptive
// field in priority order: position_description, address, location,
// description.
func NormalizeEvent(raw RawEvent) Event {
	ev := Event{
		Speed:         raw.Speed,
		VehicleStatus: raw.VehicleStatus,
	}

	ts := raw.Date
	if ts == "" {
		ts = raw.EventTimestamp
	}
	ev.Timestamp, ev.HasTimestamp = ParseEventTimestamp(ts)

	switch {
	case raw.Lat.Present() || raw.Lng.Present():
		ev.Latitude, ev.Longitude = raw.Lat, raw.Lng
	case raw.Coords != nil && (raw.Coords.Lat.Present() || raw.Coords.Lng.Present()):
		ev.Latitude, ev.Longitude = raw.Coords.Lat, raw.Coords.Lng
	default:
		ev.Latitude, ev.Longitude = raw.Latitude, raw.Longitude
	}

	if len(raw.Sensors) > 0 {
		ev.Sensors = make(map[string]float64, len(raw.Sensors))
		for num, val := range raw.Sensors {
			if f, err := val.Float64(); err == nil {
				ev.Sensors[num] = f
			}
		}
	}

	switch {
	case raw.PositionDescription.Description() != "":
		ev.PositionLabel = raw.PositionDescription.Description()
	case raw.Address != "":
		ev.PositionLabel = raw.Address
	case raw.Location != "":
		ev.PositionLabel = raw.Location
	case raw.Description != "":
		ev.PositionLabel = raw.Description
	}

	return ev
}

// HasCoordinates reports whether both coordinates parsed to numbers.
func (e *Event) HasCoordinates() bool {
	return e.Latitude.Valid && e.Longitude.Valid
}

// CoordKey returns the "lat,lng" cache key in the upstream's own textual
// form, or "" when either coordinate is absent.
func (e *Event) CoordKey() string {
	if !e.Latitude.Present() || !e.Longitude.Present() {
		return ""
	}
	return e.Latitude.Raw + "," + e.Longitude.Raw
}

// RawCoordLabel is the raw-coordinate fallback display for an event.
func (e *Event) RawCoordLabel() string {
	if !e.Latitude.Present() || !e.Longitude.Present() {
		return ""
	}
	return e.Latitude.Raw + ", " + e.Longitude.Raw
}

// FuelRawToLiters converts a raw fuel sensor reading to liters.
func FuelRawToLiters(raw float64) float64 {
	return raw * 0.4
}

// IsFuelSensor reports whether a sensor legend name denotes a fuel level
// sensor. The upstream names sensors in English or Thai.
func IsFuelSensor(name string) bool {
	return strings.Contains(strings.ToLower(name), "fuel") ||
		strings.Contains(name, "น้ำมัน")
}

// sensorByNumber is one entry of the optional sensor legend in the event
// response. Sensor numbers arrive as either strings or numbers.
type sensorByNumber struct {
	SensorNumber flexString `json:"sensorNumber"`
	Name         string     `json:"name"`
}

// EventsResponse is the `GET /vehicle/{id}/view` payload. The upstream serves
// either a bare array of events or an object with an events field and an
// optional sensor legend; anything else decodes as empty.
type EventsResponse struct {
	Events      []RawEvent
	SensorNames map[string]string
}

// UnmarshalJSON implements the dual array/object response shape.
func (r *EventsResponse) UnmarshalJSON(data []byte) error {
	var asArray []RawEvent
	if err := json.Unmarshal(data, &asArray); err == nil {
		r.Events = asArray
		return nil
	}

	var asObject struct {
		Events         []RawEvent       `json:"events"`
		SensorByNumber []sensorByNumber `json:"sensorByNumber"`
	}
	if err := json.Unmarshal(data, &asObject); err != nil {
		// Unknown shape is treated as "no events", not a failure.
		r.Events = nil
		r.SensorNames = nil
		return nil
	}
	r.Events = asObject.Events
	if len(asObject.SensorByNumber) > 0 {
		r.SensorNames = make(map[string]string, len(asObject.SensorByNumber))
		for _, s := range asObject.SensorByNumber {
			r.SensorNames[string(s.SensorNumber)] = s.Name
		}
	}
	return nil
}
