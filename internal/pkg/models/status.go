package models

// StatusType is one entry of the fixed status filter table.
type StatusType struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// StatusTypes is the fixed, four-entry status filter table. The keys are the
// only values the filter toggles ever add or remove.
var StatusTypes = []StatusType{
	{Key: "driving", Label: "กำลังขับ", Color: "#00a326"},
	{Key: "stationary", Label: "สถานี", Color: "#00a326"},
	{Key: "idling", Label: "เครื่องติด", Color: "#ffc107"},
	{Key: "ignition-off", Label: "ปิดเครื่อง", Color: "#6c757d"},
}

// DefaultStatusColor is used for status keys outside the known table.
const DefaultStatusColor = "#999999"

// StatusColor returns the marker color for a normalized status key.
func StatusColor(key string) string {
	for _, s := range StatusTypes {
		if s.Key == key {
			return s.Color
		}
	}
	return DefaultStatusColor
}

// AllStatusKeys returns the keys of the status table, in table order.
func AllStatusKeys() []string {
	keys := make([]string, len(StatusTypes))
	for i, s := range StatusTypes {
		keys[i] = s.Key
	}
	return keys
}
