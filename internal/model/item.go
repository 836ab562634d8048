package model

// ItemType classifies a parsed utterance as a task or a calendar event.
type ItemType string

const (
	ItemTypeTask  ItemType = "task"
	ItemTypeEvent ItemType = "event"
)

// TriggerType is the reminder delivery mechanism.
type TriggerType string

const (
	TriggerAbsoluteTime   TriggerType = "absolute-time"
	TriggerRelativeOffset TriggerType = "relative-offset"
	TriggerGeofence       TriggerType = "geofence"
)

// Coordinates is a lat/lng pair.
type Coordinates struct {
	Lat float64
	Lng float64
}

// SavedLocation is a user-defined named place with a proximity radius.
// Saved locations are checked before free-text geocoding.
type SavedLocation struct {
	Name    string
	Lat     float64
	Lng     float64
	RadiusM float64
}

// LocationMatch is a location resolved from the utterance. RadiusM is zero
// when the match came from free-text geocoding and the caller's default
// radius applies.
type LocationMatch struct {
	Name    string
	Lat     float64
	Lng     float64
	RadiusM float64
}

// ReminderSuggestion is one suggested reminder for the parsed item.
// OffsetMinutes is meaningful only for relative-offset triggers;
// LeadTimeMinutes echoes it for display.
type ReminderSuggestion struct {
	TriggerType     TriggerType
	OffsetMinutes   int
	LeadTimeMinutes int
	Message         string
}
