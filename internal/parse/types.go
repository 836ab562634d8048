package parse

import (
	"time"

	"voice-task-parser/internal/model"
)

// ParseInput is one utterance plus optional caller context.
type ParseInput struct {
	Text           string
	Timezone       string // IANA zone name; falls back to the configured default
	UserLocation   *model.Coordinates
	SavedLocations []model.SavedLocation
	DefaultRadiusM float64 // applied to free-text geocoded locations
}

// Item is the structured record produced from one utterance. Every field
// is constructed fresh per invocation; nothing persists across calls.
type Item struct {
	Title string
	Notes string
	Type  model.ItemType

	StartAt *time.Time
	EndAt   *time.Time
	AllDay  bool
	DueAt   *time.Time

	Location *model.LocationMatch

	Priority int // 1-5, 5 most urgent; defaults to 3
	Category string
	Tags     []string

	Reminders     []model.ReminderSuggestion
	TravelMinutes *int

	// Confidence is additive and unclamped: a fixed base plus a fixed
	// increment per successful extraction stage. Values above 1.0 are
	// possible and passed through as-is.
	Confidence   float64
	ParsingNotes []string

	RawText string
}

// ParseOutput wraps the parsed item.
type ParseOutput struct {
	Item Item
}
