package usecase

import (
	"time"

	"voice-task-parser/pkg/keywords"
)

// Confidence scoring: a fixed base plus a fixed increment per successful
// extraction, summed with no upper clamp.
const (
	ConfidenceBase     = 0.5
	ConfidenceDate     = 0.2
	ConfidenceLocation = 0.15
	ConfidenceCategory = 0.1
	ConfidencePriority = 0.1
)

// Priority defaults and event durations.
const (
	DefaultPriority = 3

	DefaultEventDuration = 30 * time.Minute
	MeetingDuration      = 60 * time.Minute
)

// Reminder lead times in minutes.
const (
	EventLocationLeadMinutes = 30
	EventWorkLeadMinutes     = 15
	EventDefaultLeadMinutes  = 10
	TaskUrgentLeadMinutes    = 60
	TaskDefaultLeadMinutes   = 15
	TravelBufferMinutes      = 10
)

// DefaultRadiusM is the geofence radius applied to free-text geocoded
// locations when the caller supplies none.
const DefaultRadiusM = 150

// priorityTable maps urgency keywords to priority levels 5 (most urgent)
// down to 1. Order is the tie-break: the first matching level wins, so text
// containing both "urgent" and "low" resolves to 5.
var priorityTable = keywords.Table[int]{
	{Label: 5, Keywords: []string{"urgent", "asap", "emergency", "critical", "immediately"}},
	{Label: 4, Keywords: []string{"high", "important", "priority", "soon"}},
	{Label: 3, Keywords: []string{"medium", "normal"}},
	{Label: 2, Keywords: []string{"low", "later", "when possible"}},
	{Label: 1, Keywords: []string{"someday", "maybe", "eventually"}},
}

// categoryTable maps topical keywords to categories. Fixed iteration
// order, first match wins: work before health before personal and so on.
var categoryTable = keywords.Table[string]{
	{Label: "work", Keywords: []string{"meeting", "standup", "project", "deadline", "client", "presentation", "report", "interview", "office", "boss"}},
	{Label: "health", Keywords: []string{"doctor", "dentist", "gym", "workout", "medicine", "pharmacy", "therapy", "checkup", "yoga"}},
	{Label: "personal", Keywords: []string{"birthday", "anniversary", "family", "mom", "dad", "kids", "haircut"}},
	{Label: "shopping", Keywords: []string{"buy", "groceries", "shopping", "order", "purchase", "pick up", "store"}},
	{Label: "finance", Keywords: []string{"pay", "bill", "bank", "invoice", "tax", "budget", "rent", "insurance"}},
	{Label: "travel", Keywords: []string{"flight", "airport", "hotel", "trip", "train", "visa", "booking", "vacation"}},
	{Label: "learning", Keywords: []string{"study", "course", "class", "lecture", "exam", "homework", "tutorial"}},
	{Label: "social", Keywords: []string{"party", "dinner", "lunch", "coffee", "drinks", "date night", "wedding", "hangout"}},
}
