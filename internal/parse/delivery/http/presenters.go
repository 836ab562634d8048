package http

import (
	"time"

	"voice-task-parser/internal/model"
	"voice-task-parser/internal/parse"
)

type coordinatesReq struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type savedLocationReq struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	RadiusM float64 `json:"radius_m"`
}

type parseReq struct {
	Text           string             `json:"text"`
	UserTimezone   string             `json:"userTimezone"`
	UserLocation   *coordinatesReq    `json:"userLocation"`
	SavedLocations []savedLocationReq `json:"savedLocations"`
	DefaultRadius  float64            `json:"defaultRadius"`
}

func (req parseReq) toInput() parse.ParseInput {
	input := parse.ParseInput{
		Text:           req.Text,
		Timezone:       req.UserTimezone,
		DefaultRadiusM: req.DefaultRadius,
	}

	if req.UserLocation != nil {
		input.UserLocation = &model.Coordinates{
			Lat: req.UserLocation.Lat,
			Lng: req.UserLocation.Lng,
		}
	}

	for _, sl := range req.SavedLocations {
		input.SavedLocations = append(input.SavedLocations, model.SavedLocation{
			Name:    sl.Name,
			Lat:     sl.Lat,
			Lng:     sl.Lng,
			RadiusM: sl.RadiusM,
		})
	}

	return input
}

type reminderResp struct {
	TriggerType     string `json:"trigger_type"`
	OffsetMinutes   *int   `json:"offset_minutes,omitempty"`
	LeadTimeMinutes int    `json:"lead_time_minutes"`
	Message         string `json:"message,omitempty"`
}

type aiSuggestionsResp struct {
	SuggestedReminders []reminderResp `json:"suggested_reminders"`
	ConfidenceScore    float64        `json:"confidence_score"`
	ParsingNotes       []string       `json:"parsing_notes"`
	TravelTimeMinutes  *int           `json:"travel_time_minutes,omitempty"`
}

type parseResp struct {
	Title string `json:"title"`
	Notes string `json:"notes,omitempty"`
	Type  string `json:"type"`

	StartAt *time.Time `json:"start_at,omitempty"`
	EndAt   *time.Time `json:"end_at,omitempty"`
	AllDay  bool       `json:"all_day,omitempty"`
	DueAt   *time.Time `json:"due_at,omitempty"`

	LocationName string   `json:"location_name,omitempty"`
	Lat          *float64 `json:"lat,omitempty"`
	Lng          *float64 `json:"lng,omitempty"`
	RadiusM      *float64 `json:"radius_m,omitempty"`

	Priority int      `json:"priority"`
	Tags     []string `json:"tags"`
	Category string   `json:"category,omitempty"`

	AISuggestions aiSuggestionsResp `json:"ai_suggestions"`

	Confidence float64 `json:"confidence"`
	RawText    string  `json:"raw_text"`
}

func utcInstant(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

func newReminderResp(r model.ReminderSuggestion) reminderResp {
	resp := reminderResp{
		TriggerType:     string(r.TriggerType),
		LeadTimeMinutes: r.LeadTimeMinutes,
		Message:         r.Message,
	}
	if r.TriggerType == model.TriggerRelativeOffset {
		offset := r.OffsetMinutes
		resp.OffsetMinutes = &offset
	}
	return resp
}

func newParseResp(output parse.ParseOutput) parseResp {
	item := output.Item

	resp := parseResp{
		Title:      item.Title,
		Notes:      item.Notes,
		Type:       string(item.Type),
		StartAt:    utcInstant(item.StartAt),
		EndAt:      utcInstant(item.EndAt),
		AllDay:     item.AllDay,
		DueAt:      utcInstant(item.DueAt),
		Priority:   item.Priority,
		Tags:       item.Tags,
		Category:   item.Category,
		Confidence: item.Confidence,
		RawText:    item.RawText,
		AISuggestions: aiSuggestionsResp{
			SuggestedReminders: []reminderResp{},
			ConfidenceScore:    item.Confidence,
			ParsingNotes:       item.ParsingNotes,
			TravelTimeMinutes:  item.TravelMinutes,
		},
	}

	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	if resp.AISuggestions.ParsingNotes == nil {
		resp.AISuggestions.ParsingNotes = []string{}
	}

	if item.Location != nil {
		resp.LocationName = item.Location.Name
		lat, lng, radius := item.Location.Lat, item.Location.Lng, item.Location.RadiusM
		resp.Lat = &lat
		resp.Lng = &lng
		resp.RadiusM = &radius
	}

	for _, r := range item.Reminders {
		resp.AISuggestions.SuggestedReminders = append(resp.AISuggestions.SuggestedReminders, newReminderResp(r))
	}

	return resp
}
