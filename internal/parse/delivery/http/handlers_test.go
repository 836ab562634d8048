package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"voice-task-parser/internal/model"
	"voice-task-parser/internal/parse"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...any)                 {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Info(ctx context.Context, args ...any)                  {}
func (mockLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Warn(ctx context.Context, args ...any)                  {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Error(ctx context.Context, args ...any)                 {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...any) {}

type mockUseCase struct {
	parseFunc func(input parse.ParseInput) (parse.ParseOutput, error)
	gotInput  parse.ParseInput
}

func (m *mockUseCase) Parse(ctx context.Context, input parse.ParseInput) (parse.ParseOutput, error) {
	m.gotInput = input
	return m.parseFunc(input)
}

func newTestRouter(uc parse.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(mockLogger{}, uc)
	RegisterRoutes(r.Group("/api/v1"), h)
	return r
}

func doParse(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/parse", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestParseHandlerSuccess(t *testing.T) {
	start := time.Date(2026, 3, 4, 14, 0, 0, 0, time.UTC)
	end := start.Add(30 * time.Minute)
	travel := 23

	uc := &mockUseCase{
		parseFunc: func(input parse.ParseInput) (parse.ParseOutput, error) {
			return parse.ParseOutput{Item: parse.Item{
				Title:    "Dentist appointment",
				Type:     model.ItemTypeEvent,
				StartAt:  &start,
				EndAt:    &end,
				Priority: 5,
				Category: "health",
				Tags:     []string{"health"},
				Location: &model.LocationMatch{Name: "Main Street Clinic", Lat: 37.77, Lng: -122.41, RadiusM: 150},
				Reminders: []model.ReminderSuggestion{
					{TriggerType: model.TriggerGeofence, Message: "You've arrived at Main Street Clinic"},
					{TriggerType: model.TriggerRelativeOffset, OffsetMinutes: 30, LeadTimeMinutes: 30},
				},
				TravelMinutes: &travel,
				Confidence:    1.05,
				ParsingNotes:  []string{"Found date/time: tomorrow at 2pm"},
				RawText:       "Dentist appointment tomorrow at 2pm urgent at Main Street Clinic",
			}}, nil
		},
	}

	w := doParse(t, newTestRouter(uc), `{
		"text": "Dentist appointment tomorrow at 2pm urgent at Main Street Clinic",
		"userTimezone": "UTC",
		"userLocation": {"lat": 37.76, "lng": -122.42},
		"savedLocations": [{"name": "Gym", "lat": 1, "lng": 2, "radius_m": 200}],
		"defaultRadius": 150
	}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var got map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}

	if got["title"] != "Dentist appointment" {
		t.Errorf("title = %v", got["title"])
	}
	if got["type"] != "event" {
		t.Errorf("type = %v", got["type"])
	}
	if got["start_at"] != "2026-03-04T14:00:00Z" {
		t.Errorf("start_at = %v", got["start_at"])
	}
	if got["priority"] != float64(5) {
		t.Errorf("priority = %v", got["priority"])
	}
	if got["location_name"] != "Main Street Clinic" {
		t.Errorf("location_name = %v", got["location_name"])
	}
	if got["confidence"] != 1.05 {
		t.Errorf("confidence = %v", got["confidence"])
	}

	ai, ok := got["ai_suggestions"].(map[string]any)
	if !ok {
		t.Fatalf("ai_suggestions missing: %v", got)
	}
	if ai["confidence_score"] != 1.05 {
		t.Errorf("confidence_score = %v", ai["confidence_score"])
	}
	if ai["travel_time_minutes"] != float64(23) {
		t.Errorf("travel_time_minutes = %v", ai["travel_time_minutes"])
	}
	reminders, ok := ai["suggested_reminders"].([]any)
	if !ok || len(reminders) != 2 {
		t.Fatalf("suggested_reminders = %v", ai["suggested_reminders"])
	}
	geofence := reminders[0].(map[string]any)
	if geofence["trigger_type"] != "geofence" {
		t.Errorf("reminder[0].trigger_type = %v", geofence["trigger_type"])
	}
	if _, present := geofence["offset_minutes"]; present {
		t.Errorf("geofence reminder must not carry offset_minutes: %v", geofence)
	}
	relative := reminders[1].(map[string]any)
	if relative["offset_minutes"] != float64(30) {
		t.Errorf("reminder[1].offset_minutes = %v", relative["offset_minutes"])
	}

	// Request context must reach the use case intact.
	if uc.gotInput.Timezone != "UTC" {
		t.Errorf("input.Timezone = %q", uc.gotInput.Timezone)
	}
	if uc.gotInput.UserLocation == nil || uc.gotInput.UserLocation.Lat != 37.76 {
		t.Errorf("input.UserLocation = %+v", uc.gotInput.UserLocation)
	}
	if len(uc.gotInput.SavedLocations) != 1 || uc.gotInput.SavedLocations[0].RadiusM != 200 {
		t.Errorf("input.SavedLocations = %+v", uc.gotInput.SavedLocations)
	}
}

func TestParseHandlerEmptyText(t *testing.T) {
	uc := &mockUseCase{
		parseFunc: func(input parse.ParseInput) (parse.ParseOutput, error) {
			return parse.ParseOutput{}, parse.ErrEmptyText
		},
	}

	w := doParse(t, newTestRouter(uc), `{"text": "   "}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var got map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got["error"] != "text is required" {
		t.Errorf("error = %v", got["error"])
	}
}

func TestParseHandlerMalformedBody(t *testing.T) {
	uc := &mockUseCase{
		parseFunc: func(input parse.ParseInput) (parse.ParseOutput, error) {
			t.Fatal("use case must not run on malformed input")
			return parse.ParseOutput{}, nil
		},
	}

	w := doParse(t, newTestRouter(uc), `{"text": `)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
}

func TestParseHandlerInternalError(t *testing.T) {
	uc := &mockUseCase{
		parseFunc: func(input parse.ParseInput) (parse.ParseOutput, error) {
			return parse.ParseOutput{}, context.DeadlineExceeded
		},
	}

	w := doParse(t, newTestRouter(uc), `{"text": "Buy groceries"}`)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var got map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got["error"] != "internal server error" {
		t.Errorf("internal error detail must not leak: %v", got["error"])
	}
}
