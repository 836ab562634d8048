package naturaldate_test

import (
	"testing"
	"time"

	"voice-task-parser/pkg/naturaldate"
)

// base is a Tuesday morning.
var base = time.Date(2026, 3, 3, 10, 0, 0, 0, time.UTC)

func TestExtract(t *testing.T) {
	p, err := naturaldate.NewParser("UTC")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("Tomorrow With Clock Time", func(t *testing.T) {
		m := p.Extract("Dentist appointment tomorrow at 2pm", base)
		if m == nil {
			t.Fatal("expected a match")
		}
		if !m.HasClockTime {
			t.Error("expected HasClockTime")
		}
		want := time.Date(2026, 3, 4, 14, 0, 0, 0, time.UTC)
		if !m.Start.Equal(want) {
			t.Errorf("expected start %v, got %v", want, m.Start)
		}
		if m.End != nil {
			t.Errorf("expected no explicit end, got %v", *m.End)
		}
	})

	t.Run("Bare Date Resolves To Start Of Day", func(t *testing.T) {
		m := p.Extract("pay rent tomorrow", base)
		if m == nil {
			t.Fatal("expected a match")
		}
		if m.HasClockTime {
			t.Error("expected no clock time")
		}
		want := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
		if !m.Start.Equal(want) {
			t.Errorf("expected start %v, got %v", want, m.Start)
		}
	})

	t.Run("Weekday Resolves Forward", func(t *testing.T) {
		m := p.Extract("finish report on friday", base)
		if m == nil {
			t.Fatal("expected a match")
		}
		if m.HasClockTime {
			t.Error("expected no clock time")
		}
		want := time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC) // next Friday
		if !m.Start.Equal(want) {
			t.Errorf("expected start %v, got %v", want, m.Start)
		}
		if m.Start.Before(base) {
			t.Error("day names must never resolve to the past")
		}
	})

	t.Run("Explicit End Range", func(t *testing.T) {
		m := p.Extract("review meeting tomorrow 2pm to 4pm", base)
		if m == nil {
			t.Fatal("expected a match")
		}
		if m.End == nil {
			t.Fatal("expected an explicit end")
		}
		wantEnd := time.Date(2026, 3, 4, 16, 0, 0, 0, time.UTC)
		if !m.End.Equal(wantEnd) {
			t.Errorf("expected end %v, got %v", wantEnd, *m.End)
		}
	})

	t.Run("No Match", func(t *testing.T) {
		if m := p.Extract("buy groceries", base); m != nil {
			t.Errorf("expected nil match, got %+v", m)
		}
	})

	t.Run("Morning Clock Time", func(t *testing.T) {
		m := p.Extract("call bank tomorrow at 9am", base)
		if m == nil {
			t.Fatal("expected a match")
		}
		want := time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC)
		if !m.Start.Equal(want) {
			t.Errorf("expected start %v, got %v", want, m.Start)
		}
	})
}

func TestExtractTimezone(t *testing.T) {
	p, err := naturaldate.NewParser("America/New_York")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m := p.Extract("standup tomorrow at 2pm", base)
	if m == nil {
		t.Fatal("expected a match")
	}
	// 14:00 Eastern (EST in early March) = 19:00 UTC.
	want := time.Date(2026, 3, 4, 19, 0, 0, 0, time.UTC)
	if !m.Start.UTC().Equal(want) {
		t.Errorf("expected %v, got %v", want, m.Start.UTC())
	}
}

func TestNewParserInvalidTimezone(t *testing.T) {
	if _, err := naturaldate.NewParser("Not/AZone"); err == nil {
		t.Error("expected error for invalid timezone")
	}
}

func TestExtractDuration(t *testing.T) {
	cases := []struct {
		name string
		text string
		want time.Duration
	}{
		{"Hours", "meeting tomorrow at 3pm for 2 hours", 2 * time.Hour},
		{"Minutes", "quick sync for 45 min", 45 * time.Minute},
		{"Minutes Long Form", "workout for 90 minutes", 90 * time.Minute},
		{"Short Hour Unit", "focus block 3h", 3 * time.Hour},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := naturaldate.ExtractDuration(tc.text)
			if m == nil {
				t.Fatal("expected a duration match")
			}
			if m.Duration != tc.want {
				t.Errorf("expected %v, got %v", tc.want, m.Duration)
			}
		})
	}

	t.Run("None", func(t *testing.T) {
		if m := naturaldate.ExtractDuration("buy groceries"); m != nil {
			t.Errorf("expected nil, got %+v", m)
		}
	})

	t.Run("Clock Time Is Not A Duration", func(t *testing.T) {
		if m := naturaldate.ExtractDuration("meet at 2pm"); m != nil {
			t.Errorf("expected nil, got %+v", m)
		}
	})
}
