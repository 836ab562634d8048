// Package naturaldate locates the single most prominent date/time phrase in
// an utterance and resolves it to absolute instants, anchored at a caller
// supplied base time with forward-looking bias.
package naturaldate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// Parser resolves natural-language date phrases in a fixed timezone.
type Parser struct {
	location *time.Location
	tiers    []*when.Parser
}

var (
	// clockRe decides whether a matched phrase resolved an hour component.
	clockRe = regexp.MustCompile(`(?i)(\d{1,2}:\d{2}|\d{1,2}\s*(?:am|pm)|\bnoon\b|\bmidnight\b|\bin\s+\d+\s*(?:hour|hr|minute|min)s?\b)`)

	weekdayRe = regexp.MustCompile(`(?i)\b(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)

	// rangeRe matches an explicit end clock time directly after the phrase,
	// e.g. "2pm to 4pm" or "2pm - 3:30pm".
	rangeRe = regexp.MustCompile(`(?i)^(\s*(?:to|until|till|-)\s*(\d{1,2})(?::(\d{2}))?\s*(am|pm)?)\b`)
)

// NewParser creates a parser for the given IANA timezone string,
// e.g. "America/New_York".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc, tiers: newTiers()}, nil
}

// newTiers builds the parsing modes tried in order: default, then a more
// permissive casual mode, then a strict mode limited to explicit forms.
func newTiers() []*when.Parser {
	def := when.New(nil)
	def.Add(en.All...)
	def.Add(common.All...)

	casual := when.New(&rules.Options{Distance: 10, MatchByOrder: true})
	casual.Add(en.All...)
	casual.Add(common.All...)

	strict := when.New(nil)
	strict.Add(en.HourMinute(rules.Override), en.Hour(rules.Override))
	strict.Add(common.All...)

	return []*when.Parser{def, casual, strict}
}

// Extract finds the first date/time phrase in text, trying each mode in
// order and keeping the first mode's first match only. Returns nil when no
// mode matches; that is an absence, not an error.
func (p *Parser) Extract(text string, base time.Time) *Match {
	base = base.In(p.location)

	for _, tier := range p.tiers {
		r, err := tier.Parse(text, base)
		if err != nil || r == nil {
			continue
		}

		m := &Match{
			Text:         r.Text,
			Index:        r.Index,
			Start:        r.Time,
			HasClockTime: clockRe.MatchString(r.Text),
		}

		if !m.HasClockTime {
			m.Start = p.startOfDay(m.Start)
		}

		p.applyForwardBias(m, base)
		p.resolveExplicitEnd(m, text)

		return m
	}

	return nil
}

// applyForwardBias rolls an ambiguous day name that resolved to the past
// onto its next future occurrence.
func (p *Parser) applyForwardBias(m *Match, base time.Time) {
	if !m.Start.Before(base) {
		return
	}
	lower := strings.ToLower(m.Text)
	if !weekdayRe.MatchString(lower) || strings.Contains(lower, "last") {
		return
	}
	for m.Start.Before(base) {
		m.Start = m.Start.AddDate(0, 0, 7)
	}
}

// resolveExplicitEnd looks for a "to <clock>" suffix directly after the
// matched phrase and folds it into the match as an explicit end instant.
func (p *Parser) resolveExplicitEnd(m *Match, text string) {
	if !m.HasClockTime {
		return
	}
	rest := text[m.Index+len(m.Text):]
	sub := rangeRe.FindStringSubmatch(rest)
	if sub == nil {
		return
	}

	hour, _ := strconv.Atoi(sub[2])
	minute := 0
	if sub[3] != "" {
		minute, _ = strconv.Atoi(sub[3])
	}
	if hour > 23 || minute > 59 {
		return
	}
	meridiem := strings.ToLower(sub[4])
	if meridiem == "pm" && hour < 12 {
		hour += 12
	}

	start := m.Start.In(p.location)
	end := time.Date(start.Year(), start.Month(), start.Day(), hour, minute, 0, 0, p.location)
	// No meridiem given: pick the next occurrence after the start.
	for end.Before(start) && meridiem == "" {
		end = end.Add(12 * time.Hour)
	}
	if end.Before(start) {
		end = end.AddDate(0, 0, 1)
	}

	m.Text += sub[1]
	m.End = &end
}

// startOfDay returns midnight at the start of the given day in the parser's
// timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
