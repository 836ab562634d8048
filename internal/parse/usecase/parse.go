package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"voice-task-parser/internal/model"
	"voice-task-parser/internal/parse"
	"voice-task-parser/pkg/naturaldate"
)

// Parse runs the extraction pipeline over one utterance. Stages execute in
// strict sequence; a stage that finds nothing records a note and is
// skipped, never aborting the pipeline. Only empty input is an error.
func (uc *implUseCase) Parse(ctx context.Context, input parse.ParseInput) (parse.ParseOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return parse.ParseOutput{}, parse.ErrEmptyText
	}

	now := uc.cfg.Now()

	item := parse.Item{
		Type:       model.ItemTypeTask,
		Priority:   DefaultPriority,
		Tags:       []string{},
		Confidence: ConfidenceBase,
		RawText:    input.Text,
	}
	notes := []string{}

	// 1. Date/time extraction.
	dateParser, err := naturaldate.NewParser(uc.timezone(input))
	if err != nil {
		uc.l.Warnf(ctx, "invalid timezone %q, falling back to UTC: %v", input.Timezone, err)
		notes = append(notes, fmt.Sprintf("Unknown timezone %q, using UTC", input.Timezone))
		dateParser, _ = naturaldate.NewParser("UTC")
	}

	dateMatch := dateParser.Extract(input.Text, now)
	durMatch := naturaldate.ExtractDuration(input.Text)
	uc.applyDateMatch(&item, &notes, input.Text, dateMatch, durMatch)

	// 2. Priority keywords.
	if level, kw, ok := priorityTable.Match(input.Text); ok {
		item.Priority = level
		item.Confidence += ConfidencePriority
		notes = append(notes, fmt.Sprintf("Priority %d from keyword %q", level, kw))
	} else {
		notes = append(notes, fmt.Sprintf("No priority keyword found, defaulting to %d", DefaultPriority))
	}

	// 3. Category keywords.
	if category, kw, ok := categoryTable.Match(input.Text); ok {
		item.Category = category
		item.Tags = append(item.Tags, category)
		item.Confidence += ConfidenceCategory
		notes = append(notes, fmt.Sprintf("Category %q from keyword %q", category, kw))
	} else {
		notes = append(notes, "No category matched")
	}

	// 4. Location. The date phrase is scrubbed first so "at 7pm" is never
	// mistaken for a place.
	locText := input.Text
	if dateMatch != nil {
		locText = strings.Replace(locText, dateMatch.Text, " ", 1)
	}
	location, locPhrase := uc.resolveLocation(ctx, locText, input, &notes)
	if location != nil {
		item.Location = location
		item.Confidence += ConfidenceLocation
	}

	// 5. Title normalization.
	cleanPhrase := ""
	if location != nil {
		cleanPhrase = locPhrase
	}
	item.Title = cleanTitle(input.Text, dateMatch, durMatch, cleanPhrase)

	// 6. Reminder planning.
	item.Reminders = planReminders(item)

	// 7. Optional travel-time estimate.
	if item.Location != nil && input.UserLocation != nil && uc.distance != nil {
		uc.estimateTravel(ctx, &item, *input.UserLocation, &notes)
	}

	item.ParsingNotes = notes
	return parse.ParseOutput{Item: item}, nil
}

// timezone picks the caller's zone or the configured default.
func (uc *implUseCase) timezone(input parse.ParseInput) string {
	if input.Timezone != "" {
		return input.Timezone
	}
	return uc.cfg.DefaultTimezone
}

// applyDateMatch classifies the item from the date/time extraction result.
// A resolved clock time makes the item an event; a bare calendar date makes
// it a task with a due instant.
func (uc *implUseCase) applyDateMatch(item *parse.Item, notes *[]string, text string, dateMatch *naturaldate.Match, durMatch *naturaldate.DurationMatch) {
	if dateMatch == nil {
		*notes = append(*notes, "No date or time found in the text")
		return
	}

	item.Confidence += ConfidenceDate

	if !dateMatch.HasClockTime {
		due := dateMatch.Start.UTC()
		item.DueAt = &due
		item.AllDay = true
		*notes = append(*notes, fmt.Sprintf("Due date %s from %q", due.Format("2006-01-02"), dateMatch.Text))
		return
	}

	item.Type = model.ItemTypeEvent
	start := dateMatch.Start.UTC()
	item.StartAt = &start

	end := start.Add(uc.defaultEventDuration(text))
	if dateMatch.End != nil {
		end = dateMatch.End.UTC()
	}
	// A separate numeric-duration phrase overrides any end time, explicit
	// or synthesized.
	if durMatch != nil {
		end = start.Add(durMatch.Duration)
	}
	item.EndAt = &end

	*notes = append(*notes, fmt.Sprintf("Event starting %s from %q", start.Format("2006-01-02 15:04"), dateMatch.Text))
}

// defaultEventDuration synthesizes an event length when the phrase carries
// no explicit end.
func (uc *implUseCase) defaultEventDuration(text string) time.Duration {
	if strings.Contains(strings.ToLower(text), "meeting") {
		return MeetingDuration
	}
	return DefaultEventDuration
}
