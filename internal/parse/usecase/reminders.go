package usecase

import (
	"fmt"

	"voice-task-parser/internal/model"
	"voice-task-parser/internal/parse"
)

// planReminders derives suggested reminders from the classified item.
// Tasks without a due instant and events without a resolved start get none.
func planReminders(item parse.Item) []model.ReminderSuggestion {
	var out []model.ReminderSuggestion

	switch {
	case item.Type == model.ItemTypeEvent && item.StartAt != nil && item.Location != nil:
		out = append(out,
			model.ReminderSuggestion{
				TriggerType: model.TriggerGeofence,
				Message:     fmt.Sprintf("You've arrived at %s", item.Location.Name),
			},
			relativeReminder(EventLocationLeadMinutes, "Starts in 30 minutes"),
		)

	case item.Type == model.ItemTypeEvent && item.StartAt != nil:
		lead := EventDefaultLeadMinutes
		if item.Category == "work" {
			lead = EventWorkLeadMinutes
		}
		out = append(out, relativeReminder(lead, fmt.Sprintf("Starts in %d minutes", lead)))

	case item.Type == model.ItemTypeTask && item.DueAt != nil:
		lead := TaskDefaultLeadMinutes
		if item.Priority >= 4 {
			lead = TaskUrgentLeadMinutes
		}
		out = append(out, relativeReminder(lead, fmt.Sprintf("Due in %d minutes", lead)))
	}

	return out
}

func relativeReminder(leadMinutes int, message string) model.ReminderSuggestion {
	return model.ReminderSuggestion{
		TriggerType:     model.TriggerRelativeOffset,
		OffsetMinutes:   leadMinutes,
		LeadTimeMinutes: leadMinutes,
		Message:         message,
	}
}
