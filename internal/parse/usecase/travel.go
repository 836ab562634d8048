package usecase

import (
	"context"
	"fmt"
	"math"

	"voice-task-parser/internal/model"
	"voice-task-parser/internal/parse"
	"voice-task-parser/pkg/distancematrix"
)

// estimateTravel requests one driving-duration estimate and folds it into
// the reminder plan with a fixed buffer. Any failure is absorbed: the
// reminder is simply omitted.
func (uc *implUseCase) estimateTravel(ctx context.Context, item *parse.Item, origin model.Coordinates, notes *[]string) {
	d, err := uc.distance.Duration(ctx,
		distancematrix.LatLng{Lat: origin.Lat, Lng: origin.Lng},
		distancematrix.LatLng{Lat: item.Location.Lat, Lng: item.Location.Lng},
		distancematrix.ModeDriving,
	)
	if err != nil {
		uc.l.Warnf(ctx, "travel time lookup failed: %v", err)
		return
	}

	minutes := int(math.Ceil(d.Minutes()))
	item.TravelMinutes = &minutes

	lead := minutes + TravelBufferMinutes
	item.Reminders = append(item.Reminders, model.ReminderSuggestion{
		TriggerType:     model.TriggerRelativeOffset,
		OffsetMinutes:   lead,
		LeadTimeMinutes: lead,
		Message:         fmt.Sprintf("Time to leave for %s", item.Location.Name),
	})

	*notes = append(*notes, fmt.Sprintf("Estimated %d min travel to %s", minutes, item.Location.Name))
}
