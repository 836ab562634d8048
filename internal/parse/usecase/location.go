package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"voice-task-parser/internal/model"
	"voice-task-parser/internal/parse"
	"voice-task-parser/pkg/places"
)

// locationPatterns are tried in fixed order; the first match wins. A phrase
// is a run of non-comma characters.
var locationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bat\s+([^,]+)`),
	regexp.MustCompile(`(?i)\bin\s+([^,]+)`),
	regexp.MustCompile(`@\s*([^,]+)`),
}

// resolveLocation finds a location in the text, preferring saved locations
// over free-text geocoding. Best-effort single shot: any miss or lookup
// failure returns nil, never an error. The second return value is the raw
// phrase used, for title cleanup.
func (uc *implUseCase) resolveLocation(ctx context.Context, text string, input parse.ParseInput, notes *[]string) (*model.LocationMatch, string) {
	lower := strings.ToLower(text)

	// 1. Saved locations win outright; free-text patterns are not tried.
	for _, saved := range input.SavedLocations {
		if saved.Name == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(saved.Name)) {
			*notes = append(*notes, fmt.Sprintf("Matched saved location %q", saved.Name))
			return &model.LocationMatch{
				Name:    saved.Name,
				Lat:     saved.Lat,
				Lng:     saved.Lng,
				RadiusM: saved.RadiusM,
			}, saved.Name
		}
	}

	// 2. Free-text phrase.
	var phrase string
	for _, re := range locationPatterns {
		if sub := re.FindStringSubmatch(text); sub != nil {
			phrase = strings.TrimSpace(sub[1])
			break
		}
	}
	if phrase == "" {
		*notes = append(*notes, "No location found")
		return nil, ""
	}

	// 3. External geocode, if configured.
	if uc.places == nil {
		*notes = append(*notes, fmt.Sprintf("Location phrase %q found but place lookup is not configured", phrase))
		return nil, phrase
	}

	place, err := uc.places.FindPlace(ctx, phrase)
	if err != nil {
		if !errors.Is(err, places.ErrNoResults) {
			uc.l.Warnf(ctx, "place lookup failed for %q: %v", phrase, err)
		}
		*notes = append(*notes, fmt.Sprintf("Could not resolve location %q", phrase))
		return nil, phrase
	}

	radius := input.DefaultRadiusM
	if radius <= 0 {
		radius = uc.cfg.DefaultRadiusM
	}

	*notes = append(*notes, fmt.Sprintf("Resolved location %q", place.Name))
	return &model.LocationMatch{
		Name:    place.Name,
		Lat:     place.Lat,
		Lng:     place.Lng,
		RadiusM: radius,
	}, phrase
}
