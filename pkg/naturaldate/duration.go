package naturaldate

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var durationRe = regexp.MustCompile(`(?i)\b(\d+)\s*(hour|hr|h|minute|min|m)s?\b`)

// ExtractDuration finds a numeric duration phrase anywhere in the text.
// Returns nil when none is present.
func ExtractDuration(text string) *DurationMatch {
	sub := durationRe.FindStringSubmatch(text)
	if sub == nil {
		return nil
	}

	amount, err := strconv.Atoi(sub[1])
	if err != nil || amount <= 0 {
		return nil
	}

	unit := time.Minute
	if strings.HasPrefix(strings.ToLower(sub[2]), "h") {
		unit = time.Hour
	}

	return &DurationMatch{
		Text:     sub[0],
		Duration: time.Duration(amount) * unit,
	}
}
