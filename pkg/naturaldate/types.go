package naturaldate

import "time"

// Match is a resolved date/time phrase found in free text.
type Match struct {
	// Text is the exact matched substring, including an explicit range
	// suffix ("to 4pm") when one directly follows the phrase.
	Text  string
	Index int

	Start time.Time
	// End is set only when the phrase carries an explicit end clock time.
	End *time.Time

	// HasClockTime reports whether an hour component was resolved. False
	// means only a calendar date was found and Start is the start of that
	// day in the parser's timezone.
	HasClockTime bool
}

// DurationMatch is a numeric duration phrase ("2 hours", "45 min") found
// anywhere in the text, independent of the date/time phrase.
type DurationMatch struct {
	Text     string
	Duration time.Duration
}
