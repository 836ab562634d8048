package usecase

import (
	"regexp"
	"strings"

	"voice-task-parser/pkg/naturaldate"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)

	// Word-boundary removal of every priority keyword, regardless of which
	// one matched. Note the asymmetry with classification, which uses raw
	// substring containment.
	priorityKeywordRes = buildKeywordRes()

	connectorWords = map[string]bool{"at": true, "for": true, "about": true}
)

func buildKeywordRes() []*regexp.Regexp {
	var res []*regexp.Regexp
	for _, rule := range priorityTable {
		for _, kw := range rule.Keywords {
			res = append(res, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(kw)+`\b`))
		}
	}
	return res
}

// cleanTitle strips matched substrings from the original text, in fixed
// order: date phrase, duration phrase, trailing location phrase with its
// "at" connector, then all priority keywords. Idempotent once the matched
// substrings are gone.
func cleanTitle(raw string, dateMatch *naturaldate.Match, durMatch *naturaldate.DurationMatch, locPhrase string) string {
	title := raw

	if dateMatch != nil {
		title = strings.Replace(title, dateMatch.Text, " ", 1)
	}
	if durMatch != nil {
		title = strings.Replace(title, durMatch.Text, " ", 1)
	}
	if locPhrase != "" {
		re := regexp.MustCompile(`(?i)\bat\s+` + regexp.QuoteMeta(locPhrase) + `\s*$`)
		title = re.ReplaceAllString(strings.TrimRight(title, " \t"), " ")
	}
	for _, re := range priorityKeywordRes {
		title = re.ReplaceAllString(title, " ")
	}

	title = strings.TrimSpace(whitespaceRe.ReplaceAllString(title, " "))
	title = stripConnectors(title)

	if title == "" {
		return raw
	}
	return title
}

// stripConnectors removes a single leading and trailing connector word
// left dangling by the removals.
func stripConnectors(title string) string {
	words := strings.Fields(title)
	if len(words) == 0 {
		return title
	}
	if connectorWords[strings.ToLower(words[0])] {
		words = words[1:]
	}
	if len(words) > 0 && connectorWords[strings.ToLower(words[len(words)-1])] {
		words = words[:len(words)-1]
	}
	return strings.Join(words, " ")
}
