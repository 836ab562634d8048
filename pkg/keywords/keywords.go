// Package keywords implements ordered keyword-to-label matching.
// Classification rules are expressed as a static ordered table scanned
// linearly; the first rule with a matching keyword wins.
package keywords

import "strings"

// Rule pairs a label with its trigger keywords.
type Rule[T any] struct {
	Label    T
	Keywords []string
}

// Table is an ordered list of rules. Order is the tie-break: when keywords
// from several rules appear in the text, the earliest rule wins.
type Table[T any] []Rule[T]

// Match scans the table in order against the text (case-insensitive).
// Matching is raw substring containment, so a keyword embedded in a longer
// word also matches ("high" inside "highway"). Returns the winning label,
// the keyword that triggered it, and whether anything matched.
func (t Table[T]) Match(text string) (T, string, bool) {
	lower := strings.ToLower(text)
	for _, rule := range t {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Label, kw, true
			}
		}
	}
	var zero T
	return zero, "", false
}
