package keywords_test

import (
	"testing"

	"voice-task-parser/pkg/keywords"
)

func TestTableMatch(t *testing.T) {
	table := keywords.Table[int]{
		{Label: 5, Keywords: []string{"urgent", "asap"}},
		{Label: 2, Keywords: []string{"low", "later"}},
	}

	t.Run("First Rule Wins", func(t *testing.T) {
		label, kw, ok := table.Match("this is urgent but also low priority")
		if !ok {
			t.Fatal("expected a match")
		}
		if label != 5 {
			t.Errorf("expected label 5, got %d", label)
		}
		if kw != "urgent" {
			t.Errorf("expected keyword urgent, got %q", kw)
		}
	})

	t.Run("Case Insensitive", func(t *testing.T) {
		label, _, ok := table.Match("Do it ASAP")
		if !ok || label != 5 {
			t.Errorf("expected label 5, got %d (ok=%v)", label, ok)
		}
	})

	t.Run("Substring Containment", func(t *testing.T) {
		// Embedded keywords match. Known tradeoff of substring matching.
		_, kw, ok := table.Match("take the lower road")
		if !ok || kw != "low" {
			t.Errorf("expected embedded 'low' match, got %q (ok=%v)", kw, ok)
		}
	})

	t.Run("No Match", func(t *testing.T) {
		_, _, ok := table.Match("nothing interesting here")
		if ok {
			t.Error("expected no match")
		}
	})

	t.Run("Empty Table", func(t *testing.T) {
		var empty keywords.Table[string]
		_, _, ok := empty.Match("urgent")
		if ok {
			t.Error("expected no match on empty table")
		}
	})
}
