package parse

import "errors"

var (
	// ErrEmptyText rejects empty or whitespace-only utterances before any
	// pipeline stage runs.
	ErrEmptyText = errors.New("text is required")
)
