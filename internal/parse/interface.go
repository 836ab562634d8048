package parse

import "context"

// UseCase is the single entry point of the utterance parsing pipeline.
type UseCase interface {
	Parse(ctx context.Context, input ParseInput) (ParseOutput, error)
}
