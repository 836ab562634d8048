package places

import "context"

// IPlaces defines the place-text-search lookup.
// Implementations are safe for concurrent use.
type IPlaces interface {
	FindPlace(ctx context.Context, query string) (Place, error)
}
