package distancematrix

import (
	"context"
	"time"
)

// IDistanceMatrix defines the travel-duration lookup.
// Implementations are safe for concurrent use.
type IDistanceMatrix interface {
	Duration(ctx context.Context, origin, dest LatLng, mode string) (time.Duration, error)
}
