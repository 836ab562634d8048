package usecase

import (
	"time"

	"voice-task-parser/pkg/distancematrix"
	"voice-task-parser/pkg/log"
	"voice-task-parser/pkg/places"
)

// Config holds pipeline defaults and a clock for deterministic tests.
type Config struct {
	DefaultTimezone string
	DefaultRadiusM  float64
	Now             func() time.Time
}

// implUseCase is the private implementation of parse.UseCase.
// Both clients are optional: a nil client degrades the corresponding stage
// to "feature unavailable" without failing the pipeline.
type implUseCase struct {
	l        log.Logger
	places   places.IPlaces
	distance distancematrix.IDistanceMatrix
	cfg      Config
}

// New creates a new parse UseCase implementation.
func New(l log.Logger, placesClient places.IPlaces, distanceClient distancematrix.IDistanceMatrix, cfg Config) *implUseCase {
	if cfg.DefaultTimezone == "" {
		cfg.DefaultTimezone = "UTC"
	}
	if cfg.DefaultRadiusM <= 0 {
		cfg.DefaultRadiusM = DefaultRadiusM
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &implUseCase{
		l:        l,
		places:   placesClient,
		distance: distanceClient,
		cfg:      cfg,
	}
}
