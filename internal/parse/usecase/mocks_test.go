package usecase_test

import (
	"context"
	"time"

	"voice-task-parser/pkg/distancematrix"
	"voice-task-parser/pkg/places"
)

// mockLogger satisfies log.Logger and discards everything.
type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...any)                 {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Info(ctx context.Context, args ...any)                  {}
func (mockLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Warn(ctx context.Context, args ...any)                  {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Error(ctx context.Context, args ...any)                 {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...any) {}

// fakePlaces implements places.IPlaces with a function field.
type fakePlaces struct {
	findFunc func(query string) (places.Place, error)
	calls    int
}

func (f *fakePlaces) FindPlace(ctx context.Context, query string) (places.Place, error) {
	f.calls++
	if f.findFunc == nil {
		return places.Place{}, places.ErrNoResults
	}
	return f.findFunc(query)
}

// fakeDistance implements distancematrix.IDistanceMatrix with a function field.
type fakeDistance struct {
	durationFunc func(origin, dest distancematrix.LatLng) (time.Duration, error)
	calls        int
}

func (f *fakeDistance) Duration(ctx context.Context, origin, dest distancematrix.LatLng, mode string) (time.Duration, error) {
	f.calls++
	if f.durationFunc == nil {
		return 0, context.DeadlineExceeded
	}
	return f.durationFunc(origin, dest)
}
