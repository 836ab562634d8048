package middleware

import (
	"golang.org/x/time/rate"

	"voice-task-parser/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rate.Limiter
}

// New creates the shared middleware set. ratePerMin <= 0 disables the
// inbound rate limit.
func New(l log.Logger, ratePerMin int) Middleware {
	var limiter *rate.Limiter
	if ratePerMin > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(ratePerMin)/60.0), ratePerMin)
	}

	return Middleware{
		l:       l,
		limiter: limiter,
	}
}
