package middleware

import (
	"net/http"

	"github.com/en9inerd/go-svrouter/httperrors"
	"github.com/en9inerd/go-svrouter/router"
)

// ThrottleConfig holds configuration for the throttle middleware
type ThrottleConfig struct {
	Limit   int64
	Message string
}

// GlobalThrottle returns a route that limits the number of requests
// in flight through the rest of the chain.
func GlobalThrottle(limit int64) router.Callback {
	return GlobalThrottleWithConfig(ThrottleConfig{
		Limit:   limit,
		Message: "too many requests",
	})
}

// GlobalThrottleWithConfig returns a throttle route with custom configuration.
func GlobalThrottleWithConfig(cfg ThrottleConfig) router.Callback {
	if cfg.Limit <= 0 {
		// no throttling
		return func(req *router.Request, res router.Response, logs, config any, next router.Next) error {
			next()
			return nil
		}
	}

	if cfg.Message == "" {
		cfg.Message = "too many requests"
	}

	// one semaphore shared by every request through this route
	ch := make(chan struct{}, cfg.Limit)

	return func(req *router.Request, res router.Response, logs, config any, next router.Next) error {
		select {
		case ch <- struct{}{}: // acquired slot
			defer func() { <-ch }()
			next()
			return nil
		default: // no slot available
			return httperrors.NewError(http.StatusTooManyRequests, cfg.Message)
		}
	}
}
