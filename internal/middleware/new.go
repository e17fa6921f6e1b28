package middleware

import (
	"hr-assistant/config"
	"hr-assistant/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New builds the shared gin middleware. The rate limiter is disabled when
// cfg.Enabled is false.
func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	mw := Middleware{l: l}
	if cfg.Enabled {
		mw.limiter = newRateLimiter(cfg)
	}
	return mw
}
