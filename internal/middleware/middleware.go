// Package middleware provides HTTP middleware for the trigger server.
package middleware

import (
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Config holds middleware configuration.
type Config struct {
	Logger *zap.Logger

	RateLimit      rate.Limit
	RateLimitBurst int
}

// Chain creates a middleware chain with all configured middleware.
func Chain(config *Config) func(http.Handler) http.Handler {
	rateLimiter := NewRateLimiter(config.RateLimit, config.RateLimitBurst)

	return func(handler http.Handler) http.Handler {
		// Innermost first. RequestID stays outermost so the log line and any
		// recovery response carry the same id.
		h := handler

		h = rateLimiter.Middleware()(h)

		h = Recovery(config.Logger)(h)

		h = Logger(config.Logger)(h)

		h = RequestID(h)

		return h
	}
}
