// Package ratelimit throttles outbound calls per upstream endpoint.
package ratelimit

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

type Limiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	defaults Config
}

type Config struct {
	RequestsPerSecond float64
	Burst             int
}

func DefaultConfig() Config {
	return Config{
		RequestsPerSecond: 2,
		Burst:             4,
	}
}

func New(cfg Config) *Limiter {
	if cfg.RequestsPerSecond <= 0 {
		cfg = DefaultConfig()
	}
	return &Limiter{
		limiters: make(map[string]*rate.Limiter),
		defaults: cfg,
	}
}

func (l *Limiter) get(endpoint string) *rate.Limiter {
	l.mu.RLock()
	limiter, exists := l.limiters[endpoint]
	l.mu.RUnlock()

	if exists {
		return limiter
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if limiter, exists = l.limiters[endpoint]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(rate.Limit(l.defaults.RequestsPerSecond), l.defaults.Burst)
	l.limiters[endpoint] = limiter
	return limiter
}

// SetLimit overrides the rate for one endpoint.
func (l *Limiter) SetLimit(endpoint string, rps float64, burst int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.limiters[endpoint] = rate.NewLimiter(rate.Limit(rps), burst)
}

// Wait blocks until the endpoint's limiter admits one call or the context
// is cancelled.
func (l *Limiter) Wait(ctx context.Context, endpoint string) error {
	return l.get(endpoint).Wait(ctx)
}
