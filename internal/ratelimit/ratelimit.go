// Package ratelimit keeps one token bucket per client key.
package ratelimit

import (
	"sync"
	"time"

	"go.uber.org/fx"
	"golang.org/x/time/rate"

	"github.com/numiflow/website/internal/config"
)

var Module = fx.Module("ratelimit",
	fx.Provide(NewFromConfig),
)

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter manages rate limiters for individual clients.
type Limiter struct {
	limit rate.Limit
	burst int
	now   func() time.Time

	mu      sync.Mutex
	clients map[string]*entry
}

// New allows perMinute requests per key with the given burst.
func New(perMinute, burst int) *Limiter {
	if perMinute <= 0 {
		perMinute = 60
	}
	if burst <= 0 {
		burst = 1
	}
	return &Limiter{
		limit:   rate.Every(time.Minute / time.Duration(perMinute)),
		burst:   burst,
		now:     time.Now,
		clients: make(map[string]*entry),
	}
}

// NewFromConfig builds the limiter guarding the contact endpoints.
func NewFromConfig(cfg *config.Config) *Limiter {
	return New(cfg.Contact.RatePerMinute, cfg.Contact.RateBurst)
}

// Allow reports whether a request for key may proceed now.
func (l *Limiter) Allow(key string) bool {
	now := l.now()

	l.mu.Lock()
	e, ok := l.clients[key]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[key] = e
	}
	e.lastSeen = now
	l.mu.Unlock()

	return e.limiter.AllowN(now, 1)
}

// Remove forgets key.
func (l *Limiter) Remove(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.clients, key)
}

// Prune drops keys not seen within olderThan and returns how many were removed.
func (l *Limiter) Prune(olderThan time.Duration) int {
	cutoff := l.now().Add(-olderThan)

	l.mu.Lock()
	defer l.mu.Unlock()
	removed := 0
	for key, e := range l.clients {
		if e.lastSeen.Before(cutoff) {
			delete(l.clients, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked keys.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}
