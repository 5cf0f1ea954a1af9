package ratelimit

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// Limiter is a fixed-window per-key counter. It only throttles anonymous AI
// requests; whether authenticated traffic should be limited differently is
// left to the deployment (disabled when limit <= 0).
type Limiter struct {
	limit  int
	window time.Duration
	counts *cache.Cache
}

func New(limit int, window time.Duration) *Limiter {
	return &Limiter{
		limit:  limit,
		window: window,
		counts: cache.New(window, 2*window),
	}
}

// Allow records a hit for key and reports whether it is within the limit.
func (l *Limiter) Allow(key string) bool {
	if l == nil || l.limit <= 0 {
		return true
	}
	n, err := l.counts.IncrementInt(key, 1)
	if err != nil {
		l.counts.Set(key, 1, l.window)
		return l.limit >= 1
	}
	return n <= l.limit
}
