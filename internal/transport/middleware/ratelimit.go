package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/lexidrill/lexidrill-backend/internal/config"
)

type bucket struct {
	tokens   float64
	lastSeen time.Time
}

// RateLimiter is a per-client token bucket. Each client address gets
// PerMinute tokens a minute; a request spends one token. Stale buckets
// are dropped by a background sweep.
type RateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket

	perMinute float64
	burst     float64
	done      chan struct{}
}

// NewRateLimiter creates a limiter and starts its cleanup loop.
func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	rl := &RateLimiter{
		buckets:   make(map[string]*bucket),
		perMinute: float64(cfg.PerMinute),
		burst:     float64(cfg.PerMinute),
		done:      make(chan struct{}),
	}

	interval := cfg.CleanupInterval
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	go rl.cleanupLoop(interval)

	return rl
}

// Stop terminates the cleanup loop.
func (rl *RateLimiter) Stop() {
	close(rl.done)
}

func (rl *RateLimiter) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.done:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-interval)
			rl.mu.Lock()
			for key, b := range rl.buckets {
				if b.lastSeen.Before(cutoff) {
					delete(rl.buckets, key)
				}
			}
			rl.mu.Unlock()
		}
	}
}

func (rl *RateLimiter) allow(key string) bool {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, ok := rl.buckets[key]
	if !ok {
		b = &bucket{tokens: rl.burst, lastSeen: now}
		rl.buckets[key] = b
	}

	elapsed := now.Sub(b.lastSeen).Minutes()
	b.tokens += elapsed * rl.perMinute
	if b.tokens > rl.burst {
		b.tokens = rl.burst
	}
	b.lastSeen = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// Limit rejects requests from clients that exhausted their bucket.
func (rl *RateLimiter) Limit() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.RemoteAddr
			if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
				key = host
			}

			if !rl.allow(key) {
				w.Header().Set("Retry-After", "60")
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
