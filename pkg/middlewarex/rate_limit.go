package middlewarex

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"price_checker/pkg/httpx/reply"
)

const (
	limiterIdleTTL       = time.Hour
	limiterCleanupPeriod = 5 * time.Minute
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter is a per client IP token bucket. Entries idle for an hour are evicted
// by Cleanup.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*limiterEntry
	limit    rate.Limit
	burst    int
	now      func() time.Time
}

func NewRateLimiter(requestsPerSecond float64, burst int) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*limiterEntry),
		limit:    rate.Limit(requestsPerSecond),
		burst:    burst,
		now:      time.Now,
	}
}

func (l *RateLimiter) Allow(identity string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.limiters[identity]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[identity] = entry
	}

	entry.lastSeen = l.now()

	return entry.limiter.AllowN(entry.lastSeen, 1)
}

func (l *RateLimiter) Cleanup() {
	cutoff := l.now().Add(-limiterIdleTTL)

	l.mu.Lock()
	defer l.mu.Unlock()

	for identity, entry := range l.limiters {
		if entry.lastSeen.Before(cutoff) {
			delete(l.limiters, identity)
		}
	}
}

// Run evicts idle limiters until done is closed.
func (l *RateLimiter) Run(done <-chan struct{}) {
	ticker := time.NewTicker(limiterCleanupPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			l.Cleanup()
		}
	}
}

func RateLimit(limiter *RateLimiter) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow(clientIP(r)) {
				reply.TooManyRequests(r.Context(), w)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
