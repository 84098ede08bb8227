package middleware

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

type windowEntry struct {
	requests []time.Time
	mu       sync.Mutex
}

// RateLimiter is a sliding-window limiter keyed by client address.
type RateLimiter struct {
	max    int
	window time.Duration
	store  sync.Map
	now    func() time.Time
}

func NewRateLimiter(max int, window time.Duration) *RateLimiter {
	return &RateLimiter{max: max, window: window, now: time.Now}
}

func (rl *RateLimiter) allow(client string) bool {
	now := rl.now()
	cutoff := now.Add(-rl.window)

	v, _ := rl.store.LoadOrStore(client, &windowEntry{})
	entry := v.(*windowEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	filtered := entry.requests[:0]
	for _, t := range entry.requests {
		if t.After(cutoff) {
			filtered = append(filtered, t)
		}
	}
	entry.requests = filtered

	if len(entry.requests) >= rl.max {
		return false
	}

	entry.requests = append(entry.requests, now)
	return true
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.allow(clientIP(r)) {
			w.Header().Set("Retry-After", strconv.Itoa(int(rl.window.Seconds())))
			writeJSONError(w, http.StatusTooManyRequests, "too many requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP prefers the first X-Forwarded-For hop and falls back to the
// connection's host without port.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(first)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
