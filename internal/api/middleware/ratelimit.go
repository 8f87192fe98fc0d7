package middleware

import (
	"log"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// RateLimiter caps how many requests a single caller may make per window.
// State is in-memory, so limits are per process.
type RateLimiter struct {
	mu      sync.Mutex
	callers map[string]*callerWindow

	limit  int
	window time.Duration
}

// callerWindow is a fixed counting window for one caller
type callerWindow struct {
	count   int
	startAt time.Time
}

// NewRateLimiter creates a limiter allowing limit requests per window per caller
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		callers: make(map[string]*callerWindow),
		limit:   limit,
		window:  window,
	}

	go rl.evictStale()

	return rl
}

// Middleware rejects callers over their limit with 429.
// Callers are keyed by IP; authenticated identity is not available yet at
// this point in the chain.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller := callerAddr(r)

		if !rl.take(caller) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			body := `{"error":"TooManyRequests","message":"Rate limit exceeded. Please try again later."}`
			if _, err := w.Write([]byte(body)); err != nil {
				log.Printf("Failed to write rate limit response: %v", err)
			}
			return
		}

		next.ServeHTTP(w, r)
	})
}

// take consumes one slot from the caller's current window, starting a fresh
// window if the previous one has elapsed. Returns false when the window is full.
func (rl *RateLimiter) take(caller string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now().UTC()

	cw := rl.callers[caller]
	if cw == nil || now.Sub(cw.startAt) >= rl.window {
		rl.callers[caller] = &callerWindow{count: 1, startAt: now}
		return true
	}

	if cw.count >= rl.limit {
		return false
	}

	cw.count++
	return true
}

// evictStale drops windows that have lapsed so the caller map does not grow
// with every IP that ever connected
func (rl *RateLimiter) evictStale() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now().UTC()
		for caller, cw := range rl.callers {
			if now.Sub(cw.startAt) >= rl.window {
				delete(rl.callers, caller)
			}
		}
		rl.mu.Unlock()
	}
}

// callerAddr identifies the caller by IP, trusting proxy headers when present.
// X-Forwarded-For may carry a chain; the first hop is the originating client.
func callerAddr(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			return strings.TrimSpace(fwd[:i])
		}
		return strings.TrimSpace(fwd)
	}

	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
