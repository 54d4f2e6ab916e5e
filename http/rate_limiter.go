package http

import (
	"sync"
	"time"
)

const (
	staleVisitorAge = 1 * time.Hour
	reapInterval    = 30 * time.Minute
)

type visitor struct {
	remaining   int
	windowStart time.Time
}

// RateLimiter allows a fixed number of requests per client IP per window.
type RateLimiter struct {
	mu       sync.Mutex
	limit    int
	window   time.Duration
	visitors map[string]*visitor
	done     chan struct{}
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		limit:    limit,
		window:   window,
		visitors: make(map[string]*visitor),
		done:     make(chan struct{}),
	}
	go rl.reapLoop()
	return rl
}

func (r *RateLimiter) reapLoop() {
	ticker := time.NewTicker(reapInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.reap()
		case <-r.done:
			return
		}
	}
}

// reap drops visitors that have been idle long enough that their window
// has long since reset.
func (r *RateLimiter) reap() {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := time.Now().Add(-staleVisitorAge)
	for ip, v := range r.visitors {
		if v.windowStart.Before(cutoff) {
			delete(r.visitors, ip)
		}
	}
}

// Stop terminates the background reaper.
func (r *RateLimiter) Stop() {
	close(r.done)
}

// Allow reports whether the client may make another request now, consuming
// one slot from its current window when it may.
func (r *RateLimiter) Allow(ip string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	v, exists := r.visitors[ip]
	if !exists || now.Sub(v.windowStart) >= r.window {
		r.visitors[ip] = &visitor{remaining: r.limit - 1, windowStart: now}
		return true
	}

	if v.remaining <= 0 {
		return false
	}
	v.remaining--
	return true
}
