// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/danielhkuo/scrum-vote/auth"
)

// Limiter applies a token bucket per client and periodically evicts idle entries.
// A nil *Limiter allows everything.
type Limiter struct {
	limit      rate.Limit
	burst      int
	salt       string
	idleTTL    time.Duration
	trustProxy bool

	mu      sync.Mutex
	clients map[string]*client
	hits    uint64
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewLimiter creates a per-client limiter; returns nil (unlimited) if rps or burst is not positive.
// Clients are told apart by X-Forwarded-For/X-Real-IP only when trustProxy is set.
func NewLimiter(rps float64, burst int, idleTTL time.Duration, trustProxy bool) *Limiter {
	if rps <= 0 || burst <= 0 {
		return nil
	}
	if idleTTL <= 0 {
		idleTTL = 10 * time.Minute
	}
	salt, _ := auth.GenerateID(16)
	return &Limiter{
		limit:      rate.Limit(rps),
		burst:      burst,
		salt:       salt,
		idleTTL:    idleTTL,
		trustProxy: trustProxy,
		clients:    make(map[string]*client),
	}
}

// Allow reports whether the client at ip may make a request at now
func (l *Limiter) Allow(ip string, now time.Time) bool {
	if l == nil {
		return true
	}
	key := auth.HashIP(ip, l.salt)

	l.mu.Lock()
	defer l.mu.Unlock()

	c, ok := l.clients[key]
	if !ok {
		c = &client{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[key] = c
	}
	c.lastSeen = now
	allowed := c.limiter.AllowN(now, 1)

	l.hits++
	if l.hits%512 == 0 {
		cutoff := now.Add(-l.idleTTL)
		for k, v := range l.clients {
			if v.lastSeen.Before(cutoff) {
				delete(l.clients, k)
			}
		}
	}

	return allowed
}

// Len returns the number of tracked clients
func (l *Limiter) Len() int {
	if l == nil {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

// WithRateLimit rejects requests over the client's budget with 429.
// onReject, if set, is called for each rejected request.
func WithRateLimit(l *Limiter, onReject func(), next http.HandlerFunc) http.HandlerFunc {
	if l == nil {
		return next
	}
	return func(w http.ResponseWriter, r *http.Request) {
		ip := ClientIP(r, l.trustProxy)
		if !l.Allow(ip, time.Now()) {
			slog.Warn("rate limited",
				"path", r.URL.Path,
				"request_id", RequestID(r.Context()),
			)
			if onReject != nil {
				onReject()
			}
			w.Header().Set("Retry-After", "1")
			ErrorResponse(w, http.StatusTooManyRequests, "Too many requests")
			return
		}
		next(w, r)
	}
}
