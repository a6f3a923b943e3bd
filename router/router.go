// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/danielhkuo/scrum-vote/cliparse"
	"github.com/danielhkuo/scrum-vote/handlers"
	"github.com/danielhkuo/scrum-vote/metrics"
	"github.com/danielhkuo/scrum-vote/middleware"
	"github.com/danielhkuo/scrum-vote/session"
)

// limiterIdleTTL is how long an inactive client's bucket is kept
const limiterIdleTTL = 10 * time.Minute

func NewRouter(sess *session.Session, cfg cliparse.Config, m *metrics.Metrics) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(sess, m)

	limiter := middleware.NewLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, limiterIdleTTL, cfg.TrustProxy)
	onReject := func() { m.Rejected(metrics.ReasonRateLimited) }

	// Reveal and reset always succeed; only register and vote are limited
	plain := func(route string, h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(m.Instrument(route, h))
	}
	limited := func(route string, h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(m.Instrument(route, middleware.WithRateLimit(limiter, onReject, h)))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.Handle("GET /metrics", m.Handler())

	// Voting round
	mux.HandleFunc("GET /api/state", plain("/api/state", sessionHandler.GetState))
	mux.HandleFunc("POST /api/register", limited("/api/register", sessionHandler.Register))
	mux.HandleFunc("POST /api/vote", limited("/api/vote", sessionHandler.Vote))
	mux.HandleFunc("POST /api/reveal", plain("/api/reveal", sessionHandler.Reveal))
	mux.HandleFunc("POST /api/reset", plain("/api/reset", sessionHandler.Reset))

	// Anything else under /api/ is a JSON 404
	mux.HandleFunc("GET /api/", plain("unknown", handlers.NotFound))
	mux.HandleFunc("POST /api/", plain("unknown", handlers.NotFound))

	// Frontend
	if staticDirExists(cfg.StaticDir) {
		slog.Info("Serving static files", "dir", cfg.StaticDir)
		mux.Handle("GET /", http.FileServer(http.Dir(cfg.StaticDir)))
	} else {
		if cfg.StaticDir != "" {
			slog.Warn("Static directory not found, serving banner", "dir", cfg.StaticDir)
		}
		mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("scrum-vote API v1"))
		})
	}

	return mux
}

func staticDirExists(dir string) bool {
	if dir == "" {
		return false
	}
	info, err := os.Stat(dir)
	return err == nil && info.IsDir()
}
