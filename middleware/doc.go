// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /api/state", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status,
duration_ms). Each request gets an ID, taken from X-Request-ID when the
client sends one and a new UUID otherwise. Handlers read it with
RequestID(r.Context()).

# Rate Limiting

Register and vote are throttled per client with a token bucket:

	limiter := middleware.NewLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, 10*time.Minute, cfg.TrustProxy)
	h := middleware.WithRateLimit(limiter, onReject, handler)

Clients are keyed by a salted hash of their IP, so raw addresses are not kept.
A nil *Limiter disables limiting. Rejected requests get 429 with Retry-After.

# CORS Middleware

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		req = models.VoteRequest{}
	}

Bodies are capped at 64 KiB.

# Client IP Extraction

	ip := middleware.ClientIP(r, cfg.TrustProxy)

Behind a trusted proxy this is GetClientIP, which checks X-Forwarded-For, then
X-Real-IP, then RemoteAddr. Without one only RemoteAddr is used, since the
headers are set by the client.
*/
package middleware
