// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the scrum-vote API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(sess, cfg, m)

# Endpoints

Health and metrics:

	GET /health
	GET /metrics

Voting round:

	GET  /api/state    - Current snapshot
	POST /api/register - Join the round ({"firstName": "..."})
	POST /api/vote     - Cast or change a vote ({"firstName": "...", "vote": "5"})
	POST /api/reveal   - Show results now
	POST /api/reset    - Start a new round

Other /api/ paths answer 404 {"error":"Not found"}.

Frontend:

	GET / - files from cfg.StaticDir, or a plain-text banner when it is unset or missing

# Middleware

Every API route is wrapped with request logging and a Prometheus request
counter. Register and vote are also rate limited per client according to
cfg.RateLimitRPS and cfg.RateLimitBurst. Reveal and reset are not limited, so
they always succeed.
*/
package router
