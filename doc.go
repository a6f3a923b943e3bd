// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the scrum-vote server.

scrum-vote is a shared planning poker board. Participants enter a first name,
pick a card from 0, 1, 2, 3, 5, 8, 13, 21 or ?, and the group sees the
distribution and average once everyone has voted or someone forces a reveal.
There is one round per process, kept in memory; restarting the server starts
over.

# Starting the Server

No configuration is required:

	go run .

Or with flags:

	go run . -host 127.0.0.1 -p 8000 -static ./public

# Configuration

  - HOST (-host): Listen host (default: 0.0.0.0)
  - PORT (-p): Listen port (default: 8000)
  - STATIC_DIR (-static): Frontend files served at / (default: none, / answers with a banner)
  - RATE_LIMIT_RPS (-rate), RATE_LIMIT_BURST (-burst): Per-client throttling of register and vote
  - TRUST_PROXY (-trust-proxy): Identify clients by X-Forwarded-For behind a reverse proxy
  - LOG_LEVEL (-log-level), LOG_FORMAT (-log-format): slog settings

Variables may also come from a .env file. See package cliparse.

# Architecture

  - session: The voting round state machine
  - handlers: HTTP request handlers for the round
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, rate limiting, JSON helpers
  - models: Request/response types
  - auth: Name sanitization and participant keys
  - metrics: Prometheus collectors
  - cliparse: Configuration parsing

Clients poll GET /api/state; there is no push channel.
*/
package main
