// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the scrum-vote API.

# SessionHandler

SessionHandler wraps the shared session and optional metrics:

	h := handlers.NewSessionHandler(sess, m)

	GET  /api/state    → GetState
	POST /api/register → Register
	POST /api/vote     → Vote
	POST /api/reveal   → Reveal
	POST /api/reset    → Reset

Mutating endpoints answer {"ok": true, "state": <snapshot>}.

# Request Bodies

A body that is not valid JSON, or not a JSON object, is treated as empty. A
firstName or vote that is present but not a string is treated as missing on
its own, so each field reports its own error. The name is checked first:

	400 {"error": "First name is required (2 characters min)."}
	400 {"error": "Invalid vote."}

Validation happens before the session is touched, so rejected requests change
nothing.

# Logging

Mutations are logged with the request ID. Vote values are never logged, since
they are secret until the round is revealed.
*/
package handlers
