// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session holds the shared planning poker round.

# Lifecycle

One Session is created at startup and handed to the HTTP handlers:

	sess := session.New()
	mux := router.NewRouter(sess, cfg, m)

It starts empty and hidden. Reset returns it to that state.

# Operations

	snap, err := sess.Register("Alice")      // ErrInvalidName if < 2 chars
	snap, err := sess.CastVote("Alice", "5") // ErrInvalidVote if not in AllowedVotes
	snap := sess.Reveal()
	snap := sess.Reset()
	snap := sess.Snapshot()

Validation runs before the lock is taken, so a rejected call never changes
state.

# Reveal Rules

  - CastVote reveals the round when every registered participant has voted.
  - Register hides it again if the participant has no vote yet.
  - Reveal shows results unconditionally.

Re-registering a participant who already voted keeps their vote.

# Concurrency

Every mutation runs under a single mutex, so the "everyone voted" check never
sees a half-applied vote and Reset cannot interleave with CastVote. Snapshot
takes the read lock.
*/
package session
