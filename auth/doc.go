// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth derives participant identity from display names.

There are no accounts or passwords. A participant is whoever types a given
name, and the name itself is the credential.

# Name Sanitization

	name := auth.SanitizeName("  Alice  ")  // "Alice"
	ok := auth.ValidName(" A ")             // false, fewer than 2 characters

Names are trimmed and truncated to 30 characters (Unicode code points).

# Participant Keys

	key := auth.ParticipantKey("Alice")

The key is the hex SHA-256 of the sanitized, lower-cased name, so "Alice",
" alice " and "ALICE" all resolve to the same participant.

# Client Hashing

Rate limiting keys on a salted hash of the client address rather than the
address itself:

	salt, err := auth.GenerateID(16)
	hash := auth.HashIP(ipAddress, salt)
*/
package auth
