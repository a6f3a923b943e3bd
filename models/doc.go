// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - RegisterRequest: firstName
  - VoteRequest: firstName, vote

# Response Types

  - StateResponse: ok, state
  - ErrorResponse: error

# Snapshot

Snapshot is the public view of the round:

	{
	  "revealed": true,
	  "totalParticipants": 2,
	  "votesSubmitted": 2,
	  "participantsStatus": [
	    {"firstName": "Alice", "hasVoted": true},
	    {"firstName": "Bob", "hasVoted": true}
	  ],
	  "distribution": {"5": 1, "8": 1},
	  "average": 6.5
	}

distribution and average are only present once the round is revealed. They
live in the embedded *Results, which is nil while hidden.

# Distribution Ordering

Distribution is a slice of (value, count) pairs with a custom JSON encoding,
so keys are emitted in deck order ("1" before "13") rather than the sorted
order encoding/json uses for maps.
*/
package models
