// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"cmp"
	"errors"
	"math"
	"slices"
	"strconv"
	"sync"

	"github.com/danielhkuo/scrum-vote/auth"
	"github.com/danielhkuo/scrum-vote/models"
)

var (
	ErrInvalidName = errors.New("name too short")
	ErrInvalidVote = errors.New("invalid vote")
)

// AllowedVotes is the card deck, in the order used for distributions
var AllowedVotes = []string{"0", "1", "2", "3", "5", "8", "13", "21", "?"}

// IsAllowedVote reports whether value is a card from the deck
func IsAllowedVote(value string) bool {
	return slices.Contains(AllowedVotes, value)
}

// Session is the single shared voting round.
// All mutations hold mu for their whole read-modify-write.
type Session struct {
	mu           sync.RWMutex
	revealed     bool
	participants map[string]string // key -> sanitized display name
	votes        map[string]string // key -> vote value
}

// New creates an empty, hidden round
func New() *Session {
	return &Session{
		participants: make(map[string]string),
		votes:        make(map[string]string),
	}
}

// Register adds or renames a participant. A participant without a vote
// hides the results again until they vote.
func (s *Session) Register(rawName string) (models.Snapshot, error) {
	if !auth.ValidName(rawName) {
		return models.Snapshot{}, ErrInvalidName
	}
	name := auth.SanitizeName(rawName)
	key := auth.ParticipantKey(name)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.participants[key] = name
	if _, voted := s.votes[key]; !voted {
		s.revealed = false
	}
	return s.snapshotLocked(), nil
}

// CastVote registers the participant if needed and records their vote.
// The round reveals itself once every participant has voted.
func (s *Session) CastVote(rawName, vote string) (models.Snapshot, error) {
	if !auth.ValidName(rawName) {
		return models.Snapshot{}, ErrInvalidName
	}
	if !IsAllowedVote(vote) {
		return models.Snapshot{}, ErrInvalidVote
	}
	name := auth.SanitizeName(rawName)
	key := auth.ParticipantKey(name)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.participants[key] = name
	s.votes[key] = vote
	if s.allVotedLocked() {
		s.revealed = true
	}
	return s.snapshotLocked(), nil
}

// Reveal shows the results regardless of how many votes are in
func (s *Session) Reveal() models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.revealed = true
	return s.snapshotLocked()
}

// Reset clears participants and votes and hides the round
func (s *Session) Reset() models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.revealed = false
	clear(s.participants)
	clear(s.votes)
	return s.snapshotLocked()
}

// Snapshot returns the public view without changing anything
func (s *Session) Snapshot() models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshotLocked()
}

func (s *Session) allVotedLocked() bool {
	if len(s.participants) == 0 {
		return false
	}
	for key := range s.participants {
		if _, ok := s.votes[key]; !ok {
			return false
		}
	}
	return true
}

type rosterEntry struct {
	key    string
	folded string
}

func (s *Session) snapshotLocked() models.Snapshot {
	roster := make([]rosterEntry, 0, len(s.participants))
	for key, name := range s.participants {
		roster = append(roster, rosterEntry{key: key, folded: auth.FoldName(name)})
	}
	slices.SortFunc(roster, func(a, b rosterEntry) int {
		return cmp.Or(cmp.Compare(a.folded, b.folded), cmp.Compare(a.key, b.key))
	})

	status := make([]models.ParticipantStatus, 0, len(roster))
	for _, entry := range roster {
		_, voted := s.votes[entry.key]
		status = append(status, models.ParticipantStatus{
			DisplayName: s.participants[entry.key],
			HasVoted:    voted,
		})
	}

	snap := models.Snapshot{
		Revealed:           s.revealed,
		TotalParticipants:  len(s.participants),
		VotesSubmitted:     len(s.votes),
		ParticipantsStatus: status,
	}
	if !s.revealed {
		return snap
	}

	snap.Results = &models.Results{
		Distribution: Tally(s.votes),
		Average:      Average(s.votes),
	}
	return snap
}

// Tally counts votes per deck value, skipping values nobody picked
func Tally(votes map[string]string) models.Distribution {
	counts := make(map[string]int, len(AllowedVotes))
	for _, v := range votes {
		counts[v]++
	}

	dist := models.Distribution{}
	for _, value := range AllowedVotes {
		if n := counts[value]; n > 0 {
			dist = append(dist, models.VoteCount{Value: value, Count: n})
		}
	}
	return dist
}

// Average is the mean of the numeric votes rounded half to even at 2 decimals,
// or nil when there are none. "?" does not count.
func Average(votes map[string]string) *float64 {
	var sum, n int
	for _, v := range votes {
		x, err := strconv.Atoi(v)
		if err != nil {
			continue
		}
		sum += x
		n++
	}
	if n == 0 {
		return nil
	}

	avg := math.RoundToEven(float64(sum)/float64(n)*100) / 100
	return &avg
}
