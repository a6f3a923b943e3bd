package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// Request types

type RegisterRequest struct {
	FirstName string `json:"firstName"`
}

type VoteRequest struct {
	FirstName string `json:"firstName"`
	Vote      string `json:"vote"`
}

// UnmarshalJSON blanks fields that are not JSON strings instead of failing,
// so validation can report which field is wrong.
func (r *RegisterRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		FirstName json.RawMessage `json:"firstName"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = RegisterRequest{FirstName: stringField(raw.FirstName)}
	return nil
}

// UnmarshalJSON blanks fields that are not JSON strings instead of failing.
func (r *VoteRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		FirstName json.RawMessage `json:"firstName"`
		Vote      json.RawMessage `json:"vote"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = VoteRequest{
		FirstName: stringField(raw.FirstName),
		Vote:      stringField(raw.Vote),
	}
	return nil
}

func stringField(raw json.RawMessage) string {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return ""
	}
	return s
}

// Response types

// StateResponse wraps the snapshot returned by every mutating endpoint
type StateResponse struct {
	OK    bool     `json:"ok"`
	State Snapshot `json:"state"`
}

// Domain types

type ParticipantStatus struct {
	DisplayName string `json:"firstName"`
	HasVoted    bool   `json:"hasVoted"`
}

// Snapshot is the public view of the voting round.
// Results is nil while the round is hidden, which drops its fields from the JSON.
type Snapshot struct {
	Revealed           bool                `json:"revealed"`
	TotalParticipants  int                 `json:"totalParticipants"`
	VotesSubmitted     int                 `json:"votesSubmitted"`
	ParticipantsStatus []ParticipantStatus `json:"participantsStatus"`
	*Results
}

// Results holds the aggregates that are only visible once revealed.
// Average is nil when no numeric vote was cast.
type Results struct {
	Distribution Distribution `json:"distribution"`
	Average      *float64     `json:"average"`
}

type VoteCount struct {
	Value string
	Count int
}

// Distribution is an ordered vote tally. It encodes as a JSON object whose
// keys keep the slice order.
type Distribution []VoteCount

// Count returns the tally for value, 0 if absent
func (d Distribution) Count(value string) int {
	for _, vc := range d {
		if vc.Value == value {
			return vc.Count
		}
	}
	return 0
}

// Values returns the tallied vote values in order
func (d Distribution) Values() []string {
	values := make([]string, 0, len(d))
	for _, vc := range d {
		values = append(values, vc.Value)
	}
	return values
}

func (d Distribution) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, vc := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(vc.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(vc.Count))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (d *Distribution) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*d = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("distribution must be a JSON object")
	}

	out := Distribution{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		value, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected distribution key %v", tok)
		}
		var count int
		if err := dec.Decode(&count); err != nil {
			return fmt.Errorf("distribution count for %q: %w", value, err)
		}
		out = append(out, VoteCount{Value: value, Count: count})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*d = out
	return nil
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
