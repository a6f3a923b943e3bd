package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoteRequest_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantName  string
		wantVote  string
		wantError bool
	}{
		{"strings", `{"firstName":"Alice","vote":"8"}`, "Alice", "8", false},
		{"numeric vote", `{"firstName":"Alice","vote":5}`, "Alice", "", false},
		{"numeric name", `{"firstName":7,"vote":"5"}`, "", "5", false},
		{"null fields", `{"firstName":null,"vote":null}`, "", "", false},
		{"missing fields", `{}`, "", "", false},
		{"nested object vote", `{"firstName":"Bob","vote":{"v":"3"}}`, "Bob", "", false},
		{"array body", `["Alice","5"]`, "", "", true},
		{"syntax error", `{"firstName":`, "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req VoteRequest
			err := json.Unmarshal([]byte(tt.body), &req)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, req.FirstName)
			assert.Equal(t, tt.wantVote, req.Vote)
		})
	}
}

func TestRegisterRequest_UnmarshalJSON(t *testing.T) {
	var req RegisterRequest
	require.NoError(t, json.Unmarshal([]byte(`{"firstName":12345}`), &req))
	assert.Empty(t, req.FirstName)

	require.NoError(t, json.Unmarshal([]byte(`{"firstName":"  Zoé "}`), &req))
	assert.Equal(t, "  Zoé ", req.FirstName)
}
