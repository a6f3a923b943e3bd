// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/scrum-vote/metrics"
	"github.com/danielhkuo/scrum-vote/models"
	"github.com/danielhkuo/scrum-vote/session"
	"github.com/danielhkuo/scrum-vote/testutil"
)

func newTestHandler() (*SessionHandler, *session.Session) {
	sess := session.New()
	return NewSessionHandler(sess, nil), sess
}

func TestGetState_Empty(t *testing.T) {
	handler, _ := newTestHandler()

	w := httptest.NewRecorder()
	handler.GetState(w, testutil.MakeRequest("GET", "/api/state", nil, nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	assert.JSONEq(t, `{"revealed":false,"totalParticipants":0,"votesSubmitted":0,"participantsStatus":[]}`, w.Body.String())
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		checkResponse  func(t *testing.T, w *httptest.ResponseRecorder, sess *session.Session)
	}{
		{
			name:           "valid name",
			body:           `{"firstName":"  Alice  "}`,
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder, sess *session.Session) {
				var resp models.StateResponse
				testutil.AssertJSON(t, w, &resp)
				assert.True(t, resp.OK)
				assert.Equal(t, []models.ParticipantStatus{{DisplayName: "Alice"}}, resp.State.ParticipantsStatus)
				assert.Equal(t, 1, sess.Snapshot().TotalParticipants)
			},
		},
		{
			name:           "name too short",
			body:           `{"firstName":" A "}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing name",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "name not a string",
			body:           `{"firstName":12345}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed JSON",
			body:           `{"firstName":`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty body",
			body:           ``,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "JSON array",
			body:           `["Alice"]`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, sess := newTestHandler()

			w := httptest.NewRecorder()
			handler.Register(w, testutil.MakeRawRequest("POST", "/api/register", tt.body))

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedStatus == http.StatusBadRequest {
				var resp models.ErrorResponse
				testutil.AssertJSON(t, w, &resp)
				assert.Equal(t, msgInvalidName, resp.Error)
				assert.Zero(t, sess.Snapshot().TotalParticipants, "rejected request must not mutate state")
			}
			if tt.checkResponse != nil {
				tt.checkResponse(t, w, sess)
			}
		})
	}
}

func TestVote(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
		expectedError  string
	}{
		{"valid vote", models.VoteRequest{FirstName: "Alice", Vote: "8"}, http.StatusOK, ""},
		{"question mark", models.VoteRequest{FirstName: "Alice", Vote: "?"}, http.StatusOK, ""},
		{"empty name", models.VoteRequest{FirstName: "", Vote: "5"}, http.StatusBadRequest, msgInvalidName},
		{"vote not in deck", models.VoteRequest{FirstName: "Al", Vote: "99"}, http.StatusBadRequest, msgInvalidVote},
		{"missing vote", models.RegisterRequest{FirstName: "Alice"}, http.StatusBadRequest, msgInvalidVote},
		{"numeric vote", map[string]interface{}{"firstName": "Alice", "vote": 5}, http.StatusBadRequest, msgInvalidVote},
		{"numeric name", map[string]interface{}{"firstName": 7, "vote": "5"}, http.StatusBadRequest, msgInvalidName},
		{"numeric name and vote", map[string]interface{}{"firstName": 7, "vote": 5}, http.StatusBadRequest, msgInvalidName},
		{"vote in array", map[string]interface{}{"firstName": "Alice", "vote": []string{"5"}}, http.StatusBadRequest, msgInvalidVote},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, sess := newTestHandler()

			w := httptest.NewRecorder()
			handler.Vote(w, testutil.MakeRequest("POST", "/api/vote", tt.body, nil))

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedError != "" {
				var resp models.ErrorResponse
				testutil.AssertJSON(t, w, &resp)
				assert.Equal(t, tt.expectedError, resp.Error)

				snap := sess.Snapshot()
				assert.Zero(t, snap.TotalParticipants)
				assert.Zero(t, snap.VotesSubmitted)
				return
			}

			var resp models.StateResponse
			testutil.AssertJSON(t, w, &resp)
			assert.True(t, resp.OK)
			assert.Equal(t, 1, resp.State.VotesSubmitted)
			assert.True(t, resp.State.Revealed, "sole voter completes the round")
		})
	}
}

func TestVote_HiddenUntilEveryoneVoted(t *testing.T) {
	handler, _ := newTestHandler()

	for _, name := range []string{"Alice", "Bob"} {
		w := httptest.NewRecorder()
		handler.Register(w, testutil.MakeRequest("POST", "/api/register", models.RegisterRequest{FirstName: name}, nil))
		testutil.AssertStatus(t, w, http.StatusOK)
	}

	w := httptest.NewRecorder()
	handler.Vote(w, testutil.MakeRequest("POST", "/api/vote", models.VoteRequest{FirstName: "Alice", Vote: "5"}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	body := w.Body.String()
	assert.Contains(t, body, `"revealed":false`)
	assert.Contains(t, body, `"votesSubmitted":1`)
	assert.NotContains(t, body, "distribution")
	assert.NotContains(t, body, "average")

	w = httptest.NewRecorder()
	handler.Vote(w, testutil.MakeRequest("POST", "/api/vote", models.VoteRequest{FirstName: "Bob", Vote: "8"}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	assert.JSONEq(t, `{
		"ok": true,
		"state": {
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
	}`, w.Body.String())
}

func TestVote_DistributionKeyOrder(t *testing.T) {
	handler, _ := newTestHandler()

	handler.Vote(httptest.NewRecorder(), testutil.MakeRequest("POST", "/api/vote", models.VoteRequest{FirstName: "Alice", Vote: "13"}, nil))
	w := httptest.NewRecorder()
	handler.Vote(w, testutil.MakeRequest("POST", "/api/vote", models.VoteRequest{FirstName: "Bob", Vote: "1"}, nil))

	body := w.Body.String()
	assert.Contains(t, body, `"distribution":{"1":1,"13":1}`)

	var resp models.StateResponse
	testutil.AssertJSON(t, w, &resp)
	assert.Equal(t, []string{"1", "13"}, resp.State.Distribution.Values())
}

func TestReveal(t *testing.T) {
	handler, sess := newTestHandler()
	_, err := sess.Register("Alice")
	require.NoError(t, err)
	_, err = sess.Register("Bob")
	require.NoError(t, err)
	_, err = sess.CastVote("Bob", "?")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	handler.Reveal(w, testutil.MakeRequest("POST", "/api/reveal", nil, nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.StateResponse
	testutil.AssertJSON(t, w, &resp)
	assert.True(t, resp.OK)
	assert.True(t, resp.State.Revealed)
	assert.Equal(t, models.Distribution{{Value: "?", Count: 1}}, resp.State.Distribution)
	assert.Nil(t, resp.State.Average)
	assert.Contains(t, w.Body.String(), `"average":null`)
}

func TestReset(t *testing.T) {
	handler, sess := newTestHandler()
	_, _ = sess.CastVote("Alice", "3")

	// Reset ignores whatever body it is sent
	w := httptest.NewRecorder()
	handler.Reset(w, testutil.MakeRawRequest("POST", "/api/reset", "garbage"))

	testutil.AssertStatus(t, w, http.StatusOK)
	assert.JSONEq(t, `{"ok":true,"state":{"revealed":false,"totalParticipants":0,"votesSubmitted":0,"participantsStatus":[]}}`, w.Body.String())
	assert.Zero(t, sess.Snapshot().TotalParticipants)
}

func TestNotFound(t *testing.T) {
	w := httptest.NewRecorder()
	NotFound(w, testutil.MakeRequest("POST", "/api/unknown", nil, nil))

	testutil.AssertStatus(t, w, http.StatusNotFound)
	assert.JSONEq(t, `{"error":"Not found"}`, w.Body.String())
}

func TestHandlers_RecordMetrics(t *testing.T) {
	m := metrics.New()
	handler := NewSessionHandler(session.New(), m)

	handler.Register(httptest.NewRecorder(), testutil.MakeRequest("POST", "/api/register", models.RegisterRequest{FirstName: "Alice"}, nil))
	handler.Vote(httptest.NewRecorder(), testutil.MakeRequest("POST", "/api/vote", models.VoteRequest{FirstName: "Bob", Vote: "21"}, nil))
	handler.Vote(httptest.NewRecorder(), testutil.MakeRequest("POST", "/api/vote", models.VoteRequest{FirstName: "Bob", Vote: "4"}, nil))
	handler.Reveal(httptest.NewRecorder(), testutil.MakeRequest("POST", "/api/reveal", nil, nil))

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
	body := w.Body.String()

	for _, want := range []string{
		"scrumvote_registrations_total 1",
		`scrumvote_votes_total{value="21"} 1`,
		`scrumvote_rejected_requests_total{reason="invalid_vote"} 1`,
		"scrumvote_forced_reveals_total 1",
		"scrumvote_participants 2",
		"scrumvote_round_revealed 1",
	} {
		assert.True(t, strings.Contains(body, want), "missing %q", want)
	}
}
