// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/scrum-vote/auth"
	"github.com/danielhkuo/scrum-vote/metrics"
	"github.com/danielhkuo/scrum-vote/middleware"
	"github.com/danielhkuo/scrum-vote/models"
	"github.com/danielhkuo/scrum-vote/session"
)

// User-facing validation messages
const (
	msgInvalidName = "First name is required (2 characters min)."
	msgInvalidVote = "Invalid vote."
)

type SessionHandler struct {
	sess    *session.Session
	metrics *metrics.Metrics
}

func NewSessionHandler(sess *session.Session, m *metrics.Metrics) *SessionHandler {
	return &SessionHandler{sess: sess, metrics: m}
}

// GetState handles GET /api/state
func (h *SessionHandler) GetState(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.sess.Snapshot())
}

// Register handles POST /api/register
func (h *SessionHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		// Unparsable or non-object bodies count as empty and fail validation below
		slog.Debug("ignoring unparsable register body", "error", err, "request_id", middleware.RequestID(r.Context()))
		req = models.RegisterRequest{}
	}

	snap, err := h.sess.Register(req.FirstName)
	if err != nil {
		h.rejectValidation(w, r, err)
		return
	}

	slog.Info("participant registered",
		"name", auth.SanitizeName(req.FirstName),
		"total", snap.TotalParticipants,
		"request_id", middleware.RequestID(r.Context()),
	)
	h.metrics.Registered()
	h.respond(w, snap)
}

// Vote handles POST /api/vote
func (h *SessionHandler) Vote(w http.ResponseWriter, r *http.Request) {
	var req models.VoteRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		slog.Debug("ignoring unparsable vote body", "error", err, "request_id", middleware.RequestID(r.Context()))
		req = models.VoteRequest{}
	}

	snap, err := h.sess.CastVote(req.FirstName, req.Vote)
	if err != nil {
		h.rejectValidation(w, r, err)
		return
	}

	// The card itself is not logged; it stays secret until reveal
	slog.Info("vote cast",
		"votes", snap.VotesSubmitted,
		"total", snap.TotalParticipants,
		"revealed", snap.Revealed,
		"request_id", middleware.RequestID(r.Context()),
	)
	h.metrics.VoteCast(req.Vote)
	h.respond(w, snap)
}

// Reveal handles POST /api/reveal
func (h *SessionHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	snap := h.sess.Reveal()

	slog.Info("round revealed",
		"votes", snap.VotesSubmitted,
		"total", snap.TotalParticipants,
		"request_id", middleware.RequestID(r.Context()),
	)
	h.metrics.ForcedReveal()
	h.respond(w, snap)
}

// Reset handles POST /api/reset
func (h *SessionHandler) Reset(w http.ResponseWriter, r *http.Request) {
	snap := h.sess.Reset()

	slog.Info("round reset", "request_id", middleware.RequestID(r.Context()))
	h.metrics.Reset()
	h.respond(w, snap)
}

// NotFound handles unknown /api/ routes
func NotFound(w http.ResponseWriter, r *http.Request) {
	middleware.ErrorResponse(w, http.StatusNotFound, "Not found")
}

func (h *SessionHandler) respond(w http.ResponseWriter, snap models.Snapshot) {
	h.metrics.ObserveSnapshot(snap)
	middleware.JSONResponse(w, http.StatusOK, models.StateResponse{
		OK:    true,
		State: snap,
	})
}

func (h *SessionHandler) rejectValidation(w http.ResponseWriter, r *http.Request, err error) {
	var message, reason string
	switch {
	case errors.Is(err, session.ErrInvalidName):
		message, reason = msgInvalidName, metrics.ReasonInvalidName
	case errors.Is(err, session.ErrInvalidVote):
		message, reason = msgInvalidVote, metrics.ReasonInvalidVote
	default:
		slog.Error("unexpected session error", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal error")
		return
	}

	slog.Warn("request rejected",
		"path", r.URL.Path,
		"reason", reason,
		"request_id", middleware.RequestID(r.Context()),
	)
	h.metrics.Rejected(reason)
	middleware.ErrorResponse(w, http.StatusBadRequest, message)
}
