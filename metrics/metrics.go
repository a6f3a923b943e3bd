// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danielhkuo/scrum-vote/models"
)

const namespace = "scrumvote"

// Rejection reasons
const (
	ReasonInvalidName = "invalid_name"
	ReasonInvalidVote = "invalid_vote"
	ReasonRateLimited = "rate_limited"
)

// Metrics owns a private registry so tests can create as many as they like.
// All methods are safe on a nil *Metrics.
type Metrics struct {
	registry *prometheus.Registry

	requests      *prometheus.CounterVec
	registrations prometheus.Counter
	votes         *prometheus.CounterVec
	forcedReveals prometheus.Counter
	resets        prometheus.Counter
	rejected      *prometheus.CounterVec

	participants   prometheus.Gauge
	votesSubmitted prometheus.Gauge
	revealed       prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status code.",
		}, []string{"route", "method", "code"}),
		registrations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registrations_total",
			Help:      "Successful participant registrations.",
		}),
		votes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "votes_total",
			Help:      "Votes cast, by card value.",
		}, []string{"value"}),
		forcedReveals: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "forced_reveals_total",
			Help:      "Explicit reveal requests.",
		}),
		resets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resets_total",
			Help:      "Round resets.",
		}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejected_requests_total",
			Help:      "Requests rejected before touching the session, by reason.",
		}, []string{"reason"}),
		participants: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "participants",
			Help:      "Registered participants in the current round.",
		}),
		votesSubmitted: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "votes_submitted",
			Help:      "Votes submitted in the current round.",
		}),
		revealed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "round_revealed",
			Help:      "1 if the current round's results are visible.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests,
		m.registrations,
		m.votes,
		m.forcedReveals,
		m.resets,
		m.rejected,
		m.participants,
		m.votesSubmitted,
		m.revealed,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Instrument counts requests to route by method and status code
func (m *Metrics) Instrument(route string, next http.HandlerFunc) http.HandlerFunc {
	if m == nil {
		return next
	}
	counter := m.requests.MustCurryWith(prometheus.Labels{"route": route})
	return promhttp.InstrumentHandlerCounter(counter, next)
}

func (m *Metrics) Registered() {
	if m == nil {
		return
	}
	m.registrations.Inc()
}

func (m *Metrics) VoteCast(value string) {
	if m == nil {
		return
	}
	m.votes.WithLabelValues(value).Inc()
}

func (m *Metrics) ForcedReveal() {
	if m == nil {
		return
	}
	m.forcedReveals.Inc()
}

func (m *Metrics) Reset() {
	if m == nil {
		return
	}
	m.resets.Inc()
}

func (m *Metrics) Rejected(reason string) {
	if m == nil {
		return
	}
	m.rejected.WithLabelValues(reason).Inc()
}

// ObserveSnapshot updates the round gauges
func (m *Metrics) ObserveSnapshot(snap models.Snapshot) {
	if m == nil {
		return
	}
	m.participants.Set(float64(snap.TotalParticipants))
	m.votesSubmitted.Set(float64(snap.VotesSubmitted))
	if snap.Revealed {
		m.revealed.Set(1)
	} else {
		m.revealed.Set(0)
	}
}
