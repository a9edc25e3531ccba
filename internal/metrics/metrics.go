// Package metrics defines the Prometheus metrics exposed on /metrics. It is
// the single source of truth for metric names and labels.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "election"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// VotesCastTotal counts vote submissions.
// Label:
//   - result: "success", "already_voted", "in_progress" or "error"
var VotesCastTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "votes_cast_total",
		Help:      "Total number of vote submissions, by result.",
	},
	[]string{"result"},
)

// CandidatesCreatedTotal counts candidates added through the admin API.
var CandidatesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "candidates_created_total",
		Help:      "Total number of candidates created.",
	},
)
