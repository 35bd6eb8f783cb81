package session

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeSuccess         = "success"
	outcomeUnknownUser     = "unknown_user"
	outcomeInvalidPassword = "invalid_password"
	outcomeError           = "error"

	outcomeAlreadyAuthenticated = "already_authenticated"
)

var (
	loginAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "healthguard",
			Subsystem: "session",
			Name:      "login_attempts_total",
			Help:      "Login attempts by outcome.",
		},
		[]string{"outcome"},
	)

	corruptSnapshotsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "healthguard",
			Subsystem: "session",
			Name:      "corrupt_snapshots_total",
			Help:      "Persisted session snapshots discarded because they could not be decoded.",
		},
	)

	persistFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "healthguard",
			Subsystem: "session",
			Name:      "persist_failures_total",
			Help:      "Session snapshot writes or deletes that failed.",
		},
	)
)
