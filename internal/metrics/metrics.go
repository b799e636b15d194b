// Package metrics exposes prometheus instrumentation for the engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Set holds the engine counters. A nil *Set disables instrumentation.
type Set struct {
	OpsExecuted       prometheus.Counter
	JumpsTaken        prometheus.Counter
	JumpsSuppressed   prometheus.Counter
	ForksStarted      prometheus.Counter
	TranchesProcessed prometheus.Counter
	RegistersCaptured prometheus.Counter
}

// New registers the engine counters with the given registerer.
func New(reg prometheus.Registerer) *Set {
	factory := promauto.With(reg)
	return &Set{
		OpsExecuted: factory.NewCounter(prometheus.CounterOpts{
			Name: "quern_ops_executed_total",
			Help: "Operations dispatched by the engine, including flow control.",
		}),
		JumpsTaken: factory.NewCounter(prometheus.CounterOpts{
			Name: "quern_jumps_taken_total",
			Help: "Jumps committed after budget and label checks.",
		}),
		JumpsSuppressed: factory.NewCounter(prometheus.CounterOpts{
			Name: "quern_jumps_suppressed_total",
			Help: "Jumps degraded to no-ops (budget exhausted or label missing).",
		}),
		ForksStarted: factory.NewCounter(prometheus.CounterOpts{
			Name: "quern_forks_started_total",
			Help: "Fork operations executed.",
		}),
		TranchesProcessed: factory.NewCounter(prometheus.CounterOpts{
			Name: "quern_fork_tranches_total",
			Help: "Fork tranches processed, including failed ones.",
		}),
		RegistersCaptured: factory.NewCounter(prometheus.CounterOpts{
			Name: "quern_registers_captured_total",
			Help: "Register values captured.",
		}),
	}
}
