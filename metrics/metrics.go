// Package metrics exposes Prometheus collectors for the matching engine,
// grounded on the teacher's metrics.Metrics (a thin wrapper over an
// injected prometheus.Registerer, never a package-global registry).
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds every collector the engine and passes update during a
// run.
type Metrics struct {
	VotesCast        *prometheus.CounterVec // labeled by kind
	VotesRejected    *prometheus.CounterVec // labeled by kind, reason
	Confirmations    *prometheus.CounterVec // labeled by kind
	Iterations       prometheus.Gauge
	PassDuration     *prometheus.HistogramVec // labeled by pass name
}

// New registers and returns a Metrics bound to reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		VotesCast: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "symmap",
			Name:      "votes_cast_total",
			Help:      "Votes accepted by the match tables, by symbol kind.",
		}, []string{"kind"}),
		VotesRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "symmap",
			Name:      "votes_rejected_total",
			Help:      "Votes rejected by a compatibility filter or claimed target, by symbol kind and reason.",
		}, []string{"kind", "reason"}),
		Confirmations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "symmap",
			Name:      "confirmations_total",
			Help:      "Confirmed matches, by symbol kind.",
		}, []string{"kind"}),
		Iterations: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "symmap",
			Name:      "pipeline_iterations",
			Help:      "Iterations executed by the pipeline's conditional loop operator in the current run.",
		}),
		PassDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "symmap",
			Name:      "pass_duration_seconds",
			Help:      "Wall-clock duration of each heuristic pass invocation.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"pass"}),
	}
	reg.MustRegister(m.VotesCast, m.VotesRejected, m.Confirmations, m.Iterations, m.PassDuration)
	return m
}

// NoOp returns a Metrics backed by a fresh, unregistered registry — for
// callers (mainly tests) that don't want to wire a real registerer.
func NoOp() *Metrics {
	return New(prometheus.NewRegistry())
}
