// Package metrics records Prometheus metrics for the resolution
// pipeline: resolution duration, roots resolved, and diagnostics
// emitted per kind.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/wiregraph/dilink/resolved"
)

// Metrics bundles every counter/histogram the resolver emits. The zero
// value is not usable; construct with New.
type Metrics struct {
	ResolveDuration   prometheus.Histogram
	RootsResolved     prometheus.Counter
	DiagnosticsByKind *prometheus.CounterVec
}

// New constructs a Metrics bundle and registers it against reg. reg may
// be a dedicated prometheus.Registry (as cmd/dilinkctl uses) rather than
// the global DefaultRegisterer, so tests and library embedders never
// collide with each other's metric names.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ResolveDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "dilink_resolve_duration_seconds",
			Help:    "Time taken to resolve every root component in a RawInterface.",
			Buckets: prometheus.DefBuckets,
		}),
		RootsResolved: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dilink_roots_resolved_total",
			Help: "Total number of root components resolved.",
		}),
		DiagnosticsByKind: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dilink_diagnostics_total",
			Help: "Number of diagnostics emitted by the resolver, by kind.",
		}, []string{"kind"}),
	}
	reg.MustRegister(m.ResolveDuration, m.RootsResolved, m.DiagnosticsByKind)
	// Touch every kind label up front so dilink_diagnostics_total is
	// exported (at zero) before the first diagnostic is observed.
	for k := resolved.MissingModule; k <= resolved.CyclicalDependency; k++ {
		m.DiagnosticsByKind.WithLabelValues(k.String())
	}
	return m
}

// ObserveRoot records the diagnostics attached to root and every
// descendant it owns.
func (m *Metrics) ObserveRoot(root *resolved.ResolvedComponent) {
	m.RootsResolved.Inc()
	m.observeTree(root)
}

func (m *Metrics) observeTree(c *resolved.ResolvedComponent) {
	if c == nil {
		return
	}
	for _, d := range c.Diagnostics {
		m.DiagnosticsByKind.WithLabelValues(d.Kind.String()).Inc()
	}
	for _, child := range c.Children {
		m.observeTree(child)
	}
}
