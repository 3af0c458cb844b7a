// Package dilink is the public facade of the dependency-injection
// graph resolver and validator: it links partial declarations across
// compilation units, flattens the transitive module/subcomponent
// closure per root component, canonicalizes and uniquifies providers,
// checks that every binding's dependencies are satisfied within the
// visible scope chain, and detects intra-component dependency cycles.
//
// The resolver is a pure function of its input: Resolve never mutates
// its argument, performs no I/O, and can be called concurrently across
// independent RawInterface values. A non-empty Diagnostics list on any
// resolved.ResolvedComponent means a downstream code generator (out of
// scope for this module) should not emit code for that root; enforcing
// that policy is the caller's responsibility.
package dilink

import (
	"context"
	"time"

	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/wiregraph/dilink/internal/builder"
	"github.com/wiregraph/dilink/internal/depcheck"
	"github.com/wiregraph/dilink/internal/linker"
	"github.com/wiregraph/dilink/internal/metrics"
	"github.com/wiregraph/dilink/model"
	"github.com/wiregraph/dilink/resolved"
)

// Resolver runs the link-and-resolve pipeline. The zero value is not
// usable; construct with New.
type Resolver struct {
	log     logr.Logger
	metrics *metrics.Metrics
}

// Option configures a Resolver at construction time.
type Option func(*Resolver)

// WithLogger attaches a structured logger. Every pipeline stage logs
// notable events (module merges, duplicate bindings, cycles) through it.
// The default is logr.Discard().
func WithLogger(log logr.Logger) Option {
	return func(r *Resolver) { r.log = log }
}

// WithMetrics registers Prometheus collectors against reg and enables
// per-resolve observations (resolve duration, roots resolved,
// diagnostics emitted by kind). Metrics are disabled by default.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(r *Resolver) { r.metrics = metrics.New(reg) }
}

// New constructs a Resolver.
func New(opts ...Option) *Resolver {
	r := &Resolver{log: logr.Discard()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve runs the full pipeline (Linker -> Canonicalizer -> Scope
// Resolver -> Dependency Checker -> Cycle Detector -> Resolved DAG
// Builder) over raw and returns one resolved.ResolvedComponent tree per
// root component, in input order after merge.
//
// ctx carries no cancellation semantics today -- the pipeline is
// CPU-bound and has no suspension points -- but is accepted so adding
// cancellation or tracing later does not change the call signature.
func (r *Resolver) Resolve(ctx context.Context, raw model.RawInterface) ([]*resolved.ResolvedComponent, error) {
	_ = ctx

	start := time.Now()

	li := linker.Link(r.log, raw)
	suggested := depcheck.BuildSuggestionIndex(li)
	roots := builder.BuildRoots(r.log, li, suggested)

	if r.metrics != nil {
		for _, root := range roots {
			r.metrics.ObserveRoot(root)
		}
		r.metrics.ResolveDuration.Observe(time.Since(start).Seconds())
	}

	return roots, nil
}
