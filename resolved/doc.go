// Package resolved holds the output contract of the resolution pipeline:
// the canonical type-key space, canonicalized providers, the resolved
// per-component DAG, and the diagnostic sum type. A downstream code
// generator (out of scope for this module) consumes these types directly;
// nothing in this package performs resolution itself.
package resolved
