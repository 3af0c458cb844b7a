// Package model is the raw, unlinked interface produced by the front-end
// that extracts dependency-injection declarations from source.
//
// Everything here is passive data: no method does resolution, merging, or
// validation. That work belongs to the linker and resolver packages one
// layer up. The front-end that populates these types, and the code
// generator that eventually consumes a resolved graph, are both external
// collaborators out of scope for this module.
package model
