// Package analysis computes scalar geometric quantities over segments
// (pairs of consecutive samples), sections, arbors, and whole
// morphologies, with consistent aggregation semantics.
//
// Per-segment formulas (endpoints p0, p1 with radii r0, r1, L = |p1−p0|):
//
//	length        = L
//	lateral area  = π·(r0+r1)·√((r0−r1)² + L²)
//	surface area  = lateral area + π·(r0² + r1²)
//	volume        = (π/3)·L·(r0² + r0·r1 + r1²)   (frustum)
//
// The surface-area formula adds both end-cap discs on every segment, which
// double-counts interior joint caps when summed across a multi-segment
// section. That is the documented contract of this module and is preserved
// exactly; no joint-cap-free variant is offered.
//
// Aggregation semantics:
//
//   - per section: sum over consecutive sample pairs; a section with fewer
//     than two samples yields 0.0 and an Error diagnostic (never a panic);
//   - per arbor: "total" kernels sum section values via the pre-order
//     traversal; "distribution" kernels collect them in traversal order;
//   - per morphology: Invoke applies one kernel per arbor, then one of the
//     aggregators (Total, Minimum, Maximum, Average and the IgnoreZero
//     variants, where exact zero denotes "arbor absent") across all
//     per-arbor values.
//
// Every kernel is a total function: malformed input produces 0 or an empty
// slice plus a diagnostic through the injected report.Sink. Arbors are
// read-only, independent units, so Invoke optionally fans out per arbor on
// an errgroup (WithParallel); parallel and sequential runs produce
// identical Results.
//
// Path and Euclidean tip distances are measured from the arbor origin (the
// root section's first sample, where the arbor meets the soma).
//
// Errors:
//
//	ErrNilMorphology - morphology is nil.
//	ErrNilKernel     - kernel function is nil.
//	ErrNilAggregator - aggregator function is nil.
package analysis
