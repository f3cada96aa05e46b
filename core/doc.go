// Package core defines the central Sample, Section, Arbor, Soma and
// Morphology types, and provides validated primitives for building and
// mutating skeletal trees of point-radius samples.
//
// Layout model: each Arbor owns a flat arena of Sections. Parent/child
// links are arena indices (Section.Parent == NoParent for the root), never
// live pointers, so the object graph carries no reference cycles and
// in-place repair (insert/remove/reindex of samples) is plain slice
// surgery by index.
//
// Invariants maintained by the mutators:
//
//   - the root section has no parent and branching order 1;
//   - a child's branching order equals its parent's order plus one;
//   - a non-root section's first sample conceptually coincides with its
//     parent's last sample (topological continuity);
//   - every section belongs to exactly one arbor, and an arbor's type is
//     fixed across its whole subtree;
//   - MarkPrimaryChildren flags, per bifurcation, the child most colinear
//     with its parent's terminal direction.
//
// A Morphology aggregates a Soma with three arbor collections (axons,
// basal dendrites, apical dendrites), exposes an axis-aligned bounding
// box, a cached census (Stats), and the global morphology-index
// assignment pass that downstream exporters depend on.
//
// Errors:
//
//	ErrNilArbor        - arbor pointer is nil.
//	ErrNilMorphology   - morphology pointer is nil.
//	ErrNilSoma         - soma pointer is nil.
//	ErrSectionNotFound - section arena index out of range.
//	ErrSampleIndex     - sample index out of range.
//	ErrRootExists      - a second root section was added to an arbor.
//	ErrNegativeRadius  - sample radius below zero.
package core
