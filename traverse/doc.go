// Package traverse implements pre-order traversal combinators over arbors
// and whole morphologies. Nearly every kernel, repair routine and
// verification check in this module is built on these walks.
//
// Key guarantees:
//   - every section of the (sub)tree is visited exactly once;
//   - a parent is always visited strictly before its children;
//   - children are visited in insertion order, so traversal is fully
//     deterministic for a given tree;
//   - a whole-morphology walk covers apical dendrites, then basal
//     dendrites, then axons (the fixed core.Morphology.Arbors order).
//
// Visit hooks return errors to abort a walk early; the error is wrapped
// with the offending section's id and propagated to the caller.
//
// ApplyConditional trims the walk to a maximum branching order — sections
// beyond the limit are skipped together with their subtrees — and
// ApplyMorphologyConditional accepts distinct limits per arbor type for
// "trimmed morphology" analysis.
//
// Complexity: all walks are O(n) in the number of sections visited, with
// O(depth) recursion stack.
//
// Errors:
//
//	ErrNilArbor      - arbor is nil.
//	ErrNilMorphology - morphology is nil.
//	ErrNilVisit      - visit function is nil.
package traverse
