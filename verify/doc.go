// Package verify provides read-only diagnostics over the skeleton tree:
// soma-projected branch intersection tests and structural anomaly checks.
// Nothing in this package mutates data; all findings flow through an
// injected report.Sink and processing always continues.
//
// Intersection model: each branch's initial direction (soma centroid to
// its root's first sample, normalized) is projected onto the sphere of a
// given soma radius; its sample radius is rescaled by the same projection
// ratio (tan(angle) = r/x similarity). Two branches intersect when the
// arc length between the projected points (angle × soma radius) is
// smaller than the sum of the two projected radii. BranchesIntersect is
// symmetric in its branch arguments; the basal/basal variant is
// deliberately asymmetric — it reports true only when the tested
// dendrite is the thinner of an intersecting pair.
//
// Structural checks, all non-fatal:
//
//   - sample counts: 0 → Error, 1 → Error, 2 → Warning;
//   - segments shorter than the radius at their start → Warning;
//   - "short" sections (length < 2·(rFirst+rLast)) → Warning;
//   - single-child sections and >2-children sections → Warning;
//   - a child whose first radius exceeds its parent's last → Warning;
//   - consecutive samples closer than the duplicate threshold
//     (default 1.0) → Warning.
//
// Morphology additionally runs the typed intersection variants against
// the soma's mean radius and the soma profile-point pair test (pairs
// deduplicated by index order). Arbors are independent read-only units;
// WithParallel fans the per-arbor checks out on an errgroup.
//
// Errors:
//
//	ErrNilArbor      - arbor is nil.
//	ErrNilMorphology - morphology is nil.
package verify
