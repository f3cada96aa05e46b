// Package repair implements the resampling/repair engine: it mutates a
// morphology's arbors so that adjacent branches near a branch point do
// not geometrically overlap, and removes samples that violate monotonic
// distance-from-origin along a section.
//
// Per section, root → children:
//
//  1. Primary front repair — skipped for roots (no parent to separate
//     from). The resampling distance is firstRadius·√2; every sample but
//     the first inside that extent is removed, one corrective sample is
//     inserted at firstPoint + direction·distance with the first sample's
//     radius and provisional id core.AuxiliarySampleID, and the section
//     is reindexed.
//  2. Secondary front repair — for non-primary children: when the angle
//     to the primary sibling's initial direction falls outside
//     [MinSecondaryAngle, MaxSecondaryAngle] (near-parallel or
//     near-antiparallel, a collision risk), the secondary's first two
//     points are pushed outward by twice the primary's first radius, then
//     extent removal and corrective insertion run with the distance
//     radius·√2/tan(angle/2) + SecondaryDeltaMargin. Present but disabled
//     by default (WithSecondaryRepair enables it), matching the reference
//     behavior of shipping the code path dark.
//  3. Ending repair — reverse the sample order, apply the front logic
//     (which is direction-symmetric), reverse back.
//
// Dispatch: roots and primary sections receive front and ending repair;
// secondary sections receive secondary repair only when enabled.
//
// Failure policy: a front repair that would have to remove the only
// sample of a section fails that arbor with ErrUnrepairableSection; the
// whole-morphology pass records the failure and continues with sibling
// arbors (errors joined). A section that is already empty is reported as
// an Error diagnostic and left alone — never auto-corrected. Zero-length
// direction vectors (coincident samples) are guarded and reported rather
// than propagating NaN.
//
// Errors:
//
//	ErrNilArbor             - arbor is nil.
//	ErrNilMorphology        - morphology is nil.
//	ErrUnrepairableSection  - repair would destroy a one-sample section.
//	ErrZeroDirection        - coincident samples left no usable direction.
package repair
