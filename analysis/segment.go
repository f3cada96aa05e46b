// Package analysis: per-segment geometric formulas.
//
// A segment is the frustum (tapered cylinder) between two consecutive
// samples. All formulas are pure and total; a zero-length segment simply
// yields zero length/volume and cap-only surface area.

package analysis

import (
	"math"

	"github.com/neurokit/skeletal/core"
)

// SegmentLength returns the Euclidean length |p1−p0| of the segment
// between s0 and s1.
// Complexity: O(1).
func SegmentLength(s0, s1 core.Sample) float64 {
	return core.Distance(s0.Point, s1.Point)
}

// SegmentLateralArea returns the lateral (side) surface area of the
// frustum between s0 and s1: π·(r0+r1)·√((r0−r1)² + L²).
// Complexity: O(1).
func SegmentLateralArea(s0, s1 core.Sample) float64 {
	l := SegmentLength(s0, s1)
	dr := s0.Radius - s1.Radius

	return math.Pi * (s0.Radius + s1.Radius) * math.Sqrt(dr*dr+l*l)
}

// SegmentSurfaceArea returns the lateral area plus both end-cap discs,
// π·(r0² + r1²). Interior joint caps are therefore counted on both
// adjacent segments when summed over a section; that overestimate is the
// documented contract of this module.
// Complexity: O(1).
func SegmentSurfaceArea(s0, s1 core.Sample) float64 {
	return SegmentLateralArea(s0, s1) + math.Pi*(s0.Radius*s0.Radius+s1.Radius*s1.Radius)
}

// SegmentVolume returns the frustum volume (π/3)·L·(r0² + r0·r1 + r1²).
// Complexity: O(1).
func SegmentVolume(s0, s1 core.Sample) float64 {
	l := SegmentLength(s0, s1)
	r0, r1 := s0.Radius, s1.Radius

	return math.Pi / 3 * l * (r0*r0 + r0*r1 + r1*r1)
}
