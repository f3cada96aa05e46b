// Package analysis: per-section kernels.
//
// Every function here follows the degenerate-section policy: fewer than
// two samples yields 0.0 plus an Error diagnostic on the sink, never a
// panic or an error return.

package analysis

import (
	"fmt"

	"github.com/neurokit/skeletal/core"
	"github.com/neurokit/skeletal/report"
)

// sumSegments folds f over all consecutive sample pairs of s, reporting
// the degenerate case through sink.
func sumSegments(s *core.Section, sink report.Sink, f func(s0, s1 core.Sample) float64) float64 {
	if degenerate(s, sink) {
		return 0
	}

	total := 0.0
	for i := 0; i+1 < len(s.Samples); i++ {
		total += f(s.Samples[i], s.Samples[i+1])
	}

	return total
}

// degenerate reports (and flags through sink) sections that cannot form a
// single segment.
func degenerate(s *core.Section, sink report.Sink) bool {
	if s == nil {
		return true
	}
	if len(s.Samples) >= 2 {
		return false
	}
	report.Emit(sink, report.Diagnostic{
		Severity: report.Error,
		Code:     report.CodeSingleSample,
		Arbor:    s.Type.String(),
		Section:  s.ID,
		Sample:   -1,
		Message:  fmt.Sprintf("section %d has %d sample(s); geometric kernels return 0", s.ID, len(s.Samples)),
	})

	return true
}

// SectionLength returns the polyline length of s: Σ |p[i+1] − p[i]|.
// Complexity: O(n) samples.
func SectionLength(s *core.Section, sink report.Sink) float64 {
	return sumSegments(s, sink, SegmentLength)
}

// SectionSurfaceArea returns the summed per-segment surface area of s
// (end caps included per segment; see SegmentSurfaceArea).
// Complexity: O(n) samples.
func SectionSurfaceArea(s *core.Section, sink report.Sink) float64 {
	return sumSegments(s, sink, SegmentSurfaceArea)
}

// SectionVolume returns the summed frustum volume of s.
// Complexity: O(n) samples.
func SectionVolume(s *core.Section, sink report.Sink) float64 {
	return sumSegments(s, sink, SegmentVolume)
}

// SectionEuclideanDistance returns the straight-line distance between the
// first and last samples of s, or 0 for a degenerate section.
// Complexity: O(1).
func SectionEuclideanDistance(s *core.Section, sink report.Sink) float64 {
	if degenerate(s, sink) {
		return 0
	}

	return core.Distance(s.Samples[0].Point, s.Samples[len(s.Samples)-1].Point)
}

// SectionContraction returns the contraction ratio of s — Euclidean
// distance over path length — which is defined only for sections with
// positive path length; ok is false otherwise.
// Complexity: O(n) samples.
func SectionContraction(s *core.Section, sink report.Sink) (float64, bool) {
	length := SectionLength(s, sink)
	if length <= 0 {
		return 0, false
	}

	return SectionEuclideanDistance(s, sink) / length, true
}

// SectionIsShort reports whether s is "short": its path length is below
// twice the sum of its first and last sample radii. Degenerate sections
// are not short.
// Complexity: O(n) samples.
func SectionIsShort(s *core.Section, sink report.Sink) bool {
	if degenerate(s, sink) {
		return false
	}
	rFirst := s.Samples[0].Radius
	rLast := s.Samples[len(s.Samples)-1].Radius

	return SectionLength(s, nil) < 2*(rFirst+rLast)
}

// SectionZeroLengthSegments counts segments of s shorter than
// ZeroLengthTolerance.
// Complexity: O(n) samples.
func SectionZeroLengthSegments(s *core.Section) int {
	if s == nil {
		return 0
	}

	n := 0
	for i := 0; i+1 < len(s.Samples); i++ {
		if SegmentLength(s.Samples[i], s.Samples[i+1]) < ZeroLengthTolerance {
			n++
		}
	}

	return n
}
