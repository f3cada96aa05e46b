// Package analysis: distribution kernels — per-section value sequences in
// pre-order traversal order.

package analysis

import (
	"github.com/neurokit/skeletal/core"
	"github.com/neurokit/skeletal/report"
)

// SectionLengths collects every section's path length.
func SectionLengths(a *core.Arbor, sink report.Sink) []float64 {
	var out []float64
	foldSections(a, func(s *core.Section) { out = append(out, SectionLength(s, sink)) })

	return out
}

// SectionSurfaceAreas collects every section's surface area.
func SectionSurfaceAreas(a *core.Arbor, sink report.Sink) []float64 {
	var out []float64
	foldSections(a, func(s *core.Section) { out = append(out, SectionSurfaceArea(s, sink)) })

	return out
}

// SectionVolumes collects every section's frustum volume.
func SectionVolumes(a *core.Arbor, sink report.Sink) []float64 {
	var out []float64
	foldSections(a, func(s *core.Section) { out = append(out, SectionVolume(s, sink)) })

	return out
}

// SectionContractions collects the contraction ratio of every section
// where it is defined (positive path length); undefined sections are
// skipped rather than reported as zero.
func SectionContractions(a *core.Arbor, sink report.Sink) []float64 {
	var out []float64
	foldSections(a, func(s *core.Section) {
		if c, ok := SectionContraction(s, sink); ok {
			out = append(out, c)
		}
	})

	return out
}

// SectionSampleCounts collects every section's sample count.
func SectionSampleCounts(a *core.Arbor, _ report.Sink) []float64 {
	var out []float64
	foldSections(a, func(s *core.Section) { out = append(out, float64(s.NumSamples())) })

	return out
}
