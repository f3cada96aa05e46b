// Package analysis: per-arbor scalar kernels.
//
// Every function here satisfies the Kernel contract and folds section
// values via the pre-order traversal, so results are deterministic for a
// given tree. A nil or empty arbor yields 0.

package analysis

import (
	"github.com/neurokit/skeletal/core"
	"github.com/neurokit/skeletal/report"
	"github.com/neurokit/skeletal/traverse"
)

// foldSections accumulates f over every section of a in pre-order.
func foldSections(a *core.Arbor, f func(s *core.Section)) {
	if a == nil {
		return
	}
	_ = traverse.Apply(a, func(_ *core.Arbor, s *core.Section) error {
		f(s)

		return nil
	})
}

// ArborLength returns the total path length of a.
func ArborLength(a *core.Arbor, sink report.Sink) float64 {
	total := 0.0
	foldSections(a, func(s *core.Section) { total += SectionLength(s, sink) })

	return total
}

// ArborSurfaceArea returns the total surface area of a (per-segment end
// caps included; see SegmentSurfaceArea).
func ArborSurfaceArea(a *core.Arbor, sink report.Sink) float64 {
	total := 0.0
	foldSections(a, func(s *core.Section) { total += SectionSurfaceArea(s, sink) })

	return total
}

// ArborVolume returns the total frustum volume of a.
func ArborVolume(a *core.Arbor, sink report.Sink) float64 {
	total := 0.0
	foldSections(a, func(s *core.Section) { total += SectionVolume(s, sink) })

	return total
}

// ArborNumberOfSamples counts all samples of a.
func ArborNumberOfSamples(a *core.Arbor, _ report.Sink) float64 {
	n := 0
	foldSections(a, func(s *core.Section) { n += s.NumSamples() })

	return float64(n)
}

// ArborNumberOfSegments counts all consecutive sample pairs of a.
func ArborNumberOfSegments(a *core.Arbor, _ report.Sink) float64 {
	n := 0
	foldSections(a, func(s *core.Section) { n += s.NumSegments() })

	return float64(n)
}

// ArborNumberOfSections counts the sections of a.
func ArborNumberOfSections(a *core.Arbor, _ report.Sink) float64 {
	n := 0
	foldSections(a, func(*core.Section) { n++ })

	return float64(n)
}

// ArborNumberOfBifurcations counts sections with exactly two children.
func ArborNumberOfBifurcations(a *core.Arbor, _ report.Sink) float64 {
	n := 0
	foldSections(a, func(s *core.Section) {
		if len(s.Children) == 2 {
			n++
		}
	})

	return float64(n)
}

// ArborNumberOfTrifurcations counts sections with exactly three children.
func ArborNumberOfTrifurcations(a *core.Arbor, _ report.Sink) float64 {
	n := 0
	foldSections(a, func(s *core.Section) {
		if len(s.Children) == 3 {
			n++
		}
	})

	return float64(n)
}

// ArborNumberOfTips counts terminal (leaf) sections.
func ArborNumberOfTips(a *core.Arbor, _ report.Sink) float64 {
	n := 0
	foldSections(a, func(s *core.Section) {
		if s.IsLeaf() {
			n++
		}
	})

	return float64(n)
}

// ArborNumberOfTerminalSegments counts segments that end at a terminal
// tip, i.e. the last segment of every leaf section with at least one
// segment.
func ArborNumberOfTerminalSegments(a *core.Arbor, _ report.Sink) float64 {
	n := 0
	foldSections(a, func(s *core.Section) {
		if s.IsLeaf() && s.NumSegments() > 0 {
			n++
		}
	})

	return float64(n)
}

// ArborMaxBranchingOrder returns the deepest branching order of a.
func ArborMaxBranchingOrder(a *core.Arbor, _ report.Sink) float64 {
	max := 0
	foldSections(a, func(s *core.Section) {
		if s.Order > max {
			max = s.Order
		}
	})

	return float64(max)
}

// ArborNumberOfShortSections counts sections whose length is below twice
// the sum of their first and last sample radii.
func ArborNumberOfShortSections(a *core.Arbor, sink report.Sink) float64 {
	n := 0
	foldSections(a, func(s *core.Section) {
		if SectionIsShort(s, sink) {
			n++
		}
	})

	return float64(n)
}

// ArborNumberOfZeroLengthSegments counts segments shorter than
// ZeroLengthTolerance.
func ArborNumberOfZeroLengthSegments(a *core.Arbor, _ report.Sink) float64 {
	n := 0
	foldSections(a, func(s *core.Section) { n += SectionZeroLengthSegments(s) })

	return float64(n)
}

// ArborAverageContraction returns the mean contraction ratio over all
// sections of a with positive length, or 0 when none qualifies.
func ArborAverageContraction(a *core.Arbor, sink report.Sink) float64 {
	var (
		sum float64
		n   int
	)
	foldSections(a, func(s *core.Section) {
		if c, ok := SectionContraction(s, sink); ok {
			sum += c
			n++
		}
	})
	if n == 0 {
		return 0
	}

	return sum / float64(n)
}

// tipDistances collects, per terminal tip of a, the path distance from
// the arbor origin (root's first sample) along the tree, and the
// straight-line Euclidean distance from the origin to the tip.
func tipDistances(a *core.Arbor, sink report.Sink) (paths, euclids []float64) {
	if a == nil {
		return nil, nil
	}
	root := a.Root()
	if root == nil {
		return nil, nil
	}
	origin, ok := root.FirstSample()
	if !ok {
		return nil, nil
	}

	var rec func(s *core.Section, acc float64)
	rec = func(s *core.Section, acc float64) {
		acc += SectionLength(s, sink)
		if s.IsLeaf() {
			paths = append(paths, acc)
			if last, lok := s.LastSample(); lok {
				euclids = append(euclids, core.Distance(origin.Point, last.Point))
			}

			return
		}
		for _, child := range a.ChildrenOf(s) {
			rec(child, acc)
		}
	}
	rec(root, 0)

	return paths, euclids
}

// ArborMaxPathDistance returns the longest along-tree distance from the
// arbor origin to any terminal tip.
func ArborMaxPathDistance(a *core.Arbor, sink report.Sink) float64 {
	paths, _ := tipDistances(a, sink)

	return Maximum(paths)
}

// ArborMinPathDistance returns the shortest along-tree distance from the
// arbor origin to any terminal tip.
func ArborMinPathDistance(a *core.Arbor, sink report.Sink) float64 {
	paths, _ := tipDistances(a, sink)

	return Minimum(paths)
}

// ArborMaxEuclideanDistance returns the largest straight-line distance
// from the arbor origin to any terminal tip.
func ArborMaxEuclideanDistance(a *core.Arbor, sink report.Sink) float64 {
	_, euclids := tipDistances(a, sink)

	return Maximum(euclids)
}

// ArborMinEuclideanDistance returns the smallest straight-line distance
// from the arbor origin to any terminal tip.
func ArborMinEuclideanDistance(a *core.Arbor, sink report.Sink) float64 {
	_, euclids := tipDistances(a, sink)

	return Minimum(euclids)
}
