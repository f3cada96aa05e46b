// Package verify: structural verification checks.

package verify

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/neurokit/skeletal/analysis"
	"github.com/neurokit/skeletal/core"
	"github.com/neurokit/skeletal/report"
	"github.com/neurokit/skeletal/traverse"
)

// Arbor runs every structural check over each section of a, emitting
// findings through the configured sink. The tree is never mutated.
func Arbor(a *core.Arbor, opts ...Option) error {
	if a == nil {
		return ErrNilArbor
	}
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return checkArbor(a, o)
}

// Morphology runs the per-arbor structural checks over every arbor of m
// (optionally in parallel), then the soma-anchored intersection checks.
func Morphology(m *core.Morphology, opts ...Option) error {
	if m == nil {
		return ErrNilMorphology
	}
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 1. Structural checks, arbor by arbor.
	arbors := m.Arbors()
	if o.parallel {
		var g errgroup.Group
		for _, a := range arbors {
			a := a
			g.Go(func() error {
				return checkArbor(a, o)
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
	} else {
		for _, a := range arbors {
			if err := checkArbor(a, o); err != nil {
				return err
			}
		}
	}

	// 2. Soma-anchored collision checks.
	checkIntersections(m, o)

	return nil
}

func checkArbor(a *core.Arbor, o options) error {
	return traverse.Apply(a, func(arb *core.Arbor, s *core.Section) error {
		checkSection(arb, s, o)

		return nil
	})
}

// checkSection emits every applicable finding for one section.
func checkSection(a *core.Arbor, s *core.Section, o options) {
	n := len(s.Samples)

	// 1. Sample-count anomalies.
	switch n {
	case 0:
		emit(o, report.Error, report.CodeNoSamples, s, -1,
			fmt.Sprintf("section %d has no samples", s.ID))

		return
	case 1:
		emit(o, report.Error, report.CodeSingleSample, s, s.Samples[0].ID,
			fmt.Sprintf("section %d has a single sample", s.ID))

		return
	case 2:
		emit(o, report.Warning, report.CodeTwoSamples, s, -1,
			fmt.Sprintf("section %d has only two samples", s.ID))
	}

	// 2. Per-segment and per-pair checks.
	for i := 0; i+1 < n; i++ {
		s0, s1 := s.Samples[i], s.Samples[i+1]
		length := analysis.SegmentLength(s0, s1)
		if length < s0.Radius {
			emit(o, report.Warning, report.CodeShortSegment, s, s0.ID,
				fmt.Sprintf("section %d: segment %d is shorter (%.4g) than its start radius (%.4g)", s.ID, i, length, s0.Radius))
		}
		if length < o.duplicateThreshold {
			emit(o, report.Warning, report.CodeDuplicateSamples, s, s1.ID,
				fmt.Sprintf("section %d: samples %d and %d are %.4g apart (threshold %.4g)", s.ID, s0.ID, s1.ID, length, o.duplicateThreshold))
		}
	}

	// 3. Short section relative to its terminal radii.
	if analysis.SectionIsShort(s, nil) {
		emit(o, report.Warning, report.CodeShortSection, s, -1,
			fmt.Sprintf("section %d is shorter than twice its terminal radii sum", s.ID))
	}

	// 4. Children-count anomalies for a bifurcating tree.
	switch {
	case len(s.Children) == 1:
		emit(o, report.Warning, report.CodeSingleChild, s, -1,
			fmt.Sprintf("section %d has a single child", s.ID))
	case len(s.Children) > 2:
		emit(o, report.Warning, report.CodeManyChildren, s, -1,
			fmt.Sprintf("section %d has %d children", s.ID, len(s.Children)))
	}

	// 5. Radius inversion at the branch point.
	if parent := a.ParentOf(s); parent != nil {
		if last, ok := parent.LastSample(); ok {
			if first, okF := s.FirstSample(); okF && first.Radius > last.Radius {
				emit(o, report.Warning, report.CodeRadiusInversion, s, first.ID,
					fmt.Sprintf("section %d first radius (%.4g) exceeds parent %d last radius (%.4g)", s.ID, first.Radius, parent.ID, last.Radius))
			}
		}
	}
}

// checkIntersections runs the soma-projected collision tests with the
// soma's mean radius as the projection sphere.
func checkIntersections(m *core.Morphology, o options) {
	soma := m.Soma
	if soma == nil || soma.MeanRadius <= 0 {
		return
	}
	radius := soma.MeanRadius
	basals := m.BasalDendrites()
	apicals := m.ApicalDendrites()

	for _, axon := range m.Axons() {
		if AxonIntersectsDendrites(soma, axon, basals, radius) {
			emitArbor(o, core.Axon, report.CodeBranchCollision,
				"axon initial segment intersects a basal dendrite near the soma")
		}
		for _, apical := range apicals {
			if AxonIntersectsApicalDendrite(soma, axon, apical, radius) {
				emitArbor(o, core.Axon, report.CodeBranchCollision,
					"axon initial segment intersects the apical dendrite near the soma")
			}
		}
	}
	for _, d := range basals {
		for _, apical := range apicals {
			if DendriteIntersectsApicalDendrite(soma, d, apical, radius) {
				emitArbor(o, core.BasalDendrite, report.CodeBranchCollision,
					"basal dendrite initial segment intersects the apical dendrite near the soma")
			}
		}
		if BasalDendriteIntersectsBasalDendrite(soma, d, basals, radius) {
			emitArbor(o, core.BasalDendrite, report.CodeBranchCollision,
				"basal dendrite initial segment intersects a thicker basal dendrite near the soma")
		}
	}

	for _, pair := range IntersectingProfilePoints(soma, radius, o.profilePointRadius) {
		report.Emit(o.sink, report.Diagnostic{
			Severity: report.Warning,
			Code:     report.CodeProfileCollision,
			Section:  -1,
			Sample:   -1,
			Message:  fmt.Sprintf("soma profile points %d and %d intersect on the projection sphere", pair[0], pair[1]),
		})
	}
}

func emit(o options, sev report.Severity, code report.Code, s *core.Section, sample int64, msg string) {
	report.Emit(o.sink, report.Diagnostic{
		Severity: sev,
		Code:     code,
		Arbor:    s.Type.String(),
		Section:  s.ID,
		Sample:   sample,
		Message:  msg,
	})
}

func emitArbor(o options, t core.SectionType, code report.Code, msg string) {
	report.Emit(o.sink, report.Diagnostic{
		Severity: report.Warning,
		Code:     code,
		Arbor:    t.String(),
		Section:  -1,
		Sample:   -1,
		Message:  msg,
	})
}
