// Package repair: the recursive resampling engine.

package repair

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/neurokit/skeletal/core"
	"github.com/neurokit/skeletal/report"
)

// Morphology resamples every arbor of m in place. A failing arbor is
// recorded and skipped; sibling arbors are processed regardless, so an
// unrepairable axon never corrupts the dendrites. The cached census is
// invalidated. The returned error joins every per-arbor failure.
func Morphology(m *core.Morphology, opts ...Option) error {
	if m == nil {
		return ErrNilMorphology
	}

	var errs []error
	for _, a := range m.Arbors() {
		if err := Arbor(a, opts...); err != nil {
			errs = append(errs, fmt.Errorf("repair: %s arbor: %w", a.Type(), err))
		}
	}
	m.InvalidateStats()

	return errors.Join(errs...)
}

// Arbor resamples one arbor in place: primary-child flags are refreshed,
// then every section is repaired pre-order, root first, so each step sees
// the resolved state of its parent. The first unrepairable section aborts
// this arbor. Callers holding the arbor inside a Morphology should use
// Morphology (which also invalidates cached stats).
func Arbor(a *core.Arbor, opts ...Option) error {
	// 1. Validate input and resolve options.
	if a == nil {
		return ErrNilArbor
	}
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 2. Refresh primary flags; dispatch depends on them.
	a.MarkPrimaryChildren()

	// 3. Recurse root → children.
	root := a.Root()
	if root == nil {
		return nil
	}

	return resampleTree(a, root, o)
}

// resampleTree repairs s, then recurses into its children in insertion
// order (pre-order, parent strictly before children).
func resampleTree(a *core.Arbor, s *core.Section, o options) error {
	if err := resampleSection(a, s, o); err != nil {
		return err
	}
	for _, child := range a.ChildrenOf(s) {
		if err := resampleTree(a, child, o); err != nil {
			return err
		}
	}

	return nil
}

// resampleSection dispatches per the section's role: roots and primary
// children receive front and ending repair; secondary children receive
// secondary repair only when enabled.
func resampleSection(a *core.Arbor, s *core.Section, o options) error {
	if s.IsRoot() || s.Primary {
		if err := frontRepair(s, o); err != nil {
			return err
		}

		return endingRepair(s, o)
	}
	if o.secondary {
		return secondaryFrontRepair(a, s, o)
	}

	return nil
}

// frontRepair applies step 1 to the near end of s. Roots are skipped:
// they have no parent to separate from.
func frontRepair(s *core.Section, o options) error {
	if s.IsRoot() {
		return nil
	}
	if err := repairFront(s, o); err != nil {
		return fmt.Errorf("repair: section %d front: %w", s.ID, err)
	}
	s.ReindexSamples()

	return nil
}

// endingRepair cleans the far end of s identically to its near end: the
// front logic is direction-symmetric, so reverse, repair, reverse back.
func endingRepair(s *core.Section, o options) error {
	if len(s.Samples) == 0 {
		return nil // already reported by the front pass
	}
	s.ReverseSamples()
	err := repairFront(s, o)
	s.ReverseSamples()
	s.ReindexSamples()
	if err != nil {
		return fmt.Errorf("repair: section %d ending: %w", s.ID, err)
	}

	return nil
}

// repairFront is the shared front-repair core, operating on the current
// sample orientation: remove samples inside firstRadius·√2 of the first
// sample, then insert one corrective sample along the surviving
// direction. The caller reindexes.
func repairFront(s *core.Section, o options) error {
	switch len(s.Samples) {
	case 0:
		// Reportable, never auto-corrected.
		emit(o, report.Error, report.CodeNoSamples, s, -1,
			fmt.Sprintf("section %d has no samples; skipped by repair", s.ID))

		return nil
	case 1:
		return ErrUnrepairableSection
	}

	first := s.Samples[0]
	distance := PrimaryResamplingDistance(first.Radius)

	return resampleExtent(s, o, distance)
}

// resampleExtent removes every sample but the first inside distance of
// the first sample and inserts the corrective sample at
// first + direction·distance with the first sample's radius.
func resampleExtent(s *core.Section, o options, distance float64) error {
	first := s.Samples[0]

	// 1. Extent removal around the first sample.
	if removed := RemoveSamplesInsideExtent(s, first.Point, distance, true); removed > 0 {
		emit(o, report.Info, report.CodeSamplesRemoved, s, first.ID,
			fmt.Sprintf("section %d: %d sample(s) removed within extent %.4g", s.ID, removed, distance))
	}
	if len(s.Samples) < 2 {
		return ErrUnrepairableSection
	}

	// 2. Recompute the direction from the (possibly now second) sample.
	dir, ok := core.Direction(s.Samples[0].Point, s.Samples[1].Point)
	if !ok {
		emit(o, report.Error, report.CodeZeroDirection, s, s.Samples[1].ID,
			fmt.Sprintf("section %d: coincident samples leave the front direction undefined", s.ID))

		return ErrZeroDirection
	}

	// 3. Insert the corrective sample with a provisional id.
	aux := core.Sample{
		ID:     core.AuxiliarySampleID,
		Point:  r3.Add(first.Point, r3.Scale(distance, dir)),
		Radius: first.Radius,
	}
	if err := s.InsertSample(1, aux); err != nil {
		return err
	}
	emit(o, report.Info, report.CodeAuxiliarySample, s, core.AuxiliarySampleID,
		fmt.Sprintf("section %d: corrective sample inserted at extent %.4g", s.ID, distance))

	return nil
}

// secondaryFrontRepair applies step 2 to a non-primary child: push its
// first two points away from the primary sibling when the divergence
// angle signals a collision risk, then resample the front with the
// angle-derived extent.
func secondaryFrontRepair(a *core.Arbor, s *core.Section, o options) error {
	// 1. Degenerate sample counts follow the front-repair policy.
	switch len(s.Samples) {
	case 0:
		emit(o, report.Error, report.CodeNoSamples, s, -1,
			fmt.Sprintf("section %d has no samples; skipped by repair", s.ID))

		return nil
	case 1:
		return fmt.Errorf("repair: section %d secondary front: %w", s.ID, ErrUnrepairableSection)
	}

	// 2. Locate the primary sibling; without one (or without a usable
	// primary direction) fall back to plain front repair.
	primary := primarySibling(a, s)
	if primary == nil || primary.NumSamples() < 2 {
		return frontRepair(s, o)
	}
	primaryDir, okP := core.InitialDirection(primary)
	secondaryDir, okS := core.InitialDirection(s)
	if !okP || !okS {
		emit(o, report.Error, report.CodeZeroDirection, s, -1,
			fmt.Sprintf("section %d: undefined initial direction near branch point", s.ID))

		return fmt.Errorf("repair: section %d secondary front: %w", s.ID, ErrZeroDirection)
	}

	// 3. Near-parallel or near-antiparallel siblings collide: push the
	// secondary's first two points outward by twice the primary radius,
	// then refresh the divergence angle from the moved geometry.
	angle := core.AngleBetween(primaryDir, secondaryDir)
	if angle < MinSecondaryAngle || angle > MaxSecondaryAngle {
		push := secondaryPushFactor * primary.Samples[0].Radius
		for k := 0; k < 2 && k < len(s.Samples); k++ {
			ref := k
			if ref >= len(primary.Samples) {
				ref = len(primary.Samples) - 1
			}
			away, ok := core.Direction(primary.Samples[ref].Point, s.Samples[k].Point)
			if !ok {
				emit(o, report.Error, report.CodeZeroDirection, s, s.Samples[k].ID,
					fmt.Sprintf("section %d: sample %d coincides with the primary sibling", s.ID, s.Samples[k].ID))
				continue
			}
			s.Samples[k].Point = r3.Add(s.Samples[k].Point, r3.Scale(push, away))
		}
		if moved, ok := core.InitialDirection(s); ok {
			angle = core.AngleBetween(primaryDir, moved)
		}
	}

	// 4. Resample the front with the angle-derived extent.
	distance := SecondaryResamplingDistance(s.Samples[0].Radius, angle)
	if err := resampleExtent(s, o, distance); err != nil {
		return fmt.Errorf("repair: section %d secondary front: %w", s.ID, err)
	}
	s.ReindexSamples()

	return nil
}

// primarySibling returns the primary child among s's siblings, or nil.
func primarySibling(a *core.Arbor, s *core.Section) *core.Section {
	parent := a.ParentOf(s)
	if parent == nil {
		return nil
	}
	for _, sib := range a.ChildrenOf(parent) {
		if sib != s && sib.Primary {
			return sib
		}
	}

	return nil
}

// emit delivers one repair diagnostic through the configured sink.
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
