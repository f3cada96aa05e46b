// Package builder: morphology constructor implementations.
//
// Every constructor emits sections in a stable, documented order (trunk
// first, then children left to right), derives branching orders through
// core.Arbor.AddSection, and refreshes primary-child flags before
// attaching the arbor.

package builder

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/neurokit/skeletal/core"
)

// sampleRun produces n samples from start along the unit direction dir,
// spaced cfg.step apart, with radii tapering linearly from baseRadius.
func sampleRun(cfg config, start, dir r3.Vec, n int, baseRadius float64) []core.Sample {
	samples := make([]core.Sample, n)
	for i := 0; i < n; i++ {
		frac := 0.0
		if n > 1 {
			frac = float64(i) / float64(n-1)
		}
		samples[i] = core.Sample{
			ID:     int64(i),
			Point:  r3.Add(start, r3.Scale(cfg.step*float64(i), dir)),
			Radius: baseRadius * (1 - cfg.taper*frac),
		}
	}

	return samples
}

// xzDirection is the unit vector at angleDeg from +Z within the XZ plane.
func xzDirection(angleDeg float64) r3.Vec {
	rad := angleDeg * math.Pi / 180

	return r3.Vec{X: math.Sin(rad), Z: math.Cos(rad)}
}

// Path builds one unbranched arbor of type t with n samples along dir,
// starting on the soma surface. n ≥ 2; dir must be non-zero.
// Complexity: O(n).
func Path(t core.SectionType, n int, dir r3.Vec) Constructor {
	return func(m *core.Morphology, cfg config) error {
		if n < 2 {
			return ErrTooFewSamples
		}
		unit, ok := core.Direction(r3.Vec{}, dir)
		if !ok {
			return ErrBadDirection
		}

		a := core.NewArbor(t)
		start := r3.Add(cfg.center, r3.Scale(cfg.somaRadius, unit))
		if _, err := a.AddSection(core.NoParent, 0, sampleRun(cfg, start, unit, n, cfg.radius)); err != nil {
			return err
		}
		a.MarkPrimaryChildren()

		return m.AddArbor(a)
	}
}

// Fork builds an arbor of type t with a trunk of `trunk` samples along
// +Z splitting into two children of `branch` samples each, diverging at
// ±angleDeg/2 within the XZ plane. Each child's first sample coincides
// with the trunk's last. trunk, branch ≥ 2; angleDeg in (0, 180).
// Complexity: O(trunk + branch).
func Fork(t core.SectionType, trunk, branch int, angleDeg float64) Constructor {
	return func(m *core.Morphology, cfg config) error {
		if trunk < 2 || branch < 2 {
			return ErrTooFewSamples
		}
		if angleDeg <= 0 || angleDeg >= 180 {
			return ErrBadAngle
		}

		a := core.NewArbor(t)
		up := r3.Vec{Z: 1}
		start := r3.Add(cfg.center, r3.Scale(cfg.somaRadius, up))
		root, err := a.AddSection(core.NoParent, 0, sampleRun(cfg, start, up, trunk, cfg.radius))
		if err != nil {
			return err
		}

		tip, _ := root.LastSample()
		for i, half := range []float64{+angleDeg / 2, -angleDeg / 2} {
			dir := xzDirection(half)
			// Continuity: the child run starts at the trunk tip, so its
			// first sample coincides with the parent's last.
			child := sampleRun(cfg, tip.Point, dir, branch, tip.Radius)
			if _, err = a.AddSection(root.Index, int64(i+1), child); err != nil {
				return err
			}
		}
		a.MarkPrimaryChildren()

		return m.AddArbor(a)
	}
}

// Binary builds a complete binary tree of sections of type t with the
// given depth (root = depth 1) and `per` samples per section; every
// split diverges ±30° from the parent direction within the XZ plane.
// depth ≥ 1; per ≥ 2.
// Complexity: O(2^depth · per).
func Binary(t core.SectionType, depth, per int) Constructor {
	const splitHalfAngle = 30.0

	return func(m *core.Morphology, cfg config) error {
		if depth < 1 {
			return ErrBadDepth
		}
		if per < 2 {
			return ErrTooFewSamples
		}

		a := core.NewArbor(t)
		start := r3.Add(cfg.center, r3.Scale(cfg.somaRadius, r3.Vec{Z: 1}))

		nextID := int64(0)
		var grow func(parent int, from r3.Vec, angleDeg, radius float64, level int) error
		grow = func(parent int, from r3.Vec, angleDeg, radius float64, level int) error {
			samples := sampleRun(cfg, from, xzDirection(angleDeg), per, radius)
			s, err := a.AddSection(parent, nextID, samples)
			if err != nil {
				return err
			}
			nextID++
			if level == depth {
				return nil
			}
			tip, _ := s.LastSample()
			for _, half := range []float64{+splitHalfAngle, -splitHalfAngle} {
				if err = grow(s.Index, tip.Point, angleDeg+half, tip.Radius, level+1); err != nil {
					return err
				}
			}

			return nil
		}
		if err := grow(core.NoParent, start, 0, cfg.radius, 1); err != nil {
			return err
		}
		a.MarkPrimaryChildren()

		return m.AddArbor(a)
	}
}

// Ring attaches a soma profile ring of `points` points on the circle of
// the soma radius within the XY plane. points ≥ 3.
// Complexity: O(points).
func Ring(points int) Constructor {
	return func(m *core.Morphology, cfg config) error {
		if points < 3 {
			return ErrTooFewPoints
		}
		if m.Soma == nil {
			return core.ErrNilSoma
		}

		ring := make([]r3.Vec, points)
		for i := 0; i < points; i++ {
			phi := 2 * math.Pi * float64(i) / float64(points)
			ring[i] = r3.Add(cfg.center, r3.Vec{
				X: cfg.somaRadius * math.Cos(phi),
				Y: cfg.somaRadius * math.Sin(phi),
			})
		}
		m.Soma.ProfilePoints = ring

		return nil
	}
}
