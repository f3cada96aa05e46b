// Package core: axis-aligned bounding boxes over sections, arbors and
// whole morphologies.

package core

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min r3.Vec
	Max r3.Vec
}

// Center returns the box midpoint.
func (b Bounds) Center() r3.Vec {
	return r3.Scale(0.5, r3.Add(b.Min, b.Max))
}

// Extent returns the box dimensions (Max - Min).
func (b Bounds) Extent() r3.Vec {
	return r3.Sub(b.Max, b.Min)
}

// union merges two boxes component-wise.
func (b Bounds) union(o Bounds) Bounds {
	return Bounds{
		Min: r3.Vec{
			X: math.Min(b.Min.X, o.Min.X),
			Y: math.Min(b.Min.Y, o.Min.Y),
			Z: math.Min(b.Min.Z, o.Min.Z),
		},
		Max: r3.Vec{
			X: math.Max(b.Max.X, o.Max.X),
			Y: math.Max(b.Max.Y, o.Max.Y),
			Z: math.Max(b.Max.Z, o.Max.Z),
		},
	}
}

// expand grows the box to contain p.
func (b Bounds) expand(p r3.Vec) Bounds {
	return b.union(Bounds{Min: p, Max: p})
}

// pointBounds seeds a box at p.
func pointBounds(p r3.Vec) Bounds {
	return Bounds{Min: p, Max: p}
}

// SectionBounds returns the bounding box of s's sample points.
// ok is false for a section with no samples.
// Complexity: O(n) samples.
func SectionBounds(s *Section) (Bounds, bool) {
	if s == nil || len(s.Samples) == 0 {
		return Bounds{}, false
	}
	b := pointBounds(s.Samples[0].Point)
	for _, smp := range s.Samples[1:] {
		b = b.expand(smp.Point)
	}

	return b, true
}

// Bounds returns the bounding box of every sample in the arbor.
// ok is false when no section carries samples.
// Complexity: O(n) samples.
func (a *Arbor) Bounds() (Bounds, bool) {
	var (
		b   Bounds
		any bool
	)
	for _, s := range a.sections {
		sb, ok := SectionBounds(s)
		if !ok {
			continue
		}
		if !any {
			b, any = sb, true
			continue
		}
		b = b.union(sb)
	}

	return b, any
}

// Bounds returns the bounding box of the whole morphology: all arbor
// samples, the soma sphere (centroid ± mean radius) and the soma profile
// points. ok is false for a morphology with no geometry at all.
// Complexity: O(n) samples.
func (m *Morphology) Bounds() (Bounds, bool) {
	var (
		b   Bounds
		any bool
	)
	accumulate := func(nb Bounds) {
		if !any {
			b, any = nb, true
			return
		}
		b = b.union(nb)
	}

	for _, a := range m.Arbors() {
		if ab, ok := a.Bounds(); ok {
			accumulate(ab)
		}
	}
	if m.Soma != nil {
		r := m.Soma.MeanRadius
		accumulate(Bounds{
			Min: r3.Sub(m.Soma.Centroid, r3.Vec{X: r, Y: r, Z: r}),
			Max: r3.Add(m.Soma.Centroid, r3.Vec{X: r, Y: r, Z: r}),
		})
		for _, p := range m.Soma.ProfilePoints {
			accumulate(pointBounds(p))
		}
	}

	return b, any
}
