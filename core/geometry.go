// Package core: shared 3D geometry primitives.
//
// Every direction-producing helper is explicitly guarded against
// zero-length input so that degenerate geometry (coincident samples)
// surfaces as an ok=false result instead of propagating NaN.

package core

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Distance returns the Euclidean distance between p and q.
// Complexity: O(1).
func Distance(p, q r3.Vec) float64 {
	return r3.Norm(r3.Sub(p, q))
}

// Direction returns the unit vector from `from` toward `to`.
// ok is false when the two points coincide (zero-length direction).
// Complexity: O(1).
func Direction(from, to r3.Vec) (r3.Vec, bool) {
	d := r3.Sub(to, from)
	n := r3.Norm(d)
	if n == 0 {
		return r3.Vec{}, false
	}

	return r3.Scale(1/n, d), true
}

// AngleBetween returns the angle between u and v in degrees, in [0, 180].
// A zero-length operand yields 0.
// Complexity: O(1).
func AngleBetween(u, v r3.Vec) float64 {
	if r3.Norm(u) == 0 || r3.Norm(v) == 0 {
		return 0
	}

	return math.Acos(cosBetween(u, v)) * 180 / math.Pi
}

// cosBetween returns the cosine of the angle between u and v, clamped to
// [-1, 1] to keep math.Acos well-defined under rounding.
func cosBetween(u, v r3.Vec) float64 {
	c := r3.Cos(u, v)
	if c > 1 {
		return 1
	}
	if c < -1 {
		return -1
	}

	return c
}

// initialDirection is the unit direction of s's first segment.
func initialDirection(s *Section) (r3.Vec, bool) {
	if len(s.Samples) < 2 {
		return r3.Vec{}, false
	}

	return Direction(s.Samples[0].Point, s.Samples[1].Point)
}

// terminalDirection is the unit direction of s's last segment.
func terminalDirection(s *Section) (r3.Vec, bool) {
	n := len(s.Samples)
	if n < 2 {
		return r3.Vec{}, false
	}

	return Direction(s.Samples[n-2].Point, s.Samples[n-1].Point)
}

// InitialDirection returns the unit direction of s's first segment;
// ok is false when s has fewer than two samples or they coincide.
func InitialDirection(s *Section) (r3.Vec, bool) { return initialDirection(s) }

// TerminalDirection returns the unit direction of s's last segment;
// ok is false when s has fewer than two samples or they coincide.
func TerminalDirection(s *Section) (r3.Vec, bool) { return terminalDirection(s) }
