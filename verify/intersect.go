// Package verify: soma-projected intersection tests.

package verify

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/neurokit/skeletal/core"
)

// projectedIntersect is the shared primitive: project two soma-relative
// points onto the sphere of somaRadius, rescale their radii by the same
// ratio, and compare the great-circle arc between the projections against
// the sum of the scaled radii. Degenerate geometry (a point on the
// centroid, non-positive radius) never intersects.
func projectedIntersect(centroid, pA r3.Vec, rA float64, pB r3.Vec, rB, somaRadius float64) bool {
	if somaRadius <= 0 {
		return false
	}
	dA := r3.Sub(pA, centroid)
	dB := r3.Sub(pB, centroid)
	xA := r3.Norm(dA)
	xB := r3.Norm(dB)
	if xA == 0 || xB == 0 {
		return false
	}

	// tan(angle) = r/x similarity: the projected radius shrinks or grows
	// with the same ratio as the projected point.
	scaledA := rA * somaRadius / xA
	scaledB := rB * somaRadius / xB

	arc := core.AngleBetween(dA, dB) * math.Pi / 180 * somaRadius

	return arc < scaledA+scaledB
}

// branchAnchor extracts the first sample of an arbor's root section.
func branchAnchor(a *core.Arbor) (core.Sample, bool) {
	if a == nil {
		return core.Sample{}, false
	}
	root := a.Root()
	if root == nil {
		return core.Sample{}, false
	}

	return root.FirstSample()
}

// BranchesIntersect reports whether the initial segments of branches a
// and b, projected onto the sphere of somaRadius around the soma
// centroid, overlap. The test is symmetric in a and b.
func BranchesIntersect(soma *core.Soma, a, b *core.Arbor, somaRadius float64) bool {
	if soma == nil {
		return false
	}
	sa, okA := branchAnchor(a)
	sb, okB := branchAnchor(b)
	if !okA || !okB {
		return false
	}

	return projectedIntersect(soma.Centroid, sa.Point, sa.Radius, sb.Point, sb.Radius, somaRadius)
}

// AxonIntersectsDendrites reports whether axon's initial segment
// intersects any of the given basal dendrites near the soma.
func AxonIntersectsDendrites(soma *core.Soma, axon *core.Arbor, dendrites []*core.Arbor, somaRadius float64) bool {
	for _, d := range dendrites {
		if BranchesIntersect(soma, axon, d, somaRadius) {
			return true
		}
	}

	return false
}

// AxonIntersectsApicalDendrite reports whether axon's initial segment
// intersects the apical dendrite near the soma.
func AxonIntersectsApicalDendrite(soma *core.Soma, axon, apical *core.Arbor, somaRadius float64) bool {
	return BranchesIntersect(soma, axon, apical, somaRadius)
}

// DendriteIntersectsApicalDendrite reports whether a basal dendrite's
// initial segment intersects the apical dendrite near the soma.
func DendriteIntersectsApicalDendrite(soma *core.Soma, dendrite, apical *core.Arbor, somaRadius float64) bool {
	return BranchesIntersect(soma, dendrite, apical, somaRadius)
}

// BasalDendriteIntersectsBasalDendrite reports whether dendrite
// intersects any of the other basal dendrites near the soma — but, by
// contract, only when the tested dendrite is the thinner of the
// intersecting pair. The asymmetry (radius comparison, not geometry) is
// deliberate and preserved.
func BasalDendriteIntersectsBasalDendrite(soma *core.Soma, dendrite *core.Arbor, others []*core.Arbor, somaRadius float64) bool {
	sd, ok := branchAnchor(dendrite)
	if !ok {
		return false
	}
	for _, other := range others {
		if other == dendrite {
			continue
		}
		so, okO := branchAnchor(other)
		if !okO {
			continue
		}
		if sd.Radius < so.Radius && BranchesIntersect(soma, dendrite, other, somaRadius) {
			return true
		}
	}

	return false
}

// SomaProfilePointsIntersect applies the projected-arc test to soma
// profile points i and j with the fixed pointRadius. Only pairs with
// i < j are reported, so each pair surfaces once.
func SomaProfilePointsIntersect(soma *core.Soma, i, j int, somaRadius, pointRadius float64) bool {
	if soma == nil || i >= j || i < 0 || j >= len(soma.ProfilePoints) {
		return false
	}

	return projectedIntersect(soma.Centroid,
		soma.ProfilePoints[i], pointRadius,
		soma.ProfilePoints[j], pointRadius,
		somaRadius)
}

// IntersectingProfilePoints returns every intersecting profile-point
// pair as index pairs with i < j, in lexicographic order.
func IntersectingProfilePoints(soma *core.Soma, somaRadius, pointRadius float64) [][2]int {
	if soma == nil {
		return nil
	}

	var pairs [][2]int
	for i := 0; i < len(soma.ProfilePoints); i++ {
		for j := i + 1; j < len(soma.ProfilePoints); j++ {
			if SomaProfilePointsIntersect(soma, i, j, somaRadius, pointRadius) {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}

	return pairs
}
