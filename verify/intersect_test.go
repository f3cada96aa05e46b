package verify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/neurokit/skeletal/core"
	"github.com/neurokit/skeletal/verify"
)

// arborAt builds an arbor of type typ anchored at p with the given first
// radius, extending radially outward.
func arborAt(t *testing.T, typ core.SectionType, p r3.Vec, radius float64) *core.Arbor {
	t.Helper()

	a := core.NewArbor(typ)
	far := r3.Scale(2, p)
	_, err := a.AddSection(core.NoParent, 0, []core.Sample{
		{ID: 0, Point: p, Radius: radius},
		{ID: 1, Point: far, Radius: radius},
	})
	require.NoError(t, err)

	return a
}

// TestBranchesIntersect covers separated and colliding anchor pairs on the
// unit projection sphere.
func TestBranchesIntersect(t *testing.T) {
	soma := &core.Soma{MeanRadius: 1}

	// 90° apart: arc π/2 far exceeds the scaled radii sum 0.5.
	a := arborAt(t, core.Axon, r3.Vec{X: 2}, 0.5)
	b := arborAt(t, core.BasalDendrite, r3.Vec{Y: 2}, 0.5)
	assert.False(t, verify.BranchesIntersect(soma, a, b, 1))

	// Nearly coincident anchors collide.
	c := arborAt(t, core.BasalDendrite, r3.Vec{X: 2, Y: 0.1}, 0.5)
	assert.True(t, verify.BranchesIntersect(soma, a, c, 1))

	// Symmetric in both arguments.
	assert.Equal(t,
		verify.BranchesIntersect(soma, a, c, 1),
		verify.BranchesIntersect(soma, c, a, 1))
	assert.Equal(t,
		verify.BranchesIntersect(soma, a, b, 1),
		verify.BranchesIntersect(soma, b, a, 1))
}

// TestBranchesIntersect_Degenerate never intersects on broken input.
func TestBranchesIntersect_Degenerate(t *testing.T) {
	soma := &core.Soma{MeanRadius: 1}
	a := arborAt(t, core.Axon, r3.Vec{X: 2}, 0.5)

	assert.False(t, verify.BranchesIntersect(nil, a, a, 1))
	assert.False(t, verify.BranchesIntersect(soma, nil, a, 1))
	assert.False(t, verify.BranchesIntersect(soma, a, core.NewArbor(core.Axon), 1), "empty arbor has no anchor")
	assert.False(t, verify.BranchesIntersect(soma, a, a, 0), "non-positive projection radius")

	// An anchor on the centroid cannot be projected.
	onCentroid := arborAt(t, core.Axon, r3.Vec{}, 0.5)
	assert.False(t, verify.BranchesIntersect(soma, onCentroid, a, 1))
}

// TestAxonIntersectsDendrites scans a dendrite list.
func TestAxonIntersectsDendrites(t *testing.T) {
	soma := &core.Soma{MeanRadius: 1}
	axon := arborAt(t, core.Axon, r3.Vec{X: 2}, 0.5)
	far := arborAt(t, core.BasalDendrite, r3.Vec{Y: 2}, 0.5)
	near := arborAt(t, core.BasalDendrite, r3.Vec{X: 2, Y: 0.1}, 0.5)

	assert.False(t, verify.AxonIntersectsDendrites(soma, axon, []*core.Arbor{far}, 1))
	assert.True(t, verify.AxonIntersectsDendrites(soma, axon, []*core.Arbor{far, near}, 1))
	assert.False(t, verify.AxonIntersectsDendrites(soma, axon, nil, 1))
}

// TestBasalBasalAsymmetry: only the thinner dendrite of an intersecting
// pair reports the collision.
func TestBasalBasalAsymmetry(t *testing.T) {
	soma := &core.Soma{MeanRadius: 1}
	thin := arborAt(t, core.BasalDendrite, r3.Vec{X: 2}, 0.2)
	thick := arborAt(t, core.BasalDendrite, r3.Vec{X: 2, Y: 0.1}, 0.5)
	all := []*core.Arbor{thin, thick}

	assert.True(t, verify.BasalDendriteIntersectsBasalDendrite(soma, thin, all, 1))
	assert.False(t, verify.BasalDendriteIntersectsBasalDendrite(soma, thick, all, 1),
		"the thicker dendrite never reports the pair")

	// A dendrite is skipped against itself.
	assert.False(t, verify.BasalDendriteIntersectsBasalDendrite(soma, thin, []*core.Arbor{thin}, 1))
}

// TestProfilePointIntersections reports close pairs once, i < j.
func TestProfilePointIntersections(t *testing.T) {
	soma := &core.Soma{
		MeanRadius: 1,
		ProfilePoints: []r3.Vec{
			{X: 1},
			{X: 1, Y: 0.01},
			{Y: 1},
		},
	}

	assert.True(t, verify.SomaProfilePointsIntersect(soma, 0, 1, 1, 0.1))
	assert.False(t, verify.SomaProfilePointsIntersect(soma, 0, 2, 1, 0.1))
	assert.False(t, verify.SomaProfilePointsIntersect(soma, 1, 0, 1, 0.1), "only i < j pairs are reported")
	assert.False(t, verify.SomaProfilePointsIntersect(soma, 0, 9, 1, 0.1))

	assert.Equal(t, [][2]int{{0, 1}}, verify.IntersectingProfilePoints(soma, 1, 0.1))
	assert.Nil(t, verify.IntersectingProfilePoints(nil, 1, 0.1))
}
