package analysis_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/neurokit/skeletal/analysis"
	"github.com/neurokit/skeletal/core"
)

// forkArbor builds a radius-0.4 basal Y:
//
//	root   (0,0,0)→(0,0,2)  length 2
//	child1 (0,0,2)→(0,0,3)  length 1 (short: 1 < 2·0.8)
//	child2 (0,0,2)→(3,0,2)  length 3
func forkArbor(t *testing.T) *core.Arbor {
	t.Helper()

	const r = 0.4
	a := core.NewArbor(core.BasalDendrite)
	root, err := a.AddSection(core.NoParent, 0, []core.Sample{
		{ID: 0, Point: r3.Vec{}, Radius: r},
		{ID: 1, Point: r3.Vec{Z: 2}, Radius: r},
	})
	require.NoError(t, err)
	_, err = a.AddSection(root.Index, 1, []core.Sample{
		{ID: 0, Point: r3.Vec{Z: 2}, Radius: r},
		{ID: 1, Point: r3.Vec{Z: 3}, Radius: r},
	})
	require.NoError(t, err)
	_, err = a.AddSection(root.Index, 2, []core.Sample{
		{ID: 0, Point: r3.Vec{Z: 2}, Radius: r},
		{ID: 1, Point: r3.Vec{X: 3, Z: 2}, Radius: r},
	})
	require.NoError(t, err)

	return a
}

// TestArborCountingKernels runs the census kernels over the fork fixture.
func TestArborCountingKernels(t *testing.T) {
	a := forkArbor(t)

	assert.Equal(t, 6.0, analysis.ArborNumberOfSamples(a, nil))
	assert.Equal(t, 3.0, analysis.ArborNumberOfSegments(a, nil))
	assert.Equal(t, 3.0, analysis.ArborNumberOfSections(a, nil))
	assert.Equal(t, 1.0, analysis.ArborNumberOfBifurcations(a, nil))
	assert.Equal(t, 0.0, analysis.ArborNumberOfTrifurcations(a, nil))
	assert.Equal(t, 2.0, analysis.ArborNumberOfTips(a, nil))
	assert.Equal(t, 2.0, analysis.ArborNumberOfTerminalSegments(a, nil))
	assert.Equal(t, 2.0, analysis.ArborMaxBranchingOrder(a, nil))
	assert.Equal(t, 1.0, analysis.ArborNumberOfShortSections(a, nil))
	assert.Equal(t, 0.0, analysis.ArborNumberOfZeroLengthSegments(a, nil))
}

// TestArborGeometricKernels checks length, area and volume totals.
func TestArborGeometricKernels(t *testing.T) {
	a := forkArbor(t)
	const r = 0.4

	assert.InDelta(t, 6.0, analysis.ArborLength(a, nil), 1e-12)

	// Three cylinders: lateral 2πr·6 plus 6 caps of πr².
	assert.InDelta(t, 2*math.Pi*r*6+6*math.Pi*r*r, analysis.ArborSurfaceArea(a, nil), 1e-12)

	// Volume πr²·6.
	assert.InDelta(t, math.Pi*r*r*6, analysis.ArborVolume(a, nil), 1e-12)

	// Every section is straight, so contraction averages to 1.
	assert.InDelta(t, 1.0, analysis.ArborAverageContraction(a, nil), 1e-12)
}

// TestArborTipDistances checks the path and Euclidean extrema from the
// arbor origin to its tips.
func TestArborTipDistances(t *testing.T) {
	a := forkArbor(t)

	assert.InDelta(t, 5.0, analysis.ArborMaxPathDistance(a, nil), 1e-12, "root + child2")
	assert.InDelta(t, 3.0, analysis.ArborMinPathDistance(a, nil), 1e-12, "root + child1")
	assert.InDelta(t, math.Sqrt(13), analysis.ArborMaxEuclideanDistance(a, nil), 1e-12, "origin to (3,0,2)")
	assert.InDelta(t, 3.0, analysis.ArborMinEuclideanDistance(a, nil), 1e-12, "origin to (0,0,3)")
}

// TestArborKernels_EmptyAndNil verifies the 0-for-empty contract.
func TestArborKernels_EmptyAndNil(t *testing.T) {
	empty := core.NewArbor(core.Axon)

	assert.Equal(t, 0.0, analysis.ArborLength(empty, nil))
	assert.Equal(t, 0.0, analysis.ArborLength(nil, nil))
	assert.Equal(t, 0.0, analysis.ArborMaxPathDistance(empty, nil))
	assert.Equal(t, 0.0, analysis.ArborNumberOfTips(nil, nil))
}

// TestDistributionKernels checks pre-order per-section sequences.
func TestDistributionKernels(t *testing.T) {
	a := forkArbor(t)

	lengths := analysis.SectionLengths(a, nil)
	require.Len(t, lengths, 3)
	assert.InDelta(t, 2.0, lengths[0], 1e-12)
	assert.InDelta(t, 1.0, lengths[1], 1e-12)
	assert.InDelta(t, 3.0, lengths[2], 1e-12)

	assert.Equal(t, []float64{2, 2, 2}, analysis.SectionSampleCounts(a, nil))

	contractions := analysis.SectionContractions(a, nil)
	require.Len(t, contractions, 3)
	for _, c := range contractions {
		assert.InDelta(t, 1.0, c, 1e-12)
	}
}
