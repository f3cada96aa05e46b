package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/neurokit/skeletal/core"
)

// zSamples builds constant-radius samples along +Z at the given offsets.
func zSamples(radius float64, zs ...float64) []core.Sample {
	out := make([]core.Sample, len(zs))
	for i, z := range zs {
		out[i] = core.Sample{ID: int64(i), Point: r3.Vec{Z: z}, Radius: radius}
	}

	return out
}

// TestSection_SampleMutators exercises insert, remove, reverse and reindex.
func TestSection_SampleMutators(t *testing.T) {
	a := core.NewArbor(core.Axon)
	s, err := a.AddSection(core.NoParent, 0, zSamples(1, 0, 1, 2))
	require.NoError(t, err)

	require.NoError(t, s.InsertSample(1, core.Sample{ID: core.AuxiliarySampleID, Point: r3.Vec{Z: 0.5}, Radius: 1}))
	assert.Equal(t, 4, s.NumSamples())
	assert.Equal(t, 3, s.NumSegments())
	assert.Equal(t, core.AuxiliarySampleID, s.Samples[1].ID)

	s.ReindexSamples()
	for i, smp := range s.Samples {
		assert.Equal(t, int64(i), smp.ID, "reindex assigns sequential ids")
	}

	require.NoError(t, s.RemoveSample(1))
	assert.Equal(t, []float64{0, 1, 2}, []float64{s.Samples[0].Point.Z, s.Samples[1].Point.Z, s.Samples[2].Point.Z})

	s.ReverseSamples()
	assert.Equal(t, 2.0, s.Samples[0].Point.Z)
	s.ReverseSamples()
	assert.Equal(t, 0.0, s.Samples[0].Point.Z)

	assert.ErrorIs(t, s.InsertSample(-1, core.Sample{}), core.ErrSampleIndex)
	assert.ErrorIs(t, s.RemoveSample(3), core.ErrSampleIndex)
	assert.ErrorIs(t, s.AppendSample(core.Sample{Radius: -1}), core.ErrNegativeRadius)
}

// TestSection_FirstLastSample covers the empty-section contract.
func TestSection_FirstLastSample(t *testing.T) {
	a := core.NewArbor(core.Axon)
	s, err := a.AddSection(core.NoParent, 0, nil)
	require.NoError(t, err)

	_, ok := s.FirstSample()
	assert.False(t, ok)
	_, ok = s.LastSample()
	assert.False(t, ok)
	assert.Equal(t, 0, s.NumSegments())

	require.NoError(t, s.AppendSample(core.Sample{Point: r3.Vec{Z: 3}, Radius: 1}))
	first, ok := s.FirstSample()
	require.True(t, ok)
	assert.Equal(t, 3.0, first.Point.Z)
}

// TestArbor_MarkPrimaryChildren flags the child most colinear with the
// parent's terminal direction.
func TestArbor_MarkPrimaryChildren(t *testing.T) {
	a := core.NewArbor(core.BasalDendrite)
	root, err := a.AddSection(core.NoParent, 0, zSamples(1, 0, 2))
	require.NoError(t, err)

	// Straight continuation of the parent direction.
	straight, err := a.AddSection(root.Index, 1, []core.Sample{
		{Point: r3.Vec{Z: 2}, Radius: 1},
		{Point: r3.Vec{Z: 4}, Radius: 1},
	})
	require.NoError(t, err)

	// Sharp sideways turn.
	sideways, err := a.AddSection(root.Index, 2, []core.Sample{
		{Point: r3.Vec{Z: 2}, Radius: 1},
		{Point: r3.Vec{X: 2, Z: 2}, Radius: 1},
	})
	require.NoError(t, err)

	a.MarkPrimaryChildren()

	assert.True(t, straight.Primary, "colinear child must be primary")
	assert.False(t, sideways.Primary, "diverging child must be secondary")
	assert.True(t, root.Primary, "roots stay primary")
}

// TestArbor_ParentChildNavigation checks index-based navigation helpers.
func TestArbor_ParentChildNavigation(t *testing.T) {
	a := core.NewArbor(core.Axon)
	root, err := a.AddSection(core.NoParent, 0, zSamples(1, 0, 1))
	require.NoError(t, err)
	child, err := a.AddSection(root.Index, 1, zSamples(1, 1, 2))
	require.NoError(t, err)

	assert.Nil(t, a.ParentOf(root))
	assert.Same(t, root, a.ParentOf(child))

	kids := a.ChildrenOf(root)
	require.Len(t, kids, 1)
	assert.Same(t, child, kids[0])

	got, err := a.Section(child.Index)
	require.NoError(t, err)
	assert.Same(t, child, got)

	_, err = a.Section(99)
	assert.ErrorIs(t, err, core.ErrSectionNotFound)
}
