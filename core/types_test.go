package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/neurokit/skeletal/core"
)

// TestSectionType_String verifies the human-readable arbor type names.
func TestSectionType_String(t *testing.T) {
	assert.Equal(t, "axon", core.Axon.String())
	assert.Equal(t, "basal dendrite", core.BasalDendrite.String())
	assert.Equal(t, "apical dendrite", core.ApicalDendrite.String())
	assert.Equal(t, "unknown", core.SectionType(99).String())
}

// TestArbor_AddSection_Root verifies root creation and the order-1 invariant.
func TestArbor_AddSection_Root(t *testing.T) {
	a := core.NewArbor(core.Axon)
	root, err := a.AddSection(core.NoParent, 10, []core.Sample{
		{ID: 0, Point: r3.Vec{}, Radius: 1},
		{ID: 1, Point: r3.Vec{Z: 1}, Radius: 1},
	})
	require.NoError(t, err)

	assert.True(t, root.IsRoot(), "root must have no parent")
	assert.Equal(t, 1, root.Order, "root branching order must be 1")
	assert.True(t, root.Primary, "roots are primary by convention")
	assert.Equal(t, core.Axon, root.Type, "section type follows the arbor")
	assert.Same(t, root, a.Root())
}

// TestArbor_AddSection_SecondRoot ensures a second parentless section is rejected.
func TestArbor_AddSection_SecondRoot(t *testing.T) {
	a := core.NewArbor(core.Axon)
	_, err := a.AddSection(core.NoParent, 0, nil)
	require.NoError(t, err)

	_, err = a.AddSection(core.NoParent, 1, nil)
	assert.ErrorIs(t, err, core.ErrRootExists)
}

// TestArbor_AddSection_BadParent ensures out-of-range parent indices error.
func TestArbor_AddSection_BadParent(t *testing.T) {
	a := core.NewArbor(core.BasalDendrite)
	_, err := a.AddSection(5, 0, nil)
	assert.ErrorIs(t, err, core.ErrSectionNotFound)
}

// TestArbor_AddSection_NegativeRadius ensures negative radii are rejected
// before any mutation.
func TestArbor_AddSection_NegativeRadius(t *testing.T) {
	a := core.NewArbor(core.BasalDendrite)
	_, err := a.AddSection(core.NoParent, 0, []core.Sample{{Radius: -0.5}})
	assert.ErrorIs(t, err, core.ErrNegativeRadius)
	assert.Equal(t, 0, a.NumSections(), "failed add must not mutate the arena")
}

// TestArbor_BranchingOrder verifies order = parent order + 1 down a chain.
func TestArbor_BranchingOrder(t *testing.T) {
	a := core.NewArbor(core.ApicalDendrite)
	root, err := a.AddSection(core.NoParent, 0, nil)
	require.NoError(t, err)
	child, err := a.AddSection(root.Index, 1, nil)
	require.NoError(t, err)
	grand, err := a.AddSection(child.Index, 2, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, root.Order)
	assert.Equal(t, 2, child.Order)
	assert.Equal(t, 3, grand.Order)
	assert.Equal(t, []int{child.Index}, root.Children)
}

// TestMorphology_AddArbor dispatches arbors into the matching collection
// in the fixed traversal order (apical, basal, axon).
func TestMorphology_AddArbor(t *testing.T) {
	m := core.NewMorphology(&core.Soma{MeanRadius: 1})
	axon := core.NewArbor(core.Axon)
	basal := core.NewArbor(core.BasalDendrite)
	apical := core.NewArbor(core.ApicalDendrite)

	require.NoError(t, m.AddArbor(axon))
	require.NoError(t, m.AddArbor(basal))
	require.NoError(t, m.AddArbor(apical))

	assert.Len(t, m.Axons(), 1)
	assert.Len(t, m.BasalDendrites(), 1)
	assert.Len(t, m.ApicalDendrites(), 1)
	assert.Equal(t, []*core.Arbor{apical, basal, axon}, m.Arbors(),
		"traversal order is apical, basal, axon")

	assert.ErrorIs(t, m.AddArbor(nil), core.ErrNilArbor)

	var nilM *core.Morphology
	assert.ErrorIs(t, nilM.AddArbor(axon), core.ErrNilMorphology)
}
