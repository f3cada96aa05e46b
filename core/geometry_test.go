package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/neurokit/skeletal/core"
)

// TestDistance covers the plain Euclidean metric.
func TestDistance(t *testing.T) {
	assert.Equal(t, 5.0, core.Distance(r3.Vec{}, r3.Vec{X: 3, Y: 4}))
	assert.Equal(t, 0.0, core.Distance(r3.Vec{X: 1}, r3.Vec{X: 1}))
}

// TestDirection verifies normalization and the coincident-point guard.
func TestDirection(t *testing.T) {
	dir, ok := core.Direction(r3.Vec{}, r3.Vec{X: 0, Y: 0, Z: 7})
	require.True(t, ok)
	assert.InDelta(t, 1.0, r3.Norm(dir), 1e-12)
	assert.Equal(t, r3.Vec{Z: 1}, dir)

	_, ok = core.Direction(r3.Vec{X: 2}, r3.Vec{X: 2})
	assert.False(t, ok, "coincident points have no direction")
}

// TestAngleBetween verifies degree angles and the zero-vector guard.
func TestAngleBetween(t *testing.T) {
	assert.InDelta(t, 90, core.AngleBetween(r3.Vec{X: 1}, r3.Vec{Y: 1}), 1e-9)
	assert.InDelta(t, 0, core.AngleBetween(r3.Vec{X: 1}, r3.Vec{X: 2}), 1e-9)
	assert.InDelta(t, 180, core.AngleBetween(r3.Vec{X: 1}, r3.Vec{X: -3}), 1e-9)
	assert.Equal(t, 0.0, core.AngleBetween(r3.Vec{}, r3.Vec{X: 1}), "zero operand yields 0")
}

// TestInitialTerminalDirection covers the section direction helpers.
func TestInitialTerminalDirection(t *testing.T) {
	a := core.NewArbor(core.Axon)
	s, err := a.AddSection(core.NoParent, 0, []core.Sample{
		{Point: r3.Vec{}, Radius: 1},
		{Point: r3.Vec{X: 1}, Radius: 1},
		{Point: r3.Vec{X: 1, Z: 2}, Radius: 1},
	})
	require.NoError(t, err)

	initial, ok := core.InitialDirection(s)
	require.True(t, ok)
	assert.Equal(t, r3.Vec{X: 1}, initial)

	terminal, ok := core.TerminalDirection(s)
	require.True(t, ok)
	assert.Equal(t, r3.Vec{Z: 1}, terminal)

	short, err := a.AddSection(s.Index, 1, zSamples(1, 2))
	require.NoError(t, err)
	_, ok = core.InitialDirection(short)
	assert.False(t, ok, "one sample cannot define a direction")
}
