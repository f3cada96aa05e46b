package analysis_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/neurokit/skeletal/analysis"
	"github.com/neurokit/skeletal/core"
)

func sampleAt(z, radius float64) core.Sample {
	return core.Sample{Point: r3.Vec{Z: z}, Radius: radius}
}

// TestSegmentLength covers the Euclidean segment metric.
func TestSegmentLength(t *testing.T) {
	assert.Equal(t, 5.0, analysis.SegmentLength(
		core.Sample{Point: r3.Vec{}},
		core.Sample{Point: r3.Vec{X: 3, Y: 4}},
	))
	assert.Equal(t, 0.0, analysis.SegmentLength(sampleAt(2, 1), sampleAt(2, 1)))
}

// TestSegmentLateralArea reduces to the cylinder formula 2πrL for equal
// radii and matches the frustum slant formula otherwise.
func TestSegmentLateralArea(t *testing.T) {
	// Cylinder: r=1, L=3 → 2π·1·3.
	assert.InDelta(t, 2*math.Pi*3, analysis.SegmentLateralArea(sampleAt(0, 1), sampleAt(3, 1)), 1e-12)

	// Frustum: r0=2, r1=1, L=4 → π·3·√(1+16).
	want := math.Pi * 3 * math.Sqrt(17)
	assert.InDelta(t, want, analysis.SegmentLateralArea(sampleAt(0, 2), sampleAt(4, 1)), 1e-12)
}

// TestSegmentSurfaceArea adds both end-cap discs to the lateral area.
func TestSegmentSurfaceArea(t *testing.T) {
	lateral := analysis.SegmentLateralArea(sampleAt(0, 2), sampleAt(4, 1))
	caps := math.Pi * (4 + 1)
	assert.InDelta(t, lateral+caps, analysis.SegmentSurfaceArea(sampleAt(0, 2), sampleAt(4, 1)), 1e-12)

	// A zero-length segment still carries its caps.
	assert.InDelta(t, 2*math.Pi, analysis.SegmentSurfaceArea(sampleAt(1, 1), sampleAt(1, 1)), 1e-12)
}

// TestSegmentVolume covers the frustum volume (π/3)·L·(r0²+r0r1+r1²).
func TestSegmentVolume(t *testing.T) {
	// Cylinder: r=1, L=3 → πL.
	assert.InDelta(t, 3*math.Pi, analysis.SegmentVolume(sampleAt(0, 1), sampleAt(3, 1)), 1e-12)

	// Cone: r0=3, r1=0, L=1 → π/3·9.
	assert.InDelta(t, 3*math.Pi, analysis.SegmentVolume(sampleAt(0, 3), sampleAt(1, 0)), 1e-12)

	// Frustum: r0=2, r1=1, L=6 → 2π·7.
	assert.InDelta(t, 14*math.Pi, analysis.SegmentVolume(sampleAt(0, 2), sampleAt(6, 1)), 1e-12)
}
