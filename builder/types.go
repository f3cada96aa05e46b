// Package builder: sentinel errors, options and the builder config.
//
// Error policy (strict):
//   - Only package-level sentinel variables are exposed; callers branch
//     with errors.Is.
//   - Constructors never panic at runtime; validation panics are confined
//     to option-constructor functions (programmer error).

package builder

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

var (
	// ErrTooFewSamples indicates a section sample count below the
	// constructor's minimum (Path/Fork/Binary need ≥ 2 per section).
	ErrTooFewSamples = errors.New("builder: too few samples per section")

	// ErrTooFewPoints indicates a profile ring with fewer than 3 points.
	ErrTooFewPoints = errors.New("builder: too few profile points")

	// ErrBadAngle indicates a fork angle outside (0, 180) degrees.
	ErrBadAngle = errors.New("builder: fork angle out of range")

	// ErrBadDepth indicates a binary-tree depth below 1.
	ErrBadDepth = errors.New("builder: tree depth out of range")

	// ErrBadDirection indicates a zero-length path direction.
	ErrBadDirection = errors.New("builder: zero-length direction")

	// ErrConstructFailed indicates a nil constructor passed to Build.
	ErrConstructFailed = errors.New("builder: construction failed")
)

// Default geometry of generated fixtures.
const (
	DefaultSomaRadius = 2.0
	DefaultStep       = 1.0
	DefaultRadius     = 1.0
)

// Option mutates the builder config before construction.
type Option func(*config)

// config holds the resolved, immutable build parameters.
type config struct {
	center     r3.Vec
	somaRadius float64
	step       float64
	radius     float64
	taper      float64
}

func newConfig(opts ...Option) config {
	cfg := config{
		somaRadius: DefaultSomaRadius,
		step:       DefaultStep,
		radius:     DefaultRadius,
	}
	for _, fn := range opts {
		fn(&cfg)
	}

	return cfg
}

// WithCenter places the soma centroid at c (default: origin).
func WithCenter(c r3.Vec) Option {
	return func(cfg *config) { cfg.center = c }
}

// WithSomaRadius sets the soma mean radius. Panics if r <= 0.
func WithSomaRadius(r float64) Option {
	if r <= 0 {
		panic(fmt.Sprintf("builder: WithSomaRadius(%v): radius must be positive", r))
	}

	return func(cfg *config) { cfg.somaRadius = r }
}

// WithStep sets the along-branch sample spacing. Panics if step <= 0.
func WithStep(step float64) Option {
	if step <= 0 {
		panic(fmt.Sprintf("builder: WithStep(%v): step must be positive", step))
	}

	return func(cfg *config) { cfg.step = step }
}

// WithRadius sets the sample radius at each section's first sample.
// Panics if r <= 0.
func WithRadius(r float64) Option {
	if r <= 0 {
		panic(fmt.Sprintf("builder: WithRadius(%v): radius must be positive", r))
	}

	return func(cfg *config) { cfg.radius = r }
}

// WithTaper linearly shrinks sample radii along each section by fraction
// t of the base radius (0 = constant, 0.5 = half radius at the far end).
// Panics if t is outside [0, 1).
func WithTaper(t float64) Option {
	if t < 0 || t >= 1 {
		panic(fmt.Sprintf("builder: WithTaper(%v): taper must be in [0, 1)", t))
	}

	return func(cfg *config) { cfg.taper = t }
}
