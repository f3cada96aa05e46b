// Package repair: options, sentinel errors and tuning constants.

package repair

import (
	"errors"
	"math"

	"github.com/neurokit/skeletal/report"
)

var (
	// ErrNilArbor is returned when a nil *core.Arbor is passed to Arbor.
	ErrNilArbor = errors.New("repair: arbor is nil")

	// ErrNilMorphology is returned when a nil *core.Morphology is passed
	// to Morphology.
	ErrNilMorphology = errors.New("repair: morphology is nil")

	// ErrUnrepairableSection indicates a front repair that would have to
	// remove the only sample of a section. The failure is scoped to the
	// offending arbor; sibling arbors are unaffected.
	ErrUnrepairableSection = errors.New("repair: section cannot be resampled without destroying it")

	// ErrZeroDirection indicates coincident samples left no usable
	// direction vector for the corrective sample.
	ErrZeroDirection = errors.New("repair: zero-length direction vector")
)

const (
	// MinSecondaryAngle and MaxSecondaryAngle bound, in degrees, the
	// angle window between a secondary section and its primary sibling
	// inside which no outward push is needed. Angles below/above mean
	// near-parallel/near-antiparallel branches — a collision risk.
	MinSecondaryAngle = 30.0
	MaxSecondaryAngle = 150.0

	// SecondaryDeltaMargin is the additive safety margin of the
	// secondary resampling distance.
	SecondaryDeltaMargin = 0.5

	// secondaryPushFactor scales the primary's first radius into the
	// outward displacement applied to a colliding secondary's first two
	// points.
	secondaryPushFactor = 2.0
)

// PrimaryResamplingDistance returns the front-repair extent for a section
// whose first sample has the given radius: radius·√2.
func PrimaryResamplingDistance(radius float64) float64 {
	return radius * math.Sqrt2
}

// SecondaryResamplingDistance returns the extent used to resample a
// secondary section diverging from its primary sibling at angleDeg:
// radius·√2/tan(angle/2) + SecondaryDeltaMargin. A degenerate angle
// (tan ≤ 0) falls back to the primary distance plus the margin.
func SecondaryResamplingDistance(radius, angleDeg float64) float64 {
	t := math.Tan(angleDeg / 2 * math.Pi / 180)
	if t <= 0 {
		return PrimaryResamplingDistance(radius) + SecondaryDeltaMargin
	}

	return radius*math.Sqrt2/t + SecondaryDeltaMargin
}

// Option configures a repair pass.
type Option func(*options)

type options struct {
	secondary bool
	sink      report.Sink
}

func defaultOptions() options {
	return options{secondary: false, sink: nil}
}

// WithSecondaryRepair enables secondary-section front repair, which is
// disabled by default.
func WithSecondaryRepair() Option {
	return func(o *options) { o.secondary = true }
}

// WithSink routes repair diagnostics (removed/inserted samples, empty
// sections, degenerate directions) to sink. Nil discards them.
func WithSink(sink report.Sink) Option {
	return func(o *options) { o.sink = sink }
}
