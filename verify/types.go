// Package verify: options and sentinel errors.

package verify

import (
	"errors"

	"github.com/neurokit/skeletal/report"
)

var (
	// ErrNilArbor is returned when a nil *core.Arbor is passed to Arbor.
	ErrNilArbor = errors.New("verify: arbor is nil")

	// ErrNilMorphology is returned when a nil *core.Morphology is passed
	// to Morphology.
	ErrNilMorphology = errors.New("verify: morphology is nil")
)

// DefaultDuplicateThreshold is the consecutive-sample distance below
// which two samples are flagged as near-duplicates.
const DefaultDuplicateThreshold = 1.0

// DefaultProfilePointRadius is the fixed small radius assumed for soma
// profile points in the projected intersection test.
const DefaultProfilePointRadius = 0.1

// Option configures a verification pass.
type Option func(*options)

type options struct {
	duplicateThreshold float64
	profilePointRadius float64
	parallel           bool
	sink               report.Sink
}

func defaultOptions() options {
	return options{
		duplicateThreshold: DefaultDuplicateThreshold,
		profilePointRadius: DefaultProfilePointRadius,
	}
}

// WithDuplicateThreshold overrides the near-duplicate sample distance.
func WithDuplicateThreshold(d float64) Option {
	return func(o *options) { o.duplicateThreshold = d }
}

// WithProfilePointRadius overrides the radius assumed for soma profile
// points in the pairwise intersection test.
func WithProfilePointRadius(r float64) Option {
	return func(o *options) { o.profilePointRadius = r }
}

// WithParallel runs the per-arbor structural checks concurrently, one
// goroutine per arbor. The sink must then be safe for concurrent use.
func WithParallel() Option {
	return func(o *options) { o.parallel = true }
}

// WithSink routes findings to sink. Nil (the default) discards them.
func WithSink(sink report.Sink) Option {
	return func(o *options) { o.sink = sink }
}
