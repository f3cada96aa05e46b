// Package analysis: kernel/aggregator contracts, result shapes, invoke
// options and sentinel errors.

package analysis

import (
	"errors"

	"github.com/neurokit/skeletal/core"
	"github.com/neurokit/skeletal/report"
)

var (
	// ErrNilMorphology is returned by Invoke for a nil morphology.
	ErrNilMorphology = errors.New("analysis: morphology is nil")

	// ErrNilKernel is returned by Invoke for a nil kernel function.
	ErrNilKernel = errors.New("analysis: kernel is nil")

	// ErrNilAggregator is returned by Invoke for a nil aggregator function.
	ErrNilAggregator = errors.New("analysis: aggregator is nil")
)

// ZeroLengthTolerance is the length below which a segment counts as
// zero-length for ArborNumberOfZeroLengthSegments.
const ZeroLengthTolerance = 1e-5

// Kernel maps one arbor to a scalar, reporting degenerate geometry
// through sink (which may be nil). Kernels are total functions: they
// never panic and never return errors.
type Kernel func(a *core.Arbor, sink report.Sink) float64

// DistributionKernel maps one arbor to a per-section value sequence in
// pre-order traversal order.
type DistributionKernel func(a *core.Arbor, sink report.Sink) []float64

// Aggregator reduces per-arbor values to a single morphology-level
// scalar. All aggregators return 0 for an empty input.
type Aggregator func(values []float64) float64

// Result is the uniform output shape of every kernel invocation: one
// entry per arbor (in each collection's insertion order) plus the
// aggregated morphology-level value.
type Result struct {
	// Morphology is the aggregator applied across every per-arbor value.
	Morphology float64

	// Apicals, Basals and Axons hold the kernel value of each arbor in
	// the corresponding collection.
	Apicals []float64
	Basals  []float64
	Axons   []float64
}

// DistributionResult is Result's shape for distribution kernels: one
// per-section sequence per arbor, plus the flattened morphology-level
// sequence in the fixed traversal order (apical, basal, axon).
type DistributionResult struct {
	Morphology []float64

	Apicals [][]float64
	Basals  [][]float64
	Axons   [][]float64
}

// InvokeOption configures Invoke and InvokeDistribution.
type InvokeOption func(*invokeOptions)

type invokeOptions struct {
	parallel bool
	sink     report.Sink
}

func defaultInvokeOptions() invokeOptions {
	return invokeOptions{parallel: false, sink: nil}
}

// WithParallel evaluates the kernel across arbors concurrently, one
// goroutine per arbor. Arbors are independent read-only units, so the
// Result is identical to a sequential run. The sink must then be safe for
// concurrent use (report.Collector and report.SlogSink are).
func WithParallel() InvokeOption {
	return func(o *invokeOptions) { o.parallel = true }
}

// WithSink routes kernel diagnostics to sink. Nil (the default) discards
// them.
func WithSink(sink report.Sink) InvokeOption {
	return func(o *invokeOptions) { o.sink = sink }
}
