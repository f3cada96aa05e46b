// Package analysis: the kernel invocation surface.
//
// Invoke is the sole entry point reporting/UI layers use to obtain
// statistics: it applies one kernel per arbor and one aggregator across
// all per-arbor values, yielding the uniform Result shape.

package analysis

import (
	"golang.org/x/sync/errgroup"

	"github.com/neurokit/skeletal/core"
)

// Invoke evaluates k once per arbor of m — apical dendrites, basal
// dendrites, axons — and reduces every per-arbor value with agg into
// Result.Morphology.
//
// With WithParallel the per-arbor evaluations fan out on an errgroup;
// since kernels only read their own arbor and write a private slot, the
// Result is identical to the sequential run.
func Invoke(m *core.Morphology, k Kernel, agg Aggregator, opts ...InvokeOption) (Result, error) {
	// 1. Validate input.
	if m == nil {
		return Result{}, ErrNilMorphology
	}
	if k == nil {
		return Result{}, ErrNilKernel
	}
	if agg == nil {
		return Result{}, ErrNilAggregator
	}

	// 2. Resolve options.
	o := defaultInvokeOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Evaluate the kernel per arbor into pre-sized slots.
	res := Result{
		Apicals: make([]float64, len(m.ApicalDendrites())),
		Basals:  make([]float64, len(m.BasalDendrites())),
		Axons:   make([]float64, len(m.Axons())),
	}
	evaluate(m, o, func(a *core.Arbor, slot *float64) {
		*slot = k(a, o.sink)
	}, &res)

	// 4. Aggregate across every per-arbor value.
	all := make([]float64, 0, len(res.Apicals)+len(res.Basals)+len(res.Axons))
	all = append(all, res.Apicals...)
	all = append(all, res.Basals...)
	all = append(all, res.Axons...)
	res.Morphology = agg(all)

	return res, nil
}

// InvokeDistribution evaluates a distribution kernel per arbor; the
// morphology-level sequence is the concatenation of every per-arbor
// sequence in traversal order (apical, basal, axon).
func InvokeDistribution(m *core.Morphology, k DistributionKernel, opts ...InvokeOption) (DistributionResult, error) {
	if m == nil {
		return DistributionResult{}, ErrNilMorphology
	}
	if k == nil {
		return DistributionResult{}, ErrNilKernel
	}

	o := defaultInvokeOptions()
	for _, fn := range opts {
		fn(&o)
	}

	res := DistributionResult{
		Apicals: make([][]float64, len(m.ApicalDendrites())),
		Basals:  make([][]float64, len(m.BasalDendrites())),
		Axons:   make([][]float64, len(m.Axons())),
	}

	run := func(arbors []*core.Arbor, slots [][]float64) {
		if o.parallel {
			var g errgroup.Group
			for i, a := range arbors {
				i, a := i, a
				g.Go(func() error {
					slots[i] = k(a, o.sink)

					return nil
				})
			}
			_ = g.Wait() // kernels are total; no error can surface
		} else {
			for i, a := range arbors {
				slots[i] = k(a, o.sink)
			}
		}
	}
	run(m.ApicalDendrites(), res.Apicals)
	run(m.BasalDendrites(), res.Basals)
	run(m.Axons(), res.Axons)

	for _, group := range [][][]float64{res.Apicals, res.Basals, res.Axons} {
		for _, seq := range group {
			res.Morphology = append(res.Morphology, seq...)
		}
	}

	return res, nil
}

// evaluate runs eval once per arbor, sequentially or on an errgroup,
// writing into the matching Result slot.
func evaluate(m *core.Morphology, o invokeOptions, eval func(a *core.Arbor, slot *float64), res *Result) {
	run := func(arbors []*core.Arbor, slots []float64) {
		if o.parallel {
			var g errgroup.Group
			for i, a := range arbors {
				i, a := i, a
				g.Go(func() error {
					eval(a, &slots[i])

					return nil
				})
			}
			_ = g.Wait() // kernels are total; no error can surface
		} else {
			for i, a := range arbors {
				eval(a, &slots[i])
			}
		}
	}
	run(m.ApicalDendrites(), res.Apicals)
	run(m.BasalDendrites(), res.Basals)
	run(m.Axons(), res.Axons)
}
