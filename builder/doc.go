// Package builder provides reusable functional-options-style building
// blocks for deterministic synthetic morphologies, used by tests,
// examples and benchmarks across this module.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – Option:  a function that mutates the builder config before use.
//     – config:  holds soma radius, sample step, radius profile, center.
//   - Morphology constructors (Constructor implementations):
//     – Path:    one unbranched arbor of n samples along a direction.
//     – Fork:    a trunk splitting into two children at a given angle.
//     – Binary:  a complete binary tree of sections.
//     – Ring:    a soma profile-point ring in the XY plane.
//   - Validation helpers: minimum sample/point counts, angle and step
//     ranges, enforced with sentinel errors at build time.
//
// Guarantees:
//
//   - Determinism: the same options and constructor order always produce
//     an identical morphology — samples, ids, links and orders.
//   - Topological continuity: every child section's first sample
//     coincides with its parent's last sample.
//   - Fast-fail on invalid option parameters via panics in
//     option-constructors; structured sentinel errors for invalid build
//     parameters.
//
// Compose constructors through Build to assemble fixtures:
//
//	m, err := builder.Build(
//		[]builder.Option{builder.WithStep(2), builder.WithRadius(0.5)},
//		builder.Ring(8),
//		builder.Fork(core.BasalDendrite, 4, 3, 60),
//		builder.Path(core.Axon, 5, r3.Vec{Z: -1}),
//	)
package builder
