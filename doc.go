// Package skeletal is your in-memory toolkit for reconstructing, repairing,
// and analyzing skeletal trees of branching biological structures — neuronal
// and glial arbors, vasculature — from connected point-radius samples.
//
// 🚀 What is skeletal?
//
//	A pure-Go library that brings together:
//		• Core primitives: samples, sections, arbors, somata and whole morphologies,
//		  stored as a flat per-arbor arena with index links (no reference cycles)
//		• Traversals: pre-order combinators over arbors and morphologies,
//		  with branching-order trimming per arbor type
//		• Geometric kernels: segment/section/arbor length, tapered-cylinder
//		  surface area, frustum volume, branching statistics, path distances
//		• Repair: resampling heuristics that remove degenerate samples and
//		  insert corrective ones near branch points
//		• Verification: soma-projected branch intersection tests and
//		  structural anomaly checks, read-only and diagnostic
//
// ✨ Why choose skeletal?
//
//   - Total functions – kernels never panic; degenerate input yields zero
//     values plus a diagnostic through an injected report.Sink
//   - Deterministic – identical trees and options produce identical results,
//     sequentially or with the parallel per-arbor fan-out
//   - Pure Go – no cgo; 3D algebra via gonum's spatial/r3
//   - Extensible – visit hooks, functional options, pluggable sinks
//
// Under the hood, everything is organized under seven subpackages:
//
//	core/     — Sample, Section, Arbor, Soma, Morphology, bounds & indexing
//	traverse/ — pre-order traversal combinators
//	analysis/ — geometric kernels, aggregators and the Invoke entry point
//	repair/   — the resampling/repair engine
//	verify/   — intersection tests and structural verification
//	report/   — diagnostics model and sinks (collector, slog adapter)
//	builder/  — deterministic synthetic morphology fixtures
//
// Quick ASCII example:
//
//	soma ●
//	     │ root section (order 1)
//	     ├──────●──────●
//	                  ╱ ╲
//	    primary child ╱   ╲ secondary child (order 2)
//	                 ●     ●
//
// Dive into DESIGN.md for the data-flow between loader, verification,
// repair and analysis, and into each package's doc.go for full contracts.
//
//	go get github.com/neurokit/skeletal
package skeletal
