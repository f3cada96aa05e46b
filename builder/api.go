// Package builder: the public Build entry point.
//
// Design contract (strict):
//   - One orchestrator: Build(bopts, cons...). Creates the morphology,
//     resolves the config, runs constructors in order.
//   - All public factories are declared and implemented in impl.go.
//   - Functional options resolve into an immutable config (no global
//     state); same inputs and constructor order ⇒ identical morphology.
//   - Safety: never panic at build time; return sentinel errors.

package builder

import (
	"fmt"

	"github.com/neurokit/skeletal/core"
)

// Constructor applies one deterministic morphology mutation using the
// resolved config. Constructors validate parameters early and return
// sentinel errors; they never panic.
type Constructor func(m *core.Morphology, cfg config) error

// Build creates a new morphology around a soma placed per the options,
// then applies all constructors in order. Any constructor error is
// wrapped with "Build: %w" and returned immediately; no partial cleanup
// is attempted.
//
// Complexity: option resolution O(len(bopts)); construction is the sum
// of the constructor costs.
func Build(bopts []Option, cons ...Constructor) (*core.Morphology, error) {
	// 1. Resolve the deterministic config from functional options.
	cfg := newConfig(bopts...)

	// 2. Seed the morphology with its soma.
	m := core.NewMorphology(&core.Soma{
		Centroid:   cfg.center,
		MeanRadius: cfg.somaRadius,
	})

	// 3. Apply each constructor sequentially to preserve deterministic
	// order and effects.
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(m, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return m, nil
}
