package traverse

import (
	"errors"
	"fmt"

	"github.com/neurokit/skeletal/core"
)

var (
	// ErrNilArbor is returned when a nil *core.Arbor is passed to a walk.
	ErrNilArbor = errors.New("traverse: arbor is nil")

	// ErrNilMorphology is returned when a nil *core.Morphology is passed
	// to a morphology-level walk.
	ErrNilMorphology = errors.New("traverse: morphology is nil")

	// ErrNilVisit is returned when the visit function is nil.
	ErrNilVisit = errors.New("traverse: visit function is nil")
)

// Visit is invoked once per section during a walk. Returning a non-nil
// error aborts the walk; the error is wrapped and propagated.
type Visit func(a *core.Arbor, s *core.Section) error

// Limits restricts a whole-morphology walk to a maximum branching order
// per arbor type. A non-positive limit means unlimited for that type.
type Limits struct {
	Axon   int
	Basal  int
	Apical int
}

// NoLimits places no branching-order restriction on any arbor type.
func NoLimits() Limits { return Limits{} }

// forType resolves the limit applying to arbor type t.
func (l Limits) forType(t core.SectionType) int {
	switch t {
	case core.Axon:
		return l.Axon
	case core.BasalDendrite:
		return l.Basal
	case core.ApicalDendrite:
		return l.Apical
	default:
		return 0
	}
}

// Apply walks the arbor pre-order (parent strictly before children,
// children in insertion order) invoking fn on every section exactly once.
// An empty arbor is a no-op.
func Apply(a *core.Arbor, fn Visit) error {
	return ApplyConditional(a, 0, fn)
}

// ApplyConditional is Apply restricted to sections with branching order
// ≤ maxOrder; deeper subtrees are skipped entirely. maxOrder ≤ 0 means
// no restriction.
func ApplyConditional(a *core.Arbor, maxOrder int, fn Visit) error {
	// 1. Validate input.
	if a == nil {
		return ErrNilArbor
	}
	if fn == nil {
		return ErrNilVisit
	}

	// 2. Walk from the root, if any.
	root := a.Root()
	if root == nil {
		return nil
	}

	return walk(a, root, maxOrder, fn)
}

// walk visits s, then recurses into its children in insertion order.
func walk(a *core.Arbor, s *core.Section, maxOrder int, fn Visit) error {
	// Trim: skip this section and its whole subtree beyond the limit.
	if maxOrder > 0 && s.Order > maxOrder {
		return nil
	}

	if err := fn(a, s); err != nil {
		return fmt.Errorf("traverse: visit section %d: %w", s.ID, err)
	}

	for _, child := range a.ChildrenOf(s) {
		if err := walk(a, child, maxOrder, fn); err != nil {
			return err
		}
	}

	return nil
}

// ApplyMorphology walks every arbor of m — apical dendrites, then basal
// dendrites, then axons — applying fn per section as Apply does.
func ApplyMorphology(m *core.Morphology, fn Visit) error {
	return ApplyMorphologyConditional(m, NoLimits(), fn)
}

// ApplyMorphologyConditional is ApplyMorphology with per-type branching
// order limits.
func ApplyMorphologyConditional(m *core.Morphology, lim Limits, fn Visit) error {
	if m == nil {
		return ErrNilMorphology
	}
	if fn == nil {
		return ErrNilVisit
	}

	for _, a := range m.Arbors() {
		if err := ApplyConditional(a, lim.forType(a.Type()), fn); err != nil {
			return err
		}
	}

	return nil
}

// CountSections reports how many sections a pre-order walk of a visits;
// by the traversal contract this equals the arbor's section count.
func CountSections(a *core.Arbor) int {
	n := 0
	_ = Apply(a, func(*core.Arbor, *core.Section) error {
		n++

		return nil
	})

	return n
}
