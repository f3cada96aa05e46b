// Package core: the global morphology-index assignment pass.
//
// Downstream exporters of tree-structured sample files depend on this
// numbering: every sample receives a monotonically increasing 1-based
// index — the soma first, then each arbor depth-first — and a parent
// index resolvable via ParentIndex (previous sample of the section, or
// the parent section's last sample at a branch boundary, or the soma for
// arbor roots).

package core

// SomaIndex is the fixed morphology index of the soma's representative
// sample; sample numbering starts right after it.
const SomaIndex = 1

// AssignIndices walks the morphology — soma first, then each arbor in
// Arbors() order, sections pre-order, samples in sequence — assigning a
// monotonically increasing MorphologyIndex to every sample. It returns
// the last index assigned (== total numbered samples, soma included).
// Returns 0 for a nil morphology.
// Complexity: O(n) samples.
func (m *Morphology) AssignIndices() int {
	if m == nil {
		return 0
	}

	next := SomaIndex + 1
	for _, a := range m.Arbors() {
		root := a.Root()
		if root == nil {
			continue
		}
		next = assignSectionIndices(a, root, next)
	}

	return next - 1
}

// assignSectionIndices numbers s's samples starting at next, then recurses
// into s's children in insertion order; returns the next free index.
func assignSectionIndices(a *Arbor, s *Section, next int) int {
	for i := range s.Samples {
		s.Samples[i].MorphologyIndex = next
		next++
	}
	for _, child := range a.ChildrenOf(s) {
		next = assignSectionIndices(a, child, next)
	}

	return next
}

// ParentIndex resolves the parent morphology index of sample i of section
// s: the previous sample of s, or — for a section's first sample — the
// parent section's last sample, or SomaIndex for an arbor root. Returns 0
// when indices have not been assigned or the parent has no samples.
// Complexity: O(1).
func (m *Morphology) ParentIndex(a *Arbor, s *Section, i int) int {
	if m == nil || a == nil || s == nil || i < 0 || i >= len(s.Samples) {
		return 0
	}
	if i > 0 {
		return s.Samples[i-1].MorphologyIndex
	}
	if s.IsRoot() {
		return SomaIndex
	}
	parent := a.ParentOf(s)
	if parent == nil {
		return 0
	}
	last, ok := parent.LastSample()
	if !ok {
		return 0
	}

	return last.MorphologyIndex
}
