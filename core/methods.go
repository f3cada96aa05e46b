// Package core: validated mutation and query primitives for the skeleton
// data model.
//
// All operations are deterministic and index-based: sections are addressed
// by arena index, samples by slice index. Mutators validate early and
// return sentinel errors; they never panic at runtime.

package core

// NumSamples reports the number of samples in s.
// Complexity: O(1).
func (s *Section) NumSamples() int { return len(s.Samples) }

// NumSegments reports the number of consecutive sample pairs in s.
// A section with fewer than two samples has zero segments.
// Complexity: O(1).
func (s *Section) NumSegments() int {
	if len(s.Samples) < 2 {
		return 0
	}

	return len(s.Samples) - 1
}

// IsRoot reports whether s has no parent.
func (s *Section) IsRoot() bool { return s.Parent == NoParent }

// IsLeaf reports whether s has no children (a terminal section).
func (s *Section) IsLeaf() bool { return len(s.Children) == 0 }

// FirstSample returns the first sample of s; ok is false when s is empty.
func (s *Section) FirstSample() (Sample, bool) {
	if len(s.Samples) == 0 {
		return Sample{}, false
	}

	return s.Samples[0], true
}

// LastSample returns the last sample of s; ok is false when s is empty.
func (s *Section) LastSample() (Sample, bool) {
	if len(s.Samples) == 0 {
		return Sample{}, false
	}

	return s.Samples[len(s.Samples)-1], true
}

// AppendSample appends smp to s.
// Returns ErrNegativeRadius if smp.Radius < 0.
// Complexity: O(1) amortized.
func (s *Section) AppendSample(smp Sample) error {
	if smp.Radius < 0 {
		return ErrNegativeRadius
	}
	s.Samples = append(s.Samples, smp)

	return nil
}

// InsertSample inserts smp at sample index i, shifting later samples right.
// i == NumSamples() appends. Returns ErrSampleIndex when i is out of range,
// ErrNegativeRadius for a negative radius.
// Complexity: O(n) in the number of samples.
func (s *Section) InsertSample(i int, smp Sample) error {
	if i < 0 || i > len(s.Samples) {
		return ErrSampleIndex
	}
	if smp.Radius < 0 {
		return ErrNegativeRadius
	}
	s.Samples = append(s.Samples, Sample{})
	copy(s.Samples[i+1:], s.Samples[i:])
	s.Samples[i] = smp

	return nil
}

// RemoveSample removes the sample at index i, shifting later samples left.
// Returns ErrSampleIndex when i is out of range.
// Complexity: O(n) in the number of samples.
func (s *Section) RemoveSample(i int) error {
	if i < 0 || i >= len(s.Samples) {
		return ErrSampleIndex
	}
	s.Samples = append(s.Samples[:i], s.Samples[i+1:]...)

	return nil
}

// ReverseSamples reverses the sample order in place. Used by the repair
// engine to apply front-repair logic to a section's far end.
// Complexity: O(n).
func (s *Section) ReverseSamples() {
	for i, j := 0, len(s.Samples)-1; i < j; i, j = i+1, j-1 {
		s.Samples[i], s.Samples[j] = s.Samples[j], s.Samples[i]
	}
}

// ReindexSamples assigns sequential ids 0..n-1 to the samples of s,
// resolving any provisional AuxiliarySampleID markers left by repair.
// Complexity: O(n).
func (s *Section) ReindexSamples() {
	for i := range s.Samples {
		s.Samples[i].ID = int64(i)
	}
}

// Type reports the arbor's fixed section type.
func (a *Arbor) Type() SectionType { return a.typ }

// NumSections reports the number of sections in the arena.
// Complexity: O(1).
func (a *Arbor) NumSections() int { return len(a.sections) }

// Root returns the arbor's root section, or nil for an empty arbor.
// Complexity: O(1).
func (a *Arbor) Root() *Section {
	if len(a.sections) == 0 {
		return nil
	}

	return a.sections[0]
}

// Section returns the section at arena index i.
// Returns ErrSectionNotFound when i is out of range.
// Complexity: O(1).
func (a *Arbor) Section(i int) (*Section, error) {
	if i < 0 || i >= len(a.sections) {
		return nil, ErrSectionNotFound
	}

	return a.sections[i], nil
}

// Sections returns a snapshot slice of all sections in arena order.
// The sections themselves are shared, not copied.
// Complexity: O(n).
func (a *Arbor) Sections() []*Section {
	out := make([]*Section, len(a.sections))
	copy(out, a.sections)

	return out
}

// ParentOf returns the parent of s, or nil for the root.
func (a *Arbor) ParentOf(s *Section) *Section {
	if s == nil || s.Parent == NoParent || s.Parent >= len(a.sections) {
		return nil
	}

	return a.sections[s.Parent]
}

// ChildrenOf returns the children of s in insertion order.
// Complexity: O(k) in the number of children.
func (a *Arbor) ChildrenOf(s *Section) []*Section {
	if s == nil {
		return nil
	}
	out := make([]*Section, 0, len(s.Children))
	for _, ci := range s.Children {
		if ci >= 0 && ci < len(a.sections) {
			out = append(out, a.sections[ci])
		}
	}

	return out
}

// AddSection appends a new section to the arena and links it under parent.
// Pass parent == NoParent for the root; only one root is allowed.
// The branching order is derived from the parent (root = 1).
//
// Returns ErrRootExists for a second root, ErrSectionNotFound for an
// out-of-range parent index, ErrNegativeRadius for any negative sample
// radius.
// Complexity: O(len(samples)).
func (a *Arbor) AddSection(parent int, id int64, samples []Sample) (*Section, error) {
	// 1. Validate the parent link.
	if parent == NoParent {
		if len(a.sections) != 0 {
			return nil, ErrRootExists
		}
	} else if parent < 0 || parent >= len(a.sections) {
		return nil, ErrSectionNotFound
	}

	// 2. Validate sample radii before mutating anything.
	for _, smp := range samples {
		if smp.Radius < 0 {
			return nil, ErrNegativeRadius
		}
	}

	// 3. Derive the branching order from the parent.
	order := 1
	if parent != NoParent {
		order = a.sections[parent].Order + 1
	}

	// 4. Allocate and link.
	s := &Section{
		ID:      id,
		Index:   len(a.sections),
		Type:    a.typ,
		Samples: append([]Sample(nil), samples...),
		Parent:  parent,
		Order:   order,
		Primary: parent == NoParent, // roots are primary by convention
	}
	a.sections = append(a.sections, s)
	if parent != NoParent {
		a.sections[parent].Children = append(a.sections[parent].Children, s.Index)
	}

	return s, nil
}

// MarkPrimaryChildren walks the arena and, at every branch point, flags
// the child whose initial direction is most colinear with the parent's
// terminal direction as primary, clearing the flag on its siblings.
// Sections without enough samples to define a direction fall back to
// first-child-wins. Roots stay primary.
// Complexity: O(n) sections.
func (a *Arbor) MarkPrimaryChildren() {
	for _, parent := range a.sections {
		if len(parent.Children) == 0 {
			continue
		}

		// Terminal direction of the parent, from its last segment.
		parentDir, parentOK := terminalDirection(parent)

		best, bestCos := -1, 0.0
		for _, ci := range parent.Children {
			child := a.sections[ci]
			child.Primary = false

			// Undefined directions lose to any defined one; the first
			// child wins when nothing is defined.
			cos := -2.0
			if childDir, childOK := initialDirection(child); parentOK && childOK {
				cos = cosBetween(parentDir, childDir)
			}
			if best == -1 || cos > bestCos {
				best, bestCos = ci, cos
			}
		}
		if best >= 0 {
			a.sections[best].Primary = true
		}
	}
}

// AddArbor attaches a to the collection matching its type and invalidates
// the cached census. Returns ErrNilMorphology or ErrNilArbor.
// Complexity: O(1).
func (m *Morphology) AddArbor(a *Arbor) error {
	if m == nil {
		return ErrNilMorphology
	}
	if a == nil {
		return ErrNilArbor
	}

	switch a.typ {
	case ApicalDendrite:
		m.apicals = append(m.apicals, a)
	case BasalDendrite:
		m.basals = append(m.basals, a)
	default:
		m.axons = append(m.axons, a)
	}
	m.InvalidateStats()

	return nil
}

// Axons returns a snapshot of the axonal arbors.
func (m *Morphology) Axons() []*Arbor { return snapshot(m.axons) }

// BasalDendrites returns a snapshot of the basal dendritic arbors.
func (m *Morphology) BasalDendrites() []*Arbor { return snapshot(m.basals) }

// ApicalDendrites returns a snapshot of the apical dendritic arbors.
func (m *Morphology) ApicalDendrites() []*Arbor { return snapshot(m.apicals) }

// Arbors returns every arbor in the fixed traversal order used across this
// module: apical dendrites, then basal dendrites, then axons.
// Complexity: O(n).
func (m *Morphology) Arbors() []*Arbor {
	out := make([]*Arbor, 0, len(m.apicals)+len(m.basals)+len(m.axons))
	out = append(out, m.apicals...)
	out = append(out, m.basals...)
	out = append(out, m.axons...)

	return out
}

func snapshot(arbors []*Arbor) []*Arbor {
	out := make([]*Arbor, len(arbors))
	copy(out, arbors)

	return out
}
