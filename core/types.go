// Package core: type and sentinel declarations for the skeleton data model.
//
// This file declares Sample, SectionType, Section, Arbor, Soma, Morphology,
// sentinel errors, and the NewArbor/NewMorphology constructors. Mutation
// primitives live in methods.go; geometry helpers in geometry.go.

package core

import (
	"errors"
	"sync"

	"gonum.org/v1/gonum/spatial/r3"
)

// Sentinel errors for core skeleton operations.
var (
	// ErrNilArbor indicates a nil *Arbor was passed where one is required.
	ErrNilArbor = errors.New("core: arbor is nil")

	// ErrNilMorphology indicates a nil *Morphology was passed where one is required.
	ErrNilMorphology = errors.New("core: morphology is nil")

	// ErrNilSoma indicates a nil *Soma was passed where one is required.
	ErrNilSoma = errors.New("core: soma is nil")

	// ErrSectionNotFound indicates a section arena index outside [0, NumSections).
	ErrSectionNotFound = errors.New("core: section index out of range")

	// ErrSampleIndex indicates a sample index outside the section's sample range.
	ErrSampleIndex = errors.New("core: sample index out of range")

	// ErrRootExists indicates an attempt to add a second parentless section.
	ErrRootExists = errors.New("core: arbor already has a root section")

	// ErrNegativeRadius indicates a sample with radius < 0.
	ErrNegativeRadius = errors.New("core: sample radius must be non-negative")
)

// NoParent is the Section.Parent value of an arbor's root section.
const NoParent = -1

// AuxiliarySampleID is the provisional Sample.ID carried by corrective
// samples inserted during repair, until a reindex pass assigns sequential
// ids.
const AuxiliarySampleID int64 = -1

// Sample is a point-radius pair along a section.
//
// MorphologyIndex is 0 until Morphology.AssignIndices runs; afterwards it
// holds this sample's position in the global depth-first numbering that
// downstream exporters rely on.
type Sample struct {
	// ID is the loader-assigned identifier, unique within its section
	// after a reindex pass. AuxiliarySampleID marks provisional samples.
	ID int64

	// Point is the sample position.
	Point r3.Vec

	// Radius is the cross-section radius at Point; never negative.
	Radius float64

	// MorphologyIndex is the global 1-based index assigned by
	// Morphology.AssignIndices, or 0 when unassigned.
	MorphologyIndex int
}

// SectionType classifies an arbor and every section within it.
type SectionType int

const (
	// Axon marks axonal arbors.
	Axon SectionType = iota
	// BasalDendrite marks basal dendritic arbors.
	BasalDendrite
	// ApicalDendrite marks apical dendritic arbors.
	ApicalDendrite
)

// String returns the human-readable arbor type name.
func (t SectionType) String() string {
	switch t {
	case Axon:
		return "axon"
	case BasalDendrite:
		return "basal dendrite"
	case ApicalDendrite:
		return "apical dendrite"
	default:
		return "unknown"
	}
}

// Section is a maximal unbranched run of Samples between two
// branch/terminal points — the basic tree node.
//
// Parent and Children are arena indices into the owning Arbor, never
// pointers. Order is the branching order (root = 1). Primary marks the
// child most colinear with its parent's terminal direction; repair uses
// it to break ties at bifurcations.
type Section struct {
	// ID is the loader-assigned section identifier.
	ID int64

	// Index is this section's position in the arbor arena.
	Index int

	// Type matches the owning arbor's type.
	Type SectionType

	// Samples is the ordered point-radius sequence (may be empty).
	Samples []Sample

	// Parent is the arena index of the parent section, or NoParent.
	Parent int

	// Children holds arena indices of child sections in insertion order.
	Children []int

	// Order is the branching order; root sections have Order 1.
	Order int

	// Primary reports whether this section is the primary child at its
	// parent's bifurcation (roots are primary by convention).
	Primary bool
}

// Arbor is a single rooted tree of Sections stored as a flat arena.
// The arena index of a section equals Section.Index; index 0 is the root
// once one exists.
type Arbor struct {
	typ      SectionType
	sections []*Section
}

// NewArbor creates an empty arbor of the given type.
// Complexity: O(1).
func NewArbor(t SectionType) *Arbor {
	return &Arbor{typ: t}
}

// Soma is the cell body: a centroid, a mean radius, and a ring of profile
// points. The kernels in this module reference it only as an intersection
// and distance anchor.
type Soma struct {
	// Centroid is the soma center.
	Centroid r3.Vec

	// MeanRadius is the mean somatic radius.
	MeanRadius float64

	// ProfilePoints is the ordered 2D profile ring, in morphology space.
	ProfilePoints []r3.Vec
}

// Morphology aggregates a Soma with the three arbor collections. It is
// created once at load time, mutated in place by the repair engine, and
// replaced wholesale when a new morphology is loaded.
type Morphology struct {
	// Soma is the cell body; may be nil for somaless fragments.
	Soma *Soma

	apicals []*Arbor
	basals  []*Arbor
	axons   []*Arbor

	// stats caches the census computed by Stats; guarded by statsMu so
	// the parallel read-only fan-outs in analysis/verify stay race-free.
	statsMu sync.Mutex
	stats   *Stats
}

// NewMorphology creates a morphology around soma with no arbors.
// Complexity: O(1).
func NewMorphology(soma *Soma) *Morphology {
	return &Morphology{Soma: soma}
}
