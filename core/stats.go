// Package core: cached whole-morphology census.

package core

// Stats is a cheap census of a morphology, cached until the next
// structural mutation (AddArbor or a repair pass) invalidates it.
type Stats struct {
	// Arbors is the total arbor count across all three collections.
	Arbors int

	// Sections is the total section count.
	Sections int

	// Samples is the total sample count.
	Samples int

	// MaxOrderAxon, MaxOrderBasal and MaxOrderApical are the maximum
	// branching orders observed per arbor type (0 when the type is absent).
	MaxOrderAxon   int
	MaxOrderBasal  int
	MaxOrderApical int
}

// Stats returns the cached census, computing it on first use.
// Safe for concurrent readers.
// Complexity: O(n) sections on a cache miss, O(1) after.
func (m *Morphology) Stats() Stats {
	m.statsMu.Lock()
	defer m.statsMu.Unlock()

	if m.stats == nil {
		st := computeStats(m)
		m.stats = &st
	}

	return *m.stats
}

// InvalidateStats drops the cached census; the next Stats call recomputes
// it. Mutating passes (repair) call this after changing the tree.
func (m *Morphology) InvalidateStats() {
	m.statsMu.Lock()
	m.stats = nil
	m.statsMu.Unlock()
}

func computeStats(m *Morphology) Stats {
	var st Stats
	for _, a := range m.Arbors() {
		st.Arbors++
		maxOrder := 0
		for _, s := range a.sections {
			st.Sections++
			st.Samples += len(s.Samples)
			if s.Order > maxOrder {
				maxOrder = s.Order
			}
		}
		switch a.typ {
		case Axon:
			if maxOrder > st.MaxOrderAxon {
				st.MaxOrderAxon = maxOrder
			}
		case BasalDendrite:
			if maxOrder > st.MaxOrderBasal {
				st.MaxOrderBasal = maxOrder
			}
		case ApicalDendrite:
			if maxOrder > st.MaxOrderApical {
				st.MaxOrderApical = maxOrder
			}
		}
	}

	return st
}
