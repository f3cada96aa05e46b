// Package repair: the extent-removal helper shared by every repair step.

package repair

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/neurokit/skeletal/core"
)

// RemoveSamplesInsideExtent removes every sample of s whose distance to
// center is below radius, optionally sparing the first sample, and
// returns the count removed. Sample order is otherwise preserved.
// Complexity: O(n) samples.
func RemoveSamplesInsideExtent(s *core.Section, center r3.Vec, radius float64, keepFirst bool) int {
	if s == nil || len(s.Samples) == 0 {
		return 0
	}

	kept := s.Samples[:0]
	removed := 0
	for i, smp := range s.Samples {
		if i == 0 && keepFirst {
			kept = append(kept, smp)
			continue
		}
		if core.Distance(smp.Point, center) < radius {
			removed++
			continue
		}
		kept = append(kept, smp)
	}
	s.Samples = kept

	return removed
}
