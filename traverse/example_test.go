package traverse_test

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/neurokit/skeletal/core"
	"github.com/neurokit/skeletal/traverse"
)

// ExampleApply prints section ids in pre-order: parents strictly before
// children, children in insertion order.
func ExampleApply() {
	a := core.NewArbor(core.BasalDendrite)
	root, _ := a.AddSection(core.NoParent, 0, []core.Sample{
		{Point: r3.Vec{}, Radius: 1},
		{Point: r3.Vec{Z: 1}, Radius: 1},
	})
	left, _ := a.AddSection(root.Index, 1, nil)
	_, _ = a.AddSection(root.Index, 2, nil)
	_, _ = a.AddSection(left.Index, 3, nil)

	_ = traverse.Apply(a, func(_ *core.Arbor, s *core.Section) error {
		fmt.Println(s.ID)

		return nil
	})

	// Output:
	// 0
	// 1
	// 3
	// 2
}
