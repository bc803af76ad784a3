package tree

import (
	"slices"
	"strings"
)

// CompareDisplay orders nodes by their display form. It is the default sort
// comparator; sorting by display form gives a canonical child order useful
// for structural comparison.
func CompareDisplay(a, b Node) int {
	return strings.Compare(DisplayName(a), DisplayName(b))
}

// Sort sorts every child list in the tree in place, stably, using
// CompareDisplay. Sorting is idempotent.
func Sort(root Node) {
	SortFunc(root, CompareDisplay)
}

// SortFunc sorts every child list in the tree in place, stably, using
// compare. Children are processed bottom-up with an explicit stack, so a
// node's own list is reordered only after all descendant lists are already
// sorted.
func SortFunc(root Node, compare func(a, b Node) int) {
	if root == nil {
		return
	}
	type frame struct {
		node Node
		next int
	}
	stack := []frame{{node: root}}
	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		children := f.node.Children()
		if f.next < len(children) {
			child := children[f.next]
			f.next++
			stack = append(stack, frame{node: child})
			continue
		}
		if len(children) > 1 {
			sorted := slices.Clone(children)
			slices.SortStableFunc(sorted, compare)
			// Reattach through SetChildren so rooted parent references stay
			// consistent. The same nodes go back in, so validation holds.
			if err := f.node.SetChildren(sorted); err != nil {
				panic(err)
			}
		}
		stack = stack[:len(stack)-1]
	}
}
