package tree

// Clone returns a deep copy of the tree rooted at root: a wholly new,
// disjoint tree sharing no node identity with the original.
//
// The algorithm walks the tree in post-order with an explicit stack,
// keeping a second stack of finished clones. A node's children are always
// cloned and pushed before the node itself, so rewiring a parent is a
// constant-time slice off the tail of the clone stack.
func Clone(root Node) Node {
	if root == nil {
		return nil
	}
	type frame struct {
		node Node
		next int
	}
	stack := []frame{{node: root}}
	var clones []Node
	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		children := f.node.Children()
		if f.next < len(children) {
			child := children[f.next]
			f.next++
			stack = append(stack, frame{node: child})
			continue
		}
		c := f.node.CloneNode()
		if k := len(children); k > 0 {
			cc := make([]Node, k)
			copy(cc, clones[len(clones)-k:])
			clones = clones[:len(clones)-k]
			// The originals already satisfied the node's constraints, and a
			// shallow clone carries the same constraints, so this cannot
			// fail on a well-formed tree.
			if err := c.SetChildren(cc); err != nil {
				panic(err)
			}
		}
		clones = append(clones, c)
		stack = stack[:len(stack)-1]
	}
	return clones[0]
}
