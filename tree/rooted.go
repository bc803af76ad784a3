package tree

// RootedBase extends Base with a non-owning parent back-reference. The
// reference is maintained transactionally by the Base mutators: attaching a
// node sets it, detaching clears it, and attaching a node that already has a
// parent first detaches it from the old parent. The reference is used only
// for ancestry queries and never extends the parent's lifetime.
type RootedBase struct {
	Base
	parent Node
}

// Parent returns the node's parent, or nil for a root.
func (b *RootedBase) Parent() Node {
	return b.parent
}

func (b *RootedBase) setParent(p Node) {
	b.parent = p
}

// Root follows parent references up to the root of the tree containing this
// node. Acyclicity is a construction invariant; a cyclic tree makes Root
// loop forever.
func (b *RootedBase) Root() Node {
	n := b.self
	for {
		r, ok := n.(Rooted)
		if !ok {
			return n
		}
		p := r.Parent()
		if p == nil {
			return n
		}
		n = p
	}
}

// Depth returns the number of edges between this node and its root.
func (b *RootedBase) Depth() int {
	d := 0
	n := Node(b.self)
	for {
		r, ok := n.(Rooted)
		if !ok {
			return d
		}
		p := r.Parent()
		if p == nil {
			return d
		}
		d++
		n = p
	}
}

// HasAncestor reports whether ancestor appears on the parent chain of this
// node. A node is not its own ancestor.
func (b *RootedBase) HasAncestor(ancestor Node) bool {
	n := Node(b.self)
	for {
		r, ok := n.(Rooted)
		if !ok {
			return false
		}
		p := r.Parent()
		if p == nil {
			return false
		}
		if p == ancestor {
			return true
		}
		n = p
	}
}
