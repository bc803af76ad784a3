package walk

import "github.com/featforge/treekit/tree"

// DepthCounter measures the number of levels in a tree: 1 for a single
// node, 0 for an empty traversal.
type DepthCounter struct {
	depth int
}

func (c *DepthCounter) Reset() {
	c.depth = 0
}

func (c *DepthCounter) FirstVisit(path Path) Action {
	if len(path) > c.depth {
		c.depth = len(path)
	}
	return Continue
}

func (c *DepthCounter) LastVisit(Path) Action {
	return Continue
}

// Depth returns the level count observed by the last traversal.
func (c *DepthCounter) Depth() int {
	return c.depth
}

// Pruner cuts a tree down to DepthLimit levels: every node on the deepest
// retained level has its children detached and discarded. DepthLimit 1
// leaves only the root.
type Pruner struct {
	DepthLimit int

	err error
}

func (p *Pruner) Reset() {
	p.err = nil
}

func (p *Pruner) FirstVisit(path Path) Action {
	if len(path) < p.DepthLimit {
		return Continue
	}
	if err := path.Current().SetChildren(nil); err != nil {
		// Arity constraints can forbid a childless node; keep the subtree
		// and report via Err.
		p.err = err
		return SkipChildren
	}
	return SkipChildren
}

func (p *Pruner) LastVisit(Path) Action {
	return Continue
}

// Err returns the first pruning failure, if any.
func (p *Pruner) Err() error {
	return p.err
}

// LastFunc adapts a plain function to a post-order visitor: fn fires once
// per node, after its children.
func LastFunc(fn func(path Path) Action) Visitor {
	return lastFunc(fn)
}

type lastFunc func(path Path) Action

func (lastFunc) FirstVisit(Path) Action {
	return Continue
}

func (fn lastFunc) LastVisit(path Path) Action {
	return fn(path)
}

// CountNodes returns the number of nodes in the tree rooted at root.
func CountNodes(root tree.Node) int {
	n := 0
	for range PreOrder(root) {
		n++
	}
	return n
}
