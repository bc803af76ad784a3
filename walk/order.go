package walk

import (
	"iter"

	"github.com/featforge/treekit/tree"
)

// PreOrder returns the tree as a lazy sequence: each node before its
// children, depth-first, left to right. The sequence is finite and
// restartable; ranging over it again walks the tree again.
func PreOrder(root tree.Node) iter.Seq[tree.Node] {
	return func(yield func(tree.Node) bool) {
		if root == nil {
			return
		}
		stack := []tree.Node{root}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n) {
				return
			}
			children := n.Children()
			// Reverse push keeps left-to-right order on the stack.
			for i := len(children) - 1; i >= 0; i-- {
				stack = append(stack, children[i])
			}
		}
	}
}

// PostOrder returns the tree as a lazy sequence: each node after all of its
// children.
func PostOrder(root tree.Node) iter.Seq[tree.Node] {
	return func(yield func(tree.Node) bool) {
		if root == nil {
			return
		}
		type frame struct {
			node tree.Node
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
			if !yield(f.node) {
				return
			}
			stack = stack[:len(stack)-1]
		}
	}
}

// InnerOrder generalizes binary in-order traversal to N-ary nodes. A leaf
// is yielded once. A node with one child is yielded once, before the child.
// A node with k > 1 children is yielded k-1 times, once in each gap between
// consecutive child subtrees.
func InnerOrder(root tree.Node) iter.Seq[tree.Node] {
	return func(yield func(tree.Node) bool) {
		if root == nil {
			return
		}
		type frame struct {
			node tree.Node
			next int
		}
		stack := []frame{{node: root}}
		for len(stack) > 0 {
			f := &stack[len(stack)-1]
			children := f.node.Children()
			if len(children) == 0 {
				if !yield(f.node) {
					return
				}
				stack = stack[:len(stack)-1]
				continue
			}
			if f.next < len(children) {
				if f.next >= 1 || len(children) == 1 {
					if !yield(f.node) {
						return
					}
				}
				child := children[f.next]
				f.next++
				stack = append(stack, frame{node: child})
				continue
			}
			stack = stack[:len(stack)-1]
		}
	}
}

// LevelOrder returns the tree as a lazy sequence in breadth-first order,
// using a FIFO queue seeded with the root.
func LevelOrder(root tree.Node) iter.Seq[tree.Node] {
	return func(yield func(tree.Node) bool) {
		if root == nil {
			return
		}
		queue := []tree.Node{root}
		for head := 0; head < len(queue); head++ {
			n := queue[head]
			if !yield(n) {
				return
			}
			queue = append(queue, n.Children()...)
		}
	}
}
