package walk

import (
	"fmt"

	"github.com/featforge/treekit/problem"
	"github.com/featforge/treekit/tree"
)

// Action is the control value a visitor returns from each hook.
type Action int

const (
	// Continue proceeds to, or resumes, visiting children.
	Continue Action = iota
	// SkipChildren treats the current node as if it had no remaining
	// children. Its LastVisit still fires.
	SkipChildren
	// SkipAll terminates the whole traversal immediately. This is a normal
	// early-termination path, not an error; whatever the visitor has
	// accumulated so far stands.
	SkipAll
	// Fail aborts the traversal and reports it as a failure.
	Fail
)

func (a Action) String() string {
	switch a {
	case Continue:
		return "Continue"
	case SkipChildren:
		return "SkipChildren"
	case SkipAll:
		return "SkipAll"
	case Fail:
		return "Fail"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Path is the root-to-current node sequence maintained during a traversal.
// Its length is at least 1; the last element is the currently visited node.
// The slice is reused between hook calls: visitors that retain it must copy.
type Path []tree.Node

// Current returns the visited node, the last path element.
func (p Path) Current() tree.Node {
	return p[len(p)-1]
}

// Parent returns the visited node's parent in this traversal, or nil at the
// root.
func (p Path) Parent() tree.Node {
	if len(p) < 2 {
		return nil
	}
	return p[len(p)-2]
}

// Depth returns the number of edges between the root and the visited node.
func (p Path) Depth() int {
	return len(p) - 1
}

// Visitor is the callback contract for Traverse. FirstVisit fires once per
// node before its children, LastVisit once after all of them.
type Visitor interface {
	FirstVisit(path Path) Action
	LastVisit(path Path) Action
}

// InVisitor opts a visitor into in-order mode: Visit fires once between
// every two consecutive children of a node, and not at all for leaves.
type InVisitor interface {
	Visitor
	Visit(path Path) Action
}

// NodeValidator is an optional pre-check consulted immediately before a
// node's FirstVisit. Error-severity problems abort the traversal; Warning
// and Info problems are collected and reported to the caller.
type NodeValidator interface {
	ValidateNode(path Path) []problem.Problem
}

// Resetter is implemented by visitors with per-traversal state. Every
// traversal entry point calls Reset before running, so a visitor instance
// is reusable across traversals.
type Resetter interface {
	Reset()
}
