// Package walk drives visitors and lazy sequences over trees built from
// tree.Node values.
//
// # Traversal
//
// Traverse runs a single iterative depth-first algorithm over a tree,
// calling a Visitor's FirstVisit hook before a node's children and its
// LastVisit hook after them. Visitors that also implement InVisitor
// additionally receive a Visit call between every two consecutive children.
// Each hook returns an Action controlling the traversal: Continue,
// SkipChildren, SkipAll (normal early termination), or Fail (abort with an
// error).
//
// Visitors that implement NodeValidator have each node checked immediately
// before its FirstVisit; an Error-severity problem aborts the traversal and
// surfaces the collected problems.
//
// # Sequences
//
// PreOrder, PostOrder, InnerOrder, and LevelOrder expose the same tree as
// iter.Seq values for callers that want composition (filter, limit) rather
// than visitor control flow. Splitter is a pre-order producer that supports
// work splitting for parallel consumption; ParallelPreOrder drains one with
// a worker pool.
//
// All algorithms in this package use explicit stacks or queues, never
// native recursion, so they are safe on very deep trees. None of them
// detects cycles; acyclicity is a construction invariant of the trees.
package walk
