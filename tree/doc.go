// Package tree provides the node abstraction underlying every tree-shaped
// structure in treekit, together with structural utilities over it.
//
// # Overview
//
// A tree is built from values implementing the Node interface. The package
// supplies an embeddable Base implementation that handles the ordered child
// list, arity constraints, and child validation, and a RootedBase variant
// that additionally maintains a non-owning parent back-reference for
// ancestry queries.
//
// # Node Structure
//
// A Node owns an ordered list of children. Insertion order is significant
// and preserved by every operation. Node-local equality (LocalEquals)
// compares only a node's own payload, never its descendants; deep equality
// over whole trees is provided by Equals.
//
// # Structural Utilities
//
// The package provides deep equality (Equals), deep clone (Clone), stable
// in-place sort (Sort, SortFunc), and an order-dependent structural hash
// (Hash). All of these are implemented with explicit stacks rather than
// native recursion, so they are safe on trees far deeper than the goroutine
// call stack would allow.
//
// # Invariants
//
// The child list of a node must form a strict tree: no node may be its own
// ancestor. This is a construction discipline, not a runtime check; a caller
// that wires a cycle will cause traversals to run unboundedly. A rooted node
// has at most one parent at a time; attaching a node that already has a
// parent first detaches it from the old parent.
//
// # Thread Safety
//
// Nodes are not thread-safe. Multiple goroutines may traverse the same tree
// concurrently only if none of them mutates it.
package tree
