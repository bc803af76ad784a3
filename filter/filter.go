// Package filter compiles expression-language predicates over tree nodes.
//
// Predicates are written in expr syntax against a small node environment:
//
//	name       the node's display form
//	childCount number of children
//	isLeaf     childCount == 0
//	depth      edges to the root (0 when the node is not rooted)
//
// A compiled predicate can filter any walk sequence, or serve as a child
// validator on a tree.Base.
package filter

import (
	"fmt"
	"iter"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/featforge/treekit/debug"
	"github.com/featforge/treekit/tree"
)

// Predicate is a compiled node predicate.
type Predicate struct {
	src string
	prg *vm.Program
}

// Compile compiles src into a Predicate. The expression must evaluate to a
// boolean.
func Compile(src string) (*Predicate, error) {
	prg, err := expr.Compile(src, expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("filter %q: %w", src, err)
	}
	return &Predicate{src: src, prg: prg}, nil
}

// MustCompile is Compile for statically known expressions; it panics on
// error.
func MustCompile(src string) *Predicate {
	p, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Predicate) String() string {
	return p.src
}

func nodeEnv(n tree.Node) map[string]any {
	children := n.Children()
	depth := 0
	if r, ok := n.(interface{ Depth() int }); ok {
		depth = r.Depth()
	}
	return map[string]any{
		"name":       tree.DisplayName(n),
		"childCount": len(children),
		"isLeaf":     len(children) == 0,
		"depth":      depth,
	}
}

// Match evaluates the predicate against n. Evaluation errors count as a
// non-match and are logged when filter debugging is enabled.
func (p *Predicate) Match(n tree.Node) bool {
	if n == nil {
		return false
	}
	out, err := expr.Run(p.prg, nodeEnv(n))
	if err != nil {
		if debug.Filter() {
			debug.Logf("filter %q on %s: %v\n", p.src, tree.DisplayName(n), err)
		}
		return false
	}
	b, ok := out.(bool)
	return ok && b
}

// Validator adapts the predicate to a tree.Base child validator.
func (p *Predicate) Validator() func(tree.Node) error {
	return func(n tree.Node) error {
		if !p.Match(n) {
			return fmt.Errorf("node %s does not satisfy %q", tree.DisplayName(n), p.src)
		}
		return nil
	}
}

// Seq filters a node sequence by the predicate.
func Seq(s iter.Seq[tree.Node], p *Predicate) iter.Seq[tree.Node] {
	return func(yield func(tree.Node) bool) {
		for n := range s {
			if !p.Match(n) {
				continue
			}
			if !yield(n) {
				return
			}
		}
	}
}
