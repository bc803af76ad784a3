package walk

import (
	"fmt"

	"github.com/featforge/treekit/problem"
	"github.com/featforge/treekit/tree"
)

// FailError reports an aborted traversal: a visitor returned Fail, or a
// NodeValidator reported an Error-severity problem. It carries all problems
// collected up to the abort.
type FailError struct {
	Problems []problem.Problem
}

func (e *FailError) Error() string {
	if len(e.Problems) == 0 {
		return "traversal failed"
	}
	return "traversal failed:\n" + problem.Join(e.Problems)
}

// Traverse drives v across the tree rooted at root, depth-first, children
// in insertion order. It returns the problems collected by the visitor's
// NodeValidator (if any) and a *FailError when the traversal aborted.
//
// SkipAll is not an error: Traverse returns normally and the visitor keeps
// whatever it accumulated. If v implements Resetter, Reset is called before
// the traversal starts.
//
// The algorithm is iterative with an explicit stack of (node, next-child)
// frames, so it is safe on very deep trees. It does not detect cycles.
func Traverse(root tree.Node, v Visitor) ([]problem.Problem, error) {
	if root == nil {
		return nil, nil
	}
	if r, ok := v.(Resetter); ok {
		r.Reset()
	}
	iv, inOrder := v.(InVisitor)
	nv, hasValidator := v.(NodeValidator)

	type frame struct {
		node    tree.Node
		next    int // next child index; -1 after SkipChildren
		entered bool
	}
	var problems []problem.Problem
	fail := func(hook string, n tree.Node) ([]problem.Problem, error) {
		problems = append(problems, problem.Errorf("visitor failed in %s at %s", hook, tree.DisplayName(n)))
		return nil, &FailError{Problems: problems}
	}

	stack := []frame{{node: root}}
	path := make(Path, 0, 16)
	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		if !f.entered {
			f.entered = true
			path = append(path, f.node)
			if hasValidator {
				ps := nv.ValidateNode(path)
				problems = append(problems, ps...)
				if problem.HasError(ps) {
					return nil, &FailError{Problems: problems}
				}
			}
			switch act := v.FirstVisit(path); act {
			case Continue:
			case SkipChildren:
				f.next = -1
			case SkipAll:
				return problems, nil
			case Fail:
				return fail("FirstVisit", f.node)
			default:
				panic(fmt.Sprintf("walk: invalid action %s from FirstVisit", act))
			}
		}
		children := f.node.Children()
		if f.next >= 0 && f.next < len(children) {
			if inOrder && f.next > 0 {
				switch act := iv.Visit(path); act {
				case Continue:
				case SkipChildren:
					f.next = -1
					continue
				case SkipAll:
					return problems, nil
				case Fail:
					return fail("Visit", f.node)
				default:
					panic(fmt.Sprintf("walk: invalid action %s from Visit", act))
				}
			}
			child := children[f.next]
			f.next++
			stack = append(stack, frame{node: child})
			continue
		}
		switch act := v.LastVisit(path); act {
		case Continue, SkipChildren:
		case SkipAll:
			return problems, nil
		case Fail:
			return fail("LastVisit", f.node)
		default:
			panic(fmt.Sprintf("walk: invalid action %s from LastVisit", act))
		}
		path = path[:len(path)-1]
		stack = stack[:len(stack)-1]
	}
	return problems, nil
}
