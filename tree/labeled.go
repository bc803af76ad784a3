package tree

import "hash/maphash"

// Labeled is a rooted node carrying a string label. It is the payload type
// used by the format, filter, and diff packages and by the treekit CLI;
// domain code with richer payloads implements Node directly.
type Labeled struct {
	RootedBase
	Name string
}

// NewLabeled returns a labeled node with the given children. It panics if
// any child is rejected; Labeled nodes have no arity constraint or child
// validator, so that only happens for nil children.
func NewLabeled(name string, children ...Node) *Labeled {
	n := &Labeled{Name: name}
	n.Init(n)
	if len(children) > 0 {
		if err := n.SetChildren(children); err != nil {
			panic(err)
		}
	}
	return n
}

func (l *Labeled) String() string {
	return l.Name
}

func (l *Labeled) CloneNode() Node {
	c := &Labeled{Name: l.Name}
	c.Init(c)
	return c
}

func (l *Labeled) LocalEquals(other Node) bool {
	o, ok := other.(*Labeled)
	return ok && o.Name == l.Name
}

func (l *Labeled) HashLocal(h *maphash.Hash) {
	h.WriteString(l.Name)
}
