package tree

import (
	"fmt"
	"reflect"
)

// Node is one vertex of a tree. Implementations normally embed Base (or
// RootedBase) and add their payload on top.
type Node interface {
	// Children returns the ordered child list. The returned slice is a view
	// of the node's internal state; callers must not mutate it.
	Children() []Node

	// SetChildren replaces the entire child list, revalidating arity and
	// each child.
	SetChildren(children []Node) error

	// CloneNode returns a shallow copy of the node's local payload, with no
	// children. It is the building block for Clone.
	CloneNode() Node

	// LocalEquals reports payload-only equality, excluding children.
	LocalEquals(other Node) bool
}

// Rooted is implemented by nodes that track a non-owning parent
// back-reference, normally by embedding RootedBase.
type Rooted interface {
	Node

	// Parent returns the node's parent, or nil for a root.
	Parent() Node
}

// parentSetter is satisfied by RootedBase embedders. The parent reference is
// maintained by the Base mutators through this interface.
type parentSetter interface {
	Parent() Node
	setParent(Node)
}

// childDetacher is satisfied by Base embedders; used to unhook a node from
// its previous parent when it is attached elsewhere.
type childDetacher interface {
	detachChild(Node)
}

type arityRange struct {
	min, max int // max < 0 means unbounded
}

// Base is the embeddable Node implementation. It manages the ordered child
// list, the arity range, and the child validator. Embedders must call Init
// with the outer node value before any mutation, so that parent wiring on
// rooted children points at the outer node rather than the Base.
type Base struct {
	self     Node
	children []Node
	arity    *arityRange
	validate func(Node) error
}

// Init binds b to the outer node value. It must be called once, at
// construction time.
func (b *Base) Init(self Node) {
	if self == nil {
		panic("tree: Init with nil self")
	}
	b.self = self
}

// SetArity constrains the child count to [min, max]. A negative max means
// unbounded above. The constraint applies to subsequent mutations only.
func (b *Base) SetArity(min, max int) {
	b.arity = &arityRange{min: min, max: max}
}

// ArityRange returns the node's arity range. max < 0 means unbounded.
func (b *Base) ArityRange() (min, max int) {
	if b.arity == nil {
		return 0, -1
	}
	return b.arity.min, b.arity.max
}

// SetChildValidator installs a predicate that every child must satisfy
// before being attached. A nil validator accepts all children.
func (b *Base) SetChildValidator(validate func(Node) error) {
	b.validate = validate
}

func (b *Base) checkArity(n int) error {
	if b.arity == nil {
		return nil
	}
	if n < b.arity.min || (b.arity.max >= 0 && n > b.arity.max) {
		max := "unbounded"
		if b.arity.max >= 0 {
			max = fmt.Sprintf("%d", b.arity.max)
		}
		return fmt.Errorf("%w: %d children, want %d..%s", ErrInvalidArity, n, b.arity.min, max)
	}
	return nil
}

func (b *Base) checkChild(c Node) error {
	if c == nil {
		return fmt.Errorf("%w: nil child", ErrInvalidChild)
	}
	if b.validate == nil {
		return nil
	}
	if err := b.validate(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidChild, err)
	}
	return nil
}

// attach wires c's parent reference to the outer node, detaching c from any
// previous parent first. Nodes without a parent reference are unaffected.
func (b *Base) attach(c Node) {
	ps, ok := c.(parentSetter)
	if !ok {
		return
	}
	if p := ps.Parent(); p != nil {
		if d, ok := p.(childDetacher); ok {
			d.detachChild(c)
		}
	}
	ps.setParent(b.self)
}

func (b *Base) detach(c Node) {
	if ps, ok := c.(parentSetter); ok {
		ps.setParent(nil)
	}
}

// detachChild removes c from the child list without revalidating arity. It
// is only used on the attach path, when c moves to a new parent.
func (b *Base) detachChild(c Node) {
	for i, have := range b.children {
		if have == c {
			b.children = append(b.children[:i], b.children[i+1:]...)
			return
		}
	}
}

// Children returns the ordered child list as a read-only view.
func (b *Base) Children() []Node {
	return b.children
}

// IndexOf returns the index of c in the child list, or -1.
func (b *Base) IndexOf(c Node) int {
	for i, have := range b.children {
		if have == c {
			return i
		}
	}
	return -1
}

// SetChildren replaces the entire child list. All old children are detached
// and all new children attached as a side effect on rooted nodes.
func (b *Base) SetChildren(children []Node) error {
	if err := b.checkArity(len(children)); err != nil {
		return err
	}
	for _, c := range children {
		if err := b.checkChild(c); err != nil {
			return err
		}
	}
	for _, c := range b.children {
		b.detach(c)
	}
	b.children = children
	for _, c := range children {
		b.attach(c)
	}
	return nil
}

// AddChild appends c to the child list.
func (b *Base) AddChild(c Node) error {
	return b.InsertChild(len(b.children), c)
}

// InsertChild inserts c at index i. An out-of-range index appends at the
// end; this is a relaxed policy, not an error.
func (b *Base) InsertChild(i int, c Node) error {
	if err := b.checkArity(len(b.children) + 1); err != nil {
		return err
	}
	if err := b.checkChild(c); err != nil {
		return err
	}
	if i < 0 || i > len(b.children) {
		i = len(b.children)
	}
	b.children = append(b.children, nil)
	copy(b.children[i+1:], b.children[i:])
	b.children[i] = c
	b.attach(c)
	return nil
}

// RemoveChild removes the first child identical to c.
func (b *Base) RemoveChild(c Node) error {
	i := b.IndexOf(c)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, DisplayName(c))
	}
	return b.RemoveChildAt(i)
}

// RemoveChildAt removes the child at index i.
func (b *Base) RemoveChildAt(i int) error {
	if i < 0 || i >= len(b.children) {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(b.children))
	}
	if err := b.checkArity(len(b.children) - 1); err != nil {
		return err
	}
	c := b.children[i]
	b.children = append(b.children[:i], b.children[i+1:]...)
	b.detach(c)
	return nil
}

// ReplaceChild replaces the first child identical to old with new.
func (b *Base) ReplaceChild(old, new Node) error {
	i := b.IndexOf(old)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, DisplayName(old))
	}
	return b.ReplaceChildAt(i, new)
}

// ReplaceChildAt replaces the child at index i with new.
func (b *Base) ReplaceChildAt(i int, new Node) error {
	if i < 0 || i >= len(b.children) {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(b.children))
	}
	if err := b.checkChild(new); err != nil {
		return err
	}
	old := b.children[i]
	if old == new {
		return nil
	}
	b.children[i] = new
	b.detach(old)
	b.attach(new)
	return nil
}

// ReplaceChildren applies mapper to every child slot in place. A nil or
// identical return value leaves the slot untouched; the backing slice is
// never reallocated. Replacement stops at the first invalid child.
func (b *Base) ReplaceChildren(mapper func(i int, c Node) Node) error {
	for i, c := range b.children {
		r := mapper(i, c)
		if r == nil || r == c {
			continue
		}
		if err := b.checkChild(r); err != nil {
			return err
		}
		b.children[i] = r
		b.detach(c)
		b.attach(r)
	}
	return nil
}

// LocalEquals is the default payload equality: same concrete type.
// Embedders with payload state override this.
func (b *Base) LocalEquals(other Node) bool {
	if other == nil {
		return false
	}
	return reflect.TypeOf(b.self) == reflect.TypeOf(other)
}

// DisplayName returns a node's display form: its String method when
// implemented, the concrete type name otherwise.
func DisplayName(n Node) string {
	if n == nil {
		return "<nil>"
	}
	if s, ok := n.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", n)
}
