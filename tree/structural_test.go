package tree

import (
	"fmt"
	"testing"
)

func testTree() *Labeled {
	return NewLabeled("Root",
		NewLabeled("A"),
		NewLabeled("B",
			NewLabeled("B1"),
			NewLabeled("B2"),
			NewLabeled("B3",
				NewLabeled("B3a"),
				NewLabeled("B3b"))),
		NewLabeled("C",
			NewLabeled("C1",
				NewLabeled("C1a"),
				NewLabeled("C1b"),
				NewLabeled("C1c"),
				NewLabeled("C1d"))))
}

// collect gathers all nodes depth-first; a local helper so these tests do
// not depend on the walk package.
func collect(root Node) []Node {
	var all []Node
	stack := []Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		all = append(all, n)
		children := n.Children()
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
	return all
}

func TestCloneEquals(t *testing.T) {
	orig := testTree()
	c := Clone(orig)
	if !Equals(c, orig) {
		t.Fatal("clone is not deep-equal to the original")
	}
}

func TestCloneDisjoint(t *testing.T) {
	orig := testTree()
	c := Clone(orig)
	seen := map[Node]bool{}
	for _, n := range collect(orig) {
		seen[n] = true
	}
	for _, n := range collect(c) {
		if seen[n] {
			t.Fatalf("clone shares node %s with the original", DisplayName(n))
		}
	}
	if got, want := len(collect(c)), len(collect(orig)); got != want {
		t.Errorf("clone size: got %d, want %d", got, want)
	}
}

func TestCloneRewiresParents(t *testing.T) {
	c := Clone(testTree()).(*Labeled)
	for _, n := range collect(c) {
		for _, child := range n.Children() {
			if p := child.(Rooted).Parent(); p != n {
				t.Fatalf("clone child %s parent: got %v, want %s",
					DisplayName(child), p, DisplayName(n))
			}
		}
	}
	if c.Parent() != nil {
		t.Errorf("clone root has parent %v", c.Parent())
	}
}

func TestEquals(t *testing.T) {
	tests := []struct {
		name string
		a, b Node
		want bool
	}{
		{"nil nil", nil, nil, true},
		{"nil non-nil", nil, NewLabeled("x"), false},
		{"equal leaves", NewLabeled("x"), NewLabeled("x"), true},
		{"different labels", NewLabeled("x"), NewLabeled("y"), false},
		{"equal trees", testTree(), testTree(), true},
		{"different child count",
			NewLabeled("p", NewLabeled("a")),
			NewLabeled("p", NewLabeled("a"), NewLabeled("b")),
			false},
		{"different child order",
			NewLabeled("p", NewLabeled("a"), NewLabeled("b")),
			NewLabeled("p", NewLabeled("b"), NewLabeled("a")),
			false},
		{"deep mismatch",
			NewLabeled("p", NewLabeled("a", NewLabeled("x"))),
			NewLabeled("p", NewLabeled("a", NewLabeled("y"))),
			false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equals(tt.a, tt.b); got != tt.want {
				t.Errorf("Equals: got %v, want %v", got, tt.want)
			}
		})
	}
	n := testTree()
	if !Equals(n, n) {
		t.Error("a tree must equal itself by reference")
	}
}

func TestSortCanonical(t *testing.T) {
	n := NewLabeled("p",
		NewLabeled("c", NewLabeled("z"), NewLabeled("y")),
		NewLabeled("a"),
		NewLabeled("b"))
	Sort(n)
	want := []string{"a", "b", "c"}
	if got := childNames(n); fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("top children: got %v, want %v", got, want)
	}
	c := n.Children()[2]
	if got := childNames(c); fmt.Sprint(got) != fmt.Sprint([]string{"y", "z"}) {
		t.Errorf("nested children: got %v, want [y z]", got)
	}
}

func TestSortIdempotent(t *testing.T) {
	a := testTree()
	b := testTree()
	Sort(a)
	once := Clone(a)
	Sort(a)
	if !Equals(a, once) {
		t.Error("sorting twice differs from sorting once")
	}
	// Sorting an already-canonical tree built independently agrees too.
	Sort(b)
	if !Equals(a, b) {
		t.Error("sort is not canonical across equal trees")
	}
}

func TestSortStable(t *testing.T) {
	// Equal display names keep their relative order.
	a1 := NewLabeled("a", NewLabeled("first"))
	a2 := NewLabeled("a", NewLabeled("second"))
	n := NewLabeled("p", NewLabeled("z"), a1, a2)
	Sort(n)
	children := n.Children()
	if children[0] != Node(a1) || children[1] != Node(a2) {
		t.Errorf("stable order violated: got %v", childNames(n))
	}
}

func TestHash(t *testing.T) {
	if got := Hash(nil); got != 0 {
		t.Errorf("Hash(nil): got %d, want 0", got)
	}
	a, b := testTree(), testTree()
	if Hash(a) != Hash(b) {
		t.Error("equal trees must hash equally")
	}
	if Hash(a) != Hash(Clone(a)) {
		t.Error("clone must hash equally")
	}
	c := testTree()
	c.Children()[0].(*Labeled).Name = "A2"
	if Hash(a) == Hash(c) {
		t.Error("different labels should hash differently")
	}
	d := NewLabeled("Root", NewLabeled("A"), NewLabeled("B"))
	e := NewLabeled("Root", NewLabeled("B"), NewLabeled("A"))
	if Hash(d) == Hash(e) {
		t.Error("hash must be order-dependent")
	}
}

func TestDeepTree(t *testing.T) {
	// Structural utilities must not recurse natively; a chain far deeper
	// than the call stack allows exercises that.
	const depth = 200000
	root := NewLabeled("n0")
	cur := root
	for i := 1; i < depth; i++ {
		next := NewLabeled(fmt.Sprintf("n%d", i))
		if err := cur.AddChild(next); err != nil {
			t.Fatal(err)
		}
		cur = next
	}
	c := Clone(root)
	if !Equals(c, root) {
		t.Fatal("deep clone not equal")
	}
	if Hash(c) != Hash(root) {
		t.Fatal("deep hash mismatch")
	}
	Sort(root)
}
