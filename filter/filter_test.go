package filter

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/featforge/treekit/tree"
	"github.com/featforge/treekit/walk"
)

func testTree() *tree.Labeled {
	return tree.NewLabeled("Root",
		tree.NewLabeled("A"),
		tree.NewLabeled("B",
			tree.NewLabeled("B1"),
			tree.NewLabeled("B2"),
			tree.NewLabeled("B3",
				tree.NewLabeled("B3a"),
				tree.NewLabeled("B3b"))),
		tree.NewLabeled("C",
			tree.NewLabeled("C1",
				tree.NewLabeled("C1a"),
				tree.NewLabeled("C1b"),
				tree.NewLabeled("C1c"),
				tree.NewLabeled("C1d"))))
}

func matches(src string) []string {
	var out []string
	for n := range Seq(walk.PreOrder(testTree()), MustCompile(src)) {
		out = append(out, tree.DisplayName(n))
	}
	return out
}

func TestSeq(t *testing.T) {
	tests := []struct {
		src  string
		want []string
	}{
		{`name startsWith "B"`, []string{"B", "B1", "B2", "B3", "B3a", "B3b"}},
		{`isLeaf`, []string{"A", "B1", "B2", "B3a", "B3b", "C1a", "C1b", "C1c", "C1d"}},
		{`depth == 1`, []string{"A", "B", "C"}},
		{`childCount > 2`, []string{"Root", "B", "C1"}},
		{`name == "B3" and not isLeaf`, []string{"B3"}},
		{`false`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			if d := cmp.Diff(tt.want, matches(tt.src)); d != "" {
				t.Errorf("matches (-want +got):\n%s", d)
			}
		})
	}
}

func TestCompileError(t *testing.T) {
	if _, err := Compile(`name +`); err == nil {
		t.Error("compile of malformed expression succeeded")
	}
	// Non-boolean expressions are rejected at compile time.
	if _, err := Compile(`childCount + 1`); err == nil {
		t.Error("compile of non-boolean expression succeeded")
	}
}

func TestMatchNil(t *testing.T) {
	if MustCompile(`true`).Match(nil) {
		t.Error("nil node matched")
	}
}

func TestValidator(t *testing.T) {
	p := MustCompile(`name startsWith "ok"`)
	parent := tree.NewLabeled("parent")
	parent.SetChildValidator(p.Validator())
	if err := parent.AddChild(tree.NewLabeled("ok-1")); err != nil {
		t.Fatal(err)
	}
	if err := parent.AddChild(tree.NewLabeled("bad")); err == nil {
		t.Error("validator accepted a non-matching child")
	}
	if got := len(parent.Children()); got != 1 {
		t.Errorf("children: got %d, want 1", got)
	}
}
