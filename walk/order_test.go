package walk

import (
	"fmt"
	"iter"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/featforge/treekit/tree"
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

func names(seq iter.Seq[tree.Node]) []string {
	var out []string
	for n := range seq {
		out = append(out, tree.DisplayName(n))
	}
	return out
}

func TestPreOrder(t *testing.T) {
	want := []string{
		"Root", "A", "B", "B1", "B2", "B3", "B3a", "B3b",
		"C", "C1", "C1a", "C1b", "C1c", "C1d",
	}
	if d := cmp.Diff(want, names(PreOrder(testTree()))); d != "" {
		t.Errorf("pre-order (-want +got):\n%s", d)
	}
}

func TestPostOrder(t *testing.T) {
	want := []string{
		"A", "B1", "B2", "B3a", "B3b", "B3", "B",
		"C1a", "C1b", "C1c", "C1d", "C1", "C", "Root",
	}
	if d := cmp.Diff(want, names(PostOrder(testTree()))); d != "" {
		t.Errorf("post-order (-want +got):\n%s", d)
	}
}

func TestLevelOrder(t *testing.T) {
	want := []string{
		"Root", "A", "B", "C", "B1", "B2", "B3", "C1",
		"B3a", "B3b", "C1a", "C1b", "C1c", "C1d",
	}
	if d := cmp.Diff(want, names(LevelOrder(testTree()))); d != "" {
		t.Errorf("level-order (-want +got):\n%s", d)
	}
}

func TestInnerOrder(t *testing.T) {
	tests := []struct {
		name string
		root tree.Node
		want []string
	}{
		{"leaf", tree.NewLabeled("L"), []string{"L"}},
		{
			// A single-child node is yielded once, before its child.
			"single child",
			tree.NewLabeled("P", tree.NewLabeled("L")),
			[]string{"P", "L"},
		},
		{
			// k children interleave k-1 parent yields.
			"three children",
			tree.NewLabeled("P",
				tree.NewLabeled("a"), tree.NewLabeled("b"), tree.NewLabeled("c")),
			[]string{"a", "P", "b", "P", "c"},
		},
		{
			"nested",
			tree.NewLabeled("B",
				tree.NewLabeled("B1"),
				tree.NewLabeled("B2"),
				tree.NewLabeled("B3",
					tree.NewLabeled("B3a"),
					tree.NewLabeled("B3b"))),
			[]string{"B1", "B", "B2", "B", "B3a", "B3", "B3b"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if d := cmp.Diff(tt.want, names(InnerOrder(tt.root))); d != "" {
				t.Errorf("inner-order (-want +got):\n%s", d)
			}
		})
	}
}

func TestSequencesRestartable(t *testing.T) {
	root := testTree()
	seqs := map[string]iter.Seq[tree.Node]{
		"pre":   PreOrder(root),
		"post":  PostOrder(root),
		"inner": InnerOrder(root),
		"level": LevelOrder(root),
	}
	for name, seq := range seqs {
		first := names(seq)
		second := names(seq)
		if d := cmp.Diff(first, second); d != "" {
			t.Errorf("%s: second pass differs (-first +second):\n%s", name, d)
		}
	}
}

func TestSequenceEarlyBreak(t *testing.T) {
	root := testTree()
	for _, seq := range []iter.Seq[tree.Node]{
		PreOrder(root), PostOrder(root), InnerOrder(root), LevelOrder(root),
	} {
		got := 0
		for range seq {
			got++
			if got == 3 {
				break
			}
		}
		if got != 3 {
			t.Errorf("early break: got %d yields, want 3", got)
		}
	}
}

func TestNilRootSequences(t *testing.T) {
	for _, seq := range []iter.Seq[tree.Node]{
		PreOrder(nil), PostOrder(nil), InnerOrder(nil), LevelOrder(nil),
	} {
		if got := names(seq); got != nil {
			t.Errorf("nil root yielded %v", got)
		}
	}
}

func TestDeepSequences(t *testing.T) {
	const depth = 200000
	root := tree.NewLabeled("n0")
	cur := root
	for i := 1; i < depth; i++ {
		next := tree.NewLabeled(fmt.Sprintf("n%d", i))
		if err := cur.AddChild(next); err != nil {
			t.Fatal(err)
		}
		cur = next
	}
	for name, seq := range map[string]iter.Seq[tree.Node]{
		"pre":   PreOrder(root),
		"post":  PostOrder(root),
		"inner": InnerOrder(root),
		"level": LevelOrder(root),
	} {
		got := 0
		for range seq {
			got++
		}
		if got != depth {
			t.Errorf("%s over deep chain: got %d nodes, want %d", name, got, depth)
		}
	}
}
