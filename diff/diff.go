// Package diff renders textual differences between labeled trees. Trees are
// compared by canonical form: a sorted deep clone printed one node per
// line, so structurally equal trees diff empty regardless of child order.
package diff

import (
	"bytes"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/featforge/treekit/tree"
	"github.com/featforge/treekit/walk"
)

// Canonical returns the canonical text form of the tree: a sorted clone
// rendered by the walk printer. The input tree is not modified.
func Canonical(root tree.Node) string {
	if root == nil {
		return ""
	}
	c := tree.Clone(root)
	tree.Sort(c)
	buf := bytes.NewBuffer(nil)
	if err := walk.Print(buf, c); err != nil {
		// The only failure mode is the writer, and bytes.Buffer cannot fail.
		panic(err)
	}
	return buf.String()
}

// Equal reports whether a and b have equal canonical forms: deep equality
// up to child order.
func Equal(a, b tree.Node) bool {
	ca, cb := tree.Clone(a), tree.Clone(b)
	tree.Sort(ca)
	tree.Sort(cb)
	return tree.Equals(ca, cb)
}

func lineDiffs(a, b tree.Node) []diffpatch.Diff {
	dmp := diffpatch.New()
	ta, tb, lines := dmp.DiffLinesToChars(Canonical(a), Canonical(b))
	diffs := dmp.DiffMain(ta, tb, false)
	return dmp.DiffCharsToLines(diffs, lines)
}

// Diff returns a line diff of the canonical forms of a and b. Unchanged
// lines are prefixed with two spaces, removals with "- ", insertions with
// "+ ". It returns "" when the canonical forms are equal.
func Diff(a, b tree.Node) string {
	diffs := lineDiffs(a, b)
	if len(diffs) == 1 && diffs[0].Type == diffpatch.DiffEqual {
		return ""
	}
	buf := &strings.Builder{}
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "- "
		case diffpatch.DiffInsert:
			prefix = "+ "
		}
		for line := range strings.Lines(d.Text) {
			buf.WriteString(prefix)
			buf.WriteString(strings.TrimSuffix(line, "\n"))
			buf.WriteByte('\n')
		}
	}
	return buf.String()
}

// Pretty returns a terminal-colored diff of the canonical forms.
func Pretty(a, b tree.Node) string {
	dmp := diffpatch.New()
	return dmp.DiffPrettyText(lineDiffs(a, b))
}
