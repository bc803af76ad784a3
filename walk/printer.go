package walk

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/featforge/treekit/tree"
)

// Printer is a visitor that writes an indented rendering of the tree, one
// node per line, in pre-order. With Color enabled, node names are colored
// by depth.
type Printer struct {
	W      io.Writer
	Indent string
	Color  bool

	err error
}

// NewPrinter returns a Printer writing to w with two-space indentation.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{W: w, Indent: "  "}
}

var depthColors = []*color.Color{
	color.New(color.FgCyan),
	color.New(color.FgYellow),
	color.New(color.FgGreen),
	color.New(color.FgMagenta),
	color.New(color.FgBlue),
}

func (p *Printer) Reset() {
	p.err = nil
}

func (p *Printer) FirstVisit(path Path) Action {
	if p.err != nil {
		return SkipAll
	}
	name := tree.DisplayName(path.Current())
	if p.Color {
		name = depthColors[path.Depth()%len(depthColors)].Sprint(name)
	}
	indent := p.Indent
	if indent == "" {
		indent = "  "
	}
	for range path.Depth() {
		if _, p.err = io.WriteString(p.W, indent); p.err != nil {
			return SkipAll
		}
	}
	if _, p.err = fmt.Fprintln(p.W, name); p.err != nil {
		return SkipAll
	}
	return Continue
}

func (p *Printer) LastVisit(Path) Action {
	return Continue
}

// Err returns the first write error, if any. A write error terminates the
// traversal via SkipAll rather than Fail, since it is the printer's own
// condition, not the tree's.
func (p *Printer) Err() error {
	return p.err
}

// Print renders the tree rooted at root to w.
func Print(w io.Writer, root tree.Node) error {
	p := NewPrinter(w)
	if _, err := Traverse(root, p); err != nil {
		return err
	}
	return p.Err()
}
