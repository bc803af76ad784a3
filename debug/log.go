package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/featforge/treekit/tree"
	"github.com/featforge/treekit/walk"
)

// TreeArg marks a node argument for tree rendering in Logf. Plain tree.Node
// arguments are rendered the same way.
type TreeArg struct{ tree.Node }

func (t TreeArg) String() string {
	return renderTree(t.Node)
}

func renderTree(n tree.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := walk.Print(buf, n); err != nil {
		return fmt.Sprintf("[raw node] %v", n)
	}
	return buf.String()
}

var prefix = func() string {
	if isatty.IsTerminal(os.Stderr.Fd()) {
		return color.New(color.FgHiBlack).Sprint("[treekit] ")
	}
	return "[treekit] "
}()

// Logf writes a diagnostic line to stderr. Arguments that are tree nodes
// are rendered as indented trees; JSON-shaped arguments (maps, slices)
// are rendered with indentation.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case tree.Node:
			args[i] = renderTree(x)
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		}
	}
	fmt.Fprintf(os.Stderr, prefix+msg, args...)
}
