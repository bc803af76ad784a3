package format

import (
	"encoding/xml"
	"fmt"

	"github.com/featforge/treekit/tree"
	"github.com/featforge/treekit/walk"
)

// doc is the nested document shape shared by the JSON and YAML adapters.
type doc struct {
	Name     string `json:"name" yaml:"name"`
	Children []*doc `json:"children,omitempty" yaml:"children,omitempty"`
}

// xmlDoc is the element shape used by the XML adapter.
type xmlDoc struct {
	XMLName  xml.Name  `xml:"node"`
	Name     string    `xml:"name,attr"`
	Children []*xmlDoc `xml:"node"`
}

// toDoc assembles the document bottom-up over the post-order producer: a
// node's child documents are always completed and stacked before the node
// itself, so attaching them is a slice off the tail.
func toDoc(root *tree.Labeled) (*doc, error) {
	var docs []*doc
	for n := range walk.PostOrder(root) {
		l, ok := n.(*tree.Labeled)
		if !ok {
			return nil, fmt.Errorf("cannot serialize %T nodes", n)
		}
		d := &doc{Name: l.Name}
		if k := len(n.Children()); k > 0 {
			d.Children = make([]*doc, k)
			copy(d.Children, docs[len(docs)-k:])
			docs = docs[:len(docs)-k]
		}
		docs = append(docs, d)
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("empty tree")
	}
	return docs[0], nil
}

// fromDoc rebuilds a labeled tree from a parsed document, iteratively.
func fromDoc(root *doc) (*tree.Labeled, error) {
	if root == nil {
		return nil, fmt.Errorf("missing root node")
	}
	type frame struct {
		d    *doc
		next int
	}
	stack := []frame{{d: root}}
	var nodes []tree.Node
	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		if f.next < len(f.d.Children) {
			c := f.d.Children[f.next]
			if c == nil {
				return nil, fmt.Errorf("null child under %q", f.d.Name)
			}
			f.next++
			stack = append(stack, frame{d: c})
			continue
		}
		n := tree.NewLabeled(f.d.Name)
		if k := len(f.d.Children); k > 0 {
			cs := make([]tree.Node, k)
			copy(cs, nodes[len(nodes)-k:])
			nodes = nodes[:len(nodes)-k]
			if err := n.SetChildren(cs); err != nil {
				return nil, err
			}
		}
		nodes = append(nodes, n)
		stack = stack[:len(stack)-1]
	}
	return nodes[0].(*tree.Labeled), nil
}

func (d *doc) toXML() *xmlDoc {
	// Same bottom-up discipline, over the already-acyclic document.
	type frame struct {
		d    *doc
		next int
	}
	stack := []frame{{d: d}}
	var out []*xmlDoc
	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		if f.next < len(f.d.Children) {
			c := f.d.Children[f.next]
			f.next++
			stack = append(stack, frame{d: c})
			continue
		}
		x := &xmlDoc{Name: f.d.Name}
		if k := len(f.d.Children); k > 0 {
			x.Children = make([]*xmlDoc, k)
			copy(x.Children, out[len(out)-k:])
			out = out[:len(out)-k]
		}
		out = append(out, x)
		stack = stack[:len(stack)-1]
	}
	return out[0]
}

func (x *xmlDoc) toDoc() *doc {
	type frame struct {
		x    *xmlDoc
		next int
	}
	stack := []frame{{x: x}}
	var out []*doc
	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		if f.next < len(f.x.Children) {
			c := f.x.Children[f.next]
			f.next++
			stack = append(stack, frame{x: c})
			continue
		}
		d := &doc{Name: f.x.Name}
		if k := len(f.x.Children); k > 0 {
			d.Children = make([]*doc, k)
			copy(d.Children, out[len(out)-k:])
			out = out[:len(out)-k]
		}
		out = append(out, d)
		stack = stack[:len(stack)-1]
	}
	return out[0]
}
