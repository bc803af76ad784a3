package format

import (
	"encoding/xml"

	"github.com/featforge/treekit/tree"
)

// XML reads and writes labeled trees as nested <node name="..."> elements.
type XML struct{}

func (XML) ExtensionID() string {
	return "format.xml"
}

func (XML) Name() string {
	return "xml"
}

func (XML) Extensions() []string {
	return []string{".xml"}
}

func (XML) Parse(data []byte) (*tree.Labeled, error) {
	var x xmlDoc
	if err := xml.Unmarshal(data, &x); err != nil {
		return nil, err
	}
	return fromDoc(x.toDoc())
}

func (XML) Serialize(root *tree.Labeled) ([]byte, error) {
	d, err := toDoc(root)
	if err != nil {
		return nil, err
	}
	out, err := xml.MarshalIndent(d.toXML(), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}
