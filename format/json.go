package format

import (
	"encoding/json"

	"github.com/featforge/treekit/tree"
)

// JSON reads and writes labeled trees as nested {"name", "children"}
// objects.
type JSON struct{}

func (JSON) ExtensionID() string {
	return "format.json"
}

func (JSON) Name() string {
	return "json"
}

func (JSON) Extensions() []string {
	return []string{".json"}
}

func (JSON) Parse(data []byte) (*tree.Labeled, error) {
	var d doc
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return fromDoc(&d)
}

func (JSON) Serialize(root *tree.Labeled) ([]byte, error) {
	d, err := toDoc(root)
	if err != nil {
		return nil, err
	}
	out, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}
