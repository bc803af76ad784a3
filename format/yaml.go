package format

import (
	"github.com/goccy/go-yaml"

	"github.com/featforge/treekit/tree"
)

// YAML reads and writes labeled trees as nested name/children mappings.
type YAML struct{}

func (YAML) ExtensionID() string {
	return "format.yaml"
}

func (YAML) Name() string {
	return "yaml"
}

func (YAML) Extensions() []string {
	return []string{".yaml", ".yml"}
}

func (YAML) Parse(data []byte) (*tree.Labeled, error) {
	var d doc
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return fromDoc(&d)
}

func (YAML) Serialize(root *tree.Labeled) ([]byte, error) {
	d, err := toDoc(root)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(d)
}
