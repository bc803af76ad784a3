// Package format provides the I/O format abstraction for tree-shaped
// objects: a Format interface, an extension-backed registry, and JSON,
// YAML, and XML adapters over labeled trees.
//
// Formats serialize and parse *tree.Labeled trees. They do not participate
// in traversal; serializers assemble their documents bottom-up over the
// walk.PostOrder producer.
package format

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/featforge/treekit/debug"
	"github.com/featforge/treekit/extension"
	"github.com/featforge/treekit/tree"
)

// Format reads and writes labeled trees in one serialization format.
type Format interface {
	extension.Extension

	// Name is the short format name, e.g. "json".
	Name() string
	// Extensions returns the file extensions (with dot) this format claims.
	Extensions() []string
	Parse(data []byte) (*tree.Labeled, error)
	Serialize(root *tree.Labeled) ([]byte, error)
}

var point = extension.NewPoint[Format]()

func init() {
	point.MustInstall(JSON{})
	point.MustInstall(YAML{})
	point.MustInstall(XML{})
}

// Install registers a format with the default registry.
func Install(f Format) error {
	return point.Install(f)
}

// Formats returns all registered formats in installation order.
func Formats() []Format {
	return point.Extensions()
}

// ByName returns the format with the given short name.
func ByName(name string) (Format, error) {
	for _, f := range point.Extensions() {
		if f.Name() == name {
			return f, nil
		}
	}
	return nil, fmt.Errorf("no format named %q", name)
}

// ByPath returns the format claiming the file extension of path.
func ByPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	for _, f := range point.Extensions() {
		for _, have := range f.Extensions() {
			if have == ext {
				return f, nil
			}
		}
	}
	return nil, fmt.Errorf("no format for extension %q", ext)
}

// Load reads and parses the tree stored at path, choosing the format by
// file extension.
func Load(path string) (*tree.Labeled, error) {
	f, err := ByPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if debug.Format() {
		debug.Logf("loading %s as %s\n", path, f.Name())
	}
	root, err := f.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return root, nil
}

// Save serializes root to path, choosing the format by file extension.
func Save(path string, root *tree.Labeled) error {
	f, err := ByPath(path)
	if err != nil {
		return err
	}
	data, err := f.Serialize(root)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
