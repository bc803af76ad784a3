// Package extension provides the plugin registry for treekit: identifiable
// extensions installed into typed extension points. The tree engine itself
// takes no data from the registry; higher layers such as the format package
// use points to discover their adapters.
package extension

import (
	"fmt"
	"sync"

	"github.com/featforge/treekit/debug"
)

// Extension is anything installable at an extension point.
type Extension interface {
	// ExtensionID returns a stable, unique identifier, conventionally
	// "<point>.<name>".
	ExtensionID() string
}

// Point is a registry of extensions of one kind. Installation order is
// preserved by Extensions. Safe for concurrent use.
type Point[E Extension] struct {
	mu    sync.RWMutex
	byID  map[string]E
	order []string
}

// NewPoint returns an empty extension point.
func NewPoint[E Extension]() *Point[E] {
	return &Point[E]{byID: map[string]E{}}
}

// Install registers e. Installing a second extension with the same ID is an
// error.
func (p *Point[E]) Install(e E) error {
	id := e.ExtensionID()
	if id == "" {
		return fmt.Errorf("extension must have an ID")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, exists := p.byID[id]; exists {
		return fmt.Errorf("extension %q already installed", id)
	}
	p.byID[id] = e
	p.order = append(p.order, id)
	if debug.Registry() {
		debug.Logf("installed extension %s\n", id)
	}
	return nil
}

// MustInstall is Install for init-time registration; it panics on error.
func (p *Point[E]) MustInstall(e E) {
	if err := p.Install(e); err != nil {
		panic(err)
	}
}

// Uninstall removes the extension with the given ID.
func (p *Point[E]) Uninstall(id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, exists := p.byID[id]; !exists {
		return fmt.Errorf("extension %q not installed", id)
	}
	delete(p.byID, id)
	for i, have := range p.order {
		if have == id {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
	return nil
}

// Get returns the extension with the given ID.
func (p *Point[E]) Get(id string) (E, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	e, ok := p.byID[id]
	return e, ok
}

// Extensions returns all installed extensions in installation order.
func (p *Point[E]) Extensions() []E {
	p.mu.RLock()
	defer p.mu.RUnlock()
	res := make([]E, 0, len(p.order))
	for _, id := range p.order {
		res = append(res, p.byID[id])
	}
	return res
}

// Len returns the number of installed extensions.
func (p *Point[E]) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.order)
}
