// Package cache memoizes computations over trees. Results are keyed by a
// computation ID plus the structural hash of the input tree, so the same
// analysis over an unchanged tree is computed once per process.
//
// The cache is a consumer of the tree engine, not a dependency of it:
// mutating a tree changes its hash, and stale entries for the old shape
// simply stop being hit. Hash collisions between distinct trees are
// possible in principle and are accepted, as with any hash-keyed memo.
package cache

import (
	"sync"

	"github.com/featforge/treekit/debug"
	"github.com/featforge/treekit/tree"
)

type key struct {
	computation string
	hash        uint64
}

// Store memoizes computation results by (computation ID, tree hash). Safe
// for concurrent use.
type Store struct {
	mu      sync.RWMutex
	entries map[key]any
	hits    int64
	misses  int64
}

func NewStore() *Store {
	return &Store{entries: map[key]any{}}
}

func (s *Store) lookup(k key) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.entries[k]
	return v, ok
}

// Reset drops all entries and counters.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = map[key]any{}
	s.hits, s.misses = 0, 0
}

// Stats returns the hit and miss counts since the last Reset.
func (s *Store) Stats() (hits, misses int64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hits, s.misses
}

// Memoize returns the cached result of the computation identified by id
// over root, computing and storing it on a miss. Errors are not cached.
//
// Concurrent callers may race to compute the same entry; the engine's
// traversals are read-only, so the worst case is duplicated work, and the
// last result stored wins.
func Memoize[T any](s *Store, id string, root tree.Node, compute func(tree.Node) (T, error)) (T, error) {
	k := key{computation: id, hash: tree.Hash(root)}
	if v, ok := s.lookup(k); ok {
		s.mu.Lock()
		s.hits++
		s.mu.Unlock()
		if debug.Cache() {
			debug.Logf("cache hit %s %x\n", id, k.hash)
		}
		return v.(T), nil
	}
	res, err := compute(root)
	s.mu.Lock()
	s.misses++
	if err == nil {
		s.entries[k] = res
	}
	s.mu.Unlock()
	return res, err
}
