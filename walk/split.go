package walk

import (
	"context"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/featforge/treekit/tree"
)

// Splitter is a pre-order producer that supports work splitting for
// parallel consumption. Every entry on its stack is the root of a pending,
// not-yet-visited subtree, so Split can hand one of them to a new,
// independently-stacked Splitter with no shared mutable state remaining
// between the two.
//
// A Splitter is not safe for concurrent use itself; concurrency comes from
// draining split-off Splitters on different goroutines, as ParallelPreOrder
// does. Visited nodes are still shared objects and must not be mutated by
// consumers.
type Splitter struct {
	stack []tree.Node
}

// NewSplitter returns a splittable pre-order producer over the tree rooted
// at root.
func NewSplitter(root tree.Node) *Splitter {
	s := &Splitter{}
	if root != nil {
		s.stack = append(s.stack, root)
	}
	return s
}

// Next pops and returns the next node in pre-order. It returns false when
// the producer is exhausted.
func (s *Splitter) Next() (tree.Node, bool) {
	if len(s.stack) == 0 {
		return nil, false
	}
	n := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	children := n.Children()
	for i := len(children) - 1; i >= 0; i-- {
		s.stack = append(s.stack, children[i])
	}
	return n, true
}

// Split removes one pending subtree from this producer and returns a new
// Splitter covering exactly that subtree. It takes the bottom stack entry,
// the subtree this producer would have reached last. Split returns nil when
// there is nothing to share (fewer than two pending subtrees).
func (s *Splitter) Split() *Splitter {
	if len(s.stack) < 2 {
		return nil
	}
	n := s.stack[0]
	s.stack = s.stack[1:]
	return &Splitter{stack: []tree.Node{n}}
}

// ParallelPreOrder calls fn for every node of the tree exactly once, using
// up to workers goroutines (GOMAXPROCS when workers < 1). Work is
// distributed by splitting pre-order producers; nodes within one split unit
// are delivered in pre-order, but no order holds across units. The first
// error from fn cancels the remaining work and is returned.
func ParallelPreOrder(root tree.Node, workers int, fn func(tree.Node) error) error {
	if root == nil {
		return nil
	}
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	work := make(chan *Splitter, workers)
	var pending atomic.Int64
	pending.Store(1)
	work <- NewSplitter(root)

	g, ctx := errgroup.WithContext(context.Background())
	for range workers {
		g.Go(func() error {
			for {
				var s *Splitter
				select {
				case <-ctx.Done():
					return ctx.Err()
				case got, ok := <-work:
					if !ok {
						return nil
					}
					s = got
				}
				// Locally retained splits; used when the work channel is
				// full so no splitter is ever lost.
				var local []*Splitter
				for s != nil {
					for {
						if err := ctx.Err(); err != nil {
							return err
						}
						if len(work) < cap(work) {
							if half := s.Split(); half != nil {
								select {
								case work <- half:
									pending.Add(1)
								default:
									local = append(local, half)
								}
							}
						}
						n, ok := s.Next()
						if !ok {
							break
						}
						if err := fn(n); err != nil {
							return err
						}
					}
					if len(local) > 0 {
						s = local[len(local)-1]
						local = local[:len(local)-1]
					} else {
						s = nil
					}
				}
				if pending.Add(-1) == 0 {
					close(work)
				}
			}
		})
	}
	return g.Wait()
}
