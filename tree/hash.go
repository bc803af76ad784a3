package tree

import (
	"encoding/binary"
	"fmt"
	"hash/maphash"
)

// hashSeed is shared by all Hash calls so that equal trees hash equally for
// the lifetime of the process. Hashes are not stable across processes.
var hashSeed = maphash.MakeSeed()

// Hasher lets a node contribute its local payload to the structural hash.
// Nodes that do not implement it are hashed by concrete type name only.
type Hasher interface {
	HashLocal(h *maphash.Hash)
}

// Hash returns a 64-bit order-dependent structural hash of the tree: local
// payload plus the hashes of all children, in order. Equal trees (in the
// sense of Equals) produce equal hashes as long as LocalEquals and HashLocal
// agree. Implemented with an explicit stack in post-order.
func Hash(root Node) uint64 {
	if root == nil {
		return 0
	}
	type frame struct {
		node Node
		next int
	}
	stack := []frame{{node: root}}
	var hashes []uint64
	var b [8]byte
	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		children := f.node.Children()
		if f.next < len(children) {
			child := children[f.next]
			f.next++
			stack = append(stack, frame{node: child})
			continue
		}
		var h maphash.Hash
		h.SetSeed(hashSeed)
		if hn, ok := f.node.(Hasher); ok {
			hn.HashLocal(&h)
		} else {
			h.WriteString(fmt.Sprintf("%T", f.node))
		}
		if k := len(children); k > 0 {
			for _, ch := range hashes[len(hashes)-k:] {
				binary.LittleEndian.PutUint64(b[:], ch)
				h.Write(b[:])
			}
			hashes = hashes[:len(hashes)-k]
		}
		hashes = append(hashes, h.Sum64())
		stack = stack[:len(stack)-1]
	}
	return hashes[0]
}
