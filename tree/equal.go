package tree

// Equals reports deep equality of two trees: identical references, or both
// non-nil with equal local payloads, equal child counts, and pairwise equal
// children. It short-circuits on the first mismatch and uses an explicit
// stack, never recursion.
func Equals(a, b Node) bool {
	type pair struct {
		a, b Node
	}
	stack := []pair{{a, b}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if p.a == p.b {
			continue
		}
		if p.a == nil || p.b == nil {
			return false
		}
		if !p.a.LocalEquals(p.b) {
			return false
		}
		ca, cb := p.a.Children(), p.b.Children()
		if len(ca) != len(cb) {
			return false
		}
		for i := range ca {
			stack = append(stack, pair{ca[i], cb[i]})
		}
	}
	return true
}
