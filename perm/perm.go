package perm

import "fmt"

// Identity returns the identity permutation on n elements.
// Complexity: O(n).
func Identity(n int) Perm {
	p := make(Perm, n)
	for i := range p {
		p[i] = i
	}

	return p
}

// Validate reports whether p is a genuine bijection of [0,len(p)).
// Returns nil on success, or ErrNotPermutation naming the first offense.
// Complexity: O(n).
func (p Perm) Validate() error {
	seen := make([]bool, len(p))
	for i, v := range p {
		if v < 0 || v >= len(p) {
			return fmt.Errorf("%w: entry %d at index %d out of range [0,%d)", ErrNotPermutation, v, i, len(p))
		}
		if seen[v] {
			return fmt.Errorf("%w: value %d appears twice", ErrNotPermutation, v)
		}
		seen[v] = true
	}

	return nil
}

// Clone returns an independent copy of p.
func (p Perm) Clone() Perm {
	q := make(Perm, len(p))
	copy(q, p)

	return q
}

// Equal reports pointwise equality of p and q.
func (p Perm) Equal(q Perm) bool {
	if len(p) != len(q) {
		return false
	}
	for i, v := range p {
		if q[i] != v {
			return false
		}
	}

	return true
}

// Inverse returns the permutation q with q[p[i]] == i for all i.
// p must be valid; an invalid p yields garbage, exactly like indexing
// a ragged slice would.
// Complexity: O(n).
func (p Perm) Inverse() Perm {
	q := make(Perm, len(p))
	for i, v := range p {
		q[v] = i
	}

	return q
}

// Compose returns a∘b, the permutation that applies b first:
// Compose(a, b)[i] == a[b[i]]. Panics if the lengths differ — composing
// permutations of different carriers is a programmer error.
// Complexity: O(n).
func Compose(a, b Perm) Perm {
	if len(a) != len(b) {
		panic(fmt.Sprintf("perm: Compose on mismatched carriers %d and %d", len(a), len(b)))
	}
	c := make(Perm, len(a))
	for i := range c {
		c[i] = a[b[i]]
	}

	return c
}
