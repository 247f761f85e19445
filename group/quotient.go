package group

import (
	"fmt"

	"github.com/katalvlaran/lvlgroup/cayley"
)

// Cosets is the partition of a group's carrier into the cosets of a
// normal subgroup, with a representative (the smallest member) per coset.
// Produced by Quotient; immutable afterwards.
type Cosets struct {
	index []int // element → coset index
	reps  []int // coset index → representative element
}

// Count returns the number of cosets.
func (c *Cosets) Count() int { return len(c.reps) }

// Representative returns the smallest element of coset i.
func (c *Cosets) Representative(i int) int { return c.reps[i] }

// CosetOf returns the coset index of carrier element x. Asking for an
// element outside the carrier is a contract violation by the caller and
// returns ErrUndefinedCoset — it never silently maps to a coset.
func (c *Cosets) CosetOf(x int) (int, error) {
	if x < 0 || x >= len(c.index) {
		return 0, fmt.Errorf("%w: element %d outside carrier [0,%d)", ErrUndefinedCoset, x, len(c.index))
	}

	return c.index[x], nil
}

// Members returns the elements of coset i in ascending order.
func (c *Cosets) Members(i int) []int {
	var out []int
	for x, ci := range c.index {
		if ci == i {
			out = append(out, x)
		}
	}

	return out
}

// Quotient builds G/N for a normal subgroup N of g, given as a set of
// carrier elements. It verifies N is a subgroup (identity, closure under
// the operation and inverses — ErrNotSubgroup otherwise) and normal in g
// (x·s·x⁻¹ ∈ N for all x, s — ErrNotNormal otherwise), then partitions
// the carrier into left cosets and induces the operation on coset
// representatives. Normality is exactly what makes the induced table
// independent of the choice of representatives.
//
// Coset indices are assigned in order of their smallest member, so the
// quotient is deterministic for a given g and N.
//
// Complexity: O(n·|N| + n²) time.
func Quotient(g *Group, subgroup []int) (*Group, *Cosets, error) {
	n := g.Order()

	// --- 1. Subgroup gate: membership set, identity, closure, inverses ---
	member := make([]bool, n)
	for _, s := range subgroup {
		if s < 0 || s >= n {
			return nil, nil, fmt.Errorf("%w: element %d outside carrier", ErrNotSubgroup, s)
		}
		member[s] = true
	}
	if !member[g.Identity()] {
		return nil, nil, fmt.Errorf("%w: missing identity", ErrNotSubgroup)
	}
	for a := 0; a < n; a++ {
		if !member[a] {
			continue
		}
		if !member[g.Inverse(a)] {
			return nil, nil, fmt.Errorf("%w: inverse of %d escapes the subset", ErrNotSubgroup, a)
		}
		for b := 0; b < n; b++ {
			if member[b] && !member[g.Op(a, b)] {
				return nil, nil, fmt.Errorf("%w: %d∘%d escapes the subset", ErrNotSubgroup, a, b)
			}
		}
	}

	// --- 2. Normality gate: conjugation keeps the subgroup in place ---
	for x := 0; x < n; x++ {
		xi := g.Inverse(x)
		for s := 0; s < n; s++ {
			if member[s] && !member[g.Op(g.Op(x, s), xi)] {
				return nil, nil, fmt.Errorf("%w: conjugate %d·%d·%d⁻¹ escapes", ErrNotNormal, x, s, x)
			}
		}
	}

	// --- 3. Partition into left cosets xN, scanning elements in order so
	// each coset is discovered at its smallest member ---
	index := make([]int, n)
	for i := range index {
		index[i] = -1
	}
	var reps []int
	for x := 0; x < n; x++ {
		if index[x] >= 0 {
			continue
		}
		ci := len(reps)
		reps = append(reps, x)
		for s := 0; s < n; s++ {
			if member[s] {
				index[g.Op(x, s)] = ci
			}
		}
	}

	// --- 4. Induce the operation on representatives ---
	k := len(reps)
	qt := make(cayley.Table, k)
	for i := range qt {
		qt[i] = make([]int, k)
		for j := range qt[i] {
			qt[i][j] = index[g.Op(reps[i], reps[j])]
		}
	}
	q, err := New(qt)
	if err != nil {
		return nil, nil, err
	}

	return q, &Cosets{index: index, reps: reps}, nil
}
