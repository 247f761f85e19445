package group

import "github.com/katalvlaran/lvlgroup/cayley"

// Cyclic returns the cyclic group Zₙ with table t[i][j] = (i+j) mod n.
// Returns ErrBadOrder for n < 1.
func Cyclic(n int) (*Group, error) {
	if n < 1 {
		return nil, ErrBadOrder
	}
	t := make(cayley.Table, n)
	for i := range t {
		t[i] = make([]int, n)
		for j := range t[i] {
			t[i][j] = (i + j) % n
		}
	}

	return New(t)
}

// Trivial returns the one-element group.
func Trivial() *Group {
	g, _ := Cyclic(1) // cannot fail for n=1

	return g
}

// Klein4 returns the Klein four-group: the non-cyclic group of order 4,
// in which every element is its own inverse. Encoded as bitwise XOR on
// {0,1,2,3}.
func Klein4() *Group {
	t := make(cayley.Table, 4)
	for i := range t {
		t[i] = make([]int, 4)
		for j := range t[i] {
			t[i][j] = i ^ j
		}
	}
	g, _ := New(t) // XOR table is a group by construction

	return g
}

// Product returns the direct product G×H on the carrier [0, |G|·|H|),
// pairing (a,b) as a·|H|+b so that the projection arithmetic stays in
// index space. The identity is the paired identity; the order is the
// product of the orders.
func Product(g, h *Group) *Group {
	gn, hn := g.Order(), h.Order()
	n := gn * hn
	t := make(cayley.Table, n)
	for i := range t {
		t[i] = make([]int, n)
		ia, ib := i/hn, i%hn
		for j := range t[i] {
			ja, jb := j/hn, j%hn
			t[i][j] = g.Op(ia, ja)*hn + h.Op(ib, jb)
		}
	}
	p, _ := New(t) // componentwise laws carry over from g and h

	return p
}
