package hom

import (
	"fmt"

	"github.com/katalvlaran/lvlgroup/cayley"
	"github.com/katalvlaran/lvlgroup/group"
)

// New builds a Hom from an explicit element map. The map must have one
// entry per source element and every entry must land in the target
// carrier (ErrBadMap otherwise). The slice is copied.
func New(src, dst *group.Group, m []int) (*Hom, error) {
	if src == nil || dst == nil {
		return nil, ErrNilGroup
	}
	if len(m) != src.Order() {
		return nil, fmt.Errorf("%w: map has %d entries, source has %d elements", ErrBadMap, len(m), src.Order())
	}
	own := make([]int, len(m))
	for x, y := range m {
		if !dst.Contains(y) {
			return nil, fmt.Errorf("%w: image of %d is %d, outside the target carrier", ErrBadMap, x, y)
		}
		own[x] = y
	}

	return &Hom{Src: src, Dst: dst, Map: own}, nil
}

// FromFunc builds a Hom by evaluating fn on every source element.
// Convenient for arithmetic maps like n ↦ n mod 4.
func FromFunc(src, dst *group.Group, fn func(int) int) (*Hom, error) {
	if src == nil || dst == nil {
		return nil, ErrNilGroup
	}
	m := make([]int, src.Order())
	for x := range m {
		m[x] = fn(x)
	}

	return New(src, dst, m)
}

// Identity returns the identity map on g.
func Identity(g *group.Group) *Hom {
	m := make([]int, g.Order())
	for i := range m {
		m[i] = i
	}

	return &Hom{Src: g, Dst: g, Map: m}
}

// Apply returns the image of source element x.
func (f *Hom) Apply(x int) int { return f.Map[x] }

// Kernel returns the source elements mapping to the target identity, in
// ascending order. For a homomorphism this is the subgroup whose cosets
// index the image (first isomorphism theorem); group.Quotient consumes it
// directly.
func (f *Hom) Kernel() []int {
	var ker []int
	e := f.Dst.Identity()
	for x, y := range f.Map {
		if y == e {
			ker = append(ker, x)
		}
	}

	return ker
}

// Compose returns outer∘inner, the map that applies inner first.
// The middle groups must agree (ErrTypeMismatch otherwise); agreement is
// by table equality, not pointer identity, so independently constructed
// copies of the same group compose fine.
func Compose(outer, inner *Hom) (*Hom, error) {
	if outer == nil || inner == nil {
		return nil, ErrNilHom
	}
	if !SameGroup(inner.Dst, outer.Src) {
		return nil, fmt.Errorf("%w: inner lands in a different group than outer departs from", ErrTypeMismatch)
	}
	m := make([]int, inner.Src.Order())
	for x := range m {
		m[x] = outer.Map[inner.Map[x]]
	}

	return &Hom{Src: inner.Src, Dst: outer.Dst, Map: m}, nil
}

// Equal reports whether f and g are the same function between the same
// groups (pointwise map equality plus matching endpoints).
func (f *Hom) Equal(g *Hom) bool {
	if f == nil || g == nil {
		return f == g
	}
	if !SameGroup(f.Src, g.Src) || !SameGroup(f.Dst, g.Dst) {
		return false
	}
	for x, y := range f.Map {
		if g.Map[x] != y {
			return false
		}
	}

	return true
}

// SameGroup reports whether a and b present the same structure: identical
// pointers, or carriers of equal size with cellwise-equal tables.
func SameGroup(a, b *group.Group) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || a.Order() != b.Order() {
		return false
	}

	return cayley.Equal(a.Table(), b.Table())
}
