package group_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/lvlgroup/cayley"
	"github.com/katalvlaran/lvlgroup/group"
	"github.com/katalvlaran/lvlgroup/perm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Cyclic verifies identity location and inverse precomputation on Z6.
func TestNew_Cyclic(t *testing.T) {
	g, err := group.Cyclic(6)
	require.NoError(t, err)

	assert.Equal(t, 6, g.Order())
	assert.Equal(t, 0, g.Identity(), "Z6 identity is 0")
	for x := 0; x < 6; x++ {
		assert.Equal(t, (6-x)%6, g.Inverse(x), "inverse of %d in Z6", x)
		assert.Equal(t, 0, g.Op(x, g.Inverse(x)), "x∘x⁻¹ must be identity")
	}
	assert.True(t, g.Contains(5))
	assert.False(t, g.Contains(6))
	assert.False(t, g.Contains(-1))
}

// TestNew_Rejections: invalid tables, missing identity.
func TestNew_Rejections(t *testing.T) {
	_, err := group.New(cayley.Table{{0, 0}, {1, 1}})
	assert.ErrorIs(t, err, cayley.ErrInvalidTable, "non-Latin table must refuse")

	// A valid Latin square with no two-sided identity: the cyclic shift
	// table t[i][j] = (i+j+1) mod 3 has no row equal to 0,1,2 in place.
	noID := cayley.Table{
		{1, 2, 0},
		{2, 0, 1},
		{0, 1, 2},
	}
	_, err = group.New(noID)
	assert.ErrorIs(t, err, group.ErrNoIdentity, "shifted table has no identity")

	_, err = group.Cyclic(0)
	assert.ErrorIs(t, err, group.ErrBadOrder)
}

// TestNew_DefensiveCopy: mutating the input or the returned table must not
// reach the Group's own table.
func TestNew_DefensiveCopy(t *testing.T) {
	in := cayley.Table{{0, 1}, {1, 0}}
	g, err := group.New(in)
	require.NoError(t, err)

	in[0][0] = 1 // corrupt the caller's slice
	assert.Equal(t, 0, g.Op(0, 0), "Group must own an independent copy of the table")

	out := g.Table()
	out[0][0] = 1
	assert.Equal(t, 0, g.Op(0, 0), "Table() must return a defensive copy")
}

// TestKlein4_SelfInverse: every Klein four element squares to the identity.
func TestKlein4_SelfInverse(t *testing.T) {
	k := group.Klein4()
	require.Equal(t, 4, k.Order())
	for x := 0; x < 4; x++ {
		assert.Equal(t, x, k.Inverse(x), "Klein four elements are self-inverse")
		assert.Equal(t, k.Identity(), k.Op(x, x), "x∘x must be the identity")
	}
}

// TestProduct_Z2Z2 verifies Z2×Z2 has the Klein four shape: order 4, all
// elements self-inverse.
func TestProduct_Z2Z2(t *testing.T) {
	z2, err := group.Cyclic(2)
	require.NoError(t, err)

	p := group.Product(z2, z2)
	require.Equal(t, 4, p.Order())
	for x := 0; x < 4; x++ {
		assert.Equal(t, x, p.Inverse(x), "every element of Z2×Z2 is self-inverse")
	}
}

// TestProduct_Order: |G×H| = |G|·|H| and identity pairs up.
func TestProduct_Order(t *testing.T) {
	z3, err := group.Cyclic(3)
	require.NoError(t, err)
	z2, err := group.Cyclic(2)
	require.NoError(t, err)

	p := group.Product(z3, z2)
	assert.Equal(t, 6, p.Order())
	assert.Equal(t, 0, p.Identity(), "identity of the product is the paired identity (0,0)")
}

// TestQuotient_Z8ByEvenFours: Z8 / {0,4} has 4 cosets and the Z4 table.
func TestQuotient_Z8ByEvenFours(t *testing.T) {
	z8, err := group.Cyclic(8)
	require.NoError(t, err)

	q, cosets, err := group.Quotient(z8, []int{0, 4})
	require.NoError(t, err)
	assert.Equal(t, 4, q.Order(), "Z8/{0,4} has 4 cosets")
	assert.Equal(t, 4, cosets.Count())

	// Coset of x is {x, x+4}; representatives are 0..3.
	for x := 0; x < 8; x++ {
		ci, cErr := cosets.CosetOf(x)
		require.NoError(t, cErr)
		assert.Equal(t, x%4, ci, "coset of %d in Z8/{0,4}", x)
	}
	assert.Equal(t, []int{1, 5}, cosets.Members(1))
	assert.Equal(t, 2, cosets.Representative(2))
}

// TestQuotient_Rejections: non-subgroup sets and out-of-carrier lookups.
func TestQuotient_Rejections(t *testing.T) {
	z8, err := group.Cyclic(8)
	require.NoError(t, err)

	_, _, err = group.Quotient(z8, []int{0, 3}) // 3+3=6 escapes
	assert.ErrorIs(t, err, group.ErrNotSubgroup, "unclosed subset must refuse")

	_, _, err = group.Quotient(z8, []int{1, 5}) // no identity
	assert.ErrorIs(t, err, group.ErrNotSubgroup, "subset without identity must refuse")

	_, _, err = group.Quotient(z8, []int{0, 9})
	assert.ErrorIs(t, err, group.ErrNotSubgroup, "out-of-carrier member must refuse")

	_, cosets, err := group.Quotient(z8, []int{0, 4})
	require.NoError(t, err)
	_, err = cosets.CosetOf(8)
	assert.ErrorIs(t, err, group.ErrUndefinedCoset, "lookup past the carrier is a contract violation")
	_, err = cosets.CosetOf(-1)
	assert.ErrorIs(t, err, group.ErrUndefinedCoset)
}

// s3 builds the symmetric group on 3 letters from its permutations,
// ordered lexicographically so element indices are stable: index 0 is the
// identity, index 1 swaps letters 1 and 2, and so on.
func s3(t *testing.T) *group.Group {
	t.Helper()

	elems, err := perm.All(3)
	require.NoError(t, err)
	sort.Slice(elems, func(i, j int) bool {
		for k := range elems[i] {
			if elems[i][k] != elems[j][k] {
				return elems[i][k] < elems[j][k]
			}
		}

		return false
	})

	find := func(p perm.Perm) int {
		for i, e := range elems {
			if e.Equal(p) {
				return i
			}
		}
		t.Fatalf("composition left S3: %v", p)

		return -1
	}

	table := make(cayley.Table, len(elems))
	for i := range table {
		table[i] = make([]int, len(elems))
		for j := range table[i] {
			table[i][j] = find(perm.Compose(elems[i], elems[j]))
		}
	}
	g, err := group.New(table)
	require.NoError(t, err)

	return g
}

// TestQuotient_NonNormalSubgroup: the two-element subgroup generated by a
// transposition is not normal in S3, so no quotient exists.
func TestQuotient_NonNormalSubgroup(t *testing.T) {
	g := s3(t)
	require.Equal(t, 6, g.Order())

	// Index 1 is the lexicographically second permutation (0,2,1), a
	// transposition: {identity, transposition} is a subgroup but conjugation
	// by a 3-cycle moves it.
	_, _, err := group.Quotient(g, []int{0, 1})
	assert.ErrorIs(t, err, group.ErrNotNormal, "transposition subgroup is not normal in S3")
}

// TestQuotient_S3ByAlternating: the 3-cycle subgroup A3 is normal in S3
// and the quotient has order 2.
func TestQuotient_S3ByAlternating(t *testing.T) {
	g := s3(t)

	// Collect the even permutations: identity plus the two 3-cycles, i.e.
	// the elements x with x∘x∘x = identity... the identity also satisfies
	// that, and no transposition does.
	var a3 []int
	for x := 0; x < 6; x++ {
		if g.Op(g.Op(x, x), x) == g.Identity() {
			a3 = append(a3, x)
		}
	}
	require.Len(t, a3, 3, "A3 has three elements")

	q, _, err := group.Quotient(g, a3)
	require.NoError(t, err)
	assert.Equal(t, 2, q.Order(), "S3/A3 is the two-element group")
}

// TestQuotient_WholeAndTrivial: G/G is trivial, G/{e} is G-sized.
func TestQuotient_WholeAndTrivial(t *testing.T) {
	z4, err := group.Cyclic(4)
	require.NoError(t, err)

	whole, _, err := group.Quotient(z4, []int{0, 1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 1, whole.Order(), "G/G is the trivial group")

	fine, _, err := group.Quotient(z4, []int{0})
	require.NoError(t, err)
	assert.Equal(t, 4, fine.Order(), "G/{e} has one coset per element")
}
