// File: cayley/example_test.go
package cayley_test

import (
	"fmt"

	"github.com/katalvlaran/lvlgroup/cayley"
	"github.com/katalvlaran/lvlgroup/perm"
)

////////////////////////////////////////////////////////////////////////////////
// Example: CanonicalKey
////////////////////////////////////////////////////////////////////////////////

// ExampleCanonicalKey demonstrates that two differently labeled copies of
// the same two-element structure canonicalize to identical bytes.
// Scenario:
//
//   - Table a: the usual Z2 with identity 0
//   - Table b: the same structure with the labels swapped
//   - Both keys come out as the lexicographic minimum over both relabelings
//
// Complexity: O(n!·n²) — here n=2, so 2 candidate serializations.
func ExampleCanonicalKey() {
	a := cayley.Table{{0, 1}, {1, 0}}
	b := cayley.Table{{1, 0}, {0, 1}} // identity renamed to 1

	ka, _ := cayley.CanonicalKey(a, nil)
	kb, _ := cayley.CanonicalKey(b, nil)
	fmt.Println("key a:", ka)
	fmt.Println("key b:", kb)
	fmt.Println("same class:", ka == kb)

	// Output:
	// key a: 0,1|1,0
	// key b: 0,1|1,0
	// same class: true
}

// ExampleRelabel demonstrates the round-trip law: relabeling by p and
// then by p⁻¹ restores the original table cell for cell.
func ExampleRelabel() {
	t := cayley.Table{
		{0, 1, 2},
		{1, 2, 0},
		{2, 0, 1},
	}
	p := perm.Perm{1, 2, 0}

	renamed, _ := cayley.Relabel(t, p)
	back, _ := cayley.Relabel(renamed, p.Inverse())
	fmt.Println("moved:", !cayley.Equal(t, renamed))
	fmt.Println("restored:", cayley.Equal(t, back))

	// Output:
	// moved: true
	// restored: true
}
