package group

import (
	"fmt"

	"github.com/katalvlaran/lvlgroup/cayley"
)

// Group is a finite structure over the carrier [0,n): a validated Cayley
// table, its two-sided identity, and a precomputed inverse for every
// element. Values are immutable after New returns.
type Group struct {
	table    cayley.Table
	identity int
	inverse  []int
}

// New builds a Group from a candidate table. The table is validated as a
// Latin square (cayley.ErrInvalidTable and its refinements propagate),
// then the two-sided identity is located (ErrNoIdentity) and each
// element's two-sided inverse is recorded (ErrNoInverse). The input table
// is copied; later mutation of t does not affect the Group.
//
// Complexity: O(n²).
func New(t cayley.Table) (*Group, error) {
	// --- 1. Structural gate: fail loudly before any algebra ---
	if err := cayley.Validate(t); err != nil {
		return nil, err
	}
	n := len(t)
	own := cayley.Clone(t)

	// --- 2. Locate the two-sided identity: e with e∘x == x∘e == x for all x ---
	identity := -1
	for e := 0; e < n; e++ {
		ok := true
		for x := 0; x < n; x++ {
			if own[e][x] != x || own[x][e] != x {
				ok = false
				break
			}
		}
		if ok {
			identity = e
			break
		}
	}
	if identity < 0 {
		return nil, ErrNoIdentity
	}

	// --- 3. Record two-sided inverses; Latin rows guarantee a left
	// candidate exists, two-sidedness still has to be checked ---
	inverse := make([]int, n)
	for x := 0; x < n; x++ {
		found := false
		for y := 0; y < n; y++ {
			if own[x][y] == identity && own[y][x] == identity {
				inverse[x] = y
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: element %d", ErrNoInverse, x)
		}
	}

	return &Group{table: own, identity: identity, inverse: inverse}, nil
}

// Order returns the carrier size n.
func (g *Group) Order() int { return len(g.table) }

// Op returns a∘b. Out-of-range arguments panic, as slice indexing does —
// element indices come from the carrier by construction.
func (g *Group) Op(a, b int) int { return g.table[a][b] }

// Identity returns the index of the identity element.
func (g *Group) Identity() int { return g.identity }

// Inverse returns the index of a's two-sided inverse.
func (g *Group) Inverse(a int) int { return g.inverse[a] }

// Contains reports whether i is a carrier index.
func (g *Group) Contains(i int) bool { return i >= 0 && i < len(g.table) }

// Table returns a defensive copy of the Cayley table.
func (g *Group) Table() cayley.Table { return cayley.Clone(g.table) }
