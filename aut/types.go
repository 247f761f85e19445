// Package aut defines the Pair type and search options for the aut
// subpackage of github.com/katalvlaran/lvlgroup.
package aut

import (
	"github.com/katalvlaran/lvlgroup/group"
	"github.com/katalvlaran/lvlgroup/hom"
)

// Pair is a verified isomorphism: the forward map together with the
// backward map found during search. Both directions have passed the full
// homomorphism check before a Pair exists.
type Pair struct {
	Fwd *hom.Hom
	Bwd *hom.Hom
}

// Options configures the search.
//   - Parallelism: number of concurrent workers striping the permutation
//     space. Values ≤ 1 select the sequential path. The merged result is
//     identical either way.
type Options struct {
	Parallelism int
}

// DefaultOptions returns the baseline configuration: sequential search.
func DefaultOptions() Options {
	return Options{Parallelism: 1}
}

// IdentityPair returns the neutral element of Aut(G): the identity map
// paired with itself.
func IdentityPair(g *group.Group) Pair {
	id := hom.Identity(g)

	return Pair{Fwd: id, Bwd: id}
}

// Invert returns the inverse isomorphism — the maps swap roles.
func Invert(a Pair) Pair {
	return Pair{Fwd: a.Bwd, Bwd: a.Fwd}
}

// Compose returns a∘b, the isomorphism that applies b first. The backward
// direction composes in the opposite order. Endpoint mismatches surface
// as hom.ErrTypeMismatch.
func Compose(a, b Pair) (Pair, error) {
	fwd, err := hom.Compose(a.Fwd, b.Fwd)
	if err != nil {
		return Pair{}, err
	}
	bwd, err := hom.Compose(b.Bwd, a.Bwd)
	if err != nil {
		return Pair{}, err
	}

	return Pair{Fwd: fwd, Bwd: bwd}, nil
}

// Contains reports whether set holds an isomorphism pointwise equal to
// p's forward map — the dedup criterion of the search.
func Contains(set []Pair, p Pair) bool {
	for _, s := range set {
		if s.Fwd.Equal(p.Fwd) {
			return true
		}
	}

	return false
}
