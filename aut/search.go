package aut

import (
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlgroup/group"
	"github.com/katalvlaran/lvlgroup/hom"
	"github.com/katalvlaran/lvlgroup/perm"
)

// Isomorphisms returns every isomorphism g ≅ h as verified (forward,
// backward) pairs, sorted by the forward map. Mismatched orders yield an
// empty set — "not isomorphic" is a result, not an error. The error
// return covers ill-formed calls (nil groups → hom.ErrNilGroup) and the
// factorial ceiling (perm.ErrCarrierTooLarge), both raised before any
// enumeration.
//
// Complexity: O(n!·n²) worst case; the identity fast-reject prunes all
// but (n-1)! candidates before the quadratic verification runs.
func Isomorphisms(g, h *group.Group) ([]Pair, error) {
	return IsomorphismsOpt(g, h, nil)
}

// Automorphisms returns Aut(G): Isomorphisms from g to itself.
func Automorphisms(g *group.Group) ([]Pair, error) {
	return Isomorphisms(g, g)
}

// IsomorphismsOpt is Isomorphisms with explicit Options. nil opts means
// DefaultOptions.
func IsomorphismsOpt(g, h *group.Group, opts *Options) ([]Pair, error) {
	if g == nil || h == nil {
		return nil, hom.ErrNilGroup
	}
	if g.Order() != h.Order() {
		return nil, nil // different orders: provably no isomorphism, empty set
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	var accepted []Pair
	var err error
	if o.Parallelism <= 1 || g.Order() == 1 {
		accepted, err = searchStripe(g, h, 1, 0)
	} else {
		accepted, err = searchParallel(g, h, o.Parallelism)
	}
	if err != nil {
		return nil, err
	}

	return canonicalize(accepted), nil
}

// searchStripe walks all permutations of the carrier and verifies the
// candidates whose generation index i satisfies i % stripes == stripe.
// With stripes == 1 this is the full sequential search. Striping by
// generation index (rather than by some image value) keeps the load
// balanced even though the identity fast-reject clusters survivors.
func searchStripe(g, h *group.Group, stripes, stripe int) ([]Pair, error) {
	eG, eH := g.Identity(), h.Identity()
	var accepted []Pair
	idx := -1
	err := perm.ForEach(g.Order(), func(p perm.Perm) error {
		idx++
		if idx%stripes != stripe {
			return nil
		}

		// --- 1. Fast reject: homomorphisms fix the identity ---
		if p[eG] != eH {
			return nil
		}

		// --- 2. Full verification of the candidate and its inverse ---
		fwd := &hom.Hom{Src: g, Dst: h, Map: p.Clone()}
		bwd := &hom.Hom{Src: h, Dst: g, Map: p.Inverse()}
		w, err := hom.Verify(fwd, bwd)
		if err != nil {
			return err
		}
		if w.Isomorphism && w.InverseHomomorphism {
			accepted = append(accepted, Pair{Fwd: fwd, Bwd: bwd})
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return accepted, nil
}

// searchParallel fans searchStripe out over an errgroup and unions the
// per-worker accepted sets. canonicalize applied by the caller makes the
// union order-insensitive.
func searchParallel(g, h *group.Group, parallelism int) ([]Pair, error) {
	locals := make([][]Pair, parallelism)
	var eg errgroup.Group
	for w := 0; w < parallelism; w++ {
		w := w
		eg.Go(func() error {
			pairs, err := searchStripe(g, h, parallelism, w)
			locals[w] = pairs

			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var merged []Pair
	for _, pairs := range locals {
		merged = append(merged, pairs...)
	}

	return merged, nil
}

// canonicalize sorts pairs by the forward map lexicographically and drops
// pointwise duplicates — structurally distinct candidates inducing the
// same function are the same isomorphism.
func canonicalize(pairs []Pair) []Pair {
	sort.Slice(pairs, func(i, j int) bool {
		a, b := pairs[i].Fwd.Map, pairs[j].Fwd.Map
		for k := range a {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}

		return false
	})

	out := make([]Pair, 0, len(pairs))
	for _, p := range pairs {
		if len(out) > 0 && p.Fwd.Equal(out[len(out)-1].Fwd) {
			continue
		}
		out = append(out, p)
	}

	return out
}
