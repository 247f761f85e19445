package hom

import "fmt"

// Verify runs every law check for the forward map f, and for the backward
// map g when one is supplied (g may be nil). All checks sweep the entire
// finite carrier — correctness over sampling, which the size ceiling
// keeps tractable.
//
// Checks, in report order:
//  1. homomorphism law for f: f(x∘y) = f(x)∘f(y) over all pairs
//  2. homomorphism law for g over the target (g supplied only)
//  3. left round trip: g(f(x)) = x
//  4. right round trip: f(g(y)) = y
//  5. injectivity of f
//  6. surjectivity of f
//
// A failed law is a normal outcome reported in the Witness; the error
// return marks ill-formed calls only: nil f (ErrNilHom) or a g whose
// endpoints are not f's reversed (ErrTypeMismatch).
//
// Complexity: O(n²) over the two carriers.
func Verify(f, g *Hom) (Witness, error) {
	if f == nil {
		return Witness{}, ErrNilHom
	}
	if g != nil && (!SameGroup(g.Src, f.Dst) || !SameGroup(g.Dst, f.Src)) {
		return Witness{}, fmt.Errorf("%w: backward map must run from f's target to f's source", ErrTypeMismatch)
	}

	w := Witness{HasInverse: g != nil}
	fail := func(format string, args ...any) {
		if w.Failure == "" {
			w.Failure = fmt.Sprintf(format, args...)
		}
	}

	gn, hn := f.Src.Order(), f.Dst.Order()

	// --- 1. Homomorphism law for f ---
	w.Homomorphism = true
	for x := 0; x < gn && w.Homomorphism; x++ {
		for y := 0; y < gn; y++ {
			lhs := f.Map[f.Src.Op(x, y)]
			rhs := f.Dst.Op(f.Map[x], f.Map[y])
			if lhs != rhs {
				w.Homomorphism = false
				fail("f(%d∘%d)=%d but f(%d)∘f(%d)=%d", x, y, lhs, x, y, rhs)
				break
			}
		}
	}

	// --- 2. Homomorphism law for g over the target carrier ---
	if g != nil {
		w.InverseHomomorphism = true
		for x := 0; x < hn && w.InverseHomomorphism; x++ {
			for y := 0; y < hn; y++ {
				lhs := g.Map[g.Src.Op(x, y)]
				rhs := g.Dst.Op(g.Map[x], g.Map[y])
				if lhs != rhs {
					w.InverseHomomorphism = false
					fail("g(%d∘%d)=%d but g(%d)∘g(%d)=%d", x, y, lhs, x, y, rhs)
					break
				}
			}
		}

		// --- 3. Left round trip: g∘f is the identity on the source ---
		w.LeftIdentity = true
		for x := 0; x < gn; x++ {
			if got := g.Map[f.Map[x]]; got != x {
				w.LeftIdentity = false
				fail("g(f(%d))=%d, want %d", x, got, x)
				break
			}
		}

		// --- 4. Right round trip: f∘g is the identity on the target ---
		w.RightIdentity = true
		for y := 0; y < hn; y++ {
			if got := f.Map[g.Map[y]]; got != y {
				w.RightIdentity = false
				fail("f(g(%d))=%d, want %d", y, got, y)
				break
			}
		}
	}

	// --- 5. Injectivity, derived from f alone. The scan keeps going after
	// the first collision so the preimage table is complete for check 6 ---
	w.Injective = true
	preimage := make([]int, hn)
	for i := range preimage {
		preimage[i] = -1
	}
	for x := 0; x < gn; x++ {
		y := f.Map[x]
		if prev := preimage[y]; prev >= 0 {
			if w.Injective {
				w.Injective = false
				fail("f collapses %d and %d to %d", prev, x, y)
			}
			continue
		}
		preimage[y] = x
	}

	// --- 6. Surjectivity: every target element must be hit ---
	w.Surjective = true
	for y := 0; y < hn; y++ {
		if preimage[y] < 0 {
			w.Surjective = false
			fail("no source element maps to %d", y)
			break
		}
	}

	w.Isomorphism = w.Homomorphism && w.Injective && w.Surjective

	return w, nil
}
