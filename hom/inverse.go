package hom

// TryInverse attempts to build and certify an inverse for f, in two
// phases:
//
//  1. Cheap bijectivity scan: one pass over the source carrier builds the
//     reverse lookup. The first collision aborts with NotInjective; a
//     target element left uncovered aborts with NotSurjective. Either
//     way, the diagnostic names the offending elements.
//  2. Full law verification: only when the scan succeeds is the lookup
//     packaged as a Hom and handed to Verify. Bijectivity of f does not
//     by itself make the set-inverse a homomorphism, so Found is true
//     only when the complete Witness certifies the pair.
//
// Ordering the phases this way means the O(n²) law sweep is never paid
// for maps that already fail the O(n) scan.
//
// TryInverse never returns an error: every negative outcome is a
// first-class InverseReport. A nil f yields the zero report — not found,
// no diagnostic.
func TryInverse(f *Hom) InverseReport {
	if f == nil {
		return InverseReport{}
	}
	gn, hn := f.Src.Order(), f.Dst.Order()

	// --- 1a. Reverse-lookup scan with collision detection ---
	lookup := make([]int, hn)
	for i := range lookup {
		lookup[i] = -1
	}
	for x := 0; x < gn; x++ {
		y := f.Map[x]
		if prev := lookup[y]; prev >= 0 {
			return InverseReport{
				Reason:         NotInjective,
				CollisionA:     prev,
				CollisionB:     x,
				CollisionImage: y,
			}
		}
		lookup[y] = x
	}

	// --- 1b. Coverage: every target element needs a preimage ---
	for y := 0; y < hn; y++ {
		if lookup[y] < 0 {
			return InverseReport{Reason: NotSurjective, Missing: y}
		}
	}

	// --- 2. Package the lookup and run the full witness protocol ---
	inv := &Hom{Src: f.Dst, Dst: f.Src, Map: lookup}
	w, err := Verify(f, inv)
	if err != nil {
		// Unreachable for a well-formed f: inv's endpoints are f's reversed.
		return InverseReport{Inverse: inv, Reason: InverseNotHomomorphism}
	}

	report := InverseReport{Inverse: inv, Witness: w}
	switch {
	case !w.Homomorphism:
		report.Reason = ForwardNotHomomorphism
	case !w.InverseHomomorphism:
		report.Reason = InverseNotHomomorphism
	default:
		report.Found = true
		report.Reason = NoFailure
	}

	return report
}
