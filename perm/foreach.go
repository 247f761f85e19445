package perm

// ForEach invokes fn once for every permutation of [0,n), generated by
// Heap's algorithm (one swap per step). This is the ONE permutation
// generator in lvlgroup; canonicalization, automorphism search, and the
// parallel partitioner all route through it rather than re-deriving
// enumeration locally.
//
// The Perm handed to fn is a shared buffer that is mutated between calls:
// fn must Clone it if it retains it past the call. A non-nil error from fn
// aborts the walk and is returned unchanged, which doubles as the early-exit
// mechanism.
//
// Returns ErrBadSize for n < 0 and ErrCarrierTooLarge for n > MaxCarrier,
// in both cases before fn is ever invoked.
//
// Complexity: Θ(n!) visits, O(1) amortized work per visit, O(n) memory.
func ForEach(n int, fn func(Perm) error) error {
	if n < 0 {
		return ErrBadSize
	}
	if n > MaxCarrier {
		return ErrCarrierTooLarge
	}

	// --- 1. Seed with the identity; Heap's algorithm permutes in place ---
	p := Identity(n)
	if err := fn(p); err != nil {
		return err
	}

	// --- 2. Iterative Heap's algorithm: c[i] plays the role of the loop
	// counter of the recursive formulation ---
	c := make([]int, n)
	i := 0
	for i < n {
		if c[i] < i {
			if i%2 == 0 {
				p[0], p[i] = p[i], p[0]
			} else {
				p[c[i]], p[i] = p[i], p[c[i]]
			}
			if err := fn(p); err != nil {
				return err
			}
			c[i]++
			i = 0
		} else {
			c[i] = 0
			i++
		}
	}

	return nil
}

// All returns every permutation of [0,n) as independent slices, in
// ForEach's generation order. Intended for partitioned parallel search,
// where workers need stable ownership of their candidates.
//
// Memory: O(n·n!) — use ForEach when a shared buffer suffices.
func All(n int) ([]Perm, error) {
	var out []Perm
	err := ForEach(n, func(p Perm) error {
		out = append(out, p.Clone())

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}
