package cayley

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlgroup/perm"
)

// CanonicalKey computes the canonical form of t: the lexicographically
// minimal Serialize over every relabeling of the carrier. Two valid
// tables are relabelings of one another iff their canonical keys are
// equal, which makes the key the isomorphism invariant the iso package
// builds on.
//
// The result is independent of enumeration order (a minimum is
// commutative and associative over the candidate set), so the sequential
// and parallel paths return byte-identical keys.
//
// Errors: ErrInvalidTable (wrapped, from Validate) for malformed input;
// perm.ErrCarrierTooLarge (wrapped) when len(t) > perm.MaxCarrier, raised
// before any enumeration starts.
//
// Complexity: O(n!·n²) time, O(n²) memory per worker.
func CanonicalKey(t Table, opts *Options) (string, error) {
	// --- 1. Gate: structural validity, then the factorial ceiling ---
	if err := Validate(t); err != nil {
		return "", err
	}
	n := len(t)
	if n > perm.MaxCarrier {
		return "", fmt.Errorf("cayley: %d×%d table: %w", n, n, perm.ErrCarrierTooLarge)
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	// --- 2. Dispatch: parallelism below 2 (or a trivial carrier) stays sequential ---
	if o.Parallelism <= 1 || n == 1 {
		return minKeySequential(t)
	}

	return minKeyParallel(t, o.Parallelism)
}

// minKeySequential walks all n! relabelings with one reused scratch table.
func minKeySequential(t Table) (string, error) {
	scratch := newScratch(len(t))
	best := ""
	err := perm.ForEach(len(t), func(p perm.Perm) error {
		relabelInto(scratch, t, p)
		if s := Serialize(scratch); best == "" || s < best {
			best = s
		}

		return nil
	})
	if err != nil {
		return "", err
	}

	return best, nil
}

// minKeyParallel splits the permutation space by the image of element 0:
// worker w owns every permutation p with p[0] % workers == w, computes a
// local minimum over its share, and the caller reduces the local minima.
// Each worker re-runs the Heap walk and skips foreign candidates — the
// walk itself is one swap per permutation, noise next to the O(n²)
// relabel+serialize done for owned candidates.
func minKeyParallel(t Table, parallelism int) (string, error) {
	n := len(t)
	workers := parallelism
	if workers > n {
		workers = n // partition key is p[0] ∈ [0,n), extra workers would idle
	}

	locals := make([]string, workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			scratch := newScratch(n)
			best := ""
			err := perm.ForEach(n, func(p perm.Perm) error {
				if p[0]%workers != w {
					return nil
				}
				relabelInto(scratch, t, p)
				if s := Serialize(scratch); best == "" || s < best {
					best = s
				}

				return nil
			})
			locals[w] = best

			return err
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	// --- Final reduction: plain minimum over the per-worker minima ---
	best := locals[0]
	for _, s := range locals[1:] {
		if s != "" && (best == "" || s < best) {
			best = s
		}
	}

	return best, nil
}

// newScratch allocates an n×n table for relabelInto reuse.
func newScratch(n int) Table {
	s := make(Table, n)
	for i := range s {
		s[i] = make([]int, n)
	}

	return s
}
