package cayley

import "fmt"

// Validate checks that t is a well-formed Latin square: square shape,
// every entry in [0,n), and every row and column a permutation of the
// carrier. Returns nil on success or a sentinel wrapping ErrInvalidTable
// that names the first violation found.
//
// This is the gate every constructor in lvlgroup runs before touching a
// table; a table that fails here must not reach canonicalization or
// witness checks.
//
// Complexity: O(n²), O(n) scratch memory.
func Validate(t Table) error {
	n := len(t)
	if n == 0 {
		return ErrEmptyTable
	}

	// --- 1. Shape and range: reject ragged rows and stray entries ---
	for i, row := range t {
		if len(row) != n {
			return fmt.Errorf("%w: row %d has %d entries, want %d", ErrNotSquare, i, len(row), n)
		}
		for j, v := range row {
			if v < 0 || v >= n {
				return fmt.Errorf("%w: t[%d][%d] = %d", ErrEntryRange, i, j, v)
			}
		}
	}

	// --- 2. Latin rows: each row hits every element exactly once ---
	seen := make([]bool, n)
	for i, row := range t {
		for k := range seen {
			seen[k] = false
		}
		for _, v := range row {
			if seen[v] {
				return fmt.Errorf("%w: row %d repeats %d", ErrNotLatin, i, v)
			}
			seen[v] = true
		}
	}

	// --- 3. Latin columns: same check down each column ---
	for j := 0; j < n; j++ {
		for k := range seen {
			seen[k] = false
		}
		for i := 0; i < n; i++ {
			v := t[i][j]
			if seen[v] {
				return fmt.Errorf("%w: column %d repeats %d", ErrNotLatin, j, v)
			}
			seen[v] = true
		}
	}

	return nil
}

// IsValid is the boolean form of Validate, for callers that only gate and
// do not need the diagnostic.
func IsValid(t Table) bool {
	return Validate(t) == nil
}
