// Package cayley defines the Table type, sentinel errors, and options
// for the cayley subpackage of github.com/katalvlaran/lvlgroup.
package cayley

import (
	"errors"
	"fmt"
)

// ErrInvalidTable is the umbrella sentinel for every structural defect a
// candidate table can have. The finer sentinels below wrap it, so
// errors.Is(err, ErrInvalidTable) catches them all.
var ErrInvalidTable = errors.New("cayley: invalid multiplication table")

var (
	// ErrEmptyTable indicates a table with no rows.
	ErrEmptyTable = fmt.Errorf("%w: table must have at least one row", ErrInvalidTable)
	// ErrNotSquare indicates a ragged table or a row count ≠ column count.
	ErrNotSquare = fmt.Errorf("%w: table must be square", ErrInvalidTable)
	// ErrEntryRange indicates an entry outside [0,n).
	ErrEntryRange = fmt.Errorf("%w: entry outside [0,n)", ErrInvalidTable)
	// ErrNotLatin indicates a row or column that repeats an element.
	ErrNotLatin = fmt.Errorf("%w: rows and columns must each be permutations of [0,n)", ErrInvalidTable)
)

// Table is an n×n Cayley table over the carrier [0,n): Table[a][b] is the
// index of a∘b. A Table is only meaningful after Validate accepts it.
type Table [][]int

// Options configures CanonicalKey.
//   - Parallelism: number of concurrent workers for the permutation
//     search. Values ≤ 1 select the sequential path. Workers partition by
//     the image of element 0, so more than n workers is never useful.
type Options struct {
	Parallelism int
}

// DefaultOptions returns the baseline configuration: sequential search.
func DefaultOptions() Options {
	return Options{Parallelism: 1}
}

// Clone returns a deep copy of t.
func Clone(t Table) Table {
	out := make(Table, len(t))
	for i, row := range t {
		out[i] = make([]int, len(row))
		copy(out[i], row)
	}

	return out
}

// Equal reports exact cellwise equality (not equality up to relabeling).
func Equal(a, b Table) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}

	return true
}
