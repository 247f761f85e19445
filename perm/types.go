// Package perm defines the Perm type, sentinel errors, and the search
// ceiling for the perm subpackage of github.com/katalvlaran/lvlgroup.
package perm

import "errors"

// MaxCarrier is the largest carrier size any exhaustive permutation walk
// will accept. 9! = 362 880 permutations is the last factorial that stays
// comfortably sub-second when each visit does O(n²) work; 10! does not.
const MaxCarrier = 9

// Sentinel errors for perm operations.
var (
	// ErrCarrierTooLarge indicates a requested walk over more than MaxCarrier elements.
	ErrCarrierTooLarge = errors.New("perm: carrier size exceeds factorial-search ceiling")
	// ErrBadSize indicates a negative carrier size.
	ErrBadSize = errors.New("perm: carrier size must be non-negative")
	// ErrNotPermutation indicates a slice whose entries are not a bijection of [0,n).
	ErrNotPermutation = errors.New("perm: slice is not a permutation of [0,n)")
)

// Perm represents a bijection [0,n) → [0,n); p[i] is the image of i.
// The zero-length Perm is the (only) permutation of the empty carrier.
type Perm []int
