// Package group defines sentinel errors for the group subpackage of
// github.com/katalvlaran/lvlgroup.
package group

import "errors"

// Sentinel errors for group construction and quotient operations.
var (
	// ErrBadOrder indicates a requested order below 1.
	ErrBadOrder = errors.New("group: order must be at least 1")
	// ErrNoIdentity indicates a Latin square with no two-sided identity element.
	ErrNoIdentity = errors.New("group: table has no two-sided identity")
	// ErrNoInverse indicates an element with no two-sided inverse.
	ErrNoInverse = errors.New("group: element has no two-sided inverse")
	// ErrNotSubgroup indicates a candidate subset that is not a subgroup.
	ErrNotSubgroup = errors.New("group: subset is not a subgroup")
	// ErrNotNormal indicates a subgroup that is not normal, so no quotient exists.
	ErrNotNormal = errors.New("group: subgroup is not normal")
	// ErrUndefinedCoset indicates a coset lookup for an element outside the
	// carrier — a caller contract violation, never a mathematical "no".
	ErrUndefinedCoset = errors.New("group: element belongs to no coset")
)
