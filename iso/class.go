// Package iso defines the Class value and its constructors for the iso
// subpackage of github.com/katalvlaran/lvlgroup.
package iso

import (
	"github.com/katalvlaran/lvlgroup/cayley"
	"github.com/katalvlaran/lvlgroup/group"
)

// Class is an immutable (representative table, canonical key) pair,
// optionally tagged with a name. Equality between classes is key
// equality only.
type Class struct {
	name  string
	key   string
	table cayley.Table
}

// FromTable validates t, computes its canonical key, and returns the
// class. name may be empty for an unnamed class. Errors propagate from
// the cayley gate: ErrInvalidTable for malformed tables,
// perm.ErrCarrierTooLarge above the search ceiling.
func FromTable(t cayley.Table, name string) (Class, error) {
	key, err := cayley.CanonicalKey(t, nil)
	if err != nil {
		return Class{}, err
	}

	return Class{name: name, key: key, table: cayley.Clone(t)}, nil
}

// FromGroup is FromTable on g's Cayley table.
func FromGroup(g *group.Group, name string) (Class, error) {
	return FromTable(g.Table(), name)
}

// Key returns the canonical key.
func (c Class) Key() string { return c.key }

// Name returns the attached name, empty if unnamed.
func (c Class) Name() string { return c.name }

// Named reports whether a name is attached.
func (c Class) Named() bool { return c.name != "" }

// Table returns a copy of the representative table.
func (c Class) Table() cayley.Table { return cayley.Clone(c.table) }

// Order returns the carrier size of the representative.
func (c Class) Order() int { return len(c.table) }

// Equal reports equality up to isomorphism: the canonical keys match.
// Names and representatives play no part.
func (c Class) Equal(other Class) bool { return c.key == other.key }
