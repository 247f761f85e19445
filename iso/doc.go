// Package iso wraps a validated table together with its canonical key
// into an isomorphism class: a value whose equality is
// equality-up-to-relabeling, not cellwise equality. Two classes are Equal
// iff their keys match — the expensive canonicalization runs once, at
// construction.
//
// The Registry binds human names ("Z4", "Klein four") to canonical keys.
// It is an explicit, constructible object handed to callers rather than a
// hidden package global, so independent registries never leak names into
// each other's tests. Registration is append-only: a key, once bound,
// cannot be rebound to a different name. Classify computes a table's
// class and attaches the registered name when the key is known; the
// operation is idempotent — re-classifying a classified table can never
// change its key.
package iso
