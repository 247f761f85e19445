// Package perm provides the permutation primitive shared by every
// exhaustive search in lvlgroup: canonical-key computation, automorphism
// enumeration, and bijection checks all walk the symmetric group through
// the single generator defined here.
//
// A Perm is a bijection [0,n) → [0,n), stored as a slice p where p[i] is
// the image of i. The package offers:
//
//   - Identity, Inverse, Compose, Equal — the group operations on Sₙ
//   - Validate — is this slice actually a bijection?
//   - ForEach — visit all n! permutations via Heap's algorithm
//   - All — materialize the full symmetric group (used by partitioned search)
//
// Everything here is factorial territory. ForEach and All refuse to start
// for carriers larger than MaxCarrier (9 elements, 362 880 permutations)
// and return ErrCarrierTooLarge instead of silently grinding — callers
// never discover the ceiling by timing out.
//
// Complexity: ForEach performs one swap per generated permutation, so the
// walk itself is Θ(n!); whatever the callback does per permutation
// dominates in practice.
package perm
