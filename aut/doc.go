// Package aut enumerates every isomorphism between two finite groups
// (or a group and itself) by exhaustive search over the symmetric group
// on the carrier, with each accepted map certified by the full witness
// protocol — never by the light identity-preservation shortcut.
//
// The search pipeline per candidate permutation:
//
//  1. fast reject — a homomorphism must send identity to identity, which
//     throws out (n-1)/n of the space for one comparison
//  2. full verification — hom.Verify over the candidate and its inverse
//     permutation; both directions must satisfy the homomorphism law
//  3. dedup + deterministic order — accepted pairs are sorted by the
//     forward map and deduplicated pointwise, so sequential and parallel
//     runs return identical slices
//
// The result of Automorphisms(g) is Aut(G) in the concrete sense: each
// element carries its forward and backward map, IdentityPair is the
// neutral element, Compose and Invert stay inside the set (closure is
// part of the test suite), and associativity is inherited from function
// composition.
//
// Everything is a pure batch computation — no state survives a call.
// Options.Parallelism > 1 stripes the permutation space across an
// errgroup; set union followed by the same sort+dedup keeps the merge
// deterministic.
package aut
