// Package lvlgroup is your in-memory toolkit for canonicalizing small
// finite groups and certifying isomorphisms between them — with every
// "yes" answer backed by a checkable witness.
//
// 🚀 What is lvlgroup?
//
//	A small, exact library that brings together:
//		• Cayley tables: Latin-square validation, relabeling, serialization
//		• Canonical keys: equality-up-to-isomorphism via exhaustive relabeling
//		• Isomorphism classes: a registry that names structures you recognize
//		• Witness protocol: homomorphism / bijectivity / round-trip law checks
//		• Inverse construction: build g from f, then prove g is a homomorphism
//		• Automorphism search: Aut(G) and all G≅H isomorphisms, verified pairwise
//
// ✨ Why choose lvlgroup?
//
//   - Exact, not probabilistic – every law is checked over the whole carrier
//   - Negative answers are data – "not isomorphic" is a report, never a panic
//   - Pure Go – deterministic results, optional errgroup parallelism
//   - Honest about limits – factorial search, hard ceiling at 9 elements
//
// Under the hood, everything is organized under six subpackages:
//
//	perm/   — the one permutation generator (Heap's algorithm) + group laws
//	cayley/ — table validation, relabeling, canonical-key computation
//	group/  — the concrete finite-structure type, stock groups, quotients
//	hom/    — homomorphism records, witness reports, inverse construction
//	iso/    — isomorphism classes and the canonical-name registry
//	aut/    — exhaustive automorphism / isomorphism search
//
// Quick ASCII example:
//
//	    Z4:  0 1 2 3        Klein4:  0 1 2 3
//	         1 2 3 0                 1 0 3 2
//	         2 3 0 1                 2 3 0 1
//	         3 0 1 2                 3 2 1 0
//
//	two order-4 tables whose canonical keys differ — so no relabeling
//	can ever turn one into the other.
//
// Dive into the package docs for complexity notes and the demo CLI under
// cmd/lvlgroup for a tour of the public surface.
//
//	go get github.com/katalvlaran/lvlgroup
package lvlgroup
