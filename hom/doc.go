// Package hom implements the witness protocol of lvlgroup: given a map
// between two finite structures, it checks every algebraic law the map
// must satisfy — over the entire carrier, never a sample — and reports
// the verdicts as data.
//
// The three moving parts:
//
//   - Hom — a homomorphism record: source group, target group, and an
//     element-to-element map by index. Constructed via New or FromFunc,
//     which validate shape only; whether the map respects the operations
//     is Verify's job.
//   - Witness — the report: homomorphism law for the forward map (and the
//     backward map when supplied), injectivity, surjectivity, and both
//     round-trip identities, plus the derived Isomorphism verdict and a
//     Failure string naming the first violated law with its witnessing
//     elements. A "no" is a normal result, not an error.
//   - TryInverse — the two-phase inverse-construction workflow: a single
//     cheap scan builds the reverse lookup and detects collisions or
//     gaps; only if the map is bijective does the expensive full law
//     verification run on the packaged inverse. Bijectivity alone does
//     not make the inverse a homomorphism in general algebraic settings,
//     so that final check is mandatory.
//
// Errors here mark ill-formed calls (nil groups, wrong-length maps,
// mismatched composition), never negative mathematical outcomes.
package hom
