// Package cayley treats an n×n multiplication table as the raw material
// of a finite algebraic structure and answers one question about it:
// which tables are the same structure wearing different element names?
//
// It supports:
//
//   - Validate / IsValid — the Latin-square gate: every row and column of
//     a genuine group table is a permutation of the carrier, so tables
//     failing this are rejected before any downstream work
//   - Relabel — apply an element renaming and obtain the renamed table
//   - Serialize — a total order on tables (row-major, "," and "|" delimited)
//   - CanonicalKey — the lexicographic minimum of Serialize over all n!
//     relabelings; two tables are relabelings of one another iff their
//     canonical keys are byte-for-byte equal
//
// CanonicalKey is the asymptotic bottleneck of lvlgroup: n!·n² work. The
// perm package's ceiling (perm.MaxCarrier) is enforced before enumeration
// starts. Options.Parallelism > 1 splits the permutation space by the
// image of element 0 across an errgroup and keeps only each worker's
// local minimum; the final reduction is a plain minimum, so the result is
// identical to the sequential one regardless of scheduling.
package cayley
