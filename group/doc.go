// Package group defines the one concrete finite-structure type the rest
// of lvlgroup operates on. A Group bundles exactly the capability set the
// witness checks need — carrier size, binary operation, identity element,
// per-element inverses — behind plain methods instead of a bag of
// loosely-typed functions, so groups, automorphism sets, and quotients are
// all values of the same type.
//
// Construction:
//
//   - New(table) — validates the table as a Latin square, locates the
//     two-sided identity, and precomputes every element's inverse; any
//     failure is reported before the value exists. Associativity is NOT
//     checked: the Latin + identity + inverse gate is structural, and
//     callers feeding hand-written tables are responsible for the rest.
//   - Cyclic, Klein4, Trivial, Product — stock constructors used across
//     the test scenarios and the demo CLI.
//
// Quotients:
//
//   - Subgroup / normality checks, coset partitions with representative
//     lookup, and the induced table on cosets. Quotient refuses non-normal
//     subgroups (the induced table would be ill-defined) rather than
//     returning garbage. CosetOf on an element outside the carrier is a
//     caller contract violation and returns ErrUndefinedCoset.
//
// All values are immutable after construction; Table() returns a defensive
// copy.
package group
