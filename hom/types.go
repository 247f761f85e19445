// Package hom defines the Hom record, report types, and sentinel errors
// for the hom subpackage of github.com/katalvlaran/lvlgroup.
package hom

import (
	"errors"

	"github.com/katalvlaran/lvlgroup/group"
)

// Sentinel errors for ill-formed calls. Mathematical "no" answers are
// never errors — they live in Witness and InverseReport.
var (
	// ErrNilGroup indicates a nil source or target group.
	ErrNilGroup = errors.New("hom: source and target groups must be non-nil")
	// ErrNilHom indicates a nil homomorphism record where one is required.
	ErrNilHom = errors.New("hom: homomorphism record must be non-nil")
	// ErrBadMap indicates a map whose length or entries do not fit the carriers.
	ErrBadMap = errors.New("hom: map does not fit the source and target carriers")
	// ErrTypeMismatch indicates source/target groups that do not line up,
	// e.g. composing maps through different middle groups.
	ErrTypeMismatch = errors.New("hom: source/target groups do not line up")
)

// Hom is a homomorphism record: a total element map from Src's carrier
// into Dst's carrier. Shape is validated at construction; the algebraic
// laws are checked by Verify.
type Hom struct {
	Src *group.Group
	Dst *group.Group
	Map []int
}

// Witness is the full report of the law checks for a forward map f (and
// optionally a backward map g). Every field is computed over the whole
// carrier; the report is a pure function of its inputs.
//
// Isomorphism is derived from the bijectivity formulation:
// Homomorphism ∧ Injective ∧ Surjective. When HasInverse is true and the
// supplied g really is f's inverse, the two-sided formulation
// Homomorphism ∧ InverseHomomorphism ∧ LeftIdentity ∧ RightIdentity
// agrees with it — a property the test suite pins down.
type Witness struct {
	// Homomorphism: f(x∘y) = f(x)∘f(y) for all x, y in the source.
	Homomorphism bool
	// InverseHomomorphism: the symmetric law for g over the target.
	// Always false when no g was supplied (see HasInverse).
	InverseHomomorphism bool
	// Injective: no two source elements share an image.
	Injective bool
	// Surjective: every target element has a preimage.
	Surjective bool
	// LeftIdentity: g(f(x)) = x for all x in the source.
	LeftIdentity bool
	// RightIdentity: f(g(y)) = y for all y in the target.
	RightIdentity bool
	// HasInverse records whether a backward map was supplied; when false,
	// InverseHomomorphism, LeftIdentity and RightIdentity are
	// vacuously false and say nothing about f.
	HasInverse bool
	// Isomorphism: Homomorphism ∧ Injective ∧ Surjective.
	Isomorphism bool
	// Failure names the first violated law with its witnessing elements,
	// e.g. "f(1∘2)=3 but f(1)∘f(2)=0". Empty when every checked law holds.
	Failure string
}

// InverseFailure classifies why TryInverse could not produce a verified
// inverse.
type InverseFailure int

const (
	// NoFailure: a verified inverse was constructed.
	NoFailure InverseFailure = iota
	// NotInjective: two source elements collide on one image.
	NotInjective
	// NotSurjective: some target element has no preimage.
	NotSurjective
	// ForwardNotHomomorphism: the map is bijective but f itself breaks the
	// homomorphism law, so no inverse can certify an isomorphism.
	ForwardNotHomomorphism
	// InverseNotHomomorphism: the constructed set-inverse exists but
	// breaks the homomorphism law on the target.
	InverseNotHomomorphism
)

// String renders the failure class for diagnostics.
func (r InverseFailure) String() string {
	switch r {
	case NoFailure:
		return "none"
	case NotInjective:
		return "not injective"
	case NotSurjective:
		return "not surjective"
	case ForwardNotHomomorphism:
		return "forward map is not a homomorphism"
	case InverseNotHomomorphism:
		return "constructed inverse is not a homomorphism"
	default:
		return "unknown"
	}
}

// InverseReport is the structured outcome of TryInverse: either a
// verified inverse (Found, Inverse, Witness) or a diagnostic saying
// exactly why none exists. Never an error — "no inverse" is an expected,
// first-class result.
type InverseReport struct {
	Found  bool
	Reason InverseFailure

	// CollisionA, CollisionB, CollisionImage describe the first detected
	// injectivity failure: f(CollisionA) == f(CollisionB) == CollisionImage.
	// Meaningful only when Reason == NotInjective.
	CollisionA, CollisionB, CollisionImage int

	// Missing is the first target element with no preimage. Meaningful
	// only when Reason == NotSurjective.
	Missing int

	// Inverse is the constructed backward map. Populated whenever the
	// bijectivity scan succeeded, even if a law check failed afterwards.
	Inverse *Hom

	// Witness is the full verification report for (f, Inverse).
	// Zero-valued when the cheap scan already failed.
	Witness Witness
}
