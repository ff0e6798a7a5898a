// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package algebra

// Operation describes a single group-like binary operation over T: how to
// combine two values, the identity of the operation, and (optionally) how to
// invert a value.  Group, AdditiveGroup and Monoid are all projections onto
// this one shape, so that their laws are written once.
type Operation[T any] struct {
	// Combine computes x ∘ y.
	Combine func(x, y T) T
	// Identity is e, such that x ∘ e = e ∘ x = x.
	Identity T
	// Inverse computes x⁻¹, returning false if x has no inverse.  This is nil
	// for operations without inverses (e.g. monoids).
	Inverse func(x T) (T, bool)
}

// LawSet provides the axiom checks for a given operation.  Each check
// evaluates its axiom on the given sample values only: true means the samples
// did not disprove the law, false means they did.  Checks never fail in any
// other way.
type LawSet[T any] struct {
	op    Operation[T]
	equal func(x, y T) bool
}

// NewLawSet constructs a set of axiom checks for a given operation, using the
// type's own structural equality.
func NewLawSet[T Equatable[T]](op Operation[T]) LawSet[T] {
	return LawSet[T]{op, func(x, y T) bool { return x.Equals(y) }}
}

// GroupLaws returns the axiom checks for a group under Mul.
func GroupLaws[G Group[G]]() LawSet[G] {
	var g G
	//
	return NewLawSet(Operation[G]{
		Combine:  func(x, y G) G { return x.Mul(y) },
		Identity: g.Identity(),
		Inverse:  func(x G) (G, bool) { return x.Inverse(), true },
	})
}

// AdditiveLaws returns the axiom checks for an additive group under Add.
func AdditiveLaws[G AdditiveGroup[G]]() LawSet[G] {
	var g G
	//
	return NewLawSet(Operation[G]{
		Combine:  func(x, y G) G { return x.Add(y) },
		Identity: g.Zero(),
		Inverse:  func(x G) (G, bool) { return x.Neg(), true },
	})
}

// MonoidLaws returns the axiom checks for a monoid under Mul.  Since monoids
// have no inverses, the Inverse check always reports false.
func MonoidLaws[M Monoid[M]]() LawSet[M] {
	var m M
	//
	return NewLawSet(Operation[M]{
		Combine:  func(x, y M) M { return x.Mul(y) },
		Identity: m.Identity(),
	})
}

// WithEquality returns a copy of this law set which compares values using eq
// rather than the type's own equality.  This is needed for approximate
// representations, such as floating point.
func (p LawSet[T]) WithEquality(eq func(x, y T) bool) LawSet[T] {
	return LawSet[T]{p.op, eq}
}

// Equal compares two values using the equality of this law set.
func (p LawSet[T]) Equal(x, y T) bool {
	return p.equal(x, y)
}

// HasInverse indicates whether the underlying operation defines inverses.
func (p LawSet[T]) HasInverse() bool {
	return p.op.Inverse != nil
}

// Associativity checks (a ∘ b) ∘ c = a ∘ (b ∘ c).
func (p LawSet[T]) Associativity(a, b, c T) bool {
	var (
		lhs = p.op.Combine(p.op.Combine(a, b), c)
		rhs = p.op.Combine(a, p.op.Combine(b, c))
	)
	//
	return p.equal(lhs, rhs)
}

// Identity checks a ∘ e = a and e ∘ a = a.
func (p LawSet[T]) Identity(a T) bool {
	e := p.op.Identity
	//
	return p.equal(p.op.Combine(a, e), a) && p.equal(p.op.Combine(e, a), a)
}

// Inverse checks a ∘ a⁻¹ = e and a⁻¹ ∘ a = e.  This reports false when a has
// no inverse, including when the operation has no inverses at all.
func (p LawSet[T]) Inverse(a T) bool {
	if p.op.Inverse == nil {
		return false
	}
	//
	inv, ok := p.op.Inverse(a)
	if !ok {
		return false
	}
	//
	e := p.op.Identity
	//
	return p.equal(p.op.Combine(a, inv), e) && p.equal(p.op.Combine(inv, a), e)
}

// Commutativity checks a ∘ b = b ∘ a.  This is not an axiom of groups or
// monoids in general, but is expected of the additive group of a ring and of
// the multiplicative group of a field.
func (p LawSet[T]) Commutativity(a, b T) bool {
	return p.equal(p.op.Combine(a, b), p.op.Combine(b, a))
}

// RingLawSet provides the axiom checks for a ring (or field), comprising one
// law set for each operation together with the distributivity laws linking
// them.
type RingLawSet[R Ring[R]] struct {
	// Additive laws, with identity FromInt(0) and inverse Neg.
	Additive LawSet[R]
	// Multiplicative laws, with identity FromInt(1).  For rings there is no
	// inverse.  For fields, every nonzero element has one.
	Multiplicative LawSet[R]
	equal          func(x, y R) bool
}

// RingLaws returns the axiom checks for a ring.
func RingLaws[R Ring[R]]() RingLawSet[R] {
	additive := NewLawSet(Operation[R]{
		Combine:  func(x, y R) R { return x.Add(y) },
		Identity: Zero[R](),
		Inverse:  func(x R) (R, bool) { return x.Neg(), true },
	})
	multiplicative := NewLawSet(Operation[R]{
		Combine:  func(x, y R) R { return x.Mul(y) },
		Identity: One[R](),
	})
	//
	return RingLawSet[R]{additive, multiplicative, additive.equal}
}

// FieldLaws returns the axiom checks for a field.  The multiplicative law set
// is that of the group of nonzero elements, hence its Inverse check reports
// false for zero.
func FieldLaws[F Field[F]]() RingLawSet[F] {
	laws := RingLaws[F]()
	laws.Multiplicative = NewLawSet(Operation[F]{
		Combine:  func(x, y F) F { return x.Mul(y) },
		Identity: One[F](),
		Inverse: func(x F) (F, bool) {
			if IsZero(x) {
				return x, false
			}

			return x.Inverse(), true
		},
	})
	//
	return laws
}

// WithEquality returns a copy of this law set where all checks compare values
// using eq.
func (p RingLawSet[R]) WithEquality(eq func(x, y R) bool) RingLawSet[R] {
	return RingLawSet[R]{p.Additive.WithEquality(eq), p.Multiplicative.WithEquality(eq), eq}
}

// LeftDistributivity checks a * (b + c) = a * b + a * c.
func (p RingLawSet[R]) LeftDistributivity(a, b, c R) bool {
	return p.equal(a.Mul(b.Add(c)), a.Mul(b).Add(a.Mul(c)))
}

// RightDistributivity checks (a + b) * c = a * c + b * c.
func (p RingLawSet[R]) RightDistributivity(a, b, c R) bool {
	return p.equal(a.Add(b).Mul(c), a.Mul(c).Add(b.Mul(c)))
}

// Distributivity checks both the left and right distributivity laws.
func (p RingLawSet[R]) Distributivity(a, b, c R) bool {
	return p.LeftDistributivity(a, b, c) && p.RightDistributivity(a, b, c)
}
