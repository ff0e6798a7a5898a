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

// Equatable captures structural equality between values of the same type.  All
// law predicates compare through this method, never through pointer identity.
type Equatable[T any] interface {
	// Equals returns true if x and y denote the same value.
	Equals(y T) bool
}

// Group is a set closed under a single associative operation, written here as
// Mul, which has an identity and for which every value has an inverse.
// Identity is a constant of the type: implementations must return the same
// value regardless of the receiver, such that it can be obtained from the zero
// value (see GroupLaws).
type Group[T any] interface {
	Equatable[T]
	// Mul computes x * y
	Mul(y T) T
	// Identity returns e, such that x * e = e * x = x.
	Identity() T
	// Inverse returns x⁻¹, such that x * x⁻¹ = x⁻¹ * x = e.
	Inverse() T
}

// AdditiveGroup is the additive analogue of a Group.  It is intentionally a
// separate contract, rather than a Group with renamed methods, so that a single
// type can carry both an additive and a multiplicative structure.
type AdditiveGroup[T any] interface {
	Equatable[T]
	// Add computes x + y
	Add(y T) T
	// Neg computes -x
	Neg() T
	// Zero returns 0, such that x + 0 = 0 + x = x.
	Zero() T
}

// Monoid is a set closed under an associative operation with an identity, but
// where inverses are not required.
type Monoid[T any] interface {
	Equatable[T]
	// Mul computes x * y
	Mul(y T) T
	// Identity returns e, such that x * e = e * x = x.
	Identity() T
}

// Ring is a set which forms an additive group under Add, and a monoid under
// Mul, where Mul distributes over Add.  Rather than supplying zero and one
// directly, a ring supplies a constructor from integer literals from which both
// are derived (see Zero and One).  Mul must be given explicitly.
type Ring[T any] interface {
	Equatable[T]
	// Add computes x + y
	Add(y T) T
	// Neg computes -x
	Neg() T
	// Mul computes x * y
	Mul(y T) T
	// FromInt returns the image of n in the ring.  The receiver is ignored.
	FromInt(n int64) T
}

// Field is a ring whose nonzero elements form a group under Mul.  Note that
// the contract cannot prevent Inverse being called on zero, hence
// implementations must document what they return in that case.  Callers
// wanting a signalled failure should use CheckedInverse or CheckedDiv.
type Field[T any] interface {
	Ring[T]
	// Inverse returns x⁻¹ for nonzero x.
	Inverse() T
}
