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
package check

import (
	"fmt"
	"math/rand/v2"

	"github.com/consensys/go-algebra/pkg/algebra"
	log "github.com/sirupsen/logrus"
)

// Generator produces random sample values of a given type.
type Generator[T any] func(rng *rand.Rand) T

// element captures what is needed to check the laws of a ring and report
// counterexamples.
type element[T any] interface {
	algebra.Ring[T]
	fmt.Stringer
}

// checkLawSet evaluates every law of a single operation for one triple of
// samples.  The inverse law is only evaluated where invertible reports true,
// since (for example) zero is not expected to have a multiplicative inverse.
func checkLawSet[T fmt.Stringer](t *tally, op string, laws algebra.LawSet[T], invertible func(T) bool,
	a, b, c T) {
	t.record(op+" associativity", laws.Associativity(a, b, c), a, b, c)
	t.record(op+" identity", laws.Identity(a), a)
	t.record(op+" commutativity", laws.Commutativity(a, b), a, b)
	//
	if laws.HasInverse() && invertible(a) {
		t.record(op+" inverse", laws.Inverse(a), a)
	}
}

// checkRing evaluates every ring law (and, for fields, the multiplicative
// inverse law) over n randomly generated triples.
func checkRing[R element[R]](name string, laws algebra.RingLawSet[R], gen Generator[R], n uint,
	rng *rand.Rand) Report {
	var (
		t        = newTally(name)
		always   = func(R) bool { return true }
		nonZero = func(x R) bool { return !algebra.IsZero(x) }
	)
	//
	for range n {
		a, b, c := gen(rng), gen(rng), gen(rng)
		//
		checkLawSet(t, "additive", laws.Additive, always, a, b, c)
		checkLawSet(t, "multiplicative", laws.Multiplicative, nonZero, a, b, c)
		t.record("distributivity", laws.Distributivity(a, b, c), a, b, c)
	}
	//
	report := t.report()
	logFailures(report)
	//
	return report
}

// checkAdditive evaluates the laws of an additive group over n randomly
// generated triples.
func checkAdditive[G interface {
	algebra.AdditiveGroup[G]
	fmt.Stringer
}](name string, laws algebra.LawSet[G], gen Generator[G], n uint, rng *rand.Rand) Report {
	t := newTally(name)
	//
	for range n {
		a, b, c := gen(rng), gen(rng), gen(rng)
		//
		checkLawSet(t, "additive", laws, func(G) bool { return true }, a, b, c)
		// Subtraction is derived, so check it undoes addition.
		t.record("subtraction", laws.Equal(algebra.Sub(a, b).Add(b), a), a, b)
	}
	//
	report := t.report()
	logFailures(report)
	//
	return report
}

func logFailures(report Report) {
	for _, res := range report.Results {
		if res.Failed > 0 {
			log.Debugf("%s: %s failed for %d of %d samples, e.g. %s", report.Structure, res.Law, res.Failed,
				res.Passed+res.Failed, res.Counterexample)
		}
	}
}
