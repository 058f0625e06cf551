// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	mathrand "math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
)

func genElem2() gopter.Gen {
	return func(genParams *gopter.GenParameters) *gopter.GenResult {
		r := genParams.Rng
		e := Elem2{generateElement(r), generateElement(r)}
		return gopter.NewGenResult(e, gopter.NoShrinker)
	}
}

func TestElem2Laws(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("conj(conj(a)) == a", prop.ForAll(
		func(a Elem2) bool {
			var c Elem2
			c.Conjugate(&a)
			c.Conjugate(&c)
			return c.Equal(&a) == 1
		},
		genElem2(),
	))

	properties.Property("a * conj(a) has zero imaginary part", prop.ForAll(
		func(a Elem2) bool {
			var conj, prod Elem2
			conj.Conjugate(&a)
			prod.Multiply(&a, &conj)
			return prod.A1.IsZero() == 1
		},
		genElem2(),
	))

	properties.Property("a * (1/a) == 1 for a != 0", prop.ForAll(
		func(a Elem2) bool {
			if a.IsZero() == 1 {
				return true
			}
			var inv, got, one Elem2
			inv.Invert(&a)
			got.Multiply(&a, &inv)
			one.One()
			return got.Equal(&one) == 1
		},
		genElem2(),
	))

	properties.Property("multiplication distributes over addition", prop.ForAll(
		func(a, b, c Elem2) bool {
			var lhs, rhs, bc Elem2
			bc.Add(&b, &c)
			lhs.Multiply(&a, &bc)

			var ab, ac Elem2
			ab.Multiply(&a, &b)
			ac.Multiply(&a, &c)
			rhs.Add(&ab, &ac)
			return lhs.Equal(&rhs) == 1
		},
		genElem2(), genElem2(), genElem2(),
	))

	properties.TestingRun(t)
}

func TestElem2BytesRoundTrip(t *testing.T) {
	r := mathrand.New(mathrand.NewSource(2))
	for i := 0; i < 256; i++ {
		a := Elem2{generateElement(r), generateElement(r)}
		var b Elem2
		b.SetBytes(a.Bytes())
		if a.Equal(&b) != 1 {
			t.Fatalf("round trip mismatch for %v", a)
		}
	}
}
