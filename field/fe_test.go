// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"encoding/hex"
	"math/big"
	mathrand "math/rand"
	"testing"
	"testing/quick"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
)

func (v Element) String() string {
	return hex.EncodeToString(v.Bytes())
}

var bigP = func() *big.Int {
	p := new(big.Int).Lsh(big.NewInt(1), 127)
	return p.Sub(p, big.NewInt(1))
}()

func (v *Element) toBig() *big.Int {
	return new(big.Int).SetBytes(reverse(v.Bytes()))
}

func reverse(b []byte) []byte {
	r := make([]byte, len(b))
	for i, c := range b {
		r[len(b)-1-i] = c
	}
	return r
}

func fromBig(x *big.Int) *Element {
	x = new(big.Int).Mod(x, bigP)
	b := x.Bytes()
	var padded [16]byte
	for i, c := range b {
		padded[len(b)-1-i] = c
	}
	var e Element
	return e.SetBytes(padded[:])
}

// weirdElements holds edge-case limb values (0, 1, values near p) that
// generateWeirdElement draws from; generateElement draws uniformly.
var weirdElements = []uint64{0, 1, 2, pLo, pLo - 1, pHi, pHi - 1}

func generateElement(rand *mathrand.Rand) Element {
	lo := rand.Uint64()
	hi := rand.Uint64() & pHi
	e := Element{lo, hi}
	elo, ehi := reduce(e.lo, e.hi)
	return Element{elo, ehi}
}

func generateWeirdElement(rand *mathrand.Rand) Element {
	lo := weirdElements[rand.Intn(len(weirdElements))]
	hi := weirdElements[rand.Intn(len(weirdElements))] & pHi
	elo, ehi := reduce(lo, hi)
	return Element{elo, ehi}
}

func genElement() gopter.Gen {
	return func(genParams *gopter.GenParameters) *gopter.GenResult {
		r := genParams.Rng
		e := generateElement(r)
		return gopter.NewGenResult(e, gopter.NoShrinker)
	}
}

func TestFieldLaws(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("addition matches big.Int", prop.ForAll(
		func(a, b Element) bool {
			var got Element
			got.Add(&a, &b)
			want := new(big.Int).Add(a.toBig(), b.toBig())
			return got.toBig().Cmp(new(big.Int).Mod(want, bigP)) == 0
		},
		genElement(), genElement(),
	))

	properties.Property("multiplication matches big.Int", prop.ForAll(
		func(a, b Element) bool {
			var got Element
			got.Multiply(&a, &b)
			want := new(big.Int).Mul(a.toBig(), b.toBig())
			return got.toBig().Cmp(new(big.Int).Mod(want, bigP)) == 0
		},
		genElement(), genElement(),
	))

	properties.Property("a - a == 0", prop.ForAll(
		func(a Element) bool {
			var got Element
			got.Subtract(&a, &a)
			return got.IsZero() == 1
		},
		genElement(),
	))

	properties.Property("a * (1/a) == 1 for a != 0", prop.ForAll(
		func(a Element) bool {
			if a.IsZero() == 1 {
				return true
			}
			var inv, got Element
			inv.Invert(&a)
			got.Multiply(&a, &inv)
			var one Element
			one.One()
			return got.Equal(&one) == 1
		},
		genElement(),
	))

	properties.TestingRun(t)
}

func TestBytesRoundTrip(t *testing.T) {
	f := func(a [16]byte) bool {
		var e Element
		e.SetBytes(a[:])
		var e2 Element
		e2.SetBytes(e.Bytes())
		return e.Equal(&e2) == 1
	}
	if err := quick.Check(f, &quick.Config{MaxCountScale: 1 << 8}); err != nil {
		t.Error(err)
	}
}

func TestWeirdValues(t *testing.T) {
	r := mathrand.New(mathrand.NewSource(1))
	for i := 0; i < 256; i++ {
		a := generateWeirdElement(r)
		b := generateWeirdElement(r)
		var sum, diff, prod Element
		sum.Add(&a, &b)
		diff.Subtract(&a, &b)
		prod.Multiply(&a, &b)

		if sum.toBig().Cmp(new(big.Int).Mod(new(big.Int).Add(a.toBig(), b.toBig()), bigP)) != 0 {
			t.Fatalf("Add mismatch for a=%s b=%s", a, b)
		}
		if diff.toBig().Cmp(new(big.Int).Mod(new(big.Int).Sub(a.toBig(), b.toBig()), bigP)) != 0 {
			t.Fatalf("Subtract mismatch for a=%s b=%s", a, b)
		}
		if prod.toBig().Cmp(new(big.Int).Mod(new(big.Int).Mul(a.toBig(), b.toBig()), bigP)) != 0 {
			t.Fatalf("Multiply mismatch for a=%s b=%s", a, b)
		}
	}
}
