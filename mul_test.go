// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snowshoe

import (
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/dynm/snowshoe/scalar"
)

// naiveMulBy4 computes 4*k*p by repeated addition, entirely without
// the decomposition/recoding/table machinery Mul and Simul use. It is
// only fast enough for the small scalars these tests exercise, and
// exists purely as an independent check on the optimized ladder.
func naiveMulBy4(k uint64, p *Point) *Point {
	acc := Identity()
	var pCached projCached
	pCached.FromP3(p)
	for i := uint64(0); i < k; i++ {
		acc.Add(acc, &pCached)
	}
	acc.Double(acc)
	acc.Double(acc)
	return acc
}

func TestMulMatchesNaiveForSmallScalars(t *testing.T) {
	g := (&AffinePoint{X: GX, Y: GY}).Expand()

	for k := uint64(0); k < 40; k++ {
		s := scalar.NewFromLimbs(k, 0, 0, 0)
		got := Mul(s, &AffinePoint{X: GX, Y: GY}).Expand()
		want := naiveMulBy4(k, g)

		if got.Equal(want) != 1 {
			t.Fatalf("Mul mismatch for k=%d:\ngot  %s\nwant %s",
				k, spew.Sdump(got), spew.Sdump(want))
		}
	}
}

func TestMulGenMatchesMul(t *testing.T) {
	for k := uint64(0); k < 20; k++ {
		s := scalar.NewFromLimbs(k, 0, 0, 0)
		viaGen := MulGen(s)
		viaMul := Mul(s, &AffinePoint{X: GX, Y: GY})
		if viaGen.X.Equal(&viaMul.X) != 1 || viaGen.Y.Equal(&viaMul.Y) != 1 {
			t.Fatalf("MulGen(%d) != Mul(%d, G)", k, k)
		}
	}
}

func TestSimulMatchesTwoMuls(t *testing.T) {
	g := &AffinePoint{X: GX, Y: GY}
	var h AffinePoint
	hPt := Mul(scalar.NewFromLimbs(7, 0, 0, 0), g).Expand()
	h = *hPt.Affine()

	for a := uint64(0); a < 9; a++ {
		for b := uint64(0); b < 9; b++ {
			as := scalar.NewFromLimbs(a, 0, 0, 0)
			bs := scalar.NewFromLimbs(b, 0, 0, 0)

			got := Simul(as, g, bs, &h).Expand()

			aG := naiveMulBy4(a, g.Expand())
			bH := naiveMulBy4(b, h.Expand())
			var bHCached projCached
			bHCached.FromP3(bH)
			want := new(Point).Add(aG, &bHCached)

			if got.Equal(want) != 1 {
				t.Fatalf("Simul mismatch for a=%d b=%d", a, b)
			}
		}
	}
}

func TestMulByZeroIsIdentity(t *testing.T) {
	s := scalar.NewFromLimbs(0, 0, 0, 0)
	got := Mul(s, &AffinePoint{X: GX, Y: GY}).Expand()
	if got.Equal(Identity()) != 1 {
		t.Fatal("Mul(0, P) != identity")
	}
}
