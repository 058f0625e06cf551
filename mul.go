// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snowshoe

import (
	"github.com/dynm/snowshoe/internal/gls"
	"github.com/dynm/snowshoe/scalar"
)

// Mul computes 4*k*P for an affine point P and a scalar k, 0 < k < Q,
// using a window-2 constant-time regular ladder over a GLS-decomposed
// scalar. k == 0 yields the identity, selected without branching.
// Precondition: k has already been reduced below Q (e.g. via
// (*scalar.Scalar).Mask for a freshly generated key). Mul does not
// itself validate that precondition; like the rest of this core, it is
// a total function over its bit pattern but only meaningful crypto
// when the caller has upheld it.
func Mul(k *scalar.Scalar, p *AffinePoint) *AffinePoint {
	aSign, a, bSign, b := gls.Decompose(k)

	qx, qy := gls.Morph(&D, &p.X, &p.Y)
	q := (&AffinePoint{X: *qx, Y: *qy}).Expand()
	q.CondNeg(bSign)

	pp := p.Expand()
	pp.CondNeg(aSign)

	table := genTable2(pp, q)
	recodeBit := recode2(&a, &b, 128)

	x := select2(&table, &a, &b, 126)
	for ii := 124; ii >= 0; ii -= 2 {
		t := select2(&table, &a, &b, ii)
		var tCached projCached
		tCached.FromP3(t)

		x.Double(x)
		x.Double(x)
		x.Add(x, &tCached)
	}

	condAddPoint(x, pp, int(recodeBit))

	x.Double(x)
	x.Double(x)

	l := k.Limbs()
	x.Select(Identity(), x, ctEq(l[0]|l[1]|l[2]|l[3], 0))

	return x.Affine()
}

// MulGen computes 4*k*G for the canonical generator G.
func MulGen(k *scalar.Scalar) *AffinePoint {
	return Mul(k, &AffinePoint{X: GX, Y: GY})
}

// Simul computes 4*(a*P + b*Q) for affine points P, Q and scalars a,
// b, 0 < a, b < Q, using a window-1 constant-time regular ladder over
// two independently GLS-decomposed scalars, each split across both P
// and Q's endomorphism images so the whole ladder runs over four
// single-bit digit streams at once.
func Simul(a *scalar.Scalar, p *AffinePoint, b *scalar.Scalar, q *AffinePoint) *AffinePoint {
	a0Sign, a0, a1Sign, a1 := gls.Decompose(a)
	b0Sign, b0, b1Sign, b1 := gls.Decompose(b)

	p1x, p1y := gls.Morph(&D, &p.X, &p.Y)
	q1x, q1y := gls.Morph(&D, &q.X, &q.Y)

	p1 := (&AffinePoint{X: *p1x, Y: *p1y}).Expand()
	q1 := (&AffinePoint{X: *q1x, Y: *q1y}).Expand()
	p0 := p.Expand()
	q0 := q.Expand()

	p0.CondNeg(a0Sign)
	q0.CondNeg(b0Sign)
	p1.CondNeg(a1Sign)
	q1.CondNeg(b1Sign)

	table := genTable4(p0, p1, q0, q1)
	recodeBit := recode4(&a0, &a1, &b0, &b1, 127)

	x := select4(&table, &a0, &a1, &b0, &b1, 126)
	for ii := 125; ii >= 0; ii-- {
		t := select4(&table, &a0, &a1, &b0, &b1, ii)
		var tCached projCached
		tCached.FromP3(t)

		x.Double(x)
		x.Add(x, &tCached)
	}

	condAddPoint(x, p0, int(recodeBit))

	x.Double(x)
	x.Double(x)

	return x.Affine()
}

// condAddPoint sets x = x + p if cond == 1, and leaves x unchanged if
// cond == 0, without branching on cond: both outcomes are computed and
// the result is selected.
func condAddPoint(x, p *Point, cond int) {
	var pCached projCached
	pCached.FromP3(p)
	var added Point
	added.Add(x, &pCached)
	x.Select(&added, x, cond)
}
