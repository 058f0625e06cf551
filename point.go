// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snowshoe

import "github.com/dynm/snowshoe/field"

// Point represents a curve point in extended coordinates (X, Y, Z, T),
// representing the affine point (X/Z, Y/Z) with the additional
// invariant X*Y = T*Z. All arithmetic on it is generic curve
// arithmetic, oblivious to any particular scalar's bits.
type Point struct {
	x, y, z, t field.Elem2
}

// AffinePoint is a point given directly by its affine coordinates.
type AffinePoint struct {
	X, Y field.Elem2
}

type projP1xP1 struct {
	X, Y, Z, T field.Elem2
}

type projP2 struct {
	X, Y, Z field.Elem2
}

// projCached holds a point in the form the (re)addition formulas
// consume, computed once and reused across many additions. The tables
// built by genTable2/genTable4 hold Points; the ladders convert each
// selected entry to this form before adding it.
type projCached struct {
	YplusX, YminusX, Z, T2d field.Elem2
}

// Identity returns the neutral element (0, 1).
func Identity() *Point {
	var v Point
	v.x.Zero()
	v.y.One()
	v.z.One()
	v.t.Zero()
	return &v
}

// Set sets v = u, and returns v.
func (v *Point) Set(u *Point) *Point {
	*v = *u
	return v
}

// Expand lifts an affine point into extended coordinates.
func (p *AffinePoint) Expand() *Point {
	var v Point
	v.x.Set(&p.X)
	v.y.Set(&p.Y)
	v.z.One()
	v.t.Multiply(&p.X, &p.Y)
	return &v
}

// Bytes returns the 64-byte encoding of p: X's 32 bytes followed by
// Y's.
func (p *AffinePoint) Bytes() []byte {
	buf := make([]byte, 0, 64)
	buf = append(buf, p.X.Bytes()...)
	buf = append(buf, p.Y.Bytes()...)
	return buf
}

// SetBytes sets p from its 64-byte encoding, and returns p. Panics if
// len(b) != 64.
func (p *AffinePoint) SetBytes(b []byte) *AffinePoint {
	if len(b) != 64 {
		panic("snowshoe: invalid AffinePoint encoding length")
	}
	p.X.SetBytes(b[:32])
	p.Y.SetBytes(b[32:])
	return p
}

// Affine converts an extended point back to affine coordinates via a
// field inversion. Field inversion is not constant time, so neither
// is this conversion; callers needing a timing-safe final output must
// budget for that separately.
func (v *Point) Affine() *AffinePoint {
	var zInv field.Elem2
	zInv.Invert(&v.z)
	var p AffinePoint
	p.X.Multiply(&v.x, &zInv)
	p.Y.Multiply(&v.y, &zInv)
	return &p
}

func (v *projP2) FromP1xP1(p *projP1xP1) *projP2 {
	v.X.Multiply(&p.X, &p.T)
	v.Y.Multiply(&p.Y, &p.Z)
	v.Z.Multiply(&p.Z, &p.T)
	return v
}

func (v *Point) fromP1xP1(p *projP1xP1) *Point {
	v.x.Multiply(&p.X, &p.T)
	v.y.Multiply(&p.Y, &p.Z)
	v.z.Multiply(&p.Z, &p.T)
	v.t.Multiply(&p.X, &p.Y)
	return v
}

func (v *projCached) FromP3(p *Point) *projCached {
	v.YplusX.Add(&p.y, &p.x)
	v.YminusX.Subtract(&p.y, &p.x)
	v.Z.Set(&p.z)
	v.T2d.Multiply(&p.t, d2)
	return v
}

// Add sets v = p + q, and returns v.
func (v *Point) Add(p *Point, q *projCached) *Point {
	var result projP1xP1
	result.add(p, q)
	return v.fromP1xP1(&result)
}

// Subtract sets v = p - q, and returns v.
func (v *Point) Subtract(p *Point, q *projCached) *Point {
	var result projP1xP1
	result.sub(p, q)
	return v.fromP1xP1(&result)
}

func (v *projP1xP1) add(p *Point, q *projCached) *projP1xP1 {
	var YplusX, YminusX, PP, MM, TT2d, ZZ2 field.Elem2

	YplusX.Add(&p.y, &p.x)
	YminusX.Subtract(&p.y, &p.x)

	PP.Multiply(&YplusX, &q.YplusX)
	MM.Multiply(&YminusX, &q.YminusX)
	TT2d.Multiply(&p.t, &q.T2d)
	ZZ2.Multiply(&p.z, &q.Z)
	ZZ2.Add(&ZZ2, &ZZ2)

	v.X.Subtract(&PP, &MM)
	v.Y.Add(&PP, &MM)
	v.Z.Add(&ZZ2, &TT2d)
	v.T.Subtract(&ZZ2, &TT2d)
	return v
}

func (v *projP1xP1) sub(p *Point, q *projCached) *projP1xP1 {
	var YplusX, YminusX, PP, MM, TT2d, ZZ2 field.Elem2

	YplusX.Add(&p.y, &p.x)
	YminusX.Subtract(&p.y, &p.x)

	PP.Multiply(&YplusX, &q.YminusX) // flipped sign
	MM.Multiply(&YminusX, &q.YplusX) // flipped sign
	TT2d.Multiply(&p.t, &q.T2d)
	ZZ2.Multiply(&p.z, &q.Z)
	ZZ2.Add(&ZZ2, &ZZ2)

	v.X.Subtract(&PP, &MM)
	v.Y.Add(&PP, &MM)
	v.Z.Subtract(&ZZ2, &TT2d) // flipped sign
	v.T.Add(&ZZ2, &TT2d)      // flipped sign
	return v
}

func (v *projP1xP1) double(p *projP2) *projP1xP1 {
	var XX, YY, ZZ2, XplusYsq field.Elem2

	XX.Square(&p.X)
	YY.Square(&p.Y)
	ZZ2.Square(&p.Z)
	ZZ2.Add(&ZZ2, &ZZ2)
	XplusYsq.Add(&p.X, &p.Y)
	XplusYsq.Square(&XplusYsq)

	v.Y.Add(&YY, &XX)
	v.Z.Subtract(&YY, &XX)

	v.X.Subtract(&XplusYsq, &v.Y)
	v.T.Subtract(&ZZ2, &v.Z)
	return v
}

// Double sets v = 2p, and returns v.
func (v *Point) Double(p *Point) *Point {
	var p2 projP2
	p2.X.Set(&p.x)
	p2.Y.Set(&p.y)
	p2.Z.Set(&p.z)
	var result projP1xP1
	result.double(&p2)
	return v.fromP1xP1(&result)
}

// Negate sets v = -p, and returns v.
func (v *Point) Negate(p *Point) *Point {
	v.x.Negate(&p.x)
	v.y.Set(&p.y)
	v.z.Set(&p.z)
	v.t.Negate(&p.t)
	return v
}

// CondNeg negates v if cond == 1, and leaves it unchanged if cond ==
// 0, without branching on cond.
func (v *Point) CondNeg(cond int) *Point {
	var neg Point
	neg.Negate(v)
	v.x.Select(&neg.x, &v.x, cond)
	v.t.Select(&neg.t, &v.t, cond)
	return v
}

// Equal returns 1 if v is equivalent to u, and 0 otherwise.
func (v *Point) Equal(u *Point) int {
	var t1, t2, t3, t4 field.Elem2
	t1.Multiply(&v.x, &u.z)
	t2.Multiply(&u.x, &v.z)
	t3.Multiply(&v.y, &u.z)
	t4.Multiply(&u.y, &v.z)
	return t1.Equal(&t2) & t3.Equal(&t4)
}

// Select sets v to a if cond == 1, and to b if cond == 0.
func (v *Point) Select(a, b *Point, cond int) *Point {
	v.x.Select(&a.x, &b.x, cond)
	v.y.Select(&a.y, &b.y, cond)
	v.z.Select(&a.z, &b.z, cond)
	v.t.Select(&a.t, &b.t, cond)
	return v
}

// Select sets v to a if cond == 1, and to b if cond == 0.
func (v *projCached) Select(a, b *projCached, cond int) *projCached {
	v.YplusX.Select(&a.YplusX, &b.YplusX, cond)
	v.YminusX.Select(&a.YminusX, &b.YminusX, cond)
	v.Z.Select(&a.Z, &b.Z, cond)
	v.T2d.Select(&a.T2d, &b.T2d, cond)
	return v
}

// CondNeg negates v if cond == 1, and leaves it unchanged if cond ==
// 0.
func (v *projCached) CondNeg(cond int) *projCached {
	var swapped projCached
	swapped.YplusX.Set(&v.YminusX)
	swapped.YminusX.Set(&v.YplusX)
	v.YplusX.Select(&swapped.YplusX, &v.YplusX, cond)
	v.YminusX.Select(&swapped.YminusX, &v.YminusX, cond)
	v.T2d.CondNegate(&v.T2d, cond)
	return v
}
