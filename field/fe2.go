// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

// Elem2 represents an element a + b*w of GF(p^2) = GF(p)[w]/(w^2+1),
// the quadratic extension hosting the curve's GLS endomorphism. -1 is
// a non-residue modulo p = 2^127-1 because p == 3 (mod 4), so w^2+1 is
// irreducible over GF(p).
//
// The zero value is a valid zero element.
type Elem2 struct {
	A0, A1 Element
}

// Zero sets v = 0, and returns v.
func (v *Elem2) Zero() *Elem2 {
	v.A0.Zero()
	v.A1.Zero()
	return v
}

// One sets v = 1, and returns v.
func (v *Elem2) One() *Elem2 {
	v.A0.One()
	v.A1.Zero()
	return v
}

// Set sets v = a, and returns v.
func (v *Elem2) Set(a *Elem2) *Elem2 {
	*v = *a
	return v
}

// IsZero returns 1 if v == 0, and 0 otherwise.
func (v *Elem2) IsZero() int {
	return v.A0.IsZero() & v.A1.IsZero()
}

// Equal returns 1 if v == u, and 0 otherwise.
func (v *Elem2) Equal(u *Elem2) int {
	return v.A0.Equal(&u.A0) & v.A1.Equal(&u.A1)
}

// Add sets v = a + b, and returns v.
func (v *Elem2) Add(a, b *Elem2) *Elem2 {
	v.A0.Add(&a.A0, &b.A0)
	v.A1.Add(&a.A1, &b.A1)
	return v
}

// Subtract sets v = a - b, and returns v.
func (v *Elem2) Subtract(a, b *Elem2) *Elem2 {
	v.A0.Subtract(&a.A0, &b.A0)
	v.A1.Subtract(&a.A1, &b.A1)
	return v
}

// Negate sets v = -a, and returns v.
func (v *Elem2) Negate(a *Elem2) *Elem2 {
	v.A0.Negate(&a.A0)
	v.A1.Negate(&a.A1)
	return v
}

// Conjugate sets v = conj(a) = a.A0 - a.A1*w, the Frobenius map on
// GF(p^2) for this choice of non-residue, and returns v.
func (v *Elem2) Conjugate(a *Elem2) *Elem2 {
	v.A0.Set(&a.A0)
	v.A1.Negate(&a.A1)
	return v
}

// Multiply sets v = a*b, and returns v.
//
// (a0+a1 w)(b0+b1 w) = (a0 b0 - a1 b1) + (a0 b1 + a1 b0) w.
func (v *Elem2) Multiply(a, b *Elem2) *Elem2 {
	var a0b0, a1b1, a0b1, a1b0 Element
	a0b0.Multiply(&a.A0, &b.A0)
	a1b1.Multiply(&a.A1, &b.A1)
	a0b1.Multiply(&a.A0, &b.A1)
	a1b0.Multiply(&a.A1, &b.A0)

	var r0, r1 Element
	r0.Subtract(&a0b0, &a1b1)
	r1.Add(&a0b1, &a1b0)
	v.A0.Set(&r0)
	v.A1.Set(&r1)
	return v
}

// Square sets v = a*a, and returns v.
func (v *Elem2) Square(a *Elem2) *Elem2 {
	return v.Multiply(a, a)
}

// MulByElement sets v = a*b for a scalar field element b, and returns v.
func (v *Elem2) MulByElement(a *Elem2, b *Element) *Elem2 {
	v.A0.Multiply(&a.A0, b)
	v.A1.Multiply(&a.A1, b)
	return v
}

// norm returns a0^2 + a1^2 = a * conj(a) (an Element, since the
// imaginary part of a*conj(a) is always zero).
func (a *Elem2) norm() Element {
	var a0sq, a1sq, n Element
	a0sq.Square(&a.A0)
	a1sq.Square(&a.A1)
	n.Add(&a0sq, &a1sq)
	return n
}

// Invert sets v = 1/a, and returns v. If a is zero, Invert returns
// zero.
func (v *Elem2) Invert(a *Elem2) *Elem2 {
	n := a.norm()
	var nInv Element
	nInv.Invert(&n)

	var conj Elem2
	conj.Conjugate(a)
	return v.MulByElement(&conj, &nInv)
}

// Select sets v to a if cond == 1, and to b if cond == 0.
func (v *Elem2) Select(a, b *Elem2, cond int) *Elem2 {
	v.A0.Select(&a.A0, &b.A0, cond)
	v.A1.Select(&a.A1, &b.A1, cond)
	return v
}

// CondNegate sets v = -a if cond == 1, and v = a if cond == 0.
func (v *Elem2) CondNegate(a *Elem2, cond int) *Elem2 {
	v.A0.CondNegate(&a.A0, cond)
	v.A1.CondNegate(&a.A1, cond)
	return v
}

// Bytes returns the canonical 32-byte little-endian encoding of v
// (A0's 16 bytes followed by A1's).
func (v *Elem2) Bytes() []byte {
	buf := make([]byte, 0, 32)
	buf = append(buf, v.A0.Bytes()...)
	buf = append(buf, v.A1.Bytes()...)
	return buf
}

// SetBytes sets v from its 32-byte encoding, and returns v. Panics if
// len(b) != 32.
func (v *Elem2) SetBytes(b []byte) *Elem2 {
	if len(b) != 32 {
		panic("field: invalid Elem2 encoding length")
	}
	v.A0.SetBytes(b[:16])
	v.A1.SetBytes(b[16:])
	return v
}
