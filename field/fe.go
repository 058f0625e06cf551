// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package field implements arithmetic modulo the Mersenne prime
// 2^127-1, and its quadratic extension, the base fields of the curve
// used by the snowshoe GLS scalar multiplication core.
//
// This type works similarly to math/big.Int, and all arguments and
// receivers are allowed to alias.
package field

import "math/bits"

// Element represents an element of GF(p), p = 2^127-1.
//
// A value t represents the integer t.lo + t.hi*2^64. The zero value is
// a valid zero element. Between operations elements are kept fully
// reduced: 0 <= value < p.
type Element struct {
	lo, hi uint64
}

// p = 2^127 - 1, as (lo, hi).
const (
	pLo uint64 = 0xFFFFFFFFFFFFFFFF
	pHi uint64 = 0x7FFFFFFFFFFFFFFF
)

// Zero sets v = 0, and returns v.
func (v *Element) Zero() *Element {
	v.lo, v.hi = 0, 0
	return v
}

// One sets v = 1, and returns v.
func (v *Element) One() *Element {
	v.lo, v.hi = 1, 0
	return v
}

// Set sets v = a, and returns v.
func (v *Element) Set(a *Element) *Element {
	*v = *a
	return v
}

// SetUint64 sets v = a, and returns v.
func (v *Element) SetUint64(a uint64) *Element {
	v.lo, v.hi = a, 0
	return v
}

// IsZero returns 1 if v == 0, and 0 otherwise.
func (v *Element) IsZero() int {
	return isZero(v.lo) & isZero(v.hi)
}

// isZero returns 1 if x == 0, and 0 otherwise, without branching: for
// any nonzero x, either x or -x has its top bit set.
func isZero(x uint64) int {
	return int(1 - (x|-x)>>63)
}

// Equal returns 1 if v == u, and 0 otherwise.
func (v *Element) Equal(u *Element) int {
	var d Element
	d.Subtract(v, u)
	return d.IsZero()
}

// geP reports whether (lo, hi) >= p, without branching on the result.
func geP(lo, hi uint64) uint64 {
	// (lo,hi) >= p  iff  (lo,hi) - p does not borrow.
	_, borrow := bits.Sub64(lo, pLo, 0)
	_, borrow = bits.Sub64(hi, pHi, borrow)
	return 1 - borrow
}

// reduce brings (lo, hi), known to be < 2p, into [0, p).
func reduce(lo, hi uint64) (rlo, rhi uint64) {
	mask := -geP(lo, hi) // all-ones if lo,hi >= p, else all-zero
	slo, borrow := bits.Sub64(lo, pLo&mask, 0)
	shi, _ := bits.Sub64(hi, pHi&mask, borrow)
	return slo, shi
}

// Add sets v = a + b, and returns v.
func (v *Element) Add(a, b *Element) *Element {
	lo, carry := bits.Add64(a.lo, b.lo, 0)
	hi, _ := bits.Add64(a.hi, b.hi, carry)
	v.lo, v.hi = reduce(lo, hi)
	return v
}

// Subtract sets v = a - b, and returns v.
func (v *Element) Subtract(a, b *Element) *Element {
	lo, borrow := bits.Sub64(a.lo, b.lo, 0)
	hi, borrow := bits.Sub64(a.hi, b.hi, borrow)
	// If we borrowed, add back p (mod-2^128 arithmetic wraps, so adding
	// p is the same as adding 2^128-p and letting the carry fall off).
	mask := -borrow
	lo, carry := bits.Add64(lo, pLo&mask, 0)
	hi, _ = bits.Add64(hi, pHi&mask, carry)
	v.lo, v.hi = reduce(lo, hi)
	return v
}

// Negate sets v = -a, and returns v.
func (v *Element) Negate(a *Element) *Element {
	var zero Element
	return v.Subtract(&zero, a)
}

// mul128 returns the 256-bit product a*b as four 64-bit words, least
// significant first.
func mul128(alo, ahi, blo, bhi uint64) (r0, r1, r2, r3 uint64) {
	h0, l0 := bits.Mul64(alo, blo)
	h1, l1 := bits.Mul64(alo, bhi)
	h2, l2 := bits.Mul64(ahi, blo)
	h3, l3 := bits.Mul64(ahi, bhi)

	r0 = l0
	mid, c0 := bits.Add64(h0, l1, 0)
	mid, c1 := bits.Add64(mid, l2, 0)
	r1 = mid

	hi, c2 := bits.Add64(h1, h2, 0)
	hi, c3 := bits.Add64(hi, l3, 0)
	hi, c4 := bits.Add64(hi, c0, 0)
	hi, c5 := bits.Add64(hi, c1, 0)
	r2 = hi

	r3 = h3 + c2 + c3 + c4 + c5
	return
}

// Multiply sets v = a*b, and returns v.
//
// Reduction exploits 2^127 == 1 (mod p): the 256-bit product splits
// into a low 127-bit half and a high half, and the two halves are
// simply added together (the classic Mersenne-prime reduction).
func (v *Element) Multiply(a, b *Element) *Element {
	r0, r1, r2, r3 := mul128(a.lo, a.hi, b.lo, b.hi)

	// Low 127 bits: r0, and the low 63 bits of r1.
	loLo, loHi := r0, r1&pHi

	// Everything from bit 127 up, shifted down by 127 bits.
	hiLo := (r1 >> 63) | (r2 << 1)
	hiHi := (r2 >> 63) | (r3 << 1)

	lo, carry := bits.Add64(loLo, hiLo, 0)
	hi, _ := bits.Add64(loHi, hiHi, carry)
	v.lo, v.hi = reduce(lo, hi)
	return v
}

// Square sets v = a*a, and returns v.
func (v *Element) Square(a *Element) *Element {
	return v.Multiply(a, a)
}

// Select sets v to a if cond == 1, and to b if cond == 0.
func (v *Element) Select(a, b *Element, cond int) *Element {
	m := uint64(cond) * ^uint64(0)
	v.lo = (a.lo & m) | (b.lo &^ m)
	v.hi = (a.hi & m) | (b.hi &^ m)
	return v
}

// CondNegate sets v = -a if cond == 1, and v = a if cond == 0.
func (v *Element) CondNegate(a *Element, cond int) *Element {
	var na Element
	na.Negate(a)
	return v.Select(&na, a, cond)
}

// Invert sets v = 1/a, and returns v. If a is zero, Invert returns
// zero.
//
// The exponent is fixed (p-2), so this uses a plain square-and-multiply
// ladder rather than an addition chain; its sequence of squarings and
// multiplications depends only on p, not on a.
func (v *Element) Invert(a *Element) *Element {
	// p-2 = 2^127-3 = 0b111...101 (125 leading ones, then 0, 1), MSB first.
	exp := pMinus2Bits()
	var result Element
	result.One()
	for i := range exp {
		result.Square(&result)
		if exp[i] == 1 {
			result.Multiply(&result, a)
		}
	}
	return v.Set(&result)
}

// pMinus2Bits returns the bits of p-2, most significant first.
func pMinus2Bits() [127]byte {
	var b [127]byte
	for i := range b {
		b[i] = 1
	}
	b[125] = 0 // p-2 = ...1101, i.e. the second-to-last bit is 0
	return b
}

// Bytes returns the canonical little-endian 16-byte encoding of v.
func (v *Element) Bytes() []byte {
	var buf [16]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(v.lo >> (8 * i))
		buf[i+8] = byte(v.hi >> (8 * i))
	}
	return buf[:]
}

// SetBytes sets v to the little-endian value in b, reduced modulo p,
// and returns v. Panics if len(b) != 16.
func (v *Element) SetBytes(b []byte) *Element {
	if len(b) != 16 {
		panic("field: invalid Element encoding length")
	}
	var lo, hi uint64
	for i := 0; i < 8; i++ {
		lo |= uint64(b[i]) << (8 * i)
		hi |= uint64(b[i+8]) << (8 * i)
	}
	// Fold bit 127 back in as +1, since 2^127 == 1 (mod p).
	top := hi >> 63
	hi &= pHi
	lo, carry := bits.Add64(lo, top, 0)
	hi += carry
	v.lo, v.hi = reduce(lo, hi)
	return v
}
