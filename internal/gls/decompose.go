// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gls

import (
	"math/bits"

	"github.com/dynm/snowshoe/scalar"
)

// Subscalar is an unsigned 128-bit magnitude, held as two 64-bit limbs,
// the form Decompose hands to the recoding and table-build steps.
type Subscalar struct {
	Lo, Hi uint64
}

// Bit returns bit i of s, for 0 <= i < 128.
func (s Subscalar) Bit(i int) uint64 {
	if i < 64 {
		return (s.Lo >> uint(i)) & 1
	}
	return (s.Hi >> uint(i-64)) & 1
}

// Decompose splits k into two signed subscalars a, b such that
//
//	asign*a + bsign*b*Lambda == k (mod Q),
//
// using Babai rounding against the reduced lattice basis (a1, -b1),
// (b1, a1): it finds the nearest lattice point to (k, 0) and returns
// the remainder, split into a magnitude and a sign bit per subscalar
// (1 means negative). The magnitudes fit comfortably within 128 bits:
// for a balanced reduced basis of a rank-2 sublattice of index Q they
// are O(sqrt(Q)), and Q is a 252-bit prime, leaving ample headroom
// below 2^128.
//
// Precondition: k is already reduced below 2^251, as Mask leaves it.
// Decompose does not reduce k mod Q itself; its rounding constants
// (see mulShiftRound) are only exact over that range.
func Decompose(k *scalar.Scalar) (aSign int, a Subscalar, bSign int, b Subscalar) {
	kLimbs := k.Limbs()

	c1 := mulShiftRound(kLimbs, g1)
	c2 := mulShiftRound(kLimbs, g2)

	t := add256(mul128x128(c1, a1), mul128x128(c2, b1))
	u1 := mul128x128(c1, b1)
	u2 := mul128x128(c2, a1)

	aSign, aAbs := absDiff256(kLimbs, t)
	bSign, bAbs := absDiff256(u1, u2)

	return aSign, Subscalar{Lo: aAbs[0], Hi: aAbs[1]}, bSign, Subscalar{Lo: bAbs[0], Hi: bAbs[1]}
}

// mulShiftRound returns round(k*g / 2^decomposeShift), computed as an
// exact 256x256 product followed by a rounded right shift. g is one of
// the precomputed scaled reciprocals g1, g2.
func mulShiftRound(k, g [4]uint64) Subscalar {
	return shiftRightRound(mul256(k, g))
}

// shiftRightRound returns round(p / 2^decomposeShift) for a 512-bit p,
// rounding half away from zero (p is always nonnegative here). The
// result is assumed to fit in 128 bits, which mulShiftRound's callers
// guarantee.
func shiftRightRound(p [8]uint64) Subscalar {
	const limb = decomposeShift / 64 // 5
	const off = decomposeShift % 64  // 58

	lo := (p[limb] >> off) | (p[limb+1] << (64 - off))
	hi := (p[limb+1] >> off) | (p[limb+2] << (64 - off))
	roundBit := (p[limb] >> (off - 1)) & 1

	lo, carry := bits.Add64(lo, roundBit, 0)
	hi, _ = bits.Add64(hi, 0, carry)
	return Subscalar{Lo: lo, Hi: hi}
}

// addAt adds the 128-bit value (lo, hi) at limb position pos into acc,
// rippling the carry through however many higher limbs it takes.
func addAt(acc *[9]uint64, pos int, lo, hi uint64) {
	var c uint64
	acc[pos], c = bits.Add64(acc[pos], lo, 0)
	acc[pos+1], c = bits.Add64(acc[pos+1], hi, c)
	for i := pos + 2; c != 0; i++ {
		acc[i], c = bits.Add64(acc[i], 0, c)
	}
}

// mul256 returns the exact 512-bit product of two 256-bit values held
// as four 64-bit limbs each, least significant limb first.
func mul256(x, y [4]uint64) [8]uint64 {
	var acc [9]uint64
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			hi, lo := bits.Mul64(x[i], y[j])
			addAt(&acc, i+j, lo, hi)
		}
	}
	var out [8]uint64
	copy(out[:], acc[:8])
	return out
}

// mul128x128 returns the exact 256-bit product a*b, as four 64-bit
// limbs, least significant first.
func mul128x128(a, b Subscalar) [4]uint64 {
	x := [2]uint64{a.Lo, a.Hi}
	y := [2]uint64{b.Lo, b.Hi}
	var acc [5]uint64
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			hi, lo := bits.Mul64(x[i], y[j])
			var c uint64
			acc[i+j], c = bits.Add64(acc[i+j], lo, 0)
			acc[i+j+1], c = bits.Add64(acc[i+j+1], hi, c)
			for k := i + j + 2; c != 0; k++ {
				acc[k], c = bits.Add64(acc[k], 0, c)
			}
		}
	}
	return [4]uint64{acc[0], acc[1], acc[2], acc[3]}
}

// add256 returns x + y, dropping any carry out of the top limb: every
// caller here has already bounded its operands well below 2^256.
func add256(x, y [4]uint64) [4]uint64 {
	var out [4]uint64
	var carry uint64
	for i := range out {
		out[i], carry = bits.Add64(x[i], y[i], carry)
	}
	return out
}

// cmp256 returns -1, 0, or 1 as x is less than, equal to, or greater
// than y.
func cmp256(x, y [4]uint64) int {
	for i := 3; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// sub256 returns x - y, assuming x >= y.
func sub256(x, y [4]uint64) [4]uint64 {
	var out [4]uint64
	var borrow uint64
	for i := range out {
		out[i], borrow = bits.Sub64(x[i], y[i], borrow)
	}
	return out
}

// absDiff256 returns the sign (1 for negative) and magnitude of x - y.
func absDiff256(x, y [4]uint64) (sign int, abs [4]uint64) {
	if cmp256(x, y) < 0 {
		return 1, sub256(y, x)
	}
	return 0, sub256(x, y)
}
