// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snowshoe

import (
	"math/bits"

	"github.com/dynm/snowshoe/internal/gls"
)

// recode2 converts the pair (a, b) into GLS-SAC regular form in place
// for a window of 2 bits, and returns the low bit of the original a.
// After recoding, bit i of a is a sign digit (1 => +, 0 => -) and bit i
// of b selects among the positive linear combinations the table holds.
// This mutates a and b without branching on any of their bits.
func recode2(a, b *gls.Subscalar, length int) uint64 {
	lsb := (a.Lo & 1) ^ 1
	a.Lo, a.Hi = sub128(a.Lo, a.Hi, lsb)
	a.Lo, a.Hi = shr128(a.Lo, a.Hi)
	a.Lo, a.Hi = setBit128(a.Lo, a.Hi, length-1)

	for ii := 0; ii < length-1; ii++ {
		anbit := bit128(a.Lo, a.Hi, ii) ^ 1
		bbit := bit128(b.Lo, b.Hi, ii)
		b.Lo, b.Hi = addShiftedBit(b.Lo, b.Hi, ii+1, anbit&bbit)
	}
	return lsb
}

// recode4 converts the quartet (a, b, c, d) into GLS-SAC regular form
// for a window of 1 bit, driven off a exactly as recode2 is driven off
// its first argument, and returns the low bit of the original a.
func recode4(a, b, c, d *gls.Subscalar, length int) uint64 {
	lsb := (a.Lo & 1) ^ 1
	a.Lo, a.Hi = sub128(a.Lo, a.Hi, lsb)
	a.Lo, a.Hi = shr128(a.Lo, a.Hi)
	a.Lo, a.Hi = setBit128(a.Lo, a.Hi, length-1)

	for ii := 0; ii < length-1; ii++ {
		anbit := bit128(a.Lo, a.Hi, ii) ^ 1
		b.Lo, b.Hi = addShiftedBit(b.Lo, b.Hi, ii+1, anbit&bit128(b.Lo, b.Hi, ii))
		c.Lo, c.Hi = addShiftedBit(c.Lo, c.Hi, ii+1, anbit&bit128(c.Lo, c.Hi, ii))
		d.Lo, d.Hi = addShiftedBit(d.Lo, d.Hi, ii+1, anbit&bit128(d.Lo, d.Hi, ii))
	}
	return lsb
}

// bit128 returns bit i (0 <= i < 128) of (lo, hi).
func bit128(lo, hi uint64, i int) uint64 {
	if i < 64 {
		return (lo >> uint(i)) & 1
	}
	return (hi >> uint(i-64)) & 1
}

// sub128 returns (lo, hi) - s, for s in {0, 1}.
func sub128(lo, hi, s uint64) (uint64, uint64) {
	l, borrow := bits.Sub64(lo, s, 0)
	h, _ := bits.Sub64(hi, 0, borrow)
	return l, h
}

// shr128 returns (lo, hi) >> 1.
func shr128(lo, hi uint64) (uint64, uint64) {
	return (lo >> 1) | (hi << 63), hi >> 1
}

// setBit128 returns (lo, hi) with bit i set, for 0 <= i < 128.
func setBit128(lo, hi uint64, i int) (uint64, uint64) {
	if i < 64 {
		return lo | uint64(1)<<uint(i), hi
	}
	return lo, hi | uint64(1)<<uint(i-64)
}

// addShiftedBit returns (lo, hi) + (bit << i), for bit in {0, 1} and
// 0 <= i < 128, using a full 128-bit addition so the carry from a
// run of set bits propagates exactly as it would in a genuine 128-bit
// adder. This carry propagation is what turns the masked value into a
// regular-form (no zero digit) recoding.
func addShiftedBit(lo, hi uint64, i int, bit uint64) (uint64, uint64) {
	var addLo, addHi uint64
	if i < 64 {
		addLo = bit << uint(i)
	} else {
		addHi = bit << uint(i-64)
	}
	l, carry := bits.Add64(lo, addLo, 0)
	h, _ := bits.Add64(hi, addHi, carry)
	return l, h
}
