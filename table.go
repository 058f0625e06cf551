// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snowshoe

import "github.com/dynm/snowshoe/internal/gls"

// genTable2 builds the 8-entry table the window-2 ladder scans,
// indexed so that table select's arithmetic (see select2) lands on
// the right signed combination of a and b:
//
//	index  value
//	  0     3a
//	  1     3a + b
//	  2     3a + 2b
//	  3     3a + 3b
//	  4     a
//	  5     a - b
//	  6     a + 2b
//	  7     a + b
func genTable2(a, b *Point) [8]Point {
	var bn Point
	bn.Negate(b)

	var aCached, bCached, bnCached projCached
	aCached.FromP3(a)
	bCached.FromP3(b)
	bnCached.FromP3(&bn)

	var table [8]Point
	table[4].Set(a)
	table[5].Add(a, &bnCached)
	table[7].Add(a, &bCached)
	table[6].Add(&table[7], &bCached)

	var a2 Point
	a2.Double(a)
	table[0].Add(&a2, &aCached)
	table[1].Add(&table[0], &bCached)
	table[2].Add(&table[1], &bCached)
	table[3].Add(&table[2], &bCached)
	return table
}

// genTable4 builds the 8-entry table the window-1 ladder scans for
// simultaneous multiplication, indexed by which of b, c, d (bit 0, 1,
// 2 respectively) are included in the sum with a:
//
//	index  value
//	  0     a
//	  1     a + b
//	  2     a + c
//	  3     a + b + c
//	  4     a + d
//	  5     a + b + d
//	  6     a + c + d
//	  7     a + b + c + d
func genTable4(a, b, c, d *Point) [8]Point {
	var bCached, cCached, dCached projCached
	bCached.FromP3(b)
	cCached.FromP3(c)
	dCached.FromP3(d)

	var table [8]Point
	table[0].Set(a)
	table[1].Add(a, &bCached)
	table[2].Add(a, &cCached)
	table[3].Add(&table[1], &cCached)
	table[4].Add(a, &dCached)
	table[5].Add(&table[1], &dCached)
	table[6].Add(&table[2], &dCached)
	table[7].Add(&table[3], &dCached)
	return table
}

// ctEq returns 1 if x == y, and 0 otherwise, without branching.
func ctEq(x, y uint64) int {
	d := x ^ y
	return int(1 - ((d | -d) >> 63))
}

// select2 obliviously selects the table entry that window-2 GLS-SAC
// digit pair (a, b) at bit position index points to, and returns it
// with its sign applied, via a full scan of the table that touches
// every entry regardless of which one is selected, so memory access
// pattern carries no information about the digit.
func select2(table *[8]Point, a, b *gls.Subscalar, index int) *Point {
	a0 := a.Bit(index)
	a1 := a.Bit(index + 1)
	b0 := b.Bit(index)
	b1 := b.Bit(index + 1)
	k := ((a0^a1)&1)<<2 | b1<<1 | b0

	var r Point
	for ii := 0; ii < 8; ii++ {
		cond := ctEq(uint64(ii), k)
		r.Select(&table[ii], &r, cond)
	}
	r.CondNeg(int(a1 ^ 1))
	return &r
}

// select4 is select2's window-1 analogue for simultaneous
// multiplication: bits b, c, d of the quartet (a, b, c, d) at
// position index select among the 8 table entries, and a's bit at
// that position supplies the sign.
func select4(table *[8]Point, a, b, c, d *gls.Subscalar, index int) *Point {
	k := b.Bit(index) | c.Bit(index)<<1 | d.Bit(index)<<2

	var r Point
	for ii := 0; ii < 8; ii++ {
		cond := ctEq(uint64(ii), k)
		r.Select(&table[ii], &r, cond)
	}
	r.CondNeg(int(a.Bit(index) ^ 1))
	return &r
}
