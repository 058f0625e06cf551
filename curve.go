// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package snowshoe implements constant-time scalar multiplication on a
// twisted Edwards curve
//
//	-x^2 + y^2 = 1 + D*x^2*y^2
//
// over GF(p^2), p = 2^127-1, using a degree-2 endomorphism to split
// each scalar into two half-width pieces multiplied in parallel (the
// GLS technique of Galbraith, Lin and Scott). Both mul and simul apply
// an extra factor of 4, the curve's cofactor, as a defense against
// small-subgroup attacks on inputs that have not been checked to lie
// in the prime-order subgroup.
package snowshoe

import (
	"math/big"

	"github.com/dynm/snowshoe/field"
	"github.com/dynm/snowshoe/scalar"
)

// D is the curve equation constant.
var D = field.Elem2{
	A0: *new(field.Element).SetUint64(2),
	A1: *new(field.Element).SetUint64(3),
}

// d2 is D+D, used by the extended-coordinate addition formulas.
var d2 = new(field.Elem2).Add(&D, &D)

// GX, GY are the affine coordinates of the canonical generator.
var (
	GX = field.Elem2{A0: *new(field.Element).SetUint64(4)}
	GY = field.Elem2{
		A0: mustElement("135854754870972341438055188933848636253"),
		A1: mustElement("19127464533754152305060633987507250624"),
	}
)

// Q is the prime order of the subgroup generated by (GX, GY).
var Q = scalar.NewFromLimbs(
	0x8ff98feae3d891e5,
	0x44c4f749f56bb193,
	0x6e2933d92a60f022,
	0x0d4fe4073153994d,
)

// mustElement builds a field.Element from a base-10 literal, used only
// to spell out the fixed generator coordinates above in a form that is
// easy to check against the derivation recorded in DESIGN.md.
func mustElement(decimal string) field.Element {
	v, ok := new(big.Int).SetString(decimal, 10)
	if !ok {
		panic("snowshoe: bad constant " + decimal)
	}
	raw := v.Bytes()
	var le [16]byte
	for i, c := range raw {
		le[len(raw)-1-i] = c
	}
	var e field.Element
	e.SetBytes(le[:])
	return e
}
