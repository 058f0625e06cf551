// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gls implements the curve's degree-2 endomorphism and the
// lattice-based scalar decomposition built on top of it. Both sit on
// the external side of the scalar multiplication core's boundary: the
// core only ever calls Morph and Decompose, never relies on how they
// get their answers.
package gls

import "math/big"

// Q is the prime order of the curve's main subgroup.
var Q, _ = new(big.Int).SetString("d4fe4073153994d6e2933d92a60f02244c4f749f56bb1938ff98feae3d891e5", 16)

// Lambda is the endomorphism's eigenvalue on the subgroup of order Q:
// for every point P of order Q, Morph(P) == Lambda*P. Lambda^2 == -1
// (mod Q). Morph's double-and-add loop walks Lambda's bits directly;
// Lambda is a public constant, so doing that with math/big costs
// nothing in the timing model.
var Lambda, _ = new(big.Int).SetString("a61f45b852489e7dfe05dd3df24261a4ade7599119c7ac00336120370ae2f09", 16)

// a1, b1 are half of a reduced basis of the lattice
//
//	L = { (x, y) in Z^2 : x + y*Lambda == 0 (mod Q) },
//
// obtained by Lagrange (Gaussian) reduction of the basis (Q, 0),
// (-Lambda mod Q, 1). The full basis is (a1, a2), (b1, b2) with
// a2 = -b1 and b2 = a1, the pattern a Gaussian-integer-style lattice
// always has, which is why det = a1*b2 - a2*b1 = a1^2 + b1^2 works out
// to exactly Q and only two constants need to be carried. See
// Decompose for how they are used.
var (
	a1 = Subscalar{Lo: 0x6ba9ef3e6a56a26, Hi: 0x28ba5d7c7a946e3d}
	b1 = Subscalar{Lo: 0x9bb7e3b895db8821, Hi: 0x29d28f788efc9dfe}
)

// decomposeShift is the rounding shift used by mulShiftRound: g1 and
// g2 below are round(a1*2^decomposeShift/Q) and round(b1*2^decomposeShift/Q).
// 378 is large enough that mulShiftRound(k, g1) and mulShiftRound(k,
// g2) equal the exact rounded quotients round(k*a1/Q) and
// round(k*b1/Q) for every k in [0, 2^251), which covers every scalar
// Decompose is ever handed (see scalar.Mask).
const decomposeShift = 378

// g1, g2 are the scaled reciprocals round(a1*2^decomposeShift/Q) and
// round(b1*2^decomposeShift/Q), precomputed so Decompose never divides
// by Q at all: it multiplies by a constant and shifts instead, the
// same trick mleku-p256k1's scalarSplitLambda uses to split a scalar
// against its own curve's endomorphism eigenvalue without involving
// math/big.
var (
	g1 = [4]uint64{0xe5f1bb86bdd24ab6, 0x8060be74b27a3045, 0x73f9f5722d4b8d6e, 0xc3ce7ae83dcc432}
	g2 = [4]uint64{0x5ebd442dd75e0ae8, 0x587ca68907afb85e, 0xe5b7bf1f14c4d7ea, 0xc91190b4fbf0ffd}
)
