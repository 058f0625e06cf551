// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gls

import (
	"github.com/dynm/snowshoe/field"
)

// Morph applies the curve's degree-2 endomorphism to the affine point
// (x, y), returning its image. For every point of order Q this equals
// scalar multiplication by Lambda, which is exactly how it is computed
// here: a plain (variable-time) affine double-and-add against the
// fixed constant Lambda, using the generic a=-1 twisted Edwards
// addition law with equation constant d. This sits on the external
// side of the scalar multiplication core's boundary, so unlike the
// core itself it has no obligation to run in constant time or to avoid
// field inversions.
func Morph(d, x, y *field.Elem2) (*field.Elem2, *field.Elem2) {
	rx, ry := affineIdentity()
	px, py := new(field.Elem2).Set(x), new(field.Elem2).Set(y)

	bits := Lambda.BitLen()
	for i := bits - 1; i >= 0; i-- {
		rx, ry = affineDouble(d, rx, ry)
		if Lambda.Bit(i) == 1 {
			rx, ry = affineAdd(d, rx, ry, px, py)
		}
	}
	return rx, ry
}

func affineIdentity() (*field.Elem2, *field.Elem2) {
	x := new(field.Elem2).Zero()
	y := new(field.Elem2).One()
	return x, y
}

// affineAdd computes the twisted Edwards (a=-1) addition law
//
//	x3 = (x1*y2 + y1*x2) / (1 + d*x1*x2*y1*y2)
//	y3 = (y1*y2 + x1*x2) / (1 - d*x1*x2*y1*y2)
func affineAdd(d, x1, y1, x2, y2 *field.Elem2) (*field.Elem2, *field.Elem2) {
	var x1y2, y1x2, y1y2, x1x2 field.Elem2
	x1y2.Multiply(x1, y2)
	y1x2.Multiply(y1, x2)
	y1y2.Multiply(y1, y2)
	x1x2.Multiply(x1, x2)

	var x1x2y1y2 field.Elem2
	x1x2y1y2.Multiply(&x1x2, &y1y2)

	var dterm field.Elem2
	dterm.Multiply(d, &x1x2y1y2)

	var one, denomX, denomY field.Elem2
	one.One()
	denomX.Add(&one, &dterm)
	denomY.Subtract(&one, &dterm)

	var invDenomX, invDenomY field.Elem2
	invDenomX.Invert(&denomX)
	invDenomY.Invert(&denomY)

	var numX, numY, x3, y3 field.Elem2
	numX.Add(&x1y2, &y1x2)
	numY.Add(&y1y2, &x1x2)
	x3.Multiply(&numX, &invDenomX)
	y3.Multiply(&numY, &invDenomY)
	return &x3, &y3
}

func affineDouble(d, x, y *field.Elem2) (*field.Elem2, *field.Elem2) {
	return affineAdd(d, x, y, x, y)
}
