// Copyright (c) 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hazmat exposes internal details of the github.com/dynm/snowshoe
// implementation that are not necessary for any higher-level use of that
// group. This is only meant to be used by sibling packages building
// protocols (signing, key agreement) on top of this curve that need
// direct access to extended coordinates, such as to chain into their
// own constant-time formulas instead of paying for an affine round
// trip through snowshoe.AffinePoint.
//
// This API is NOT STABLE, regardless of the module version.
//
// There is a reason the interesting parts of this package are gated
// behind a function named BewareOfTheLeopard: nothing here is checked
// for you, and getting it wrong produces points that look fine right
// up until they aren't.
package hazmat

import (
	"unsafe"

	"github.com/dynm/snowshoe"
	"github.com/dynm/snowshoe/field"
)

var youAskedForIt bool

// BewareOfTheLeopard acknowledges that this package is not safe and not stable.
// None of the other APIs will work unless this is called.
func BewareOfTheLeopard() {
	youAskedForIt = true
}

// Elem2 is the base field element type coordinates are given in.
type Elem2 = field.Elem2

// point must match snowshoe.Point.
type point struct {
	x, y, z, t field.Elem2
}

func init() {
	if unsafe.Sizeof(point{}) != unsafe.Sizeof(snowshoe.Point{}) {
		panic("point and snowshoe.Point don't match")
	}
}

// NewPointFromExtendedCoordinates builds a snowshoe.Point directly from
// extended coordinates (X, Y, Z, T) satisfying X*Y = T*Z, skipping the
// usual affine-to-extended expansion.
func NewPointFromExtendedCoordinates(x, y, z, t *Elem2) *snowshoe.Point {
	if !youAskedForIt {
		panic("hazmat: please acknowledge that you'll BewareOfTheLeopard")
	}
	p := &point{}
	p.x.Set(x)
	p.y.Set(y)
	p.z.Set(z)
	p.t.Set(t)
	return (*snowshoe.Point)(unsafe.Pointer(p))
}

// PointExtendedCoordinates returns p's raw extended coordinates.
func PointExtendedCoordinates(p *snowshoe.Point) (x, y, z, t *Elem2) {
	if !youAskedForIt {
		panic("hazmat: please acknowledge that you'll BewareOfTheLeopard")
	}
	pp := (*point)(unsafe.Pointer(p))
	x = (&Elem2{}).Set(&pp.x)
	y = (&Elem2{}).Set(&pp.y)
	z = (&Elem2{}).Set(&pp.z)
	t = (&Elem2{}).Set(&pp.t)
	return
}
