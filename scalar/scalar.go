// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scalar implements the 256-bit scalar type consumed by the
// snowshoe scalar multiplication core, and the scalar masking
// operation that reduces a uniform random 256-bit value to one
// guaranteed to be less than the curve order.
package scalar

import (
	"encoding/binary"
	"errors"
)

// Scalar is a 256-bit unsigned integer, held as four 64-bit limbs in
// little-endian limb order: the value is
//
//	d[0] + d[1]*2^64 + d[2]*2^128 + d[3]*2^192.
//
// The zero value is a valid zero scalar.
type Scalar struct {
	d [4]uint64
}

// NewFromLimbs builds a Scalar from little-endian-ordered limbs.
func NewFromLimbs(d0, d1, d2, d3 uint64) *Scalar {
	return &Scalar{[4]uint64{d0, d1, d2, d3}}
}

// Limbs returns the scalar's four 64-bit limbs, little-endian order.
func (s *Scalar) Limbs() [4]uint64 {
	return s.d
}

// Set sets s = a, and returns s.
func (s *Scalar) Set(a *Scalar) *Scalar {
	*s = *a
	return s
}

// Equal returns true if s == a.
func (s *Scalar) Equal(a *Scalar) bool {
	return s.d == a.d
}

// IsZero reports whether s == 0.
func (s *Scalar) IsZero() bool {
	return s.d == [4]uint64{}
}

// Bit returns bit i of s (0 or 1), for 0 <= i < 256.
func (s *Scalar) Bit(i int) uint64 {
	return (s.d[i/64] >> uint(i%64)) & 1
}

// Bytes returns the 32-byte little-endian encoding of s.
func (s *Scalar) Bytes() []byte {
	buf := make([]byte, 32)
	for i, limb := range s.d {
		binary.LittleEndian.PutUint64(buf[i*8:], limb)
	}
	return buf
}

// SetBytes sets s to the 32-byte little-endian encoding in b, and
// returns s. It returns an error if len(b) != 32. It does not validate
// that the result lies in (0, q); that is the caller's responsibility.
func (s *Scalar) SetBytes(b []byte) (*Scalar, error) {
	if len(b) != 32 {
		return nil, errors.New("scalar: invalid scalar encoding length")
	}
	for i := range s.d {
		s.d[i] = binary.LittleEndian.Uint64(b[i*8:])
	}
	return s, nil
}

// Mask clears the top 5 bits of s in place, guaranteeing the result
// is strictly less than 2^251 and so strictly less than the curve
// order q (q ~ 2^251.73). This is a total function: every bit pattern
// of s is a valid input, and every output is valid.
//
// Clearing one bit more than the minimum needed to drop below q
// simplifies rejection-free sampling in a caller's key-generation
// routine, which is otherwise outside this core's scope.
func (s *Scalar) Mask() *Scalar {
	s.d[3] &= 0x07FFFFFFFFFFFFFF
	return s
}
