// Copyright (c) 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snowshoe

import (
	"math/bits"
	mathrand "math/rand"
	"testing"
	"time"

	"github.com/dynm/snowshoe/scalar"
)

// TestMulTimingIndependentOfHammingWeight is a coarse statistical
// check, not a rigorous leakage detector: it buckets random scalars by
// the Hamming weight of their low 8 bits and checks that the slowest
// bucket's mean wall-clock cost of Mul is at most 3x the fastest
// bucket's. A ladder that branches on scalar bits would show a clear
// trend here. Scheduler jitter on a shared machine can also move these
// means, so the check is skipped when -short is set.
func TestMulTimingIndependentOfHammingWeight(t *testing.T) {
	if testing.Short() {
		t.Skip("coarse timing check, skipped with -short")
	}

	g := &AffinePoint{X: GX, Y: GY}
	r := mathrand.New(mathrand.NewSource(1))

	const samplesPerBucket = 40
	var totals [9]time.Duration

	for weight := 0; weight <= 8; weight++ {
		for s := 0; s < samplesPerBucket; s++ {
			low := scalarWithWeight(r, weight)
			var limbs [4]uint64
			limbs[0] = low
			limbs[1] = r.Uint64()
			limbs[2] = r.Uint64()
			limbs[3] = r.Uint64() & 0x07FFFFFFFFFFFFFF

			k := scalar.NewFromLimbs(limbs[0], limbs[1], limbs[2], limbs[3])

			start := time.Now()
			_ = Mul(k, g)
			totals[weight] += time.Since(start)
		}
	}

	var min, max time.Duration
	for weight, total := range totals {
		mean := total / samplesPerBucket
		if weight == 0 || mean < min {
			min = mean
		}
		if mean > max {
			max = mean
		}
	}

	// A branch on scalar bits would make cost scale with the number of
	// set bits processed; this tolerance only catches a gross,
	// consistent trend, not sub-percent leakage.
	if min > 0 && float64(max)/float64(min) > 3.0 {
		t.Fatalf("Mul latency varies too much with scalar Hamming weight: min=%v max=%v", min, max)
	}
}

// scalarWithWeight returns a random 8-bit value with exactly weight
// bits set.
func scalarWithWeight(r *mathrand.Rand, weight int) uint64 {
	for {
		v := uint64(r.Intn(256))
		if bits.OnesCount64(v) == weight {
			return v
		}
	}
}
