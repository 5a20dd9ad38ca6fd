// Copyright 2025 The msws-rng Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package msws implements the Middle Square Weyl Sequence pseudo-random
// number generator as defined in
//
//	Middle Square Weyl Sequence RNG
//	Bernard Widynski
//	https://arxiv.org/abs/1704.00358
//
// The generator squares a 64-bit accumulator, adds a Weyl sequence
// (an odd-increment counter of period 2^64) and extracts the middle
// of the product by swapping the two 32-bit halves. The Weyl sequence
// is added after squaring rather than before, following a suggestion
// by Richard P. Brent, which provides a basis for uniformity in the
// output.
//
// The state is three 64-bit words, giving a stream length of 2^64 per
// increment and about 2^127 random numbers across the usable
// increment space. All arithmetic is modulo 2^64; the wraparound is
// the algorithm, not an artifact.
//
// A Source is not safe for concurrent use. Callers that share one
// across goroutines must provide their own locking; independent
// Sources need no coordination.
//
// This generator is not cryptographically secure. Its output reveals
// its state, and it makes no unpredictability claims against an
// observer of the stream.
package msws

import (
	"encoding/binary"
	"math"
	"math/bits"
)

const (
	// weylIncrement seeds the Weyl constant s. It is odd, so
	// s = (seed << 1) + weylIncrement is odd for every 32-bit seed.
	weylIncrement = 0xB5AD4ECEDA1CE2A9

	// warmupRounds outputs are discarded after seeding to decorrelate
	// the first emitted value from the raw seed bit pattern. Changing
	// this changes the sequence for every seed.
	warmupRounds = 13
)

// Source is a Middle Square Weyl Sequence generator. It is represented
// by three words: the squared accumulator x, the Weyl sequence w, and
// the odd increment s, fixed at seeding time.
//
// The zero Source is degenerate (s == 0 collapses the Weyl sequence);
// obtain one through New or Seed instead.
type Source struct {
	x, w, s uint64
}

// New returns a Source seeded with the given value.
//
// The increment s is derived as (seed << 1) + 0xB5AD4ECEDA1CE2A9,
// which is always odd. For the overwhelming majority of seeds the
// upper 32 bits of s are also non-zero, as the period analysis in the
// paper assumes; the derivation does not reject the rare seeds for
// which they are not, since a reject loop would change the documented
// sequence for those seeds.
func New(seed uint32) *Source {
	g := new(Source)
	g.reseed(seed)
	return g
}

func (g *Source) reseed(seed uint32) {
	g.x, g.w = 0, 0
	g.s = uint64(seed)<<1 + weylIncrement
	for i := 0; i < warmupRounds; i++ {
		g.Uint32()
	}
}

// Uint32 advances the generator one step and returns a pseudo-random
// 32-bit unsigned integer.
func (g *Source) Uint32() uint32 {
	g.x *= g.x
	g.w += g.s
	g.x += g.w
	g.x = bits.RotateLeft64(g.x, 32)
	return uint32(g.x)
}

// divisors[i] holds ceil(2^32 / i) for i >= 2. Indices 0 and 1 hold
// 0xFFFFFFFF: for max == 1 the quotient of any 32-bit value is 0, so
// no reduction is needed. Uint32n divides by the table entry instead
// of taking a remainder, which avoids modulo bias.
var divisors = [64]uint32{
	0xFFFFFFFF, 0xFFFFFFFF, 0x80000000, 0x55555556,
	0x40000000, 0x33333334, 0x2AAAAAAB, 0x24924925,
	0x20000000, 0x1C71C71D, 0x1999999A, 0x1745D175,
	0x15555556, 0x13B13B14, 0x12492493, 0x11111112,
	0x10000000, 0x0F0F0F10, 0x0E38E38F, 0x0D79435F,
	0x0CCCCCCD, 0x0C30C30D, 0x0BA2E8BB, 0x0B21642D,
	0x0AAAAAAB, 0x0A3D70A4, 0x09D89D8A, 0x097B425F,
	0x0924924A, 0x08D3DCB1, 0x08888889, 0x08421085,
	0x08000000, 0x07C1F07D, 0x07878788, 0x07507508,
	0x071C71C8, 0x06EB3E46, 0x06BCA1B0, 0x06906907,
	0x06666667, 0x063E7064, 0x06186187, 0x05F417D1,
	0x05D1745E, 0x05B05B06, 0x0590B217, 0x0572620B,
	0x05555556, 0x0539782A, 0x051EB852, 0x05050506,
	0x04EC4EC5, 0x04D4873F, 0x04BDA130, 0x04A7904B,
	0x04924925, 0x047DC120, 0x0469EE59, 0x0456C798,
	0x04444445, 0x04325C54, 0x04210843, 0x04104105,
}

// Uint32n returns a pseudo-random value uniformly distributed in
// [0, max). max must be at least 1; Uint32n(0) divides by zero.
func (g *Source) Uint32n(max uint32) uint32 {
	if max < 64 {
		return g.Uint32() / divisors[max]
	}
	return g.Uint32() / (math.MaxUint32/max + 1)
}

// Uint64 returns a pseudo-random 64-bit unsigned integer, composed of
// two consecutive Uint32 draws: the first fills the high 32 bits, the
// second the low 32 bits.
func (g *Source) Uint64() uint64 {
	hi := g.Uint32()
	lo := g.Uint32()
	return uint64(hi)<<32 | uint64(lo)
}

// Float64 returns a pseudo-random float64 in [0, 1) with 53 bits of
// precision.
func (g *Source) Float64() float64 {
	return float64(g.Uint64()>>11) / (1 << 53)
}

// Bytes fills p with pseudo-random bytes. Each underlying Uint32 draw
// is laid out in little-endian order, low byte first, on every
// platform; a trailing length not divisible by 4 consumes one more
// draw and truncates it. Calls whose lengths are multiples of 4
// consume whole draws, so splitting a stream across such calls does
// not change its contents.
func (g *Source) Bytes(p []byte) {
	n := len(p) &^ 3
	for i := 0; i < n; i += 4 {
		binary.LittleEndian.PutUint32(p[i:], g.Uint32())
	}
	if n < len(p) {
		w := g.Uint32()
		for i := n; i < len(p); i++ {
			p[i] = byte(w)
			w >>= 8
		}
	}
}
