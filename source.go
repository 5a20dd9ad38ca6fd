// Copyright 2025 The msws-rng Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msws

import (
	mathrand "math/rand"

	exprand "golang.org/x/exp/rand"
)

// Assert that Source implements math/rand.Source64.
var _ mathrand.Source64 = (*Source)(nil)

// Int63 returns a non-negative pseudo-random 63-bit integer as an
// int64, masking the top bit of a Uint64 draw.
func (g *Source) Int63() int64 {
	return int64(g.Uint64() & (1<<63 - 1))
}

// Seed reinitializes the generator from the low 32 bits of seed,
// following the same derivation and warm-up as New. The truncation
// keeps a single canonical seeding procedure: Seed(n) and
// New(uint32(n)) produce identical sequences.
func (g *Source) Seed(seed int64) {
	g.reseed(uint32(seed))
}

// Read fills p with pseudo-random bytes, exactly as Bytes does. It
// always returns len(p) and a nil error, so a Source can serve as an
// inexhaustible io.Reader.
func (g *Source) Read(p []byte) (int, error) {
	g.Bytes(p)
	return len(p), nil
}

// ExpSource adapts a Source to the golang.org/x/exp/rand Source
// interface, whose Seed takes a uint64. Like Source.Seed, only the
// low 32 bits of the seed are significant.
type ExpSource struct {
	src Source
}

var _ exprand.Source = (*ExpSource)(nil)

// NewExp returns an ExpSource seeded with the given value, for use
// with golang.org/x/exp/rand.New.
func NewExp(seed uint32) *ExpSource {
	e := new(ExpSource)
	e.src.reseed(seed)
	return e
}

// Uint64 returns a pseudo-random 64-bit unsigned integer.
func (e *ExpSource) Uint64() uint64 { return e.src.Uint64() }

// Seed reinitializes the generator from the low 32 bits of seed.
func (e *ExpSource) Seed(seed uint64) { e.src.reseed(uint32(seed)) }
