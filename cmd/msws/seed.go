// Copyright 2025 The msws-rng Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"crypto/rand"
	"encoding/binary"
	"os"
	"time"
)

// seedFallback is used when the system entropy source is unavailable,
// so that clock and pid mixing still produces a usable seed.
const seedFallback = 0x8FF46D8E

// mkseed derives a default seed from the system entropy source, the
// wall clock and the process id. Seeding the generator is the
// caller's policy, not the generator's, so this lives in the command
// rather than the library.
func mkseed() uint32 {
	seed := uint32(seedFallback)
	var buf [4]byte
	if _, err := rand.Read(buf[:]); err == nil {
		seed = binary.LittleEndian.Uint32(buf[:])
	}
	seed ^= uint32(time.Now().Unix()) << 16
	seed ^= uint32(os.Getpid()) & 0xFFFF
	return seed
}
