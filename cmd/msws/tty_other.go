// Copyright 2025 The msws-rng Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !linux && !windows

package main

// isTerminal is a conservative stub for platforms without a terminal
// probe: never refuse output.
func isTerminal(fd uintptr) bool {
	return false
}
