// Copyright 2025 The msws-rng Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import "golang.org/x/sys/unix"

// isTerminal reports whether fd is an interactive terminal, so that
// raw byte mode can refuse to spray binary data into one.
func isTerminal(fd uintptr) bool {
	_, err := unix.IoctlGetTermios(int(fd), unix.TCGETS)
	return err == nil
}
