// Copyright 2025 The msws-rng Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import "golang.org/x/sys/windows"

// isTerminal reports whether fd is an interactive console, so that
// raw byte mode can refuse to spray binary data into one.
func isTerminal(fd uintptr) bool {
	var mode uint32
	return windows.GetConsoleMode(windows.Handle(fd), &mode) == nil
}
