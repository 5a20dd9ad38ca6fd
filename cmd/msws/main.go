// Copyright 2025 The msws-rng Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The msws command prints pseudo-random values from a Middle Square
// Weyl Sequence generator, either as numeric text (one value per
// line) or as a raw byte stream.
//
// Usage:
//
//	msws [flags] [count [seed]]
//
// A count of 0 (the default) generates output until the sink stops
// accepting it. When no seed is given, one is derived from the
// operating system's entropy source, the clock and the process id.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	msws "github.com/lordmulder/msws-rng"
)

const version = "1.0.0"

// chunkSize is the write granularity in raw byte mode.
const chunkSize = 4096

type options struct {
	wide    bool // emit 64-bit values instead of 32-bit
	decimal bool // decimal text instead of hexadecimal
	binary  bool // raw byte stream instead of numeric text
	verbose bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := new(options)
	cmd := &cobra.Command{
		Use:   "msws [flags] [count [seed]]",
		Short: "Middle Square Weyl Sequence random number generator",
		Long: `Middle Square Weyl Sequence random number generator.

Prints pseudo-random values, one per line, or a raw byte stream with
--binary. The same seed always regenerates the same sequence; if no
seed is given, a fresh one is picked from the system.`,
		Args:          cobra.MaximumNArgs(2),
		Version:       version,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}
	cmd.Flags().BoolVar(&opts.wide, "uint64", false, "output unsigned 64-bit values (default: unsigned 32-bit)")
	cmd.Flags().BoolVar(&opts.decimal, "decfmt", false, "output numeric values in decimal format (default: hexadecimal)")
	cmd.Flags().BoolVar(&opts.binary, "binary", false, "output a stream of raw bytes instead of numeric values")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log the chosen seed and mode to stderr")
	cmd.MarkFlagsMutuallyExclusive("uint64", "binary")
	cmd.MarkFlagsMutuallyExclusive("decfmt", "binary")
	return cmd
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	var count uint32 // 0 means unbounded
	if len(args) > 0 {
		n, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			return errors.Wrapf(err, "bad count %q", args[0])
		}
		count = uint32(n)
	}

	seed, haveSeed := uint32(0), false
	if len(args) > 1 {
		n, err := strconv.ParseUint(args[1], 10, 32)
		if err != nil {
			return errors.Wrapf(err, "bad seed %q", args[1])
		}
		seed, haveSeed = uint32(n), true
	}
	if !haveSeed {
		seed = mkseed()
	}

	log := newLogger(cmd.ErrOrStderr(), opts.verbose)
	log.Debug().
		Uint32("seed", seed).
		Uint32("count", count).
		Bool("uint64", opts.wide).
		Bool("binary", opts.binary).
		Msg("generating")

	out := cmd.OutOrStdout()
	if opts.binary {
		if f, ok := out.(*os.File); ok && isTerminal(f.Fd()) {
			return errors.New("refusing to write raw bytes to a terminal, redirect stdout")
		}
		writeRaw(out, msws.New(seed), count)
		return nil
	}
	writeNumeric(out, msws.New(seed), opts, count)
	return nil
}

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).Level(level).With().Timestamp().Logger()
}

// writeNumeric prints count values, or values forever when count is
// 0. A write error means the sink stopped accepting output, which is
// a normal termination, not a fault.
func writeNumeric(out io.Writer, g *msws.Source, opts *options, count uint32) {
	format := "%08X\n"
	switch {
	case opts.wide && opts.decimal:
		format = "%016d\n"
	case opts.wide:
		format = "%016X\n"
	case opts.decimal:
		format = "%08d\n"
	}

	w := bufio.NewWriter(out)
	for i := uint32(0); count == 0 || i < count; i++ {
		var err error
		if opts.wide {
			_, err = fmt.Fprintf(w, format, g.Uint64())
		} else {
			_, err = fmt.Fprintf(w, format, g.Uint32())
		}
		if err != nil {
			return
		}
	}
	w.Flush()
}

// writeRaw streams count random bytes in chunkSize writes, or streams
// forever when count is 0. As above, a refused write is a silent
// stop.
func writeRaw(out io.Writer, g *msws.Source, count uint32) {
	buf := make([]byte, chunkSize)
	if count == 0 {
		for {
			g.Bytes(buf)
			if _, err := out.Write(buf); err != nil {
				return
			}
		}
	}
	for remain := count; remain > 0; {
		n := uint32(chunkSize)
		if remain < n {
			n = remain
		}
		g.Bytes(buf[:n])
		if _, err := out.Write(buf[:n]); err != nil {
			return
		}
		remain -= n
	}
}
