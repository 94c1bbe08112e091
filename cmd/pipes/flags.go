package main

import (
	"flag"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/PugPostsCode/pug-pipes/constants"
	"github.com/PugPostsCode/pug-pipes/terminal"
)

const usage = `Usage: pipes [flags]

Flags:
	-p [number]: amount of pipes to simulate (default 4)
	-s [number]: amount of milliseconds between "frames" (default 10)
	-r [number]: amount of cycles until the simulation resets (default 1000)
	-c: shows the amount of cycles passed since last reset
	-b [name]: terminal backend: tcell, ansi or termbox (default tcell)
	-a: play a chime every time the simulation resets
	-d: write a debug log to logs/pipes.log
	-h: show this help message

Press Enter to quit.
`

// options is the parsed command line
type options struct {
	pipes       int
	speedMs     int
	resetCycles int
	showCycles  bool
	audio       bool
	debug       bool
	backend     terminal.Kind
}

// parseArgs parses command-line arguments (without the program name).
// Returns flag.ErrHelp when help was requested
func parseArgs(args []string) (options, error) {
	opts := options{}
	var backend string

	fs := flag.NewFlagSet("pipes", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.IntVar(&opts.pipes, "p", constants.DefaultPipeCount, "amount of pipes to simulate")
	fs.IntVar(&opts.speedMs, "s", constants.DefaultUpdateSpeedMs, "milliseconds between frames")
	fs.IntVar(&opts.resetCycles, "r", constants.DefaultResetCycles, "cycles until the simulation resets")
	fs.BoolVar(&opts.showCycles, "c", false, "show the cycle counter")
	fs.StringVar(&backend, "b", string(terminal.KindTcell), "terminal backend")
	fs.BoolVar(&opts.audio, "a", false, "chime on reset")
	fs.BoolVar(&opts.debug, "d", false, "debug log")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return opts, flag.ErrHelp
		}
		if strings.Contains(err.Error(), "parse error") {
			return opts, errors.Wrap(err, "please input a number")
		}
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, errors.Errorf("unexpected argument %q", fs.Arg(0))
	}

	if opts.pipes < 0 {
		return opts, errors.Errorf("-p must not be negative, got %d", opts.pipes)
	}
	if opts.speedMs < 1 {
		return opts, errors.Errorf("-s must be a positive number of milliseconds, got %d", opts.speedMs)
	}
	if opts.resetCycles < 1 {
		return opts, errors.Errorf("-r must be a positive number of cycles, got %d", opts.resetCycles)
	}

	kind, err := terminal.ParseKind(backend)
	if err != nil {
		return opts, err
	}
	opts.backend = kind

	return opts, nil
}
