package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/PugPostsCode/pug-pipes/audio"
	"github.com/PugPostsCode/pug-pipes/constants"
	"github.com/PugPostsCode/pug-pipes/core"
	"github.com/PugPostsCode/pug-pipes/engine"
	"github.com/PugPostsCode/pug-pipes/render"
	"github.com/PugPostsCode/pug-pipes/terminal"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the program and returns the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	// Panic Recovery: Ensure terminal is reset even if the animation crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	// Configuration errors are reported before the terminal is touched
	opts, err := parseArgs(args)
	if errors.Is(err, flag.ErrHelp) {
		fmt.Fprint(stdout, usage)
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "pipes: %v\n", err)
		fmt.Fprintln(stderr, "Run 'pipes -h' for usage.")
		return 2
	}

	if logFile := setupLogging(opts.debug); logFile != nil {
		defer logFile.Close()
	}

	surface, err := terminal.New(opts.backend)
	if err != nil {
		fmt.Fprintf(stderr, "pipes: %v\n", err)
		return 1
	}
	if err := surface.Init(); err != nil {
		fmt.Fprintf(stderr, "pipes: failed to initialize terminal: %v\n", err)
		return 1
	}
	core.SetCrashSurface(surface)
	defer surface.Fini()

	width, height, err := surface.Size()
	if err == nil && (width < 1 || height-constants.ChromeRows < 1) {
		err = errors.Errorf("terminal too small: %dx%d, need at least 1x%d", width, height, constants.ChromeRows+1)
	}
	if err != nil {
		// Leave the alternate screen first so the message stays visible
		surface.Fini()
		fmt.Fprintf(stderr, "pipes: %v\n", err)
		return 1
	}
	rows := height - constants.ChromeRows

	log.Printf("start backend=%s size=%dx%d pipes=%d speed=%dms reset=%d",
		opts.backend, width, height, opts.pipes, opts.speedMs, opts.resetCycles)

	var sound engine.Sound
	if opts.audio {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			// Non-fatal, the animation runs without sound
			log.Printf("audio initialization failed: %v (continuing without audio)", err)
		} else {
			defer sm.Cleanup()
			sound = sm
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sim := engine.NewSimulation(width, rows, engine.SimConfig{
		PipeCount:   opts.pipes,
		ResetCycles: opts.resetCycles,
	}, core.NewUnseededRNG())

	driver := engine.NewDriver(sim, surface, render.NewRenderer(width), engine.DriverConfig{
		Interval:   time.Duration(opts.speedMs) * time.Millisecond,
		ShowCycles: opts.showCycles,
	}, sound)

	driver.Run(ctx)
	return 0
}
