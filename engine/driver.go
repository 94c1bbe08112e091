package engine

import (
	"context"
	"log"
	"time"

	"github.com/PugPostsCode/pug-pipes/render"
	"github.com/PugPostsCode/pug-pipes/terminal"
)

// Sound is notified of simulation events; implementations must not block
type Sound interface {
	PlayReset()
}

// DriverConfig holds the frame loop parameters
type DriverConfig struct {
	// Interval is how long each frame waits for the exit key
	Interval time.Duration

	// ShowCycles adds the cycle counter to the header
	ShowCycles bool
}

// Driver runs the update, draw, wait loop on a single goroutine
type Driver struct {
	sim      *Simulation
	renderer *render.Renderer
	surface  terminal.Surface
	sound    Sound
	cfg      DriverConfig

	frames uint64
	resets uint64
}

// NewDriver wires a simulation to a surface. sound may be nil
func NewDriver(sim *Simulation, surface terminal.Surface, renderer *render.Renderer, cfg DriverConfig, sound Sound) *Driver {
	return &Driver{
		sim:      sim,
		renderer: renderer,
		surface:  surface,
		sound:    sound,
		cfg:      cfg,
	}
}

// Run clears the screen and ticks until Enter is pressed or ctx is cancelled
func (d *Driver) Run(ctx context.Context) {
	d.surface.Clear()
	for {
		if d.Tick(ctx) {
			log.Printf("exit after %d frames, %d resets", d.frames, d.resets)
			return
		}
	}
}

// Tick runs one frame and reports whether the loop should stop
func (d *Driver) Tick(ctx context.Context) bool {
	if d.sim.Update() {
		d.resets++
		log.Printf("reset #%d after %d cycles", d.resets, d.sim.Config().ResetCycles+1)
		d.surface.Clear()
		if d.sound != nil {
			d.sound.PlayReset()
		}
	}

	header := render.Header(d.cfg.ShowCycles, d.sim.Cycles())
	d.renderer.Draw(d.surface, d.sim.Grid(), header)
	d.frames++

	return d.surface.WaitForExit(ctx, d.cfg.Interval)
}

// Frames returns the number of frames drawn
func (d *Driver) Frames() uint64 {
	return d.frames
}

// Resets returns the number of resets performed
func (d *Driver) Resets() uint64 {
	return d.resets
}
