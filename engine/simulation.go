package engine

import (
	"github.com/PugPostsCode/pug-pipes/constants"
	"github.com/PugPostsCode/pug-pipes/core"
)

// SimConfig holds the simulation parameters
type SimConfig struct {
	PipeCount int

	// ResetCycles is the number of cycles run before the simulation restarts;
	// the restart happens on the first cycle that exceeds it
	ResetCycles int
}

// Simulation owns the pipes and the grid they draw on.
// Pipes are stepped in order and never interact: a later pipe silently
// overwrites an earlier pipe's marks
type Simulation struct {
	cfg    SimConfig
	coin   core.Coin
	grid   *core.Grid
	pipes  []core.Pipe
	cycles int
}

// NewSimulation creates a simulation over a width x height grid with all
// pipes at their spawn point
func NewSimulation(width, height int, cfg SimConfig, coin core.Coin) *Simulation {
	if cfg.PipeCount < 0 {
		cfg.PipeCount = 0
	}
	s := &Simulation{
		cfg:   cfg,
		coin:  coin,
		grid:  core.NewGrid(width, height),
		pipes: make([]core.Pipe, 0, cfg.PipeCount),
	}
	s.spawnPipes()
	return s
}

// Update advances every pipe one step and bumps the cycle counter.
// Returns true when the cycle limit was exceeded and the state was reset
func (s *Simulation) Update() bool {
	for i := range s.pipes {
		s.step(&s.pipes[i])
	}

	s.cycles++
	if s.cycles > s.cfg.ResetCycles {
		s.Reset()
		return true
	}
	return false
}

// Reset restores the initial state: empty grid, pipes at spawn, zero cycles
func (s *Simulation) Reset() {
	s.grid.Reset()
	s.spawnPipes()
	s.cycles = 0
}

// Grid returns the live grid
func (s *Simulation) Grid() *core.Grid {
	return s.grid
}

// Pipes returns a snapshot of the pipe states
func (s *Simulation) Pipes() []core.Pipe {
	out := make([]core.Pipe, len(s.pipes))
	copy(out, s.pipes)
	return out
}

// Cycles returns the number of updates since the last reset
func (s *Simulation) Cycles() int {
	return s.cycles
}

// Config returns the parameters the simulation was created with
func (s *Simulation) Config() SimConfig {
	return s.cfg
}

func (s *Simulation) spawnPipes() {
	s.pipes = s.pipes[:0]
	for i := 0; i < s.cfg.PipeCount; i++ {
		s.pipes = append(s.pipes, core.NewPipe(s.grid.Width()))
	}
}

// step applies the motion policy to one pipe:
// maybe turn, mark the turn cell, move with wrap, mark the new cell
func (s *Simulation) step(p *core.Pipe) {
	prev := p.Dir

	if s.turnAttempt() {
		if s.coin.Flip() {
			p.Dir = p.Dir.Clockwise()
		} else {
			p.Dir = p.Dir.CounterClockwise()
		}
	}

	if p.Dir != prev {
		s.grid.Set(p.X, p.Y, core.GlyphTurn)
	}

	p.Advance(s.grid.Width(), s.grid.Height())
	s.grid.Set(p.X, p.Y, p.Dir.Trail())
}

// turnAttempt flips TurnFlips coins and succeeds only if all land true.
// Stops at the first false flip
func (s *Simulation) turnAttempt() bool {
	for i := 0; i < constants.TurnFlips; i++ {
		if !s.coin.Flip() {
			return false
		}
	}
	return true
}
