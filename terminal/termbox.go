package terminal

import (
	"context"
	"sync"
	"time"

	"github.com/nsf/termbox-go"
	"github.com/pkg/errors"
)

// termboxSurface draws through termbox's global back buffer
type termboxSurface struct {
	events chan termbox.Event
	quit   chan struct{}
	done   chan struct{}

	poll      func() termbox.Event
	interrupt func()

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

func newTermboxSurface() *termboxSurface {
	return &termboxSurface{
		events:    make(chan termbox.Event, 64),
		quit:      make(chan struct{}),
		done:      make(chan struct{}),
		poll:      termbox.PollEvent,
		interrupt: termbox.Interrupt,
	}
}

func (s *termboxSurface) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := termbox.Init(); err != nil {
		return errors.Wrap(err, "init termbox")
	}
	termbox.HideCursor()
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	termbox.Flush()

	go s.pump()
	s.initialized = true
	return nil
}

// pump forwards events until PollEvent is interrupted. Once quit is closed
// events are dropped, so the pump is always back in PollEvent to receive it
func (s *termboxSurface) pump() {
	defer recoverInput()
	defer close(s.done)

	for {
		ev := s.poll()
		if ev.Type == termbox.EventInterrupt {
			return
		}
		select {
		case s.events <- ev:
		case <-s.quit:
		}
	}
}

// stopPump interrupts PollEvent and waits for the pump to exit
func (s *termboxSurface) stopPump() {
	close(s.quit)
	s.interrupt()
	<-s.done
}

func (s *termboxSurface) Fini() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || s.finalized {
		return
	}
	s.stopPump()
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	termbox.Flush()
	termbox.Close()
	s.finalized = true
}

func (s *termboxSurface) Size() (int, int, error) {
	w, h := termbox.Size()
	if w <= 0 || h <= 0 {
		return 0, 0, errors.Errorf("invalid terminal size %dx%d", w, h)
	}
	return w, h, nil
}

func (s *termboxSurface) SetRune(x, y int, r rune) {
	termbox.SetCell(x, y, r, termbox.ColorDefault, termbox.ColorDefault)
}

func (s *termboxSurface) Show() {
	termbox.Flush()
}

func (s *termboxSurface) Clear() {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	termbox.Flush()
}

func (s *termboxSurface) WaitForExit(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return true
		case <-timer.C:
			return false
		case ev := <-s.events:
			if isTermboxEnter(ev) {
				return true
			}
		}
	}
}

func isTermboxEnter(ev termbox.Event) bool {
	return ev.Type == termbox.EventKey && ev.Key == termbox.KeyEnter && ev.Mod == 0
}
