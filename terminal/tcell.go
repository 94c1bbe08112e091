package terminal

import (
	"context"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// tcellSurface draws through a tcell.Screen; tcell keeps its own back
// buffer, so Show only sends the cells that changed
type tcellSurface struct {
	screen tcell.Screen
	style  tcell.Style
	events chan tcell.Event
	quit   chan struct{}

	finiOnce sync.Once
}

func newTcellSurface() (Surface, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "create tcell screen")
	}
	return newTcellSurfaceFromScreen(screen), nil
}

func newTcellSurfaceFromScreen(screen tcell.Screen) *tcellSurface {
	return &tcellSurface{
		screen: screen,
		style:  tcell.StyleDefault,
		events: make(chan tcell.Event, 64),
		quit:   make(chan struct{}),
	}
}

func (s *tcellSurface) Init() error {
	if err := s.screen.Init(); err != nil {
		return errors.Wrap(err, "init tcell screen")
	}
	s.screen.HideCursor()
	s.screen.SetStyle(s.style)
	s.screen.Clear()
	s.screen.Show()

	go s.pump()
	return nil
}

// pump forwards screen events until the screen is finalized
func (s *tcellSurface) pump() {
	defer recoverInput()

	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.quit:
			return
		}
	}
}

func (s *tcellSurface) Fini() {
	s.finiOnce.Do(func() {
		close(s.quit)
		s.screen.Clear()
		s.screen.Show()
		s.screen.Fini()
	})
}

func (s *tcellSurface) Size() (int, int, error) {
	w, h := s.screen.Size()
	if w <= 0 || h <= 0 {
		return 0, 0, errors.Errorf("invalid terminal size %dx%d", w, h)
	}
	return w, h, nil
}

func (s *tcellSurface) SetRune(x, y int, r rune) {
	s.screen.SetContent(x, y, r, nil, s.style)
}

func (s *tcellSurface) Show() {
	s.screen.Show()
}

func (s *tcellSurface) Clear() {
	s.screen.Clear()
	s.screen.Show()
}

func (s *tcellSurface) WaitForExit(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return true
		case <-timer.C:
			return false
		case ev := <-s.events:
			if isTcellEnter(ev) {
				return true
			}
		}
	}
}

// isTcellEnter reports whether ev is an unmodified Enter keypress
func isTcellEnter(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	return key.Key() == tcell.KeyEnter && key.Modifiers() == tcell.ModNone
}
