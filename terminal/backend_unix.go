//go:build unix

package terminal

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// ansiSurface drives the terminal with raw ANSI sequences
type ansiSurface struct {
	in      *os.File
	out     *os.File
	inFd    int
	outFd   int
	oldTerm *term.State

	output *outputBuffer
	inputC chan []byte
	stopCh chan struct{}
	doneCh chan struct{}

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

func newANSISurface() (Surface, error) {
	return &ansiSurface{
		in:    os.Stdin,
		out:   os.Stdout,
		inFd:  int(os.Stdin.Fd()),
		outFd: int(os.Stdout.Fd()),
	}, nil
}

// Init enters raw mode and the alternate screen
func (s *ansiSurface) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	if !term.IsTerminal(s.inFd) {
		return errors.New("stdin is not a terminal")
	}

	w, h, err := winsize(s.outFd)
	if err != nil {
		return err
	}

	old, err := term.MakeRaw(s.inFd)
	if err != nil {
		return errors.Wrap(err, "enter raw mode")
	}
	s.oldTerm = old

	s.output = newOutputBuffer(s.out)
	s.output.resize(w, h)

	s.output.writeRaw(csiAltScreenEnter)
	s.output.writeRaw(csiCursorHide)
	s.output.writeRaw(csiAutoWrapOff)
	s.output.clear()

	s.inputC = make(chan []byte, 16)
	s.stopCh = make(chan struct{})
	s.doneCh = make(chan struct{})
	go s.readLoop()

	s.initialized = true
	return nil
}

// Fini clears the screen and restores the terminal
func (s *ansiSurface) Fini() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || s.finalized {
		return
	}

	close(s.stopCh)
	<-s.doneCh

	s.output.clear()
	s.output.writeRaw(csiCursorShow)
	s.output.writeRaw(csiAltScreenExit)
	// Re-enable auto-wrap after leaving the alternate screen so the main buffer has it
	s.output.writeRaw(csiAutoWrapOn)
	s.output.writeRaw(csiSGR0)

	if s.oldTerm != nil {
		term.Restore(s.inFd, s.oldTerm)
	}

	s.finalized = true
}

// Size returns the dimensions captured at Init
func (s *ansiSurface) Size() (int, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.output == nil {
		return winsize(s.outFd)
	}
	return s.output.width, s.output.height, nil
}

func (s *ansiSurface) SetRune(x, y int, r rune) {
	if s.output == nil {
		return
	}
	s.output.set(x, y, r)
}

func (s *ansiSurface) Show() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || s.finalized {
		return
	}
	s.output.flush()
}

func (s *ansiSurface) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || s.finalized {
		return
	}
	s.output.clear()
}

// WaitForExit blocks for d unless Enter arrives or ctx is done
func (s *ansiSurface) WaitForExit(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return true
		case <-timer.C:
			return false
		case p, ok := <-s.inputC:
			if !ok {
				// Input closed (EOF or read error): nothing can end the wait early
				s.inputC = nil
				continue
			}
			if isEnter(p) {
				return true
			}
		}
	}
}

// readLoop forwards raw stdin chunks until stopped
func (s *ansiSurface) readLoop() {
	defer recoverInput()
	defer close(s.doneCh)
	defer close(s.inputC)

	buf := make([]byte, 256)
	for {
		select {
		case <-s.stopCh:
			return
		default:
		}

		// Poll with timeout to allow checking stopCh
		fds := []unix.PollFd{
			{Fd: int32(s.inFd), Events: unix.POLLIN},
		}
		n, err := unix.Poll(fds, 100)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return
		}
		if n == 0 {
			continue
		}

		rn, err := unix.Read(s.inFd, buf)
		if err != nil {
			if err == unix.EINTR || err == unix.EAGAIN {
				continue
			}
			return
		}
		if rn == 0 {
			return
		}

		chunk := make([]byte, rn)
		copy(chunk, buf[:rn])
		select {
		case s.inputC <- chunk:
		case <-s.stopCh:
			return
		}
	}
}

// winsize queries the terminal size of fd
func winsize(fd int) (int, int, error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, errors.Wrap(err, "query terminal size")
	}
	return int(ws.Col), int(ws.Row), nil
}
