package terminal

import (
	"testing"
	"time"

	"github.com/nsf/termbox-go"
)

func TestIsTermboxEnter(t *testing.T) {
	tests := []struct {
		name string
		ev   termbox.Event
		want bool
	}{
		{name: "enter", ev: termbox.Event{Type: termbox.EventKey, Key: termbox.KeyEnter}, want: true},
		{name: "alt enter", ev: termbox.Event{Type: termbox.EventKey, Key: termbox.KeyEnter, Mod: termbox.ModAlt}},
		{name: "rune", ev: termbox.Event{Type: termbox.EventKey, Ch: 'x'}},
		{name: "resize", ev: termbox.Event{Type: termbox.EventResize, Width: 80, Height: 24}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isTermboxEnter(tt.ev); got != tt.want {
				t.Errorf("isTermboxEnter() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTermboxFiniBeforeInit(t *testing.T) {
	s := newTermboxSurface()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Fini without Init panicked: %v", r)
		}
	}()
	s.Fini()
}

func TestTermboxPumpForwardsEvents(t *testing.T) {
	polled := make(chan termbox.Event)
	s := newTermboxSurface()
	s.poll = func() termbox.Event { return <-polled }
	s.interrupt = func() { polled <- termbox.Event{Type: termbox.EventInterrupt} }

	go s.pump()
	polled <- termbox.Event{Type: termbox.EventKey, Key: termbox.KeyEnter}

	select {
	case ev := <-s.events:
		if !isTermboxEnter(ev) {
			t.Errorf("Expected forwarded Enter, got %+v", ev)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Event was not forwarded")
	}

	s.stopPump()
}

func TestTermboxStopPumpUnblocksFullQueue(t *testing.T) {
	polled := make(chan termbox.Event)
	s := newTermboxSurface()
	s.poll = func() termbox.Event { return <-polled }
	s.interrupt = func() { polled <- termbox.Event{Type: termbox.EventInterrupt} }

	go s.pump()

	// Nobody reads events: the last one leaves the pump parked on a send
	for i := 0; i < cap(s.events)+1; i++ {
		polled <- termbox.Event{Type: termbox.EventKey, Ch: 'x'}
	}

	stopped := make(chan struct{})
	go func() {
		s.stopPump()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("stopPump did not return, pump never left PollEvent")
	}

	select {
	case <-s.done:
	default:
		t.Error("Expected pump goroutine to have exited")
	}
}
