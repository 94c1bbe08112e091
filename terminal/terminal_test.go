package terminal

import (
	"bufio"
	"bytes"
	"strconv"
	"testing"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Kind
		wantErr bool
	}{
		{name: "tcell", input: "tcell", want: KindTcell},
		{name: "ansi upper", input: "ANSI", want: KindANSI},
		{name: "termbox padded", input: " termbox ", want: KindTermbox},
		{name: "unknown", input: "curses", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKind(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for %q, got kind %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error for %q: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestNewRejectsUnknownKind(t *testing.T) {
	if _, err := New(Kind("vt52")); err == nil {
		t.Error("Expected error for unknown backend")
	}
}

func TestWriteInt(t *testing.T) {
	for _, n := range []int{0, 7, 42, 100, 999, 1000, 65535} {
		var buf bytes.Buffer
		w := bufio.NewWriter(&buf)
		writeInt(w, n)
		w.Flush()

		if want := strconv.Itoa(n); buf.String() != want {
			t.Errorf("writeInt(%d) = %q, want %q", n, buf.String(), want)
		}
	}
}

func TestWriteCursorPosIsOneIndexed(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	writeCursorPos(w, 0, 0)
	writeCursorPos(w, 9, 4)
	w.Flush()

	if got, want := buf.String(), "\x1b[1;1H\x1b[5;10H"; got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestIsEnter(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "carriage return", input: "\r", want: true},
		{name: "line feed", input: "\n", want: true},
		{name: "alt enter", input: "\x1b\r"},
		{name: "pasted line", input: "abc\n"},
		{name: "pasted lines", input: "\r\r"},
		{name: "arrow key", input: "\x1b[A"},
		{name: "rune", input: "q"},
		{name: "empty", input: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isEnter([]byte(tt.input)); got != tt.want {
				t.Errorf("isEnter(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestEmergencyResetRestoresModes(t *testing.T) {
	var buf bytes.Buffer
	EmergencyReset(&buf)

	out := buf.String()
	for _, seq := range [][]byte{csiCursorShow, csiAltScreenExit, csiAutoWrapOn} {
		if !bytes.Contains([]byte(out), seq) {
			t.Errorf("Expected reset output to contain %q", seq)
		}
	}
}
