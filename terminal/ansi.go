package terminal

import (
	"bufio"
)

// Pre-allocated ANSI sequence fragments
var (
	csiClear = []byte("\x1b[2J\x1b[H")
	csiRIS   = []byte("\x1bc") // Reset to Initial State (emergency)
	csiSGR0  = []byte("\x1b[0m")

	// Cursor control
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")
	csiCursorPos  = []byte("\x1b[") // followed by row;colH
	csiCursorFwd1 = []byte("\x1b[C")

	// Screen modes
	csiAltScreenEnter = []byte("\x1b[?1049h")
	csiAltScreenExit  = []byte("\x1b[?1049l")
	// DECAWM: ?7l keeps the cursor at the right edge so a write to the
	// bottom-right corner does not scroll
	csiAutoWrapOn  = []byte("\x1b[?7h")
	csiAutoWrapOff = []byte("\x1b[?7l")
)

// writeInt writes a non-negative integer without allocation
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte(n%10) + '0'
		n /= 10
	}
	w.Write(buf[i:])
}

// writeCursorPos writes cursor positioning sequence (0-indexed input)
func writeCursorPos(w *bufio.Writer, x, y int) {
	w.Write(csiCursorPos)
	writeInt(w, y+1)
	w.WriteByte(';')
	writeInt(w, x+1)
	w.WriteByte('H')
}

// writeCursorForward writes cursor forward N positions
func writeCursorForward(w *bufio.Writer, n int) {
	if n <= 0 {
		return
	}
	if n == 1 {
		w.Write(csiCursorFwd1)
		return
	}
	w.Write(csiCursorPos)
	writeInt(w, n)
	w.WriteByte('C')
}
