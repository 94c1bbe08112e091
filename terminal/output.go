package terminal

import (
	"bufio"
	"io"
)

// outputBuffer holds what has been drawn (front) and what should be (back)
// and emits only the difference. A zero rune means the cell was never
// written, so it is skipped rather than blanked
type outputBuffer struct {
	front  []rune
	back   []rune
	width  int
	height int
	writer *bufio.Writer

	cursorX     int
	cursorY     int
	cursorValid bool
}

// newOutputBuffer creates a new output buffer
func newOutputBuffer(w io.Writer) *outputBuffer {
	return &outputBuffer{
		writer: bufio.NewWriterSize(w, 32768),
	}
}

// resize reallocates both buffers, discarding content
func (o *outputBuffer) resize(width, height int) {
	size := width * height
	o.front = make([]rune, size)
	o.back = make([]rune, size)
	o.width = width
	o.height = height
	o.cursorValid = false
}

// set stages r at (x, y)
func (o *outputBuffer) set(x, y int, r rune) {
	if x < 0 || x >= o.width || y < 0 || y >= o.height {
		return
	}
	o.back[y*o.width+x] = r
}

// flush writes staged cells that differ from the front buffer
func (o *outputBuffer) flush() {
	w := o.writer

	for y := 0; y < o.height; y++ {
		rowStart := y * o.width
		for x := 0; x < o.width; x++ {
			idx := rowStart + x
			r := o.back[idx]
			if r == 0 || r == o.front[idx] {
				continue
			}

			// Same row, ahead of cursor: a relative move is shorter
			if !o.cursorValid || x != o.cursorX || y != o.cursorY {
				if o.cursorValid && y == o.cursorY && x > o.cursorX {
					writeCursorForward(w, x-o.cursorX)
				} else {
					writeCursorPos(w, x, y)
				}
			}

			if r < 0x80 {
				w.WriteByte(byte(r))
			} else {
				w.WriteRune(r)
			}
			o.front[idx] = r

			// Auto-wrap is off: the cursor sticks at the last column
			o.cursorX = min(x+1, o.width-1)
			o.cursorY = y
			o.cursorValid = x+1 < o.width
		}
	}

	w.Flush()
}

// clear blanks the screen and forgets both buffers
func (o *outputBuffer) clear() {
	w := o.writer
	w.Write(csiSGR0)
	w.Write(csiClear)
	w.Flush()

	clear(o.front)
	clear(o.back)
	o.cursorX = 0
	o.cursorY = 0
	o.cursorValid = true
}

// writeRaw writes a control sequence immediately
func (o *outputBuffer) writeRaw(seq []byte) {
	o.writer.Write(seq)
	o.writer.Flush()
}
