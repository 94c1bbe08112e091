package core

// Direction is a pipe heading, ordered clockwise
type Direction uint8

const (
	DirLeft Direction = iota
	DirUp
	DirRight
	DirDown

	directionCount = 4
)

// String returns the direction name
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "Left"
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	}
	return "Invalid"
}

// Clockwise returns the heading after a 90 degree right turn
func (d Direction) Clockwise() Direction {
	return (d + 1) % directionCount
}

// CounterClockwise returns the heading after a 90 degree left turn
func (d Direction) CounterClockwise() Direction {
	return (d + directionCount - 1) % directionCount
}

// Horizontal reports whether the heading is Left or Right
func (d Direction) Horizontal() bool {
	return d == DirLeft || d == DirRight
}

// Trail returns the glyph a pipe leaves on a cell it enters with this heading
func (d Direction) Trail() Glyph {
	if d.Horizontal() {
		return GlyphHorizontal
	}
	return GlyphVertical
}

// Pipe is a single wandering line head
type Pipe struct {
	X, Y int
	Dir  Direction
}

// NewPipe returns a pipe at the spawn point of a width-wide grid:
// center column, top row, heading down
func NewPipe(width int) Pipe {
	return Pipe{X: width / 2, Y: 0, Dir: DirDown}
}

// Advance moves the pipe one cell along its heading inside a width x height
// grid, wrapping at every edge
func (p *Pipe) Advance(width, height int) {
	switch p.Dir {
	case DirLeft:
		if p.X > 0 {
			p.X--
		} else {
			p.X = width - 1
		}
	case DirRight:
		if p.X < width-1 {
			p.X++
		} else {
			p.X = 0
		}
	case DirUp:
		if p.Y > 0 {
			p.Y--
		} else {
			p.Y = height - 1
		}
	case DirDown:
		if p.Y < height-1 {
			p.Y++
		} else {
			p.Y = 0
		}
	}
}
