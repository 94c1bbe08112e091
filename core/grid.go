package core

// Glyph is the trail state of a single grid cell
type Glyph uint8

const (
	GlyphEmpty Glyph = iota
	GlyphHorizontal
	GlyphVertical
	GlyphTurn
)

// String returns the glyph name, used in test failure messages and logs
func (g Glyph) String() string {
	switch g {
	case GlyphEmpty:
		return "Empty"
	case GlyphHorizontal:
		return "Horizontal"
	case GlyphVertical:
		return "Vertical"
	case GlyphTurn:
		return "Turn"
	}
	return "Invalid"
}

// Grid is a fixed-size 2D buffer of glyphs, stored row-major
// Dimensions never change after creation; Reset only clears content
type Grid struct {
	width  int
	height int
	cells  []Glyph
}

// NewGrid creates an all-empty grid with the given dimensions
func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Glyph, width*height),
	}
}

// Width returns the grid width
func (g *Grid) Width() int {
	return g.width
}

// Height returns the grid height
func (g *Grid) Height() int {
	return g.height
}

// InBounds reports whether (x, y) addresses a cell
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the glyph at (x, y), GlyphEmpty when out of bounds
func (g *Grid) At(x, y int) Glyph {
	if !g.InBounds(x, y) {
		return GlyphEmpty
	}
	return g.cells[y*g.width+x]
}

// Set overwrites the glyph at (x, y); returns false when out of bounds
func (g *Grid) Set(x, y int, glyph Glyph) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.cells[y*g.width+x] = glyph
	return true
}

// Reset clears every cell back to GlyphEmpty
func (g *Grid) Reset() {
	clear(g.cells)
}

// Count returns the number of cells holding glyph
func (g *Grid) Count(glyph Glyph) int {
	n := 0
	for _, c := range g.cells {
		if c == glyph {
			n++
		}
	}
	return n
}

// Each calls fn for every non-empty cell in row-major order
func (g *Grid) Each(fn func(x, y int, glyph Glyph)) {
	for i, c := range g.cells {
		if c == GlyphEmpty {
			continue
		}
		fn(i%g.width, i/g.width, c)
	}
}
