package render

import (
	"fmt"

	"github.com/PugPostsCode/pug-pipes/constants"
	"github.com/PugPostsCode/pug-pipes/core"
)

// Canvas is the positioned-write target a frame is drawn onto
type Canvas interface {
	SetRune(x, y int, r rune)
	Show()
}

// Renderer draws the header, the rule line and the grid's trail glyphs.
// Empty cells are never written, so a mark stays visible until something
// overwrites it or the screen is cleared
type Renderer struct {
	width int
}

// NewRenderer creates a renderer for a terminal width columns wide
func NewRenderer(width int) *Renderer {
	return &Renderer{width: width}
}

// Header returns the title line text
func Header(showCycles bool, cycles int) string {
	if showCycles {
		return fmt.Sprintf(constants.HeaderCycleFormat, cycles)
	}
	return constants.HeaderTitle
}

// GlyphRune maps a grid glyph to its screen rune; ok is false for Empty
func GlyphRune(g core.Glyph) (r rune, ok bool) {
	switch g {
	case core.GlyphHorizontal:
		return constants.RuneHorizontal, true
	case core.GlyphVertical:
		return constants.RuneVertical, true
	case core.GlyphTurn:
		return constants.RuneTurn, true
	}
	return 0, false
}

// Draw renders one frame onto c and shows it
func (r *Renderer) Draw(c Canvas, grid *core.Grid, header string) {
	x := constants.HeaderColumn
	for _, ch := range header {
		c.SetRune(x, 0, ch)
		x++
	}

	for x := 0; x < r.width; x++ {
		c.SetRune(x, 1, constants.RuneRule)
	}

	grid.Each(func(x, y int, g core.Glyph) {
		if ch, ok := GlyphRune(g); ok {
			c.SetRune(x, y+constants.HeaderRows, ch)
		}
	})

	c.Show()
}
