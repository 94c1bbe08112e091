package core

import "testing"

func TestNewGrid(t *testing.T) {
	width, height := 80, 21
	g := NewGrid(width, height)

	if g.Width() != width {
		t.Errorf("Expected width %d, got %d", width, g.Width())
	}
	if g.Height() != height {
		t.Errorf("Expected height %d, got %d", height, g.Height())
	}
	if n := g.Count(GlyphEmpty); n != width*height {
		t.Errorf("Expected %d empty cells, got %d", width*height, n)
	}
}

func TestNewGridClampsNegative(t *testing.T) {
	g := NewGrid(-3, -1)
	if g.Width() != 0 || g.Height() != 0 {
		t.Errorf("Expected 0x0 grid, got %dx%d", g.Width(), g.Height())
	}
	if g.Set(0, 0, GlyphTurn) {
		t.Error("Expected Set to fail on empty grid")
	}
}

func TestGridGetSet(t *testing.T) {
	g := NewGrid(10, 10)

	if !g.Set(5, 7, GlyphVertical) {
		t.Fatal("Expected Set to succeed")
	}
	if got := g.At(5, 7); got != GlyphVertical {
		t.Errorf("Expected Vertical, got %v", got)
	}
	// Row-major layout: neighbours untouched
	if got := g.At(7, 5); got != GlyphEmpty {
		t.Errorf("Expected transposed cell empty, got %v", got)
	}

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {10, 0}, {0, 10}} {
		if g.Set(p[0], p[1], GlyphTurn) {
			t.Errorf("Expected Set to fail at %v", p)
		}
		if got := g.At(p[0], p[1]); got != GlyphEmpty {
			t.Errorf("Expected Empty out of bounds at %v, got %v", p, got)
		}
	}
}

func TestGridSetOverrides(t *testing.T) {
	g := NewGrid(3, 3)

	g.Set(1, 1, GlyphTurn)
	g.Set(1, 1, GlyphHorizontal)
	if got := g.At(1, 1); got != GlyphHorizontal {
		t.Errorf("Expected later write to win, got %v", got)
	}
}

func TestGridReset(t *testing.T) {
	g := NewGrid(4, 4)
	g.Set(0, 0, GlyphHorizontal)
	g.Set(3, 3, GlyphTurn)

	g.Reset()

	if n := g.Count(GlyphEmpty); n != 16 {
		t.Errorf("Expected all 16 cells empty after reset, got %d", n)
	}
	if g.Width() != 4 || g.Height() != 4 {
		t.Errorf("Reset must not change dimensions, got %dx%d", g.Width(), g.Height())
	}
}

func TestGridEachVisitsNonEmptyRowMajor(t *testing.T) {
	g := NewGrid(3, 2)
	g.Set(2, 1, GlyphVertical)
	g.Set(1, 0, GlyphHorizontal)

	type visit struct {
		x, y  int
		glyph Glyph
	}
	var got []visit
	g.Each(func(x, y int, glyph Glyph) {
		got = append(got, visit{x, y, glyph})
	})

	want := []visit{{1, 0, GlyphHorizontal}, {2, 1, GlyphVertical}}
	if len(got) != len(want) {
		t.Fatalf("Expected %d visits, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Visit %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}
