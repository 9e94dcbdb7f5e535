package core

import (
	"strings"

	"github.com/vovakirdan/halfpix/internal/color"
)

// Cell is one glyph position: a rune plus its color attribute pair.
type Cell struct {
	Rune rune
	Fg   color.Color
	Bg   color.Color
}

// blank is what cleared cells hold.
var blank = Cell{Rune: ' ', Fg: color.Default, Bg: color.Default}

// Screen is the off-screen terminal buffer at glyph resolution. The
// canvas composes its sub-pixel grid into a Screen, and the platform
// layer turns the Screen into styled terminal output once per frame.
type Screen struct {
	width  int
	height int
	cells  []Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
// Non-positive dimensions are clamped to 1.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  Max(width, 1),
		height: Max(height, 1),
	}
	s.cells = make([]Cell, s.width*s.height)
	s.Clear()
	return s
}

// Width returns the screen width in glyph cells.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in glyph cells.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions. Previous contents are
// discarded; a resize always precedes a fresh frame.
func (s *Screen) Resize(width, height int) {
	width, height = Max(width, 1), Max(height, 1)
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.cells = make([]Cell, width*height)
	s.Clear()
}

// Clear fills the entire screen with blank default-colored cells.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blank
	}
}

// SetCell writes one glyph cell. Out-of-bounds coordinates are
// silently ignored.
func (s *Screen) SetCell(x, y int, ch rune, fg, bg color.Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y*s.width+x] = Cell{Rune: ch, Fg: fg, Bg: bg}
}

// Cell returns the cell at the given position, or a blank cell for
// out-of-bounds coordinates.
func (s *Screen) Cell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blank
	}
	return s.cells[y*s.width+x]
}

// String converts the screen's runes to plain text, one line per row.
// Colors are dropped; used for screenshots.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y*s.width+x].Rune)
		}
	}
	return sb.String()
}
