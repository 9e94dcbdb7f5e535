package entity

import (
	"github.com/vovakirdan/halfpix/internal/canvas"
	"github.com/vovakirdan/halfpix/internal/color"
	"github.com/vovakirdan/halfpix/internal/core"
)

// Label is static text drawn through the overlay queue at glyph
// resolution, on top of whatever the sub-pixel grid composed.
type Label struct {
	X, Y   int // glyph coordinates
	Text   string
	Fg, Bg color.Color
}

// Update is a no-op; labels do not animate.
func (l *Label) Update(core.InputFrame, core.RuntimeConfig) {}

// Draw queues the text overlay for the next Present.
func (l *Label) Draw(dst *canvas.Canvas) {
	dst.DrawText(l.X, l.Y, l.Text, l.Fg, l.Bg)
}
