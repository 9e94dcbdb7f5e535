package entity

import (
	"github.com/vovakirdan/halfpix/internal/canvas"
	"github.com/vovakirdan/halfpix/internal/color"
	"github.com/vovakirdan/halfpix/internal/core"
)

// Point is a free-flying sub-pixel dot. It moves with constant
// velocity and reflects off the canvas borders; the fractional
// position is what makes the anti-aliased rendering visible.
type Point struct {
	X, Y   float64 // sub-pixel coordinates
	VX, VY float64 // sub-pixels per tick
	Color  color.Color
}

// Update advances the point one tick, bouncing off the sub-pixel
// bounds [0, ScreenW) x [0, 2*ScreenH).
func (p *Point) Update(_ core.InputFrame, cfg core.RuntimeConfig) {
	p.X += p.VX
	p.Y += p.VY

	maxX := float64(cfg.ScreenW - 1)
	maxY := float64(2*cfg.ScreenH - 1)

	if p.X < 0 {
		p.X, p.VX = -p.X, -p.VX
	} else if p.X > maxX {
		p.X, p.VX = 2*maxX-p.X, -p.VX
	}
	if p.Y < 0 {
		p.Y, p.VY = -p.Y, -p.VY
	} else if p.Y > maxY {
		p.Y, p.VY = 2*maxY-p.Y, -p.VY
	}

	p.X = core.ClampF(p.X, 0, maxX)
	p.Y = core.ClampF(p.Y, 0, maxY)
}

// Draw plots the point with fractional coverage.
func (p *Point) Draw(dst *canvas.Canvas) {
	dst.SetF(p.X, p.Y, p.Color)
}
