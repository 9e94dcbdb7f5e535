package entity

import (
	"github.com/vovakirdan/halfpix/internal/canvas"
	"github.com/vovakirdan/halfpix/internal/color"
	"github.com/vovakirdan/halfpix/internal/core"
)

// Ball velocity/shape tuning.
const (
	ballNudge     = 0.4 // velocity change per key press
	ballResize    = 0.5 // radius change per key press
	ballMinRadius = 1.0
	ballMaxRadius = 24.0
	brightenStep  = 1.25 // intensity factor per Brighten press
	dimStep       = 0.8  // intensity factor per Dim press
)

// Ball is a coverage-rendered ellipse that reacts to input: arrow keys
// nudge its velocity, grow/shrink change its radii, and brighten/dim
// step its color intensity through cube arithmetic.
type Ball struct {
	X, Y   float64 // center, sub-pixel coordinates
	VX, VY float64
	RX, RY float64
	Color  color.Color

	// base is the full-intensity color; intensity scales it so that
	// repeated dimming can be undone without accumulating truncation.
	base      color.Color
	intensity float64
}

// NewBall creates a ball at full intensity.
func NewBall(x, y, rx, ry float64, c color.Color) *Ball {
	return &Ball{X: x, Y: y, RX: rx, RY: ry, Color: c, base: c, intensity: 1}
}

// Update applies input, advances the ball one tick, and bounces it off
// the sub-pixel bounds so the ellipse stays fully on the canvas.
func (b *Ball) Update(in core.InputFrame, cfg core.RuntimeConfig) {
	if in.Has(core.ActionUp) {
		b.VY -= ballNudge
	}
	if in.Has(core.ActionDown) {
		b.VY += ballNudge
	}
	if in.Has(core.ActionLeft) {
		b.VX -= ballNudge
	}
	if in.Has(core.ActionRight) {
		b.VX += ballNudge
	}
	if in.Has(core.ActionGrow) {
		b.RX = core.ClampF(b.RX+ballResize, ballMinRadius, ballMaxRadius)
		b.RY = core.ClampF(b.RY+ballResize/2, ballMinRadius, ballMaxRadius)
	}
	if in.Has(core.ActionShrink) {
		b.RX = core.ClampF(b.RX-ballResize, ballMinRadius, ballMaxRadius)
		b.RY = core.ClampF(b.RY-ballResize/2, ballMinRadius, ballMaxRadius)
	}
	if in.Has(core.ActionBrighten) {
		b.intensity = core.ClampF(b.intensity*brightenStep, 0.05, 1)
		b.Color = b.base.Scale(b.intensity)
	}
	if in.Has(core.ActionDim) {
		b.intensity = core.ClampF(b.intensity*dimStep, 0.05, 1)
		b.Color = b.base.Scale(b.intensity)
	}

	b.X += b.VX
	b.Y += b.VY

	maxX := float64(cfg.ScreenW) - 1 - b.RX
	maxY := float64(2*cfg.ScreenH) - 1 - b.RY

	if b.X < b.RX {
		b.X, b.VX = b.RX, -b.VX
	} else if b.X > maxX {
		b.X, b.VX = maxX, -b.VX
	}
	if b.Y < b.RY {
		b.Y, b.VY = b.RY, -b.VY
	} else if b.Y > maxY {
		b.Y, b.VY = maxY, -b.VY
	}
}

// Draw fills the ellipse with corner-coverage anti-aliasing.
func (b *Ball) Draw(dst *canvas.Canvas) {
	dst.FillEllipse(b.X, b.Y, b.RX, b.RY, b.Color)
}
