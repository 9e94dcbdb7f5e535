// Package canvas implements a sub-pixel drawing surface for terminal
// scenes. Each glyph cell covers two vertically stacked sub-pixels
// rendered through the lower-half-block glyph, doubling the vertical
// resolution of the terminal. Points and ellipses are anti-aliased by
// splitting fractional coverage across neighboring sub-pixels with
// palette-quantized color arithmetic.
package canvas

import (
	"fmt"
	"math"

	"github.com/vovakirdan/halfpix/internal/color"
	"github.com/vovakirdan/halfpix/internal/core"
)

// HalfBlock is the lower-half-block glyph. Its native foreground paints
// the bottom sub-pixel and its background paints the top one.
const HalfBlock = '▄'

// Surface receives composed glyph cells. *core.Screen satisfies it;
// tests substitute a recording fake.
type Surface interface {
	SetCell(x, y int, ch rune, fg, bg color.Color)
}

// textEntry is a queued text overlay request, drawn at glyph
// resolution during Present and consumed exactly once.
type textEntry struct {
	x, y   int
	text   string
	fg, bg color.Color
}

// Canvas owns a grid of colors at width x (2 * height) sub-pixels plus
// a transient text overlay queue. All coordinate-based operations clip
// silently; the canvas never returns an error.
type Canvas struct {
	width      int // glyph columns
	height     int // glyph rows; the grid holds 2*height sub-pixel rows
	cells      []color.Color
	background color.Color
	overlay    []textEntry
}

// New creates a canvas with the given glyph dimensions, filled with
// the background color. Non-positive dimensions are clamped to 1.
func New(width, height int, background color.Color) *Canvas {
	c := &Canvas{background: background}
	c.Resize(width, height)
	return c
}

// Width returns the canvas width in sub-pixel columns (equal to glyph
// columns).
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in glyph rows.
func (c *Canvas) Height() int {
	return c.height
}

// SubHeight returns the grid height in sub-pixel rows.
func (c *Canvas) SubHeight() int {
	return 2 * c.height
}

// Background returns the configured background color.
func (c *Canvas) Background() color.Color {
	return c.background
}

// SetBackground changes the background color, repainting every
// sub-pixel that still holds the old background. Cells already drawn
// over are left alone, so scenes can switch the background at the top
// of Render without losing content.
func (c *Canvas) SetBackground(bg color.Color) {
	if bg == c.background {
		return
	}
	old := c.background
	c.background = bg
	for i, cell := range c.cells {
		if cell == old {
			c.cells[i] = bg
		}
	}
}

// Resize reallocates the grid for the given glyph dimensions and fills
// it with the background color. Resizing to the current size is a
// no-op; previous contents are never carried across a real resize.
// Non-positive dimensions are clamped to 1.
func (c *Canvas) Resize(width, height int) {
	width, height = core.Max(width, 1), core.Max(height, 1)
	if width == c.width && height == c.height && c.cells != nil {
		return
	}
	c.width = width
	c.height = height
	c.cells = make([]color.Color, width*2*height)
	c.Clear()
}

// Clear fills every sub-pixel with the background color. Called once
// per frame before any draw call.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = c.background
	}
}

// Set overwrites the sub-pixel at integer coordinates (x, y) with col.
// Last write wins; there is no blending. Out-of-range coordinates are
// silently ignored.
func (c *Canvas) Set(x, y int, col color.Color) {
	if x < 0 || x >= c.width || y < 0 || y >= 2*c.height {
		return
	}
	c.cells[y*c.width+x] = col
}

// Get returns the sub-pixel at (x, y), or the background color for
// out-of-range coordinates.
func (c *Canvas) Get(x, y int) color.Color {
	if x < 0 || x >= c.width || y < 0 || y >= 2*c.height {
		return c.background
	}
	return c.cells[y*c.width+x]
}

// SetF plots a point at fractional sub-pixel coordinates, distributing
// col across the four surrounding cells with bilinear area weights.
// Each weighted color that collapses to black degrades to the
// background instead, so near-zero coverage does not leave dim black
// artifacts. The four writes are unconditional: a later point can
// overwrite earlier partial coverage.
func (c *Canvas) SetF(x, y float64, col color.Color) {
	x0, y0 := math.Floor(x), math.Floor(y)
	xf, yf := x-x0, y-y0
	xi, yi := int(x0), int(y0)

	c.Set(xi, yi, col.Scale((1-xf)*(1-yf)).BlackToDefault(c.background))
	c.Set(xi+1, yi, col.Scale(xf*(1-yf)).BlackToDefault(c.background))
	c.Set(xi, yi+1, col.Scale((1-xf)*yf).BlackToDefault(c.background))
	c.Set(xi+1, yi+1, col.Scale(xf*yf).BlackToDefault(c.background))
}

// FillEllipse draws a coverage-weighted ellipse centered at (cx, cy)
// with radii (rx, ry) in sub-pixel coordinates. Every cell whose
// bounding box intersects the ellipse is tested on its four corners;
// a cell with n corners inside receives col scaled by n/4. Cells are
// overwritten, not blended with existing content.
func (c *Canvas) FillEllipse(cx, cy, rx, ry float64, col color.Color) {
	x0 := int(math.Floor(cx - rx))
	x1 := int(math.Ceil(cx + rx))
	y0 := int(math.Floor(cy - ry))
	y1 := int(math.Ceil(cy + ry))

	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			inside := 0
			for _, corner := range [4][2]float64{
				{float64(px), float64(py)},
				{float64(px + 1), float64(py)},
				{float64(px), float64(py + 1)},
				{float64(px + 1), float64(py + 1)},
			} {
				if core.InEllipse(corner[0], corner[1], cx, cy, rx, ry) {
					inside++
				}
			}
			if inside > 0 {
				c.Set(px, py, col.Scale(float64(inside)/4))
			}
		}
	}
}

// DrawText queues a text overlay at glyph coordinates (x, y). The
// overlay bypasses the sub-pixel grid entirely and is flushed on the
// next Present.
func (c *Canvas) DrawText(x, y int, text string, fg, bg color.Color) {
	c.overlay = append(c.overlay, textEntry{x: x, y: y, text: text, fg: fg, bg: bg})
}

// Present composes the sub-pixel grid into glyph cells on dst, then
// flushes the text overlay queue and draws the grid-size indicator in
// the top-right corner.
//
// For each glyph cell the bottom sub-pixel drives the composition: the
// half-block's native foreground is its bottom half, so when the
// bottom is empty the top color must move to the foreground slot in
// reverse video to show up at all.
func (c *Canvas) Present(dst Surface) {
	for gy := 0; gy < c.height; gy++ {
		for gx := 0; gx < c.width; gx++ {
			top := c.cells[(2*gy)*c.width+gx]
			bottom := c.cells[(2*gy+1)*c.width+gx]

			switch {
			case bottom == c.background && bottom == top:
				dst.SetCell(gx, gy, ' ', bottom, top)
			case bottom == c.background:
				dst.SetCell(gx, gy, HalfBlock, top.Reversed(), bottom)
			default:
				dst.SetCell(gx, gy, HalfBlock, bottom, top)
			}
		}
	}

	for _, e := range c.overlay {
		col := e.x
		for _, r := range e.text {
			dst.SetCell(col, e.y, r, e.fg, e.bg)
			col++
		}
	}
	c.overlay = c.overlay[:0]

	label := fmt.Sprintf("%dx%d", c.width, 2*c.height)
	start := c.width - len(label)
	for i, r := range label {
		dst.SetCell(start+i, 0, r, color.GrayLight, c.background)
	}
}
