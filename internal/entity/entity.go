// Package entity provides the drawable building blocks scenes are
// composed from. An entity is anything that can advance one tick and
// draw itself onto the sub-pixel canvas; concrete entities are a small
// closed set (point, ball, label) and scenes hold them as ordered
// slices, drawing in insertion order.
package entity

import (
	"github.com/vovakirdan/halfpix/internal/canvas"
	"github.com/vovakirdan/halfpix/internal/core"
)

// Entity is the capability contract consumed by scenes. Update receives
// the frame's input state explicitly; there is no global key state.
type Entity interface {
	Update(in core.InputFrame, cfg core.RuntimeConfig)
	Draw(dst *canvas.Canvas)
}
