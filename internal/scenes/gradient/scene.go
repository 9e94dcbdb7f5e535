// Package gradient is a color-arithmetic playground: the canvas is
// covered with a cube gradient built channel-wise from the cell
// position, a grayscale ramp strip runs along the bottom, and a sweep
// line highlights one sub-pixel row at a time. ]/[ raise and lower a
// brightness bias applied through grayscale ramp arithmetic.
package gradient

import (
	"github.com/vovakirdan/halfpix/internal/canvas"
	"github.com/vovakirdan/halfpix/internal/color"
	"github.com/vovakirdan/halfpix/internal/config"
	"github.com/vovakirdan/halfpix/internal/core"
	"github.com/vovakirdan/halfpix/internal/registry"
)

var configPath string

// SetConfigPath sets the custom config file path for this scene.
func SetConfigPath(path string) {
	configPath = path
}

// Scene implements the gradient demo.
type Scene struct {
	cfg     config.GradientConfig
	runtime core.RuntimeConfig

	scanY      float64 // sweep line position in sub-pixel rows
	bias       int     // grayscale ramp steps added to the gray strip
	background color.Color

	frames uint64
	paused bool
}

// New creates a new gradient scene.
func New() *Scene {
	return &Scene{}
}

func init() {
	registry.Register("gradient", func() registry.Scene {
		return New()
	})
}

// ID returns the scene identifier.
func (s *Scene) ID() string {
	return "gradient"
}

// Title returns the display name.
func (s *Scene) Title() string {
	return "Gradient"
}

// Reset initializes/restarts the scene.
func (s *Scene) Reset(cfg core.RuntimeConfig) {
	s.runtime = cfg
	s.frames = 0
	s.paused = false
	s.scanY = 0
	s.bias = 0

	sceneCfg, err := config.LoadGradient(configPath)
	if err != nil {
		sceneCfg = config.DefaultGradientConfig()
	}
	s.cfg = sceneCfg
	s.background = color.ByName(sceneCfg.Background)
}

// Step advances the simulation by one fixed tick.
func (s *Scene) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		s.paused = !s.paused
	}
	if s.paused {
		return core.StepResult{State: s.state()}
	}

	if in.Has(core.ActionBrighten) {
		s.bias++
	}
	if in.Has(core.ActionDim) {
		s.bias--
	}
	s.bias = core.Clamp(s.bias, -23, 23)

	s.scanY += s.cfg.ScanSpeed
	if s.scanY >= float64(2*s.runtime.ScreenH) {
		s.scanY = 0
	}
	s.frames++

	return core.StepResult{State: s.state()}
}

// Render paints the gradient field, the ramp strip, and the sweep line.
func (s *Scene) Render(dst *canvas.Canvas) {
	dst.SetBackground(s.background)
	w := dst.Width()
	h := dst.SubHeight()
	stripTop := h - 2 // bottom two sub-pixel rows hold the gray ramp

	// Cube gradient: red rises with x, green with y, with a blue floor
	// mixed in through channel-wise addition.
	blueFloor := color.FromChannels(0, 0, 1)
	for y := 0; y < stripTop; y++ {
		for x := 0; x < w; x++ {
			base := color.FromChannels(
				x*6/core.Max(w, 1),
				y*6/core.Max(stripTop, 1),
				0,
			)
			dst.Set(x, y, base.Add(blueFloor).Color())
		}
	}

	// Grayscale ramp strip, shifted by the bias through saturating
	// ramp arithmetic.
	for x := 0; x < w; x++ {
		level := x * 24 / core.Max(w, 1)
		g := color.FromGray(level).Add(s.bias)
		dst.Set(x, stripTop, g)
		dst.Set(x, stripTop+1, g)
	}

	// Sweep line: the current row at half intensity over the field.
	scan := int(s.scanY)
	for x := 0; x < w; x++ {
		dst.Set(x, scan, dst.Get(x, scan).Scale(0.5))
	}

	dst.DrawText(0, 0, "]/[: bias gray ramp  p: pause  q: quit",
		color.GrayLight, color.Default)
	if s.paused {
		dst.DrawText(0, 1, "paused", color.CubeYellow, color.Default)
	}
}

// State returns the current scene state.
func (s *Scene) State() core.SceneState {
	return s.state()
}

func (s *Scene) state() core.SceneState {
	return core.SceneState{Frames: s.frames, Paused: s.paused}
}
