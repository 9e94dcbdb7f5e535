// Package orbit is a demo scene of sub-pixel dots circling the canvas
// center on an elliptical track, with intensity faded by orbital depth
// to fake a third dimension. Left/right change the angular speed, +/-
// reshape the orbit.
package orbit

import (
	"math"

	"github.com/vovakirdan/halfpix/internal/canvas"
	"github.com/vovakirdan/halfpix/internal/color"
	"github.com/vovakirdan/halfpix/internal/config"
	"github.com/vovakirdan/halfpix/internal/core"
	"github.com/vovakirdan/halfpix/internal/registry"
)

const (
	speedStep  = 0.005 // angular speed change per key press
	radiusStep = 0.02  // orbit shape change per key press, canvas fraction
	minFade    = 0.25  // intensity at the far side of the orbit
)

var configPath string

// SetConfigPath sets the custom config file path for this scene.
func SetConfigPath(path string) {
	configPath = path
}

// Scene implements the orbit demo.
type Scene struct {
	cfg     config.OrbitConfig
	runtime core.RuntimeConfig

	phase      float64
	speed      float64
	rx, ry     float64 // canvas fractions
	dot        color.Color
	background color.Color

	frames uint64
	paused bool
}

// New creates a new orbit scene.
func New() *Scene {
	return &Scene{}
}

func init() {
	registry.Register("orbit", func() registry.Scene {
		return New()
	})
}

// ID returns the scene identifier.
func (s *Scene) ID() string {
	return "orbit"
}

// Title returns the display name.
func (s *Scene) Title() string {
	return "Orbit"
}

// Reset initializes/restarts the scene.
func (s *Scene) Reset(cfg core.RuntimeConfig) {
	s.runtime = cfg
	s.frames = 0
	s.paused = false
	s.phase = 0

	sceneCfg, err := config.LoadOrbit(configPath)
	if err != nil {
		sceneCfg = config.DefaultOrbitConfig()
	}
	s.cfg = sceneCfg
	s.speed = sceneCfg.Speed
	s.rx = sceneCfg.RadiusX
	s.ry = sceneCfg.RadiusY
	s.dot = color.ByName(sceneCfg.Color)
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

	if in.Has(core.ActionLeft) {
		s.speed -= speedStep
	}
	if in.Has(core.ActionRight) {
		s.speed += speedStep
	}
	if in.Has(core.ActionGrow) {
		s.rx = core.ClampF(s.rx+radiusStep, 0.05, 0.49)
		s.ry = core.ClampF(s.ry+radiusStep, 0.05, 0.49)
	}
	if in.Has(core.ActionShrink) {
		s.rx = core.ClampF(s.rx-radiusStep, 0.05, 0.49)
		s.ry = core.ClampF(s.ry-radiusStep, 0.05, 0.49)
	}

	s.phase += s.speed
	s.frames++

	return core.StepResult{State: s.state()}
}

// Render draws the orbiting dots with fractional coverage. The depth
// fade scales the dot color by where the dot sits on the near/far axis
// of the orbit.
func (s *Scene) Render(dst *canvas.Canvas) {
	dst.SetBackground(s.background)
	w := float64(dst.Width())
	h := float64(dst.SubHeight())
	cx, cy := w/2, h/2

	for i := 0; i < s.cfg.Points; i++ {
		angle := s.phase + 2*math.Pi*float64(i)/float64(s.cfg.Points)
		x := cx + math.Cos(angle)*s.rx*w
		y := cy + math.Sin(angle)*s.ry*h

		dot := s.dot
		if s.cfg.DepthFade {
			// sin in [-1,1] maps to intensity [minFade, 1].
			fade := minFade + (1-minFade)*(math.Sin(angle)+1)/2
			dot = dot.Scale(fade)
		}
		dst.SetF(x, y, dot)
	}

	if s.paused {
		dst.DrawText(0, 0, "paused", color.CubeYellow, color.Default)
	}
}

// State returns the current scene state.
func (s *Scene) State() core.SceneState {
	return s.state()
}

func (s *Scene) state() core.SceneState {
	return core.SceneState{Frames: s.frames, Paused: s.paused}
}
