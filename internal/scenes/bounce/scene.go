// Package bounce is a demo scene of anti-aliased ellipses bouncing
// around the sub-pixel canvas. Arrow keys nudge every ball, +/- resize
// them, and ]/[ step their color intensity.
package bounce

import (
	"math/rand"

	"github.com/vovakirdan/halfpix/internal/canvas"
	"github.com/vovakirdan/halfpix/internal/color"
	"github.com/vovakirdan/halfpix/internal/config"
	"github.com/vovakirdan/halfpix/internal/core"
	"github.com/vovakirdan/halfpix/internal/entity"
	"github.com/vovakirdan/halfpix/internal/registry"
)

// configPath is set by the CLI before the scene is created.
var configPath string

// SetConfigPath sets the custom config file path for this scene.
func SetConfigPath(path string) {
	configPath = path
}

// Scene implements the bounce demo.
type Scene struct {
	cfg        config.BounceConfig
	runtime    core.RuntimeConfig
	rng        *rand.Rand
	background color.Color

	balls    []*entity.Ball
	entities []entity.Entity

	frames uint64
	paused bool
}

// New creates a new bounce scene.
func New() *Scene {
	return &Scene{}
}

func init() {
	registry.Register("bounce", func() registry.Scene {
		return New()
	})
}

// ID returns the scene identifier.
func (s *Scene) ID() string {
	return "bounce"
}

// Title returns the display name.
func (s *Scene) Title() string {
	return "Bounce"
}

// Reset initializes/restarts the scene.
func (s *Scene) Reset(cfg core.RuntimeConfig) {
	s.runtime = cfg
	s.rng = rand.New(rand.NewSource(cfg.Seed))
	s.frames = 0
	s.paused = false

	sceneCfg, err := config.LoadBounce(configPath)
	if err != nil {
		sceneCfg = config.DefaultBounceConfig()
	}
	s.cfg = sceneCfg
	s.background = color.ByName(sceneCfg.Background)

	w := float64(cfg.ScreenW)
	h := float64(2 * cfg.ScreenH)

	s.balls = s.balls[:0]
	s.entities = s.entities[:0]
	for _, bc := range s.cfg.Balls {
		b := entity.NewBall(
			bc.RadiusX+s.rng.Float64()*(w-2*bc.RadiusX),
			bc.RadiusY+s.rng.Float64()*(h-2*bc.RadiusY),
			bc.RadiusX, bc.RadiusY,
			color.ByName(bc.Color),
		)
		b.VX, b.VY = bc.SpeedX, bc.SpeedY
		s.balls = append(s.balls, b)
		s.entities = append(s.entities, b)
	}

	if s.cfg.ShowHelp {
		s.entities = append(s.entities, &entity.Label{
			X: 0, Y: cfg.ScreenH - 1,
			Text: "arrows: nudge  +/-: resize  ]/[: intensity  p: pause  q: quit",
			Fg:   color.GrayLight, Bg: color.Default,
		})
	}
}

// Step advances the simulation by one fixed tick.
func (s *Scene) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		s.paused = !s.paused
	}
	if s.paused {
		return core.StepResult{State: s.state()}
	}

	for _, e := range s.entities {
		e.Update(in, s.runtime)
	}
	s.frames++

	return core.StepResult{State: s.state()}
}

// Render draws the scene onto the canvas.
func (s *Scene) Render(dst *canvas.Canvas) {
	dst.SetBackground(s.background)
	for _, e := range s.entities {
		e.Draw(dst)
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
