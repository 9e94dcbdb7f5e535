package bounce

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/halfpix/internal/canvas"
	"github.com/vovakirdan/halfpix/internal/color"
	"github.com/vovakirdan/halfpix/internal/core"
)

func testConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.ScreenW = 40
	cfg.ScreenH = 12
	cfg.Seed = 42
	return cfg
}

func TestResetPlacesBalls(t *testing.T) {
	s := New()
	s.Reset(testConfig())

	if len(s.balls) == 0 {
		t.Fatal("expected balls after reset")
	}
	w := float64(testConfig().ScreenW)
	h := float64(2 * testConfig().ScreenH)
	for i, b := range s.balls {
		if b.X < 0 || b.X >= w || b.Y < 0 || b.Y >= h {
			t.Errorf("ball %d placed outside canvas: (%f, %f)", i, b.X, b.Y)
		}
	}
}

func TestStepAdvancesFrames(t *testing.T) {
	s := New()
	s.Reset(testConfig())

	in := core.NewInputFrame()
	for i := 0; i < 10; i++ {
		s.Step(in)
	}
	if got := s.State().Frames; got != 10 {
		t.Errorf("expected 10 frames, got %d", got)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	s := New()
	s.Reset(testConfig())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)

	res := s.Step(pause)
	if !res.State.Paused {
		t.Fatal("expected paused state after pause action")
	}

	framesBefore := s.State().Frames
	for i := 0; i < 5; i++ {
		s.Step(core.NewInputFrame())
	}
	if got := s.State().Frames; got != framesBefore {
		t.Errorf("frames advanced while paused: %d -> %d", framesBefore, got)
	}

	// The unpause step itself runs the simulation, so two steps land.
	s.Step(pause)
	s.Step(core.NewInputFrame())
	if got := s.State().Frames; got != framesBefore+2 {
		t.Errorf("expected simulation to resume after unpause, frames=%d", got)
	}
}

func TestSameSeedIsDeterministic(t *testing.T) {
	render := func() []color.Color {
		s := New()
		s.Reset(testConfig())
		in := core.NewInputFrame()
		for i := 0; i < 30; i++ {
			s.Step(in)
		}
		cv := canvas.New(testConfig().ScreenW, testConfig().ScreenH, color.Default)
		s.Render(cv)
		cells := make([]color.Color, 0, cv.Width()*cv.SubHeight())
		for y := 0; y < cv.SubHeight(); y++ {
			for x := 0; x < cv.Width(); x++ {
				cells = append(cells, cv.Get(x, y))
			}
		}
		return cells
	}

	a := render()
	b := render()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("renders diverged at cell %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestRenderPaintsSomething(t *testing.T) {
	s := New()
	s.Reset(testConfig())

	cv := canvas.New(testConfig().ScreenW, testConfig().ScreenH, color.Default)
	s.Render(cv)

	painted := 0
	for y := 0; y < cv.SubHeight(); y++ {
		for x := 0; x < cv.Width(); x++ {
			if cv.Get(x, y) != color.Default {
				painted++
			}
		}
	}
	if painted == 0 {
		t.Error("expected rendered balls to touch the grid")
	}
}

func TestConfiguredBackgroundAppliesToCanvas(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bounce.yaml")
	cfgYAML := `balls:
  - color: "red"
    radius_x: 2
    radius_y: 1.5
    speed_x: 0.5
    speed_y: 0.5
background: "gray"
`
	if err := os.WriteFile(path, []byte(cfgYAML), 0o600); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	s := New()
	s.Reset(testConfig())

	cv := canvas.New(testConfig().ScreenW, testConfig().ScreenH, color.Default)
	s.Render(cv)

	if cv.Background() != color.GrayMid {
		t.Errorf("canvas background = %v, expected gray from config", cv.Background())
	}
}
