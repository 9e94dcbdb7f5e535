package orbit

import (
	"testing"

	"github.com/vovakirdan/halfpix/internal/canvas"
	"github.com/vovakirdan/halfpix/internal/color"
	"github.com/vovakirdan/halfpix/internal/core"
)

func testConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.ScreenW = 40
	cfg.ScreenH = 12
	return cfg
}

func paintedCells(s *Scene) map[[2]int]color.Color {
	cv := canvas.New(testConfig().ScreenW, testConfig().ScreenH, color.Default)
	s.Render(cv)
	out := make(map[[2]int]color.Color)
	for y := 0; y < cv.SubHeight(); y++ {
		for x := 0; x < cv.Width(); x++ {
			if c := cv.Get(x, y); c != color.Default {
				out[[2]int{x, y}] = c
			}
		}
	}
	return out
}

func TestRenderDrawsDots(t *testing.T) {
	s := New()
	s.Reset(testConfig())

	if len(paintedCells(s)) == 0 {
		t.Fatal("expected orbiting dots on the grid")
	}
}

func TestPhaseAdvancesBetweenTicks(t *testing.T) {
	s := New()
	s.Reset(testConfig())

	before := paintedCells(s)
	in := core.NewInputFrame()
	for i := 0; i < 20; i++ {
		s.Step(in)
	}
	after := paintedCells(s)

	same := true
	for k, v := range before {
		if after[k] != v {
			same = false
			break
		}
	}
	if same && len(before) == len(after) {
		t.Error("expected dots to move after stepping")
	}
}

func TestPauseFreezesPhase(t *testing.T) {
	s := New()
	s.Reset(testConfig())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	if res := s.Step(pause); !res.State.Paused {
		t.Fatal("expected paused state")
	}

	frames := s.State().Frames
	for i := 0; i < 5; i++ {
		s.Step(core.NewInputFrame())
	}
	if got := s.State().Frames; got != frames {
		t.Errorf("frames advanced while paused: %d -> %d", frames, got)
	}
}

func TestSpeedControls(t *testing.T) {
	s := New()
	s.Reset(testConfig())
	initial := s.speed

	right := core.NewInputFrame()
	right.Set(core.ActionRight)
	s.Step(right)
	if s.speed <= initial {
		t.Errorf("expected right to raise speed, got %f (was %f)", s.speed, initial)
	}

	left := core.NewInputFrame()
	left.Set(core.ActionLeft)
	s.Step(left)
	s.Step(left)
	if s.speed >= initial {
		t.Errorf("expected left to lower speed, got %f (was %f)", s.speed, initial)
	}
}

func TestRadiiStayInBounds(t *testing.T) {
	s := New()
	s.Reset(testConfig())

	grow := core.NewInputFrame()
	grow.Set(core.ActionGrow)
	for i := 0; i < 100; i++ {
		s.Step(grow)
	}
	if s.rx > 0.49 || s.ry > 0.49 {
		t.Errorf("radii exceeded bounds: rx=%f ry=%f", s.rx, s.ry)
	}

	shrink := core.NewInputFrame()
	shrink.Set(core.ActionShrink)
	for i := 0; i < 100; i++ {
		s.Step(shrink)
	}
	if s.rx < 0.05 || s.ry < 0.05 {
		t.Errorf("radii fell below minimum: rx=%f ry=%f", s.rx, s.ry)
	}
}

func TestDepthFadeDimsFarSide(t *testing.T) {
	s := New()
	s.Reset(testConfig())
	if !s.cfg.DepthFade {
		t.Skip("depth fade disabled in config")
	}

	cells := paintedCells(s)
	full := 0
	faded := 0
	for _, c := range cells {
		if c == s.dot {
			full++
		} else {
			faded++
		}
	}
	if faded == 0 {
		t.Error("expected some dots dimmed by depth fade")
	}
}
