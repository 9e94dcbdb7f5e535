package core

// RuntimeConfig contains configuration passed to scenes at initialization.
// Scenes use this to adapt to screen size and for deterministic animation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in glyph cells
	ScreenH  int   // Screen height in glyph cells
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic scenes
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// SceneState represents the current state of a running scene.
// Returned by Scene.State() to communicate status to the platform.
type SceneState struct {
	Frames uint64 // Frames stepped since the last Reset
	Paused bool   // Whether the scene is paused
	Done   bool   // Whether the scene has finished its run
}

// StepResult is returned by Scene.Step() after each simulation tick.
type StepResult struct {
	State SceneState
}
