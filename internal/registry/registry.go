// Package registry provides a global registry for scene factories.
// Scenes register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/halfpix/internal/canvas"
	"github.com/vovakirdan/halfpix/internal/core"
)

// Scene is the core interface every demo scene must implement. Scenes
// contain pure logic with no external dependencies (especially no
// Bubble Tea). The platform handles input mapping, timing, and turning
// the canvas into terminal output.
type Scene interface {
	// ID returns a unique identifier for this scene (e.g., "bounce").
	// Used for CLI commands and session storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the scene state. Called once at
	// start, on restart, and after a resize. The RuntimeConfig
	// provides glyph dimensions and the RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the animation by one fixed tick. Input is
	// abstracted to platform-level actions (nudge, grow, pause, ...).
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state onto the provided canvas.
	// The canvas is pre-cleared before this call.
	Render(dst *canvas.Canvas)

	// State returns the current scene state (frames, paused, done).
	State() core.SceneState
}

// SceneInfo contains metadata about a registered scene.
type SceneInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a scene.
type Factory func() Scene

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a scene factory to the registry.
// Typically called from a scene's init() function.
// Panics if a scene with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: scene %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	s := f()
	titles[id] = s.Title()
}

// List returns information about all registered scenes, sorted by ID.
func List() []SceneInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SceneInfo, 0, len(factories))
	for id := range factories {
		result = append(result, SceneInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new scene by its ID.
// Returns an error if the scene ID is not registered.
func Create(id string) (Scene, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown scene %q", id)
	}

	return f(), nil
}

// Exists checks if a scene with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
