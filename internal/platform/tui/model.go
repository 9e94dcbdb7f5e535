package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/halfpix/internal/canvas"
	"github.com/vovakirdan/halfpix/internal/color"
	"github.com/vovakirdan/halfpix/internal/core"
	"github.com/vovakirdan/halfpix/internal/registry"
	"github.com/vovakirdan/halfpix/internal/storage"
)

// Model is the Bubble Tea model for running a single scene.
type Model struct {
	scene       registry.Scene
	canvas      *canvas.Canvas
	screen      *core.Screen
	store       *storage.Store
	config      core.RuntimeConfig
	keyMapper   *KeyMapper
	inputFrame  core.InputFrame
	sceneState  core.SceneState
	startedAt   time.Time
	quitting    bool
	sessionSave bool // Whether the session has been recorded
}

// NewModel creates a new Bubble Tea model for the given scene.
func NewModel(scene registry.Scene, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		scene:      scene,
		canvas:     canvas.New(cfg.ScreenW, cfg.ScreenH, color.Default),
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		startedAt:  time.Now(),
	}
}

// Init initializes the model and starts the scene.
func (m Model) Init() tea.Cmd {
	m.scene.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.saveSession()
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events. The scene restarts with
// the new dimensions so entities stay inside the visible grid.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.canvas.Resize(msg.Width, msg.Height)
	m.screen.Resize(msg.Width, msg.Height)
	m.scene.Reset(m.config)

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) {
		m.config.Seed = time.Now().UnixNano()
		m.scene.Reset(m.config)
		m.sceneState = m.scene.State()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.scene.Step(m.inputFrame)
	m.sceneState = result.State

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveSession records the finished session once, best effort.
func (m *Model) saveSession() {
	if m.store == nil || m.sessionSave {
		return
	}
	//nolint:errcheck // Best-effort save, shutdown continues regardless
	m.store.SaveSession(m.scene.ID(), m.sceneState.Frames, time.Since(m.startedAt))
	m.sessionSave = true
}

// saveScreenshot saves the current glyph buffer to a file.
func (m *Model) saveScreenshot() {
	m.canvas.Clear()
	m.scene.Render(m.canvas)
	m.screen.Clear()
	m.canvas.Present(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".halfpix", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.scene.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, scene continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.canvas.Clear()
	m.scene.Render(m.canvas)
	m.screen.Clear()
	m.canvas.Present(m.screen)

	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(scene registry.Scene, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(scene, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}

	// Record the session even when Bubble Tea exited without the quit
	// key (e.g. external kill).
	if m, ok := final.(Model); ok {
		m.saveSession()
	}
	return nil
}
