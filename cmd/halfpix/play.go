package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/halfpix/internal/core"
	"github.com/vovakirdan/halfpix/internal/platform/tui"
	"github.com/vovakirdan/halfpix/internal/registry"
	"github.com/vovakirdan/halfpix/internal/scenes/bounce"
	"github.com/vovakirdan/halfpix/internal/scenes/gradient"
	"github.com/vovakirdan/halfpix/internal/scenes/orbit"
	"github.com/vovakirdan/halfpix/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play <scene>",
	Short: "Run a scene",
	Long: `Start the specified scene.

Controls:
  WASD/Arrows - Nudge
  +/-         - Grow/shrink
  ]/[         - Brighten/dim
  P           - Pause
  R           - Restart
  Ctrl+S      - Save screenshot
  Q/Ctrl+C    - Quit

Examples:
  halfpix play bounce
  halfpix play orbit --fps 30
  halfpix play bounce --config ./my-bounce.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom scene config YAML")
}

// applyConfigPath routes the --config flag to the selected scene.
func applyConfigPath(sceneID string) {
	switch sceneID {
	case "bounce":
		bounce.SetConfigPath(flagConfig)
	case "orbit":
		orbit.SetConfigPath(flagConfig)
	case "gradient":
		gradient.SetConfigPath(flagConfig)
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	sceneID := args[0]

	if !registry.Exists(sceneID) {
		fmt.Fprintf(os.Stderr, "Error: unknown scene %q\n", sceneID)
		fmt.Fprintln(os.Stderr, "Run 'halfpix list' to see available scenes.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	applyConfigPath(sceneID)

	scene, err := registry.Create(sceneID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating scene: %v\n", err)
		os.Exit(1)
	}

	// Open session storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open sessions database: %v\n", err)
		// Continue without storage - scene still works
		store = nil
	}

	runErr := tui.Run(scene, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running scene: %v\n", runErr)
		os.Exit(1)
	}
}
