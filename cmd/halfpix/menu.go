package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/halfpix/internal/core"
	"github.com/vovakirdan/halfpix/internal/platform/tui"
	"github.com/vovakirdan/halfpix/internal/registry"
	"github.com/vovakirdan/halfpix/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a scene picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a scene.
After quitting a scene, you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select scene
  Tab          - Session stats
  Q            - Quit

Examples:
  halfpix menu
  halfpix menu --fps 30
  halfpix menu --db ./sessions.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	// Open session storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open sessions database: %v\n", err)
		store = nil
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsStats {
			goBack, statsErr := tui.RunStats(store, cfg.ScreenW, cfg.ScreenH)
			if statsErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", statsErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from stats
		}

		sceneID := menuResult.SceneID
		if sceneID == "" {
			break
		}

		applyConfigPath(sceneID)

		scene, err := registry.Create(sceneID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating scene: %v\n", err)
			continue
		}

		// Fresh seed for each run
		cfg.Seed = time.Now().UnixNano()

		if err := tui.Run(scene, store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scene: %v\n", err)
		}

		// Loop back to menu
	}

	if store != nil {
		store.Close()
	}
}
