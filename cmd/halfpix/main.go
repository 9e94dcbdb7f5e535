// halfpix renders animated scenes in the terminal at doubled vertical
// resolution using half-block glyphs.
//
// Usage:
//
//	halfpix list              - List available scenes
//	halfpix play <scene>      - Run a scene
//	halfpix menu              - Start menu to pick scenes interactively
//	halfpix serve             - Start SSH server for remote viewing
//	halfpix stats <scene>     - Show recorded sessions for a scene
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible scenes
//	--db <path>     - Set database path (default: ~/.halfpix/sessions.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import scenes to register them
	_ "github.com/vovakirdan/halfpix/internal/scenes/bounce"
	_ "github.com/vovakirdan/halfpix/internal/scenes/gradient"
	_ "github.com/vovakirdan/halfpix/internal/scenes/orbit"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "halfpix",
	Short: "Half-block scene renderer for your terminal",
	Long: `halfpix draws animated scenes in the terminal at twice the vertical
resolution of the character grid, packing two sub-pixels into every
cell with the lower half block glyph.

Available commands:
  list     - Show all available scenes
  play     - Run a specific scene directly
  menu     - Interactive scene picker menu
  serve    - Start SSH server for remote viewing
  stats    - View recorded sessions

Examples:
  halfpix list
  halfpix play bounce
  halfpix menu
  halfpix serve --ssh :2222
  halfpix stats bounce`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.halfpix/sessions.db", "Path to sessions database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
}
