package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/halfpix/internal/registry"
	"github.com/vovakirdan/halfpix/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats <scene>",
	Short: "Show recorded sessions for a scene",
	Long: `Display the ten longest sessions for the specified scene.

Examples:
  halfpix stats bounce
  halfpix stats orbit`,
	Args: cobra.ExactArgs(1),
	Run:  runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	sceneID := args[0]

	if !registry.Exists(sceneID) {
		fmt.Fprintf(os.Stderr, "Error: unknown scene %q\n", sceneID)
		fmt.Fprintln(os.Stderr, "Run 'halfpix list' to see available scenes.")
		os.Exit(1)
	}

	// Get scene title
	scene, err := registry.Create(sceneID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating scene: %v\n", err)
		os.Exit(1)
	}
	title := scene.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening sessions database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	sessions, err := store.SceneSessions(sceneID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Sessions - %s\n", title)
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'halfpix play %s' to record the first one!\n", sceneID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %-10s  %s\n", "Rank", "Frames", "Duration", "Date")
	fmt.Printf("  %-4s  %-10s  %-10s  %s\n", "----", "------", "--------", "----")

	for i, entry := range sessions {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-10s  %s\n", i+1, entry.Frames,
			fmt.Sprintf("%ds", entry.DurationSecs), dateStr)
	}

	fmt.Println()
	longest, err := store.LongestSession(sceneID)
	if err == nil {
		fmt.Printf("Longest: %d frames\n", longest)
	}
}
