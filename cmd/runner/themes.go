package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/teatime-runner/internal/runner"
	"github.com/vovakirdan/teatime-runner/internal/theme"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List sprite themes",
	Long:  `Shows every registered sprite theme with the glyph used for each sprite.`,
	Args:  cobra.NoArgs,
	Run:   runThemes,
}

func runThemes(_ *cobra.Command, _ []string) {
	themes := theme.List()

	maxIDLen := 2 // "ID" header
	for _, t := range themes {
		maxIDLen = max(maxIDLen, len(t.ID))
	}

	fmt.Println("Available themes:")
	fmt.Println()
	fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, "ID", "Sprites", "Title")
	fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, "--", "-------", "-----")

	for _, t := range themes {
		glyphs := make([]rune, 0, len(runner.Sprites()))
		for _, s := range runner.Sprites() {
			glyphs = append(glyphs, t.Glyph(s).Rune)
		}
		fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, t.ID, string(glyphs), t.Title)
	}

	fmt.Println()
	fmt.Println("Run 'runner play --theme <id>' to use a theme.")
}
