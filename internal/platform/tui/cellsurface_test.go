package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/teatime-runner/internal/config"
	"github.com/vovakirdan/teatime-runner/internal/core"
	"github.com/vovakirdan/teatime-runner/internal/runner"
	"github.com/vovakirdan/teatime-runner/internal/theme"
)

func newTestSurface(t *testing.T) (*core.Screen, *CellSurface) {
	t.Helper()
	th, err := theme.Get("ascii")
	if err != nil {
		t.Fatal(err)
	}
	cfg := config.DefaultRunnerConfig()
	screen := core.NewScreen(75, 26)
	return screen, NewCellSurface(screen, cfg.Board.Width, cfg.Board.Height, th)
}

func TestCellSurfaceProjectsPlayer(t *testing.T) {
	screen, surface := newTestSurface(t)

	if got := surface.viewport().Rows(); got != 25 {
		t.Fatalf("board rows = %d, expected 25", got)
	}

	surface.Clear()
	surface.DrawSprite(runner.SpritePlayer, 50, 156, 88, 94)

	want := core.NewRect(5, 15, 9, 10)
	for y := range screen.Height() {
		for x := range screen.Width() {
			inside := want.Contains(x, y)
			if got := screen.Get(x, y); inside && got != '#' {
				t.Fatalf("cell (%d,%d) = %q, expected player glyph", x, y, got)
			} else if !inside && got == '#' {
				t.Fatalf("cell (%d,%d) outside %+v holds the player glyph", x, y, want)
			}
		}
	}
}

func TestCellSurfaceGroundLine(t *testing.T) {
	screen, surface := newTestSurface(t)
	surface.Clear()

	if got := screen.Row(25); got != strings.Repeat("=", 75) {
		t.Errorf("ground row = %q", got)
	}
	if got := strings.TrimSpace(screen.Row(24)); got != "" {
		t.Errorf("row above ground should be empty, got %q", got)
	}
}

func TestCellSurfaceScoreText(t *testing.T) {
	screen, surface := newTestSurface(t)
	surface.Clear()
	surface.DrawText(10, 20, "42")

	if got := screen.Get(1, 2); got != '4' {
		t.Errorf("cell (1,2) = %q, expected '4'", got)
	}
	if got := screen.Get(2, 2); got != '2' {
		t.Errorf("cell (2,2) = %q, expected '2'", got)
	}
}

func TestCellSurfaceFitAfterResize(t *testing.T) {
	screen, surface := newTestSurface(t)

	screen.Resize(150, 51)
	surface.Fit()

	v := surface.viewport()
	if v.Cols() != 150 || v.Rows() != 50 {
		t.Errorf("viewport = %dx%d, expected 150x50", v.Cols(), v.Rows())
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	screen := core.NewScreen(6, 2)
	screen.DrawColorText(0, 0, "ab", core.ColorRed)
	screen.DrawColorText(2, 0, "cd", core.ColorDefault)
	screen.DrawColorText(0, 1, "xyz", core.ColorGray)

	out := RenderScreen(screen)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("rendered %d lines, expected 2", len(lines))
	}
	for i, want := range []string{"abcd", "xyz"} {
		if !strings.Contains(stripStyles(lines[i]), want) {
			t.Errorf("line %d = %q, expected it to contain %q", i, lines[i], want)
		}
	}
}

// stripStyles drops ANSI escape sequences.
func stripStyles(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'):
			inEscape = false
		case !inEscape:
			b.WriteRune(r)
		}
	}
	return b.String()
}
