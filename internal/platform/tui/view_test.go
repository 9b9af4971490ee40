package tui

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/block-dodger/internal/core"
)

func cube(x, y, half float64) core.Box3 {
	return core.BoxFromCenter(mgl64.Vec3{x, y, 0}, mgl64.Vec3{half, half, half})
}

func testSnapshot(phase core.Phase, obstacles ...core.EntityView) core.Snapshot {
	return core.Snapshot{
		State: core.GameState{Score: 12.9, Phase: phase},
		Player: core.EntityView{
			Asset:    "player",
			Position: mgl64.Vec3{0, -3.5, 0},
			Bounds:   cube(0, -3.5, 0.5),
		},
		Obstacles: obstacles,
	}
}

func TestDrawFrameRunning(t *testing.T) {
	s := core.NewScreen(80, 24)
	box := core.EntityView{ID: 1, Asset: "box", Bounds: cube(0, 10, 0.5)}

	DrawFrame(s, testSnapshot(core.PhaseRunning, box), "Block Dodger", 0)

	if !strings.HasPrefix(strings.TrimSpace(s.Row(0)), "Score: 12") {
		t.Errorf("HUD should show the truncated score, got %q", s.Row(0))
	}
	if !strings.Contains(s.Row(0), "Block Dodger") {
		t.Errorf("HUD should show the title, got %q", s.Row(0))
	}

	// Player occupies the bottom of the field in the middle columns
	if cell := s.GetCell(40, 22); cell.Rune != '█' || cell.Color != core.ColorRed {
		t.Errorf("expected red player cell at (40, 22), got %+v", cell)
	}
	if cell := s.GetCell(40, 6); cell.Rune != '■' || cell.Color != core.ColorCyan {
		t.Errorf("expected cyan box cell at (40, 6), got %+v", cell)
	}
	if s.Get(10, 6) != ' ' {
		t.Errorf("box should not cover column 10, got %q", s.Get(10, 6))
	}

	if floor := s.Row(23); floor != strings.Repeat("═", 80) {
		t.Errorf("bottom row should be the floor, got %q", floor)
	}
	if strings.Contains(s.String(), "PAUSED") || strings.Contains(s.String(), "GAME OVER") {
		t.Error("no overlay while running")
	}
}

func TestDrawFrameGlyphs(t *testing.T) {
	tests := []struct {
		asset string
		glyph rune
	}{
		{"box", '■'},
		{"sphere", '●'},
		{"torus", '◎'},
		{"mystery", '?'},
	}

	for _, tc := range tests {
		t.Run(tc.asset, func(t *testing.T) {
			s := core.NewScreen(80, 24)
			DrawFrame(s, testSnapshot(core.PhaseRunning, core.EntityView{Asset: tc.asset, Bounds: cube(3, 5, 0.5)}), "", 0)
			if !strings.ContainsRune(s.String(), tc.glyph) {
				t.Errorf("expected glyph %q for %s", tc.glyph, tc.asset)
			}
		})
	}
}

func TestDrawFrameSkipsOffscreen(t *testing.T) {
	s := core.NewScreen(80, 24)
	above := core.EntityView{Asset: "box", Bounds: cube(0, 20, 0.5)}
	beside := core.EntityView{Asset: "box", Bounds: cube(9, 5, 0.5)}

	DrawFrame(s, testSnapshot(core.PhaseRunning, above, beside), "", 0)

	if strings.ContainsRune(s.String(), '■') {
		t.Error("obstacles outside the world window should not be drawn")
	}
}

func TestDrawFrameOverlays(t *testing.T) {
	tests := []struct {
		name     string
		phase    core.Phase
		best     int
		expected []string
		absent   []string
	}{
		{"paused", core.PhasePaused, 40, []string{"PAUSED", "Press P to resume"}, []string{"Best:"}},
		{"game over", core.PhaseGameOver, 0, []string{"GAME OVER", "Score: 12", "Press R to restart"}, []string{"Best:"}},
		{"game over with best", core.PhaseGameOver, 40, []string{"GAME OVER", "Score: 12", "Best: 40", "Press R to restart"}, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := core.NewScreen(80, 24)
			DrawFrame(s, testSnapshot(tc.phase), "", tc.best)

			out := s.String()
			for _, want := range tc.expected {
				if !strings.Contains(out, want) {
					t.Errorf("overlay missing %q:\n%s", want, out)
				}
			}
			for _, unwanted := range tc.absent {
				if strings.Contains(out, unwanted) {
					t.Errorf("overlay should not contain %q:\n%s", unwanted, out)
				}
			}
		})
	}
}

func TestDrawFrameTinyScreen(t *testing.T) {
	// Must not panic
	for _, size := range [][2]int{{0, 0}, {1, 1}, {5, 2}, {3, 3}} {
		s := core.NewScreen(size[0], size[1])
		DrawFrame(s, testSnapshot(core.PhaseGameOver), "Block Dodger", 0)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(20, 3)
	s.DrawTextColored(0, 0, "Score: 5", core.ColorBrightYellow)
	s.DrawText(0, 1, "plain")

	out := RenderScreen(s)
	if !strings.Contains(out, "Score: 5") || !strings.Contains(out, "plain") {
		t.Errorf("rendered output lost text: %q", out)
	}
	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("expected 2 line breaks, got %d", got)
	}
}
