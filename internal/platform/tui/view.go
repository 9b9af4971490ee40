package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/block-dodger/internal/core"
)

// Visible world window. The field spans every row except the HUD on top
// and the floor at the bottom.
const (
	worldLeft   = -7.0
	worldRight  = 7.0
	worldTop    = 15.5
	worldBottom = -4.5
)

// glyphs resolves asset keys to the rune drawn over their footprint.
var glyphs = map[string]rune{
	"box":    '■',
	"sphere": '●',
	"torus":  '◎',
	"player": '█',
}

// projection maps world coordinates onto screen cells.
type projection struct {
	width, top, rows int
}

func newProjection(s *core.Screen) projection {
	return projection{width: s.Width(), top: 1, rows: max(s.Height()-2, 1)}
}

func (p projection) col(x float64) int {
	c := int(math.Floor((x - worldLeft) / (worldRight - worldLeft) * float64(p.width)))
	return core.Clamp(c, 0, p.width-1)
}

func (p projection) row(y float64) int {
	r := int(math.Floor((worldTop - y) / (worldTop - worldBottom) * float64(p.rows)))
	return p.top + core.Clamp(r, 0, p.rows-1)
}

// visible reports whether any part of b lies inside the world window.
func visible(b core.Box3) bool {
	return b.Max.X() >= worldLeft && b.Min.X() <= worldRight &&
		b.Max.Y() >= worldBottom && b.Min.Y() <= worldTop
}

// fill draws r over the footprint of b.
func (p projection) fill(s *core.Screen, b core.Box3, r rune, c core.Color) {
	if !visible(b) {
		return
	}
	for y := p.row(b.Max.Y()); y <= p.row(b.Min.Y()); y++ {
		for x := p.col(b.Min.X()); x <= p.col(b.Max.X()); x++ {
			s.SetColored(x, y, r, c)
		}
	}
}

// DrawFrame draws the snapshot: HUD, obstacles, player, floor, and the
// pause or game-over overlay. best is the session high score; zero hides it.
func DrawFrame(s *core.Screen, snap core.Snapshot, title string, best int) {
	s.Clear()
	if s.Width() == 0 || s.Height() < 3 {
		return
	}
	p := newProjection(s)

	for _, o := range snap.Obstacles {
		g, ok := glyphs[o.Asset]
		if !ok {
			g = '?'
		}
		p.fill(s, o.Bounds, g, core.ColorCyan)
	}
	p.fill(s, snap.Player.Bounds, glyphs["player"], core.ColorRed)

	s.DrawHLine(0, s.Height()-1, s.Width(), '═', core.ColorGray)

	score := fmt.Sprintf("Score: %d", int(snap.State.Score))
	s.DrawTextColored(1, 0, score, core.ColorBrightYellow)
	if title != "" {
		s.DrawTextColored(s.Width()-len([]rune(title))-1, 0, title, core.ColorGray)
	}

	switch {
	case snap.State.Paused():
		drawOverlay(s, "PAUSED", "Press P to resume")
	case snap.State.GameOver():
		lines := []string{fmt.Sprintf("Score: %d", int(snap.State.Score))}
		if best > 0 {
			lines = append(lines, fmt.Sprintf("Best: %d", best))
		}
		drawOverlay(s, "GAME OVER", append(lines, "Press R to restart")...)
	}
}

// drawOverlay draws a centered box with a heading and message lines.
func drawOverlay(s *core.Screen, heading string, lines ...string) {
	w := len([]rune(heading))
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	w += 4
	h := len(lines) + 4

	box := core.NewRect((s.Width()-w)/2, (s.Height()-h)/2, w, h)
	s.DrawRect(box, ' ')
	s.DrawBox(box)
	s.DrawTextCentered(box.Y+1, heading)
	for i, l := range lines {
		s.DrawTextCentered(box.Y+3+i, l)
	}
}
