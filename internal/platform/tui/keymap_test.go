package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/block-dodger/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		key    string
		action core.Action
		quit   bool
	}{
		{"left", core.ActionMoveLeft, false},
		{"a", core.ActionMoveLeft, false},
		{"right", core.ActionMoveRight, false},
		{"d", core.ActionMoveRight, false},
		{"p", core.ActionPause, false},
		{"esc", core.ActionPause, false},
		{"r", core.ActionRestart, false},
		{"q", core.ActionQuit, true},
		{"ctrl+c", core.ActionQuit, true},
		{"x", core.ActionNone, false},
		{" ", core.ActionNone, false},
	}

	km := NewKeyMapper()
	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			action, quit := km.MapKey(keyMsg(tc.key))
			if action != tc.action || quit != tc.quit {
				t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)", tc.key, action, quit, tc.action, tc.quit)
			}
		})
	}
}

func TestHoldTrackerHoldWindow(t *testing.T) {
	h := NewHoldTracker(150 * time.Millisecond)
	t0 := time.Unix(100, 0)

	h.Press(core.ActionMoveLeft, t0)

	tests := []struct {
		after time.Duration
		held  bool
	}{
		{0, true},
		{100 * time.Millisecond, true},
		{150 * time.Millisecond, true},
		{151 * time.Millisecond, false},
		{100 * time.Millisecond, false}, // released keys stay released
	}

	for _, tc := range tests {
		f := h.Sample(t0.Add(tc.after))
		if f.Has(core.ActionMoveLeft) != tc.held {
			t.Errorf("after %v: held = %v, expected %v", tc.after, f.Has(core.ActionMoveLeft), tc.held)
		}
	}
}

func TestHoldTrackerRepeatExtendsHold(t *testing.T) {
	h := NewHoldTracker(150 * time.Millisecond)
	t0 := time.Unix(100, 0)

	for i := 0; i < 5; i++ {
		h.Press(core.ActionMoveRight, t0.Add(time.Duration(i)*100*time.Millisecond))
	}

	if !h.Sample(t0.Add(500 * time.Millisecond)).Has(core.ActionMoveRight) {
		t.Error("auto-repeat should keep the key held")
	}
	if h.Sample(t0.Add(700 * time.Millisecond)).Has(core.ActionMoveRight) {
		t.Error("key should release after repeats stop")
	}
}

func TestHoldTrackerOppositeDirectionReleases(t *testing.T) {
	h := NewHoldTracker(150 * time.Millisecond)
	t0 := time.Unix(100, 0)

	h.Press(core.ActionMoveLeft, t0)
	h.Press(core.ActionMoveRight, t0.Add(10*time.Millisecond))

	f := h.Sample(t0.Add(20 * time.Millisecond))
	if f.Has(core.ActionMoveLeft) {
		t.Error("pressing right should release left")
	}
	if !f.Has(core.ActionMoveRight) {
		t.Error("right should be held")
	}
}

func TestHoldTrackerEdgesFireOnce(t *testing.T) {
	h := NewHoldTracker(150 * time.Millisecond)
	t0 := time.Unix(100, 0)

	h.Press(core.ActionPause, t0)
	h.Press(core.ActionRestart, t0)

	first := h.Sample(t0)
	if !first.Has(core.ActionPause) || !first.Has(core.ActionRestart) {
		t.Error("edges should appear in the next sampled frame")
	}

	second := h.Sample(t0)
	if second.Has(core.ActionPause) || second.Has(core.ActionRestart) {
		t.Error("edges should be consumed by the first sample")
	}
}

func TestHoldTrackerRelease(t *testing.T) {
	h := NewHoldTracker(0)
	t0 := time.Unix(100, 0)

	h.Press(core.ActionMoveLeft, t0)
	h.Press(core.ActionPause, t0)
	h.Release()

	f := h.Sample(t0)
	if f.Has(core.ActionMoveLeft) || f.Has(core.ActionPause) {
		t.Error("Release() should drop everything")
	}
}
