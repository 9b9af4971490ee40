package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/block-dodger/internal/core"
)

// DefaultHoldWindow is how long a move key counts as held after its last
// press or auto-repeat event.
const DefaultHoldWindow = 150 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "left", "a":
		return core.ActionMoveLeft, false
	case "right", "d":
		return core.ActionMoveRight, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// HoldTracker builds input frames from key press events.
//
// Terminals report presses and auto-repeats but never releases, so a move
// key is treated as held while its last event is within the hold window.
// Pressing one direction releases the other. Pause and restart are edges:
// each press shows up in exactly one sampled frame.
type HoldTracker struct {
	window time.Duration
	held   map[core.Action]time.Time
	edges  core.InputFrame
}

// NewHoldTracker creates a tracker with the given hold window.
func NewHoldTracker(window time.Duration) *HoldTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HoldTracker{
		window: window,
		held:   make(map[core.Action]time.Time),
		edges:  core.NewInputFrame(),
	}
}

// Press records a key event for a at the given time.
func (h *HoldTracker) Press(a core.Action, at time.Time) {
	switch a {
	case core.ActionMoveLeft:
		delete(h.held, core.ActionMoveRight)
		h.held[a] = at
	case core.ActionMoveRight:
		delete(h.held, core.ActionMoveLeft)
		h.held[a] = at
	case core.ActionPause, core.ActionRestart:
		h.edges.Set(a)
	}
}

// Sample returns the frame for a tick at now and consumes pending edges.
func (h *HoldTracker) Sample(now time.Time) core.InputFrame {
	frame := h.edges.Clone()
	h.edges.Clear()

	for a, at := range h.held {
		if now.Sub(at) <= h.window {
			frame.Set(a)
		} else {
			delete(h.held, a)
		}
	}
	return frame
}

// Release drops all held keys and pending edges.
func (h *HoldTracker) Release() {
	clear(h.held)
	h.edges.Clear()
}
