package core

import (
	"testing"
	"time"
)

func TestManualClock(t *testing.T) {
	start := time.Unix(1000, 0)
	c := NewManualClock(start)

	if !c.Now().Equal(start) {
		t.Fatalf("Now() = %v, expected %v", c.Now(), start)
	}

	got := c.Advance(250 * time.Millisecond)
	if got.Sub(start) != 250*time.Millisecond {
		t.Errorf("Advance returned %v after start, expected 250ms", got.Sub(start))
	}
	if !c.Now().Equal(got) {
		t.Error("Now() should match the value returned by Advance")
	}
}

func TestNewRngDeterministic(t *testing.T) {
	a := NewRng(7)
	b := NewRng(7)

	for i := 0; i < 20; i++ {
		va, vb := a.Float64(), b.Float64()
		if va != vb {
			t.Fatalf("draw %d differs: %f vs %f", i, va, vb)
		}
		if va < 0 || va >= 1 {
			t.Fatalf("draw %d out of [0,1): %f", i, va)
		}
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase    Phase
		expected string
	}{
		{PhaseRunning, "Running"},
		{PhasePaused, "Paused"},
		{PhaseGameOver, "GameOver"},
		{Phase(42), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.phase.String(); got != tc.expected {
			t.Errorf("Phase(%d).String() = %q, expected %q", tc.phase, got, tc.expected)
		}
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionMoveLeft) {
		t.Error("new frame should be empty")
	}

	f.Set(ActionMoveLeft)
	f.Set(ActionPause)
	clone := f.Clone()

	f.Clear()
	if f.Has(ActionMoveLeft) || f.Has(ActionPause) {
		t.Error("Clear should remove all actions")
	}
	if !clone.Has(ActionMoveLeft) || !clone.Has(ActionPause) {
		t.Error("Clone should be independent of the original")
	}

	var zero InputFrame
	if zero.Has(ActionRestart) {
		t.Error("zero frame should report no actions")
	}
	zero.Set(ActionRestart)
	if !zero.Has(ActionRestart) {
		t.Error("Set on zero frame should allocate")
	}
}
