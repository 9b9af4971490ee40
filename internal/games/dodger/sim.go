package dodger

import (
	"fmt"
	"time"

	"github.com/vovakirdan/block-dodger/internal/core"
	"github.com/vovakirdan/block-dodger/internal/registry"
)

// InputScript returns the input for the given zero-based tick.
type InputScript func(tick int) core.InputFrame

// Idle holds nothing.
func Idle(int) core.InputFrame {
	return core.NewInputFrame()
}

// Hold keeps one action held on every tick.
func Hold(a core.Action) InputScript {
	return func(int) core.InputFrame {
		f := core.NewInputFrame()
		f.Set(a)
		return f
	}
}

// Sweep alternates between holding left and right every period ticks.
func Sweep(period int) InputScript {
	if period <= 0 {
		period = 1
	}
	return func(tick int) core.InputFrame {
		f := core.NewInputFrame()
		if (tick/period)%2 == 0 {
			f.Set(core.ActionMoveLeft)
		} else {
			f.Set(core.ActionMoveRight)
		}
		return f
	}
}

// ParseScript resolves a script name used on the command line.
func ParseScript(name string) (InputScript, error) {
	switch name {
	case "", "none":
		return Idle, nil
	case "left":
		return Hold(core.ActionMoveLeft), nil
	case "right":
		return Hold(core.ActionMoveRight), nil
	case "sweep":
		return Sweep(45), nil
	default:
		return nil, fmt.Errorf("dodger: unknown input script %q (want none, left, right, sweep)", name)
	}
}

// SimOptions configures a headless run.
type SimOptions struct {
	Delta    time.Duration // Constant time between ticks
	MaxTicks int
	Input    InputScript // nil means Idle
}

// SpawnRecord is one spawn observed during a headless run.
type SpawnRecord struct {
	Tick  int // One-based
	ID    uint64
	Asset string
	X     float64
}

// SimReport summarizes a headless run.
type SimReport struct {
	Ticks        int
	GameOverTick int    // One-based; 0 if the run survived MaxTicks
	CollidedWith uint64 // Obstacle ID that ended the run
	Score        float64
	Dodged       int
	Spawns       []SpawnRecord
}

// Simulate drives g from clock with a constant delta until game over or
// MaxTicks. Given a seeded game and the same options the report is
// reproducible.
func Simulate(g registry.Game, clock *core.ManualClock, opts SimOptions) SimReport {
	input := opts.Input
	if input == nil {
		input = Idle
	}

	var report SimReport
	for i := 0; i < opts.MaxTicks; i++ {
		now := clock.Advance(opts.Delta)
		result := g.Tick(now, input(i))
		report.Ticks = i + 1

		for _, e := range result.Events {
			switch e.Kind {
			case core.EventSpawn:
				report.Spawns = append(report.Spawns, SpawnRecord{
					Tick:  i + 1,
					ID:    e.EntityID,
					Asset: e.Asset,
					X:     e.Position.X(),
				})
			case core.EventCollision:
				report.CollidedWith = e.EntityID
			}
		}

		if result.State.GameOver() {
			report.GameOverTick = i + 1
			break
		}
	}

	state := g.State()
	report.Score = state.Score
	report.Dodged = state.Dodged
	return report
}
