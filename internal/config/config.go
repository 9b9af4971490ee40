// Package config provides YAML-based game configuration loading and
// validation for the dodger.
package config

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidConfiguration is returned when a configuration cannot be used
// to construct a game. It is only ever reported at construction time.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Spin modes select how obstacle rotation advances.
const (
	SpinPerTick  = "tick"  // Fixed step per tick, regardless of elapsed time
	SpinPerDelta = "delta" // Step scaled by elapsed time like all other motion
)

// DodgerConfig contains all configuration for the block dodger.
type DodgerConfig struct {
	Player    DodgerPlayer    `yaml:"player"`
	Obstacles DodgerObstacles `yaml:"obstacles"`
	Scoring   DodgerScoring   `yaml:"scoring"`
	Timing    DodgerTiming    `yaml:"timing"`
}

// DodgerPlayer defines player parameters.
type DodgerPlayer struct {
	Speed float64 `yaml:"speed"` // Horizontal units per reference frame
	Bound float64 `yaml:"bound"` // Player x is clamped to [-bound, bound]
	Y     float64 `yaml:"y"`     // Fixed vertical position
	Size  float64 `yaml:"size"`  // Edge length of the player cube
}

// DodgerObstacles defines obstacle parameters.
type DodgerObstacles struct {
	FallSpeed       float64 `yaml:"fall_speed"`        // Units per reference frame
	SpawnIntervalMS int     `yaml:"spawn_interval_ms"` // Minimum gap between spawns
	SpawnY          float64 `yaml:"spawn_y"`
	SpawnRange      float64 `yaml:"spawn_range"` // Spawn x is uniform in [-range, range)
	DespawnY        float64 `yaml:"despawn_y"`   // Obstacles below this are removed
	MaxSpin         float64 `yaml:"max_spin"`    // Per-axis spin is uniform in [-max, max)
}

// DodgerScoring defines how score accrues.
type DodgerScoring struct {
	Rate float64 `yaml:"rate"` // Points per second of running time
}

// DodgerTiming defines the time model.
type DodgerTiming struct {
	ReferenceFPS float64 `yaml:"reference_fps"` // Frame rate the per-frame constants assume
	MaxDelta     float64 `yaml:"max_delta"`     // Seconds; 0 leaves deltas unbounded
	SpinMode     string  `yaml:"spin_mode"`     // "tick" or "delta"
}

// SpawnInterval returns the spawn interval as a duration.
func (c DodgerConfig) SpawnInterval() time.Duration {
	return time.Duration(c.Obstacles.SpawnIntervalMS) * time.Millisecond
}

// Validate checks that the configuration can drive a run.
// All returned errors wrap ErrInvalidConfiguration.
func (c DodgerConfig) Validate() error {
	// Ordered comparisons below are all false for NaN
	for _, f := range []struct {
		key string
		v   float64
	}{
		{"player.speed", c.Player.Speed},
		{"player.bound", c.Player.Bound},
		{"player.y", c.Player.Y},
		{"player.size", c.Player.Size},
		{"obstacles.fall_speed", c.Obstacles.FallSpeed},
		{"obstacles.spawn_y", c.Obstacles.SpawnY},
		{"obstacles.spawn_range", c.Obstacles.SpawnRange},
		{"obstacles.despawn_y", c.Obstacles.DespawnY},
		{"obstacles.max_spin", c.Obstacles.MaxSpin},
		{"scoring.rate", c.Scoring.Rate},
		{"timing.reference_fps", c.Timing.ReferenceFPS},
		{"timing.max_delta", c.Timing.MaxDelta},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return invalid("%s must be finite, got %g", f.key, f.v)
		}
	}

	switch {
	case c.Obstacles.SpawnIntervalMS <= 0:
		return invalid("obstacles.spawn_interval_ms must be positive, got %d", c.Obstacles.SpawnIntervalMS)
	case c.Obstacles.FallSpeed <= 0:
		return invalid("obstacles.fall_speed must be positive, got %g", c.Obstacles.FallSpeed)
	case c.Obstacles.SpawnRange < 0:
		return invalid("obstacles.spawn_range must not be negative, got %g", c.Obstacles.SpawnRange)
	case c.Obstacles.MaxSpin < 0:
		return invalid("obstacles.max_spin must not be negative, got %g", c.Obstacles.MaxSpin)
	case c.Obstacles.DespawnY >= c.Obstacles.SpawnY:
		return invalid("obstacles.despawn_y (%g) must be below spawn_y (%g)", c.Obstacles.DespawnY, c.Obstacles.SpawnY)
	case c.Player.Bound <= 0:
		return invalid("player.bound must be positive, got %g", c.Player.Bound)
	case c.Player.Speed < 0:
		return invalid("player.speed must not be negative, got %g", c.Player.Speed)
	case c.Player.Size <= 0:
		return invalid("player.size must be positive, got %g", c.Player.Size)
	case c.Scoring.Rate < 0:
		return invalid("scoring.rate must not be negative, got %g", c.Scoring.Rate)
	case c.Timing.ReferenceFPS <= 0:
		return invalid("timing.reference_fps must be positive, got %g", c.Timing.ReferenceFPS)
	case c.Timing.MaxDelta < 0:
		return invalid("timing.max_delta must not be negative, got %g", c.Timing.MaxDelta)
	case c.Timing.SpinMode != SpinPerTick && c.Timing.SpinMode != SpinPerDelta:
		return invalid("timing.spin_mode must be %q or %q, got %q", SpinPerTick, SpinPerDelta, c.Timing.SpinMode)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("config: %w: %s", ErrInvalidConfiguration, fmt.Sprintf(format, args...))
}
