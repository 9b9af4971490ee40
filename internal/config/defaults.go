package config

import (
	_ "embed"
)

//go:embed defaults/dodger.yaml
var defaultDodgerYAML []byte

// DefaultDodgerConfig returns the default block dodger configuration.
func DefaultDodgerConfig() DodgerConfig {
	return DodgerConfig{
		Player: DodgerPlayer{
			Speed: 0.12,
			Bound: 6,
			Y:     -3.5,
			Size:  1,
		},
		Obstacles: DodgerObstacles{
			FallSpeed:       0.08,
			SpawnIntervalMS: 350,
			SpawnY:          15,
			SpawnRange:      6,
			DespawnY:        -4,
			MaxSpin:         0.025,
		},
		Scoring: DodgerScoring{
			Rate: 10,
		},
		Timing: DodgerTiming{
			ReferenceFPS: 60,
			MaxDelta:     0, // Unbounded: a stalled process produces one large delta
			SpinMode:     SpinPerTick,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultDodgerYAML
}
