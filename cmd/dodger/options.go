package main

import (
	"fmt"
	"time"

	"github.com/vovakirdan/block-dodger/internal/config"
	"github.com/vovakirdan/block-dodger/internal/core"
	"github.com/vovakirdan/block-dodger/internal/registry"
)

// resolveSeed turns the --seed flag into the seed actually used.
func resolveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}

// createGame loads the configuration and builds variant starting at start.
func createGame(variant string, cfg core.RuntimeConfig, start time.Time) (registry.Game, error) {
	if !registry.Exists(variant) {
		return nil, fmt.Errorf("unknown variant %q (run 'dodger list' to see available variants)", variant)
	}

	gameCfg, err := config.LoadDodger(flagConfig)
	if err != nil {
		return nil, err
	}

	return registry.Create(variant, registry.Options{
		Config: cfg,
		Game:   gameCfg,
		Start:  start,
	})
}
