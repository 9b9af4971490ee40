package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/block-dodger/internal/core"
	"github.com/vovakirdan/block-dodger/internal/platform/tui"
	"github.com/vovakirdan/block-dodger/internal/storage"
)

var flagNoScoreboard bool

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the specified variant (default: dodger).

Controls:
  Left/A, Right/D  - Move
  P/Esc            - Pause / resume
  R                - Restart
  Q/Ctrl+C         - Quit

Runs finished during the session are listed when you quit.

Examples:
  dodger play
  dodger play dodger-smooth
  dodger play --seed 42 --log-file dodger.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNoScoreboard, "no-scoreboard", false, "Do not show session runs after quitting")
}

func runPlay(cmd *cobra.Command, args []string) error {
	variant := "dodger"
	if len(args) == 1 {
		variant = args[0]
	}

	logger, closer, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     resolveSeed(flagSeed),
	}

	game, err := createGame(variant, cfg, time.Now())
	if err != nil {
		logger.Error("cannot create game", "variant", variant, "error", err)
		return err
	}

	store, err := storage.Open()
	if err != nil {
		logger.Warn("session store unavailable", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, cfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	if store == nil || flagNoScoreboard {
		return nil
	}
	if n, err := store.Count(); err != nil || n == 0 {
		return nil
	}
	return tui.RunScoreboard(store, width, height)
}
