package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/block-dodger/internal/core"
	"github.com/vovakirdan/block-dodger/internal/registry"
	"github.com/vovakirdan/block-dodger/internal/storage"
)

// Model is the Bubble Tea model that drives one game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	store    *storage.Store
	logger   *log.Logger
	config   core.RuntimeConfig
	keys     *KeyMapper
	input    *HoldTracker
	clock    core.Clock // Stamps key presses
	state    core.GameState
	best     int // Session high score for this variant
	runStart time.Time
	quitting bool
}

// NewModel creates a Bubble Tea model for game. store and logger may be nil.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:    store,
		logger:   logger,
		config:   cfg,
		keys:     NewKeyMapper(),
		input:    NewHoldTracker(DefaultHoldWindow),
		clock:    core.SystemClock{},
		state:    game.State(),
		runStart: time.Now(),
	}
}

// Init starts the frame pacer.
func (m Model) Init() tea.Cmd {
	m.logger.Info("run started", "variant", m.game.ID(), "fps", m.config.TickRate, "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records key presses; they are applied on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.logger.Info("quit", "variant", m.game.ID(), "score", int(m.state.Score))
		return m, tea.Quit
	}

	if action != core.ActionNone {
		m.input.Press(action, m.clock.Now())
	}
	return m, nil
}

// handleTick advances the game to the frame timestamp.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	result := m.game.Tick(now, m.input.Sample(now))
	m.state = result.State

	for _, e := range result.Events {
		m.handleEvent(e, now)
	}

	return m, tickCmd(m.config.TickRate)
}

func (m *Model) handleEvent(e core.Event, now time.Time) {
	switch e.Kind {
	case core.EventSpawn, core.EventDespawn, core.EventCollision:
		m.logger.Debug(e.Kind.String(),
			"id", e.EntityID,
			"asset", e.Asset,
			"x", e.Position.X(),
			"y", e.Position.Y(),
		)

	case core.EventReset:
		m.input.Release()
		m.runStart = now
		m.logger.Debug(e.Kind.String())

	case core.EventGameOver:
		m.input.Release()
		m.saveRun(now)

	default:
		m.logger.Debug(e.Kind.String(), "score", m.state.Score)
	}
}

// saveRun records the finished run in the session store.
func (m *Model) saveRun(now time.Time) {
	run := storage.RunResult{
		Variant:   m.game.ID(),
		Score:     int(m.state.Score),
		Ticks:     m.state.RunTicks,
		Dodged:    m.state.Dodged,
		Duration:  now.Sub(m.runStart),
		CreatedAt: now,
	}
	m.logger.Info("game over",
		"variant", run.Variant,
		"score", run.Score,
		"dodged", run.Dodged,
		"duration", run.Duration,
	)

	if m.store == nil {
		return
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Error("could not save run", "error", err)
		return
	}
	best, err := m.store.BestScore(run.Variant)
	if err != nil {
		m.logger.Error("could not read best score", "error", err)
		return
	}
	m.best = best
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawFrame(m.screen, m.game.Snapshot(), m.game.Title(), m.best)
	return RenderScreen(m.screen)
}

// Run plays game in the terminal until the user quits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(game, store, cfg, logger),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
