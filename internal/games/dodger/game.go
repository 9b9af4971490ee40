// Package dodger implements a falling-block dodging game.
// The player slides along one axis while shapes fall toward it; touching
// one ends the run and survival time accrues score.
package dodger

import (
	"time"

	"github.com/vovakirdan/block-dodger/internal/config"
	"github.com/vovakirdan/block-dodger/internal/core"
	"github.com/vovakirdan/block-dodger/internal/registry"
)

// PlayerAsset is the asset key the renderer uses for the player.
const PlayerAsset = "player"

// Game implements the block dodger simulation.
// A Game is driven by one goroutine; it holds no locks.
type Game struct {
	id    string
	title string
	cfg   config.DodgerConfig

	player    Player
	obstacles *ObstacleManager

	score         float64
	phase         core.Phase
	fallSpeed     float64       // Static after construction; restored on reset
	spawnInterval time.Duration // Static after construction; restored on reset
	lastSpawn     time.Time     // Zero until the first spawn, so the first running tick spawns
	prev          time.Time     // Timestamp of the previous tick

	tick     uint64
	runTicks uint64
	dodged   int
	events   []core.Event
}

// New creates a game measuring its first delta from start.
// The configuration is validated here and nowhere else; an invalid one
// yields an error wrapping config.ErrInvalidConfiguration.
func New(cfg config.DodgerConfig, rng core.RngSource, start time.Time) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		id:    "dodger",
		title: "Block Dodger",
		cfg:   cfg,
		prev:  start,
	}
	g.obstacles = NewObstacleManager(rng, &g.cfg)
	g.player = Player{Y: cfg.Player.Y, Size: cfg.Player.Size}
	g.restore()
	return g, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset clears obstacles, score, and player position and resumes running.
// Safe to call from any phase and idempotent.
func (g *Game) Reset() {
	g.restore()
	g.emit(core.Event{Kind: core.EventReset})
}

func (g *Game) restore() {
	g.obstacles.Reset()
	g.score = 0
	g.fallSpeed = g.cfg.Obstacles.FallSpeed
	g.spawnInterval = g.cfg.SpawnInterval()
	g.player.X = 0
	g.phase = core.PhaseRunning
	g.runTicks = 0
	g.dodged = 0
}

// Tick advances the game to now.
//
// Edge commands in the frame apply first: Restart, then Pause. If the
// phase is then Running the tick moves the player, sweeps obstacles,
// spawns, and accrues score, in that order. In any other phase the state
// is left untouched apart from the stored timestamp.
func (g *Game) Tick(now time.Time, in core.InputFrame) core.StepResult {
	delta := now.Sub(g.prev).Seconds()
	g.prev = now
	g.tick++

	// A clock that runs backwards must not rewind score or positions
	if delta < 0 {
		delta = 0
	}
	if maxDelta := g.cfg.Timing.MaxDelta; maxDelta > 0 && delta > maxDelta {
		delta = maxDelta
	}

	if in.Has(core.ActionRestart) {
		g.Reset()
	}
	if in.Has(core.ActionPause) {
		g.togglePause()
	}

	if g.phase == core.PhaseRunning {
		g.runTicks++
		g.movePlayer(in, delta)
		g.sweep(delta)
		g.spawnIfDue(now)
		g.score += delta * g.cfg.Scoring.Rate
	}

	events := g.events
	g.events = nil
	return core.StepResult{State: g.State(), Events: events}
}

// togglePause flips Running and Paused. It has no effect after game over.
func (g *Game) togglePause() {
	switch g.phase {
	case core.PhaseRunning:
		g.phase = core.PhasePaused
		g.emit(core.Event{Kind: core.EventPause})
	case core.PhasePaused:
		g.phase = core.PhaseRunning
		g.emit(core.Event{Kind: core.EventResume})
	}
}

func (g *Game) movePlayer(in core.InputFrame, delta float64) {
	step := g.cfg.Player.Speed * delta * g.cfg.Timing.ReferenceFPS
	if in.Has(core.ActionMoveLeft) {
		g.player.X -= step
	}
	if in.Has(core.ActionMoveRight) {
		g.player.X += step
	}
	g.player.X = core.ClampF(g.player.X, -g.cfg.Player.Bound, g.cfg.Player.Bound)
}

func (g *Game) sweep(delta float64) {
	res := g.obstacles.Sweep(delta, g.player.Bounds())

	for _, o := range res.Despawned {
		g.dodged++
		g.emit(obstacleEvent(core.EventDespawn, o))
	}

	if res.Hit != nil {
		g.phase = core.PhaseGameOver
		g.emit(obstacleEvent(core.EventCollision, *res.Hit))
		g.emit(core.Event{Kind: core.EventGameOver})
	}
}

func (g *Game) spawnIfDue(now time.Time) {
	if now.Sub(g.lastSpawn) <= g.spawnInterval {
		return
	}
	o := g.obstacles.Spawn(g.fallSpeed)
	g.lastSpawn = now
	g.emit(obstacleEvent(core.EventSpawn, o))
}

func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

func obstacleEvent(kind core.EventKind, o Obstacle) core.Event {
	return core.Event{
		Kind:     kind,
		EntityID: o.ID,
		Asset:    o.Shape.AssetKey(),
		Position: o.Position,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		Phase:     g.phase,
		Tick:      g.tick,
		RunTicks:  g.runTicks,
		Dodged:    g.dodged,
		Obstacles: g.obstacles.Len(),
	}
}

// Snapshot returns a frozen copy of the entities for rendering.
func (g *Game) Snapshot() core.Snapshot {
	live := g.obstacles.Obstacles()
	views := make([]core.EntityView, 0, len(live))
	for _, o := range live {
		views = append(views, core.EntityView{
			ID:       o.ID,
			Asset:    o.Shape.AssetKey(),
			Position: o.Position,
			Rotation: o.Rotation,
			Bounds:   o.Bounds(),
		})
	}

	return core.Snapshot{
		State: g.State(),
		Player: core.EntityView{
			Asset:    PlayerAsset,
			Position: g.player.Position(),
			Bounds:   g.player.Bounds(),
		},
		Obstacles: views,
	}
}

// newVariant returns a factory that builds a game under id, optionally
// forcing a spin mode over the loaded configuration.
func newVariant(id, title, spinMode string) registry.Factory {
	return func(opts registry.Options) (registry.Game, error) {
		cfg := opts.Game
		if spinMode != "" {
			cfg.Timing.SpinMode = spinMode
		}

		rng := opts.Rng
		if rng == nil {
			rng = core.NewRng(opts.Config.Seed)
		}

		start := opts.Start
		if start.IsZero() {
			start = time.Now()
		}

		g, err := New(cfg, rng, start)
		if err != nil {
			return nil, err
		}
		g.id = id
		g.title = title
		return g, nil
	}
}

// Register the variants with the registry
func init() {
	registry.Register("dodger", "Block Dodger", newVariant("dodger", "Block Dodger", ""))
	registry.Register("dodger-smooth", "Block Dodger (smooth spin)", newVariant("dodger-smooth", "Block Dodger (smooth spin)", config.SpinPerDelta))
}
