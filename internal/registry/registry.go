// Package registry provides a global registry for game factories.
// Game variants register themselves in init() functions, allowing the
// platform to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/block-dodger/internal/config"
	"github.com/vovakirdan/block-dodger/internal/core"
)

// Game is the interface the platform drives once per rendered frame.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, frame pacing, and rendering.
type Game interface {
	// ID returns a unique identifier for this variant (e.g., "dodger").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Tick advances the simulation to now using the sampled input.
	// The delta is measured against the previous call's timestamp.
	Tick(now time.Time, in core.InputFrame) core.StepResult

	// Reset clears the run and returns to the running phase.
	Reset()

	// State returns the current game state.
	State() core.GameState

	// Snapshot returns a frozen view for the rendering collaborator.
	Snapshot() core.Snapshot
}

// Options carries everything a factory needs to build a game.
type Options struct {
	Config core.RuntimeConfig
	Game   config.DodgerConfig
	Rng    core.RngSource // nil means seed from Config.Seed
	Start  time.Time      // Timestamp the first delta is measured from
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game.
// It returns an error when the options describe an unusable game.
type Factory func(opts Options) (Game, error)

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered or the factory fails.
func Create(id string, opts Options) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	g, err := f(opts)
	if err != nil {
		return nil, fmt.Errorf("registry: cannot create %q: %w", id, err)
	}
	return g, nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
