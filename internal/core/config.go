package core

import "github.com/go-gl/mathgl/mgl64"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the frame pacer
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Phase is the run phase that gates simulation updates.
type Phase int

const (
	PhaseRunning Phase = iota
	PhasePaused
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "Running"
	case PhasePaused:
		return "Paused"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     float64 // Accumulated score; display layers truncate it
	Phase     Phase
	Tick      uint64 // Ticks processed since construction, in any phase
	RunTicks  uint64 // Running ticks since the last reset
	Dodged    int    // Obstacles that reached the despawn boundary this run
	Obstacles int    // Live obstacle count
}

// GameOver reports whether the run has ended.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseGameOver
}

// Paused reports whether the run is paused.
func (s GameState) Paused() bool {
	return s.Phase == PhasePaused
}

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventSpawn EventKind = iota
	EventDespawn
	EventCollision
	EventPause
	EventResume
	EventGameOver
	EventReset
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventSpawn:
		return "spawn"
	case EventDespawn:
		return "despawn"
	case EventCollision:
		return "collision"
	case EventPause:
		return "pause"
	case EventResume:
		return "resume"
	case EventGameOver:
		return "game_over"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Event describes a lifecycle or phase change produced by a tick.
// Entity fields are zero for phase events.
type Event struct {
	Kind     EventKind
	EntityID uint64
	Asset    string
	Position mgl64.Vec3
}

// StepResult is returned by Game.Tick() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// EntityView is the frozen, render-facing view of one entity.
type EntityView struct {
	ID       uint64
	Asset    string
	Position mgl64.Vec3
	Rotation mgl64.Vec3
	Bounds   Box3
}

// Snapshot is what the rendering collaborator reads between ticks.
type Snapshot struct {
	State     GameState
	Player    EntityView
	Obstacles []EntityView
}
