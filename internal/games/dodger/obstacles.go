package dodger

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/block-dodger/internal/config"
	"github.com/vovakirdan/block-dodger/internal/core"
)

// Player is the single actor the user steers along x.
type Player struct {
	X    float64
	Y    float64 // Fixed
	Size float64
}

// Position returns the player's world position.
func (p Player) Position() mgl64.Vec3 {
	return mgl64.Vec3{p.X, p.Y, 0}
}

// Bounds returns the player's collision box.
func (p Player) Bounds() core.Box3 {
	h := p.Size / 2
	return core.BoxFromCenter(p.Position(), mgl64.Vec3{h, h, h})
}

// Obstacle is a falling, spinning entity.
type Obstacle struct {
	ID       uint64
	Shape    Shape
	Position mgl64.Vec3
	Velocity mgl64.Vec3 // Units per reference frame; y is negative
	Spin     mgl64.Vec3 // Radians per tick on each axis, fixed at spawn
	Rotation mgl64.Vec3 // Accumulated Euler angles (XYZ)
}

// Bounds returns the obstacle's world-space collision box.
func (o Obstacle) Bounds() core.Box3 {
	return o.Shape.WorldBounds(o.Position, o.Rotation)
}

// SweepResult reports the obstacles removed during one sweep.
type SweepResult struct {
	Despawned []Obstacle
	Hit       *Obstacle // First obstacle found touching the player, already removed
}

// ObstacleManager owns the live obstacles in spawn order and handles
// spawning, movement, despawn, and collision against the player.
type ObstacleManager struct {
	obstacles []Obstacle
	rng       core.RngSource
	cfg       *config.DodgerConfig
	nextID    uint64
}

// NewObstacleManager creates an obstacle manager drawing from rng.
func NewObstacleManager(rng core.RngSource, cfg *config.DodgerConfig) *ObstacleManager {
	return &ObstacleManager{
		obstacles: make([]Obstacle, 0, 32),
		rng:       rng,
		cfg:       cfg,
		nextID:    1,
	}
}

// Reset clears all obstacles. IDs keep increasing across resets.
func (om *ObstacleManager) Reset() {
	om.obstacles = om.obstacles[:0]
}

// Spawn creates one obstacle at the top of the field falling at fallSpeed.
// Random draws happen in a fixed order: shape, x, then spin x, y, z.
func (om *ObstacleManager) Spawn(fallSpeed float64) Obstacle {
	shape := ShapeFromUnit(om.rng.Float64())
	x := om.uniform(om.cfg.Obstacles.SpawnRange)
	sx := om.uniform(om.cfg.Obstacles.MaxSpin)
	sy := om.uniform(om.cfg.Obstacles.MaxSpin)
	sz := om.uniform(om.cfg.Obstacles.MaxSpin)

	o := Obstacle{
		ID:       om.nextID,
		Shape:    shape,
		Position: mgl64.Vec3{x, om.cfg.Obstacles.SpawnY, 0},
		Velocity: mgl64.Vec3{0, -fallSpeed, 0},
		Spin:     mgl64.Vec3{sx, sy, sz},
	}
	om.nextID++

	om.obstacles = append(om.obstacles, o)
	return o
}

// uniform draws a value in [-r, r).
func (om *ObstacleManager) uniform(r float64) float64 {
	return (om.rng.Float64() - 0.5) * 2 * r
}

// Sweep advances every obstacle by delta seconds, then in registry order
// removes it if it fell past the despawn boundary, or if it is the first
// one this sweep to touch player. Later obstacles still move and despawn
// but are not tested against the player once a hit has been found.
func (om *ObstacleManager) Sweep(delta float64, player core.Box3) SweepResult {
	var res SweepResult

	step := delta * om.cfg.Timing.ReferenceFPS
	spinStep := 1.0
	if om.cfg.Timing.SpinMode == config.SpinPerDelta {
		spinStep = step
	}

	kept := om.obstacles[:0]
	for _, o := range om.obstacles {
		o.Position = o.Position.Add(o.Velocity.Mul(step))
		o.Rotation = o.Rotation.Add(o.Spin.Mul(spinStep))

		if o.Position.Y() < om.cfg.Obstacles.DespawnY {
			res.Despawned = append(res.Despawned, o)
			continue
		}

		if res.Hit == nil && o.Bounds().Intersects(player) {
			hit := o
			res.Hit = &hit
			continue
		}

		kept = append(kept, o)
	}
	om.obstacles = kept

	return res
}

// Obstacles returns the live obstacles in spawn order.
// The slice is owned by the manager and must not be modified.
func (om *ObstacleManager) Obstacles() []Obstacle {
	return om.obstacles
}

// Len returns the number of live obstacles.
func (om *ObstacleManager) Len() int {
	return len(om.obstacles)
}
