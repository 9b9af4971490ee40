package dodger

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/block-dodger/internal/config"
	"github.com/vovakirdan/block-dodger/internal/core"
)

func newTestManager(vals []float64) *ObstacleManager {
	cfg := config.DefaultDodgerConfig()
	return NewObstacleManager(&seqRng{vals: vals}, &cfg)
}

func TestSpawnDrawOrder(t *testing.T) {
	// shape, x, spin x, spin y, spin z
	om := newTestManager([]float64{0.5, 0.25, 0, 0.75, 1})

	o := om.Spawn(0.08)

	if o.Shape != ShapeSphere {
		t.Errorf("shape = %v, expected sphere", o.Shape)
	}
	if !o.Position.ApproxEqual(mgl64.Vec3{-3, 15, 0}) {
		t.Errorf("position = %v, expected (-3, 15, 0)", o.Position)
	}
	if !o.Spin.ApproxEqual(mgl64.Vec3{-0.025, 0.0125, 0.025}) {
		t.Errorf("spin = %v, expected (-0.025, 0.0125, 0.025)", o.Spin)
	}
	if o.Rotation != (mgl64.Vec3{}) {
		t.Errorf("rotation = %v, expected zero", o.Rotation)
	}
}

func TestSpawnIDsSurviveReset(t *testing.T) {
	om := newTestManager(rngFarRight)

	first := om.Spawn(0.08)
	second := om.Spawn(0.08)
	om.Reset()
	third := om.Spawn(0.08)

	if first.ID != 1 || second.ID != 2 {
		t.Errorf("ids = %d, %d, expected 1, 2", first.ID, second.ID)
	}
	if third.ID != 3 {
		t.Errorf("id after reset = %d, expected 3", third.ID)
	}
	if om.Len() != 1 {
		t.Errorf("len = %d, expected 1", om.Len())
	}
}

func TestSweepMovesAndDespawns(t *testing.T) {
	om := newTestManager(rngFarRight)
	om.obstacles = []Obstacle{
		{ID: 1, Position: mgl64.Vec3{0, 10, 0}, Velocity: mgl64.Vec3{0, -0.08, 0}},
		{ID: 2, Position: mgl64.Vec3{0, -3.9, 0}, Velocity: mgl64.Vec3{0, -0.08, 0}},
		{ID: 3, Position: mgl64.Vec3{3, -3.99, 0}, Velocity: mgl64.Vec3{0, -0.08, 0}},
	}
	far := core.BoxFromCenter(mgl64.Vec3{-6, -3.5, 0}, mgl64.Vec3{0.5, 0.5, 0.5})

	// 0.1s at 60fps moves each obstacle 0.48 down
	res := om.Sweep(0.1, far)

	if res.Hit != nil {
		t.Fatalf("unexpected hit on %d", res.Hit.ID)
	}
	if len(res.Despawned) != 2 {
		t.Fatalf("expected 2 despawns, got %d", len(res.Despawned))
	}
	if res.Despawned[0].ID != 2 || res.Despawned[1].ID != 3 {
		t.Errorf("despawn order = %d, %d, expected 2, 3", res.Despawned[0].ID, res.Despawned[1].ID)
	}

	live := om.Obstacles()
	if len(live) != 1 || live[0].ID != 1 {
		t.Fatalf("expected only obstacle 1 to remain, got %v", live)
	}
	if !live[0].Position.ApproxEqual(mgl64.Vec3{0, 9.52, 0}) {
		t.Errorf("position = %v, expected (0, 9.52, 0)", live[0].Position)
	}
}

func TestSweepTouchingCountsAsHit(t *testing.T) {
	om := newTestManager(rngFarRight)
	// Box bottom exactly meets the player's top after a zero-length step
	om.obstacles = []Obstacle{{ID: 4, Shape: ShapeBox, Position: mgl64.Vec3{0, -2.5, 0}}}
	player := Player{Y: -3.5, Size: 1}

	res := om.Sweep(0, player.Bounds())

	if res.Hit == nil || res.Hit.ID != 4 {
		t.Fatalf("touching boxes should collide, got %+v", res.Hit)
	}
	if om.Len() != 0 {
		t.Errorf("colliding obstacle should be removed, %d left", om.Len())
	}
}

func TestSweepLaterObstaclesKeepMoving(t *testing.T) {
	om := newTestManager(rngFarRight)
	om.obstacles = []Obstacle{
		{ID: 1, Shape: ShapeBox, Position: mgl64.Vec3{0, -3.5, 0}},
		{ID: 2, Shape: ShapeBox, Position: mgl64.Vec3{0, -3.5, 0}},
		{ID: 3, Shape: ShapeBox, Position: mgl64.Vec3{4, -3.9, 0}, Velocity: mgl64.Vec3{0, -0.08, 0}},
		{ID: 4, Shape: ShapeBox, Position: mgl64.Vec3{4, 5, 0}, Velocity: mgl64.Vec3{0, -0.08, 0}, Spin: mgl64.Vec3{0.01, 0, 0}},
	}
	player := Player{Y: -3.5, Size: 1}

	res := om.Sweep(0.1, player.Bounds())

	if res.Hit == nil || res.Hit.ID != 1 {
		t.Fatalf("expected hit on obstacle 1, got %+v", res.Hit)
	}
	if len(res.Despawned) != 1 || res.Despawned[0].ID != 3 {
		t.Errorf("obstacle 3 should still despawn after the hit, got %v", res.Despawned)
	}

	live := om.Obstacles()
	if len(live) != 2 || live[0].ID != 2 || live[1].ID != 4 {
		t.Fatalf("expected obstacles 2 and 4 to remain, got %v", live)
	}
	if !live[1].Position.ApproxEqual(mgl64.Vec3{4, 4.52, 0}) {
		t.Errorf("obstacle 4 should have moved, at %v", live[1].Position)
	}
	if !live[1].Rotation.ApproxEqual(mgl64.Vec3{0.01, 0, 0}) {
		t.Errorf("obstacle 4 should have spun one step, at %v", live[1].Rotation)
	}
}
