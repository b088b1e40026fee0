package lanes

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/carsamedia/internal/config"
)

// scriptedRand replays fixed lanes and fractions, cycling when exhausted.
type scriptedRand struct {
	ints   []int
	floats []float64
	i, f   int
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.i%len(r.ints)] % n
	r.i++
	return v
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[r.f%len(r.floats)]
	r.f++
	return v
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return NewEngine(config.DefaultLanesConfig(), rand.New(rand.NewSource(7)))
}

// park moves every obstacle far above the field in lane 0.
func park(e *Engine) {
	for i := range e.state.Obstacles {
		e.state.Obstacles[i].Lane = 0
		e.state.Obstacles[i].Y = -5000
	}
}

func assertSpawned(t *testing.T, e *Engine) {
	t.Helper()
	cfg := e.Config()
	if len(e.state.Obstacles) != cfg.Lanes.ObstacleCount {
		t.Fatalf("expected %d obstacles, got %d", cfg.Lanes.ObstacleCount, len(e.state.Obstacles))
	}
	for i, o := range e.state.Obstacles {
		if o.Lane < 0 || o.Lane >= cfg.Lanes.Count {
			t.Errorf("obstacle %d lane %d out of range", i, o.Lane)
		}
		if o.Y < cfg.Spawn.MinY || o.Y > cfg.Spawn.MaxY {
			t.Errorf("obstacle %d y %v outside spawn range", i, o.Y)
		}
	}
}

func TestSetupSpawnsObstacles(t *testing.T) {
	e := newTestEngine(t)

	assertSpawned(t, e)
	if e.state.PlayerLane != 1 {
		t.Errorf("player should start in lane 1, got %d", e.state.PlayerLane)
	}
	if e.state.Score != 0 || e.state.GameOver {
		t.Errorf("new engine should be active with zero score, got %+v", e.state)
	}

	seen := make(map[string]bool)
	for _, o := range e.state.Obstacles {
		if seen[o.ID.String()] {
			t.Errorf("duplicate obstacle ID %s", o.ID)
		}
		seen[o.ID.String()] = true
	}
}

func TestSetupAllowsSharedLanes(t *testing.T) {
	rng := &scriptedRand{ints: []int{2}, floats: []float64{0.5}}
	e := NewEngine(config.DefaultLanesConfig(), rng)

	for _, o := range e.state.Obstacles {
		if o.Lane != 2 || o.Y != -350 {
			t.Errorf("expected every obstacle at lane 2 y -350, got lane %d y %v", o.Lane, o.Y)
		}
	}
}

func TestLaneChangeClamping(t *testing.T) {
	e := newTestEngine(t)

	e.RequestLaneChange(Left)
	e.RequestLaneChange(Left)
	e.RequestLaneChange(Left)
	if e.state.PlayerLane != 0 {
		t.Errorf("three lefts from lane 1 should stop at 0, got %d", e.state.PlayerLane)
	}

	for i := 0; i < 5; i++ {
		e.RequestLaneChange(Right)
	}
	if e.state.PlayerLane != 2 {
		t.Errorf("rights should stop at lane 2, got %d", e.state.PlayerLane)
	}

	// Any sequence stays in range
	seq := rand.New(rand.NewSource(99))
	for i := 0; i < 500; i++ {
		e.RequestLaneChange(Direction(seq.Intn(2)))
		if e.state.PlayerLane < 0 || e.state.PlayerLane > 2 {
			t.Fatalf("lane %d escaped [0, 3) after %d requests", e.state.PlayerLane, i)
		}
	}
}

func TestLaneChangeDuringGameOver(t *testing.T) {
	e := newTestEngine(t)
	e.state.GameOver = true

	e.RequestLaneChange(Left)
	if e.state.PlayerLane != 0 {
		t.Errorf("lane change should still apply after game over, got lane %d", e.state.PlayerLane)
	}
}

func TestAdvanceMovesBySpeed(t *testing.T) {
	e := newTestEngine(t)
	park(e)
	e.state.Score = 10

	want := 6 + 10*0.3
	if got := e.Speed(); got != want {
		t.Fatalf("Speed() = %v, expected %v", got, want)
	}

	e.Advance()
	for i, o := range e.state.Obstacles {
		if o.Y != -5000+want {
			t.Errorf("obstacle %d y = %v, expected %v", i, o.Y, -5000+want)
		}
	}
}

func TestCollisionAtZeroOffset(t *testing.T) {
	e := newTestEngine(t)
	park(e)
	cfg := e.Config()

	e.state.PlayerLane = 2
	e.state.Obstacles[0].Lane = 2
	e.state.Obstacles[0].Y = cfg.PlayerY() - e.Speed()

	if e.Advance() {
		t.Error("Advance() should report the run as over")
	}
	if !e.state.GameOver {
		t.Error("aligned obstacle in the player's lane should end the game")
	}
}

func TestCollisionEdges(t *testing.T) {
	cfg := config.DefaultLanesConfig()
	tests := []struct {
		name     string
		offset   float64 // Obstacle y minus player y after the move
		expected bool
	}{
		{"touching from above", -cfg.Entity.Height, true},
		{"just above", -cfg.Entity.Height - 0.5, false},
		{"touching from below", cfg.Entity.Height, true},
		{"just below", cfg.Entity.Height + 0.5, false},
		{"half overlap", -cfg.HalfHeight(), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEngine(t)
			park(e)
			e.state.Obstacles[0].Lane = e.state.PlayerLane
			e.state.Obstacles[0].Y = cfg.PlayerY() + tc.offset - e.Speed()

			e.Advance()
			if e.state.GameOver != tc.expected {
				t.Errorf("GameOver = %v, expected %v", e.state.GameOver, tc.expected)
			}
		})
	}
}

func TestNoCollisionAcrossLanes(t *testing.T) {
	e := newTestEngine(t)
	park(e)
	cfg := e.Config()

	for lane := 0; lane < cfg.Lanes.Count; lane++ {
		if lane == e.state.PlayerLane {
			continue
		}
		e.state.Obstacles[lane].Lane = lane
		e.state.Obstacles[lane].Y = cfg.PlayerY() - e.Speed()
	}

	e.Advance()
	if e.state.GameOver {
		t.Error("obstacles in other lanes must never end the game")
	}
}

func TestGameOverLatch(t *testing.T) {
	e := newTestEngine(t)
	e.state.Obstacles[0].Lane = e.state.PlayerLane
	e.state.Obstacles[0].Y = e.Config().PlayerY() - e.Speed()
	e.Advance()
	if !e.state.GameOver {
		t.Fatal("setup collision did not end the game")
	}

	before := e.State()
	for i := 0; i < 100; i++ {
		if e.Advance() {
			t.Fatal("Advance() reported active after game over")
		}
	}
	after := e.State()

	if after.Score != before.Score || after.PlayerLane != before.PlayerLane {
		t.Errorf("state changed after game over: before %+v after %+v", before, after)
	}
	for i := range before.Obstacles {
		if before.Obstacles[i] != after.Obstacles[i] {
			t.Errorf("obstacle %d moved after game over", i)
		}
	}
}

func TestRecycleBoundary(t *testing.T) {
	cfg := config.DefaultLanesConfig()
	rng := &scriptedRand{ints: []int{0}, floats: []float64{0.25}}
	e := NewEngine(cfg, rng)
	park(e)

	// Lands exactly on the threshold: stays
	e.state.Obstacles[0].Lane = 2
	e.state.Obstacles[0].Y = cfg.DespawnY() - e.Speed()
	e.state.PlayerLane = 0
	e.Advance()

	if e.state.Obstacles[0].Y != cfg.DespawnY() {
		t.Errorf("obstacle at threshold should not recycle, y = %v", e.state.Obstacles[0].Y)
	}
	if e.state.Score != 0 {
		t.Errorf("score should stay 0, got %d", e.state.Score)
	}

	// One unit past the threshold: recycles once
	id := e.state.Obstacles[0].ID
	e.state.Obstacles[0].Y = cfg.DespawnY() + 1 - e.Speed()
	e.Advance()

	o := e.state.Obstacles[0]
	if e.state.Score != 1 {
		t.Errorf("recycle should score exactly 1, got %d", e.state.Score)
	}
	if o.Y != -475 {
		t.Errorf("recycled y = %v, expected -475", o.Y)
	}
	if o.Lane != 0 {
		t.Errorf("recycled lane = %d, expected 0", o.Lane)
	}
	if o.ID != id {
		t.Error("recycling must keep the obstacle identity")
	}
}

func TestScoreMonotonic(t *testing.T) {
	e := newTestEngine(t)
	last := 0
	for i := 0; i < 5000; i++ {
		active := e.Advance()
		if e.state.Score < last {
			t.Fatalf("score decreased from %d to %d", last, e.state.Score)
		}
		if !active && e.state.GameOver {
			frozen := e.state.Score
			e.Advance()
			if e.state.Score != frozen {
				t.Fatal("score changed after game over")
			}
			break
		}
		last = e.state.Score
	}
}

func TestRecycleAfterCollisionStillScores(t *testing.T) {
	cfg := config.DefaultLanesConfig()
	e := NewEngine(cfg, &scriptedRand{ints: []int{0}, floats: []float64{0}})
	park(e)
	e.state.PlayerLane = 1

	// First obstacle collides, second passes the threshold in the same pass
	e.state.Obstacles[0].Lane = 1
	e.state.Obstacles[0].Y = cfg.PlayerY() - e.Speed()
	e.state.Obstacles[1].Lane = 2
	e.state.Obstacles[1].Y = cfg.DespawnY()

	e.Advance()

	if !e.state.GameOver {
		t.Fatal("expected collision")
	}
	if e.state.Score != 1 {
		t.Errorf("recycle later in the colliding pass should still score, got %d", e.state.Score)
	}
}

func TestRestartResetsInPlace(t *testing.T) {
	e := newTestEngine(t)
	e.state.Score = 42
	e.state.GameOver = true
	e.state.PlayerLane = 0
	e.state.Obstacles[0].Y = 900

	e.Restart()

	if e.state.Score != 0 || e.state.GameOver || e.state.PlayerLane != 1 {
		t.Errorf("Restart() left %+v", e.state)
	}
	assertSpawned(t, e)

	// Spawned obstacles are above the field, the first tick cannot collide
	if !e.Advance() {
		t.Error("first tick after restart should be active")
	}
}

func TestStateReturnsCopy(t *testing.T) {
	e := newTestEngine(t)
	s := e.State()
	s.Obstacles[0].Y = 12345

	if e.state.Obstacles[0].Y == 12345 {
		t.Error("State() must not expose the engine's obstacle slice")
	}
}
