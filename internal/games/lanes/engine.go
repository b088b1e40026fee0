// Package lanes implements Lane Racer, a three-lane obstacle dodging game.
// The player car sits near the bottom of the field and changes lanes while
// enemy cars fall towards it, faster with every point scored.
package lanes

import (
	"github.com/google/uuid"

	"github.com/vovakirdan/carsamedia/internal/config"
	"github.com/vovakirdan/carsamedia/internal/core"
)

// Rand is the random source the engine draws spawn lanes and heights from.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Direction is a lane change request from the player.
type Direction int

const (
	Left Direction = iota
	Right
)

// Obstacle is an enemy car. Its ID survives recycling.
type Obstacle struct {
	ID   uuid.UUID
	Lane int
	Y    float64 // Vertical center, negative = above the visible field
}

// State is a snapshot of one run.
type State struct {
	Obstacles  []Obstacle
	PlayerLane int
	Score      int
	GameOver   bool
}

// Engine owns the simulation state and advances it one tick at a time.
// It is not safe for concurrent use; the platform drives it from one goroutine.
type Engine struct {
	cfg   config.LanesConfig
	rng   Rand
	state State
}

// NewEngine creates an engine with the player in the center lane and a
// freshly spawned set of obstacles.
func NewEngine(cfg config.LanesConfig, rng Rand) *Engine {
	e := &Engine{
		cfg: cfg,
		rng: rng,
		state: State{
			Obstacles:  make([]Obstacle, 0, cfg.Lanes.ObstacleCount),
			PlayerLane: cfg.CenterLane(),
		},
	}
	e.Setup()
	return e
}

// Setup clears the obstacles and spawns ObstacleCount new ones, each with an
// independent random lane and height. Obstacles may share a lane.
func (e *Engine) Setup() {
	e.state.Obstacles = e.state.Obstacles[:0]
	for i := 0; i < e.cfg.Lanes.ObstacleCount; i++ {
		o := Obstacle{ID: uuid.New()}
		e.respawn(&o)
		e.state.Obstacles = append(e.state.Obstacles, o)
	}
}

// RequestLaneChange moves the player one lane, clamped to the road.
// It is accepted during game over but has no visible effect there.
func (e *Engine) RequestLaneChange(d Direction) {
	switch d {
	case Left:
		if e.state.PlayerLane > 0 {
			e.state.PlayerLane--
		}
	case Right:
		if e.state.PlayerLane < e.cfg.Lanes.Count-1 {
			e.state.PlayerLane++
		}
	}
}

// Speed returns the distance obstacles travel on the next tick.
func (e *Engine) Speed() float64 {
	return e.cfg.Speed.Base + float64(e.state.Score)*e.cfg.Speed.PerPoint
}

// Advance runs one tick and reports whether the run is still active.
//
// Once a collision is detected the remaining obstacles of the same pass are
// still moved and recycled, and their recycles still score. Only entry to
// Advance is gated on game over.
func (e *Engine) Advance() bool {
	if e.state.GameOver {
		return false
	}

	speed := e.Speed()
	player := core.SpanAround(e.cfg.PlayerY(), e.cfg.HalfHeight())
	despawnY := e.cfg.DespawnY()

	for i := range e.state.Obstacles {
		o := &e.state.Obstacles[i]
		o.Y += speed

		if o.Lane == e.state.PlayerLane && player.Overlaps(core.SpanAround(o.Y, e.cfg.HalfHeight())) {
			e.state.GameOver = true
		}

		if o.Y > despawnY {
			e.respawn(o)
			e.state.Score++
		}
	}

	return !e.state.GameOver
}

// Restart resets the run in place: center lane, zero score, new obstacles.
func (e *Engine) Restart() {
	e.state.PlayerLane = e.cfg.CenterLane()
	e.state.Score = 0
	e.state.GameOver = false
	e.Setup()
}

// State returns a copy of the current state for the presentation layer.
func (e *Engine) State() State {
	s := e.state
	s.Obstacles = append([]Obstacle(nil), e.state.Obstacles...)
	return s
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() config.LanesConfig {
	return e.cfg
}

// respawn places an obstacle at a random lane and height in the spawn range.
func (e *Engine) respawn(o *Obstacle) {
	o.Lane = e.rng.Intn(e.cfg.Lanes.Count)
	o.Y = e.cfg.Spawn.MinY + e.rng.Float64()*(e.cfg.Spawn.MaxY-e.cfg.Spawn.MinY)
}
