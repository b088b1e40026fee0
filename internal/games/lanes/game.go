package lanes

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/carsamedia/internal/config"
	"github.com/vovakirdan/carsamedia/internal/core"
	"github.com/vovakirdan/carsamedia/internal/registry"
)

// Visual characters for rendering
const (
	CarBody      = '█'
	CarNose      = '▲'
	CarTail      = '▼'
	LaneDash     = '┊'
	ShoulderLine = '│'
)

// Game adapts the Engine to the platform's registry.Game interface.
type Game struct {
	engine   *Engine
	rng      *rand.Rand
	cfg      config.LanesConfig
	runtime  core.RuntimeConfig
	paused   bool
	distance float64 // Total distance scrolled, drives the lane dash animation
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on the next new game.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// New creates a new Lane Racer game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "lanes"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Lane Racer"
}

// Reset starts a new run. The first call builds the engine; later calls
// restart the same engine in place with a fresh seed.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false
	g.distance = 0

	if g.engine == nil {
		cfg, err := config.LoadLanes(configPath)
		if err != nil {
			cfg = config.DefaultLanesConfig()
		}
		if difficultyPreset != "" {
			config.ApplyLanesPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
		g.rng = rand.New(rand.NewSource(runtime.Seed))
		g.engine = NewEngine(cfg, g.rng)
		return
	}

	g.rng.Seed(runtime.Seed)
	g.engine.Restart()
}

// TickInterval returns the configured simulation cadence.
func (g *Game) TickInterval() time.Duration {
	if g.engine == nil {
		return core.DefaultTickInterval
	}
	return g.cfg.TickInterval()
}

// Step applies the frame's input and advances the engine by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.engine.state.GameOver {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Count(core.ActionPause)%2 == 1 {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Actions {
		switch a {
		case core.ActionLeft:
			g.engine.RequestLaneChange(Left)
		case core.ActionRight:
			g.engine.RequestLaneChange(Right)
		}
	}

	g.distance += g.engine.Speed()
	g.engine.Advance()

	return core.StepResult{State: g.State()}
}

// Engine exposes the underlying simulation.
func (g *Game) Engine() *Engine {
	return g.engine
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.engine.state.Score,
		GameOver: g.engine.state.GameOver,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("lanes", func() registry.Game {
		return New()
	})
}
