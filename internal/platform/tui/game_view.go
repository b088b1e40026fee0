package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/carsamedia/internal/audio"
	"github.com/vovakirdan/carsamedia/internal/core"
	"github.com/vovakirdan/carsamedia/internal/registry"
)

// gameStartMsg arms the tick source of a freshly created view.
type gameStartMsg struct{}

// GameView hosts a registry.Game: it collects input between ticks, steps the
// game on every tick and stops scheduling ticks once the run is over.
type GameView struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	sound      *audio.Service
	ticking    bool // A TickMsg is in flight
	active     bool // Visible and allowed to advance
	quitting   bool
}

// NewGameView resets game and returns a view sized to cfg. The view starts
// inactive; Init or Activate arms the tick source.
func NewGameView(game registry.Game, sound *audio.Service, cfg core.RuntimeConfig) GameView {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if sound == nil {
		sound = audio.NewDisabled(nil)
	}

	game.Reset(cfg)

	return GameView{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		keyMapper:  NewKeyMapper(DefaultKeyMap()),
		sound:      sound,
	}
}

// Init starts the game loop.
func (v GameView) Init() tea.Cmd {
	return func() tea.Msg { return gameStartMsg{} }
}

// Activate makes the view visible and re-arms the tick source if the run
// is still going.
func (v GameView) Activate() (GameView, tea.Cmd) {
	v.active = true
	return v.arm()
}

// Deactivate hides the view. The pending tick, if any, is dropped on arrival.
func (v GameView) Deactivate() GameView {
	v.active = false
	v.inputFrame.Clear()
	return v
}

func (v GameView) arm() (GameView, tea.Cmd) {
	if v.ticking || !v.active || v.gameState.GameOver {
		return v, nil
	}
	interval := v.game.TickInterval()
	if interval <= 0 {
		interval = v.config.TickInterval
	}
	if interval <= 0 {
		interval = core.DefaultTickInterval
	}
	v.ticking = true
	return v, tickCmd(interval)
}

// Update handles messages.
func (v GameView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case gameStartMsg:
		return v.Activate()
	case tea.KeyMsg:
		return v.handleKey(msg)
	case tea.WindowSizeMsg:
		v.Resize(msg.Width, msg.Height)
		return v, nil
	case TickMsg:
		return v.handleTick()
	}
	return v, nil
}

// Resize changes the screen buffer. The run continues unchanged.
func (v *GameView) Resize(w, h int) {
	v.config.ScreenW = w
	v.config.ScreenH = h
	v.screen.Resize(w, h)
}

// handleKey processes keyboard input.
func (v GameView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := v.keyMapper.MapKey(msg)
	if isQuit {
		v.quitting = true
		return v, tea.Quit
	}

	switch action {
	case core.ActionRestart:
		if v.gameState.GameOver {
			return v.restart()
		}
	case core.ActionSound:
		v.sound.Toggle()
	case core.ActionLeft, core.ActionRight, core.ActionPause:
		if !v.gameState.GameOver {
			v.inputFrame.Set(action)
		}
	}

	return v, nil
}

// restart begins a new run on the same game and re-arms the tick source.
func (v GameView) restart() (GameView, tea.Cmd) {
	v.config.Seed = time.Now().UnixNano()
	v.game.Reset(v.config)
	v.gameState = v.game.State()
	v.inputFrame.Clear()
	return v.arm()
}

// handleTick processes simulation ticks.
func (v GameView) handleTick() (tea.Model, tea.Cmd) {
	v.ticking = false
	if !v.active || v.gameState.GameOver {
		return v, nil
	}

	result := v.game.Step(v.inputFrame)
	v.gameState = result.State
	v.inputFrame.Clear()

	// No tick after the one that ended the run
	if v.gameState.GameOver {
		return v, nil
	}

	return v.arm()
}

// View renders the game with a controls line at the bottom.
func (v GameView) View() string {
	if v.quitting {
		return ""
	}

	v.game.Render(v.screen)
	if h := v.screen.Height(); h > 0 {
		v.screen.DrawTextColor(1, h-1, v.footer(), core.ColorGray)
	}
	return RenderScreen(v.screen)
}

func (v GameView) footer() string {
	sound := "s: Play Sound"
	switch {
	case !v.sound.Enabled():
		sound = "sound unavailable"
	case v.sound.IsPlaying():
		sound = "s: Stop Sound"
	}
	return fmt.Sprintf("←/→: lanes  p: pause  %s  r: restart  q: quit", sound)
}

// State returns the last observed game state.
func (v GameView) State() core.GameState {
	return v.gameState
}

// Ticking reports whether a tick is scheduled.
func (v GameView) Ticking() bool {
	return v.ticking
}

// IsQuitting returns true if the user asked to quit.
func (v GameView) IsQuitting() bool {
	return v.quitting
}

// RunGame runs a single game full screen.
func RunGame(game registry.Game, sound *audio.Service, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewGameView(game, sound, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
