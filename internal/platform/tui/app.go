package tui

import (
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/carsamedia/internal/audio"
	"github.com/vovakirdan/carsamedia/internal/config"
	"github.com/vovakirdan/carsamedia/internal/core"
	"github.com/vovakirdan/carsamedia/internal/profile"
	"github.com/vovakirdan/carsamedia/internal/registry"
)

// Stage is the part of the flow the user is in.
type Stage int

const (
	StageLogin Stage = iota
	StageWelcome
	StagePicker
	StageTabs
)

// Tab indexes.
const (
	TabProfile = iota
	TabGame
	TabSettings
)

var tabTitles = []string{"Profile", "Game", "Settings"}

// Rows taken by the tab bar and the help line.
const (
	tabBarRows = 2
	helpRows   = 1
)

// AppOptions wires the collaborators of the app shell.
type AppOptions struct {
	Game        registry.Game
	Images      *profile.ImageStore
	Sound       *audio.Service
	Config      config.AppConfig
	Runtime     core.RuntimeConfig
	PhotoPicker bool   // Allow choosing a photo from the local disk
	PhotoDir    string // Picker start directory, home when empty
	Logger      *log.Logger
}

// AppModel is the top-level model: login, welcome, photo picker and the
// Profile / Game / Settings tabs.
type AppModel struct {
	opts     AppOptions
	keys     KeyMap
	help     help.Model
	theme    Theme
	session  *profile.Session
	logger   *log.Logger
	stage    Stage
	tab      int
	login    LoginModel
	welcome  WelcomeModel
	picker   PhotoPicker
	profile  ProfileTab
	game     GameView
	settings SettingsModel
	width    int
	height   int
	slideGen int
	quitting bool
}

// NewAppModel creates the app at the login screen.
func NewAppModel(opts AppOptions) AppModel {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Images == nil {
		opts.Images = profile.NewImageStore(nil, opts.Logger)
	}
	if opts.Sound == nil {
		opts.Sound = audio.NewDisabled(opts.Logger)
	}
	if opts.Runtime.ScreenW <= 0 {
		opts.Runtime.ScreenW = 80
	}
	if opts.Runtime.ScreenH <= 0 {
		opts.Runtime.ScreenH = 24
	}

	keys := DefaultKeyMap()
	session := &profile.Session{}

	gameCfg := opts.Runtime
	gameCfg.ScreenH = max(opts.Runtime.ScreenH-tabBarRows-helpRows, 1)

	return AppModel{
		opts:     opts,
		keys:     keys,
		help:     help.New(),
		theme:    ThemeFor(opts.Config.Appearance.DarkMode),
		session:  session,
		logger:   opts.Logger,
		login:    NewLoginModel(session),
		welcome:  NewWelcomeModel(keys, opts.Images, opts.PhotoPicker),
		picker:   NewPhotoPicker(opts.Images, opts.PhotoDir),
		profile:  NewProfileTab(keys),
		game:     NewGameView(opts.Game, opts.Sound, gameCfg),
		settings: NewSettingsModel(keys, opts.Config),
		width:    opts.Runtime.ScreenW,
		height:   opts.Runtime.ScreenH,
	}
}

// Init starts the login form.
func (m AppModel) Init() tea.Cmd {
	return m.login.Init()
}

// Update routes messages to the active stage.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case signedInMsg:
		m.logger.Info("signed in", "user", m.session.Username())
		m.stage = StageWelcome
		m.welcome.Refresh()
		return m, nil

	case openPickerMsg:
		m.stage = StagePicker
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Open(m.width, m.height)
		return m, cmd

	case photoDoneMsg:
		m.stage = StageWelcome
		if msg.changed {
			m.logger.Info("profile photo changed")
			m.welcome.Refresh()
		}
		return m, nil

	case getStartedMsg:
		m.stage = StageTabs
		m.slideGen++
		return m.switchTab(TabProfile, slideTickCmd(m.opts.Config.Slideshow.Interval(), m.slideGen))

	case signOutMsg:
		return m.signOut()

	case themeChangedMsg:
		m.theme = ThemeFor(msg.dark)
		return m, nil

	case slideTickMsg:
		if msg.gen != m.slideGen || m.stage != StageTabs {
			return m, nil
		}
		m.profile = m.profile.Advance()
		return m, slideTickCmd(m.opts.Config.Slideshow.Interval(), m.slideGen)

	case TickMsg, gameStartMsg:
		return m.updateGame(msg)
	}

	// Cursor blinks, directory listings
	switch m.stage {
	case StageLogin:
		var cmd tea.Cmd
		m.login, cmd = m.login.Update(msg)
		return m, cmd
	case StagePicker:
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m AppModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.game.Resize(msg.Width, max(msg.Height-tabBarRows-helpRows, 1))

	if m.stage == StagePicker {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	switch m.stage {
	case StageLogin:
		m.login, cmd = m.login.Update(msg)
		return m, cmd

	case StagePicker:
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd

	case StageWelcome:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		m.welcome, cmd = m.welcome.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.opts.Sound.Stop()
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextTab):
		return m.switchTab((m.tab+1)%len(tabTitles), nil)
	case key.Matches(msg, m.keys.PrevTab):
		return m.switchTab((m.tab+len(tabTitles)-1)%len(tabTitles), nil)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch m.tab {
	case TabProfile:
		m.profile, cmd = m.profile.Update(msg)
	case TabGame:
		return m.updateGame(msg)
	case TabSettings:
		m.settings, cmd = m.settings.Update(msg)
	}
	return m, cmd
}

func (m AppModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if v, ok := next.(GameView); ok {
		m.game = v
	}
	return m, cmd
}

// switchTab changes the visible tab. Only the Game tab advances the game.
func (m AppModel) switchTab(tab int, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if m.tab == TabGame && tab != TabGame {
		m.game = m.game.Deactivate()
	}
	m.tab = tab

	var gameCmd tea.Cmd
	if tab == TabGame {
		m.game, gameCmd = m.game.Activate()
	}
	return m, tea.Batch(cmd, gameCmd)
}

// signOut returns to the login screen. The game run is kept for the next
// sign-in but stops advancing.
func (m AppModel) signOut() (tea.Model, tea.Cmd) {
	m.logger.Info("signed out", "user", m.session.Username())
	m.session.SignOut()
	m.opts.Sound.Stop()

	m.game = m.game.Deactivate()
	m.settings = m.settings.Reset()
	m.slideGen++
	m.stage = StageLogin
	m.tab = TabProfile
	m.login = NewLoginModel(m.session)
	return m, m.login.Init()
}

// View renders the active stage.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	t := m.theme
	switch m.stage {
	case StageLogin:
		return m.center(m.login.View(t, m.width))
	case StageWelcome:
		return m.center(m.welcome.View(t, m.width, m.session.Username()))
	case StagePicker:
		return m.picker.View(t, m.width)
	}

	var content string
	switch m.tab {
	case TabProfile:
		content = m.profile.View(t, m.width)
	case TabGame:
		content = m.game.View()
	case TabSettings:
		content = m.settings.View(t, m.width)
	}

	bodyH := max(m.height-tabBarRows-helpRows, 1)
	body := lipgloss.NewStyle().Height(bodyH).MaxHeight(bodyH).Render(content)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.tabBar(),
		body,
		m.help.View(m.helpKeys()),
	)
}

func (m AppModel) center(s string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, s)
}

func (m AppModel) tabBar() string {
	tabs := make([]string, len(tabTitles))
	for i, title := range tabTitles {
		if i == m.tab {
			tabs[i] = m.theme.TabActive.Render(title)
		} else {
			tabs[i] = m.theme.TabInactive.Render(title)
		}
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	rule := m.theme.TabGap.Render(strings.Repeat("─", max(m.width, 0)))
	return lipgloss.JoinVertical(lipgloss.Left, bar, rule)
}

// helpKeys returns the bindings relevant to the visible tab.
func (m AppModel) helpKeys() help.KeyMap {
	k := m.keys
	switch m.tab {
	case TabProfile:
		signOut := k.Select
		signOut.SetHelp("enter", "sign out")
		return bindings{k.Left, k.Right, signOut, k.NextTab, k.Quit}
	case TabGame:
		return bindings{k.Left, k.Right, k.Pause, k.Sound, k.Restart, k.NextTab, k.Quit}
	default:
		if m.settings.InPage() {
			return bindings{k.Back, k.NextTab, k.Quit}
		}
		return bindings{k.Up, k.Down, k.Select, k.NextTab, k.Quit}
	}
}

// Stage returns the current stage.
func (m AppModel) Stage() Stage {
	return m.stage
}

// Tab returns the visible tab.
func (m AppModel) Tab() int {
	return m.tab
}

// RunApp starts the full app in the local terminal.
func RunApp(opts AppOptions) error {
	p := tea.NewProgram(
		NewAppModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
