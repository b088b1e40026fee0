package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/carsamedia/internal/profile"
)

// Thumbnail size on the welcome screen, in cells.
const (
	photoW = 20
	photoH = 10
)

type (
	openPickerMsg struct{}
	getStartedMsg struct{}
)

type welcomeButton int

const (
	buttonChangePicture welcomeButton = iota
	buttonGetStarted
)

// WelcomeModel greets the user and shows their profile photo.
type WelcomeModel struct {
	images  *profile.ImageStore
	keys    KeyMap
	photo   []string
	canPick bool
	cursor  welcomeButton
}

// NewWelcomeModel creates the welcome screen. canPick enables the
// Change Picture button.
func NewWelcomeModel(keys KeyMap, images *profile.ImageStore, canPick bool) WelcomeModel {
	m := WelcomeModel{
		images:  images,
		keys:    keys,
		canPick: canPick,
		cursor:  buttonGetStarted,
	}
	m.Refresh()
	return m
}

// Refresh reloads the photo from the image store.
func (m *WelcomeModel) Refresh() {
	m.photo = profile.Thumbnail(m.images.Load(), photoW, photoH)
}

// Update moves between the buttons and activates them.
func (m WelcomeModel) Update(msg tea.Msg) (WelcomeModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up, m.keys.Left):
		if m.canPick {
			m.cursor = buttonChangePicture
		}
	case key.Matches(keyMsg, m.keys.Down, m.keys.Right):
		m.cursor = buttonGetStarted
	case key.Matches(keyMsg, m.keys.Select):
		if m.cursor == buttonChangePicture && m.canPick {
			return m, func() tea.Msg { return openPickerMsg{} }
		}
		return m, func() tea.Msg { return getStartedMsg{} }
	}
	return m, nil
}

// View renders the greeting, photo and buttons.
func (m WelcomeModel) View(t Theme, width int, username string) string {
	parts := []string{
		t.Title.Render(fmt.Sprintf("Welcome %s", username)),
		"",
		t.Subtle.Render(fmt.Sprintf("Logged in with %s", username)),
		"",
		t.Card.Render(strings.Join(m.photo, "\n")),
		"",
	}

	var buttons []string
	if m.canPick {
		buttons = append(buttons, t.button("Change Picture", m.cursor == buttonChangePicture))
	}
	buttons = append(buttons, t.button("Get Started →", m.cursor == buttonGetStarted))
	parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Center, buttons...))

	block := lipgloss.JoinVertical(lipgloss.Center, parts...)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}
