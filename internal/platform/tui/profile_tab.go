package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/carsamedia/internal/facts"
)

// signOutMsg returns the app to the login screen.
type signOutMsg struct{}

// carArt is the slide illustration.
const carArt = `      ______
 ____//__][__\___
|  _   carsa   _  |
'-(_)--------(_)-'`

// ProfileTab shows the banner, the car slideshow and the Sign Out button.
type ProfileTab struct {
	slides *facts.Slideshow
	pager  paginator.Model
	keys   KeyMap
}

// NewProfileTab creates the tab over the full car catalog.
func NewProfileTab(keys KeyMap) ProfileTab {
	slides := facts.NewSlideshow()

	p := paginator.New()
	p.Type = paginator.Dots
	p.PerPage = 1
	p.ActiveDot = "●"
	p.InactiveDot = "·"
	p.SetTotalPages(slides.Len())

	return ProfileTab{slides: slides, pager: p, keys: keys}
}

// Advance moves to the next slide, wrapping around.
func (m ProfileTab) Advance() ProfileTab {
	m.slides.Next()
	m.pager.Page = m.slides.Index()
	return m
}

// Update handles slide navigation and sign out.
func (m ProfileTab) Update(msg tea.Msg) (ProfileTab, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Left):
		m.slides.Prev()
	case key.Matches(keyMsg, m.keys.Right):
		m.slides.Next()
	case key.Matches(keyMsg, m.keys.Select):
		return m, func() tea.Msg { return signOutMsg{} }
	}
	m.pager.Page = m.slides.Index()
	return m, nil
}

// Current returns the car on display.
func (m ProfileTab) Current() facts.Car {
	return m.slides.Current()
}

// View renders the tab.
func (m ProfileTab) View(t Theme, width int) string {
	car := m.slides.Current()
	cardW := min(60, max(width-6, 20))

	card := lipgloss.JoinVertical(lipgloss.Center,
		t.Text.Bold(true).Render(car.Name),
		"",
		t.Subtle.Render(carArt),
		"",
		t.Text.Width(cardW).Align(lipgloss.Center).Render(car.Fact),
	)

	block := lipgloss.JoinVertical(lipgloss.Center,
		t.Banner.Render("Carsamedia"),
		"",
		t.Card.Render(card),
		m.pager.View(),
		"",
		t.button("Sign Out", true),
	)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}
