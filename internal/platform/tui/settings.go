package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/carsamedia/internal/config"
)

// themeChangedMsg tells the shell to swap its theme.
type themeChangedMsg struct {
	dark bool
}

type settingKind int

const (
	settingPage settingKind = iota
	settingToggle
	settingAction
)

type settingID int

const (
	settingEditProfile settingID = iota
	settingChangePassword
	settingSignOut
	settingPush
	settingEmail
	settingDarkMode
	settingAbout
	settingTerms
)

type settingItem struct {
	id      settingID
	section string
	label   string
	kind    settingKind
}

var settingItems = []settingItem{
	{settingEditProfile, "Account", "Edit Profile", settingPage},
	{settingChangePassword, "Account", "Change Password", settingPage},
	{settingSignOut, "Account", "Sign Out", settingAction},
	{settingPush, "Notifications", "Push Notifications", settingToggle},
	{settingEmail, "Notifications", "Email Notifications", settingToggle},
	{settingDarkMode, "Appearance", "Dark Mode", settingToggle},
	{settingAbout, "About", "About This App", settingPage},
	{settingTerms, "About", "Terms & Privacy", settingPage},
}

// settingPages holds the title and body of each detail page.
var settingPages = map[settingID][2]string{
	settingEditProfile:    {"Edit Profile", "Edit Profile Screen"},
	settingChangePassword: {"Change Password", "Change Password Screen"},
	settingAbout:          {"About", "This app shows amazing cars and facts."},
	settingTerms:          {"Terms & Privacy", "Terms and Privacy details go here."},
}

// SettingsModel is the Settings tab. Toggles only live for the session.
type SettingsModel struct {
	keys   KeyMap
	cursor int
	page   *settingID // Open detail page
	push   bool
	email  bool
	dark   bool
}

// NewSettingsModel creates the tab with initial values from cfg.
func NewSettingsModel(keys KeyMap, cfg config.AppConfig) SettingsModel {
	return SettingsModel{
		keys:  keys,
		push:  cfg.Notifications.Push,
		email: cfg.Notifications.Email,
		dark:  cfg.Appearance.DarkMode,
	}
}

// Update handles navigation, toggles and detail pages.
func (m SettingsModel) Update(msg tea.Msg) (SettingsModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.page != nil {
		if key.Matches(keyMsg, m.keys.Back, m.keys.Select) {
			m.page = nil
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(settingItems)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Select):
		return m.activate(settingItems[m.cursor])
	}
	return m, nil
}

func (m SettingsModel) activate(item settingItem) (SettingsModel, tea.Cmd) {
	switch item.id {
	case settingSignOut:
		return m, func() tea.Msg { return signOutMsg{} }
	case settingPush:
		m.push = !m.push
	case settingEmail:
		m.email = !m.email
	case settingDarkMode:
		m.dark = !m.dark
		dark := m.dark
		return m, func() tea.Msg { return themeChangedMsg{dark: dark} }
	default:
		id := item.id
		m.page = &id
	}
	return m, nil
}

// InPage reports whether a detail page is open.
func (m SettingsModel) InPage() bool {
	return m.page != nil
}

// Toggles returns the current push, email and dark mode values.
func (m SettingsModel) Toggles() (push, email, dark bool) {
	return m.push, m.email, m.dark
}

// Reset closes any page and returns the cursor to the top.
func (m SettingsModel) Reset() SettingsModel {
	m.page = nil
	m.cursor = 0
	return m
}

func (m SettingsModel) toggleValue(id settingID) bool {
	switch id {
	case settingPush:
		return m.push
	case settingEmail:
		return m.email
	case settingDarkMode:
		return m.dark
	}
	return false
}

// View renders the list or the open page.
func (m SettingsModel) View(t Theme, width int) string {
	if m.page != nil {
		p := settingPages[*m.page]
		block := lipgloss.JoinVertical(lipgloss.Center,
			t.Title.Render(p[0]),
			"",
			t.Card.Render(t.Text.Render(p[1])),
			"",
			t.Subtle.Render("esc: back"),
		)
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
	}

	var b strings.Builder
	b.WriteString(t.Title.Render("Settings"))
	b.WriteString("\n")

	listW := min(44, max(width-4, 24))
	section := ""
	for i, item := range settingItems {
		if item.section != section {
			section = item.section
			b.WriteString(t.Section.Render(strings.ToUpper(section)))
			b.WriteString("\n")
		}

		label := item.label
		switch item.kind {
		case settingToggle:
			state := t.ToggleOff.Render("[ off ]")
			if m.toggleValue(item.id) {
				state = t.ToggleOn.Render("[ on  ]")
			}
			gap := listW - lipgloss.Width(label) - lipgloss.Width(state) - 2
			label = label + strings.Repeat(" ", max(gap, 1)) + state
		case settingPage:
			label += " ›"
		case settingAction:
			label = t.Danger.Render(label)
		}

		style := t.ItemNorm
		if i == m.cursor {
			style = t.ItemSel
		}
		b.WriteString(style.Width(listW).Render(label))
		b.WriteString("\n")
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}
