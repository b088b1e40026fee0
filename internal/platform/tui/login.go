package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/carsamedia/internal/profile"
)

// signedInMsg is emitted once the login form has signed the session in.
type signedInMsg struct{}

// LoginModel asks for a username and signs the session in.
type LoginModel struct {
	input   textinput.Model
	session *profile.Session
	err     error
}

// NewLoginModel creates a focused login form for session.
func NewLoginModel(session *profile.Session) LoginModel {
	ti := textinput.New()
	ti.Placeholder = "username"
	ti.Prompt = "› "
	ti.CharLimit = 32
	ti.Width = 24
	ti.Focus()

	return LoginModel{input: ti, session: session}
}

// Init starts the cursor blink.
func (m LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles typing and submission.
func (m LoginModel) Update(msg tea.Msg) (LoginModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEnter {
		if err := m.session.SignIn(m.input.Value()); err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		m.input.Reset()
		return m, func() tea.Msg { return signedInMsg{} }
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the form.
func (m LoginModel) View(t Theme, width int) string {
	var b strings.Builder

	b.WriteString(t.Banner.Render("Carsamedia"))
	b.WriteString("\n\n")
	b.WriteString(t.Text.Render("Sign in to continue"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(t.ErrorMsg.Render("Please enter a username"))
	}
	b.WriteString("\n")
	b.WriteString(t.Subtle.Render("enter: sign in  ctrl+c: quit"))

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, lipgloss.JoinVertical(lipgloss.Center, b.String()))
}
