package tui

import (
	"errors"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/carsamedia/internal/profile"
)

// photoAllowedTypes lists the extensions the picker offers.
var photoAllowedTypes = []string{".jpg", ".jpeg", ".png"}

var errUnsupportedPhoto = errors.New("only .jpg, .jpeg and .png files can be used")

// photoDoneMsg closes the picker. changed is true when a new photo was saved.
type photoDoneMsg struct {
	changed bool
}

// pickerChrome is the number of rows used around the file list.
const pickerChrome = 6

// PhotoPicker lets the user choose a new profile photo from disk.
type PhotoPicker struct {
	fp     filepicker.Model
	images *profile.ImageStore
	cancel key.Binding
	err    error
}

// NewPhotoPicker creates a picker rooted at dir, or the home directory when
// dir is empty.
func NewPhotoPicker(images *profile.ImageStore, dir string) PhotoPicker {
	fp := filepicker.New()
	fp.AllowedTypes = photoAllowedTypes
	fp.ShowPermissions = false
	fp.CurrentDirectory = dir
	if fp.CurrentDirectory == "" {
		if home, err := os.UserHomeDir(); err == nil {
			fp.CurrentDirectory = home
		} else {
			fp.CurrentDirectory = "."
		}
	}

	return PhotoPicker{
		fp:     fp,
		images: images,
		cancel: key.NewBinding(
			key.WithKeys("esc", "q"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// Open sizes the picker and reads the current directory.
func (m PhotoPicker) Open(width, height int) (PhotoPicker, tea.Cmd) {
	m.err = nil
	m.fp, _ = m.fp.Update(tea.WindowSizeMsg{Width: width, Height: max(height-pickerChrome, 3)})
	return m, m.fp.Init()
}

// Update forwards navigation to the file picker and handles a selection.
func (m PhotoPicker) Update(msg tea.Msg) (PhotoPicker, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.cancel) {
			return m, func() tea.Msg { return photoDoneMsg{} }
		}
	case tea.WindowSizeMsg:
		msg.Height = max(msg.Height-pickerChrome, 3)
		var cmd tea.Cmd
		m.fp, cmd = m.fp.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.fp, cmd = m.fp.Update(msg)

	if ok, path := m.fp.DidSelectFile(msg); ok {
		img, err := profile.LoadImageFile(path)
		if err != nil {
			m.err = err
			return m, cmd
		}
		m.images.Save(img)
		return m, func() tea.Msg { return photoDoneMsg{changed: true} }
	}

	if ok, _ := m.fp.DidSelectDisabledFile(msg); ok {
		m.err = errUnsupportedPhoto
	}

	return m, cmd
}

// View renders the picker.
func (m PhotoPicker) View(t Theme, width int) string {
	var b strings.Builder
	b.WriteString(t.Title.Render("Choose a profile picture"))
	b.WriteString("\n")
	b.WriteString(t.Subtle.Render(m.fp.CurrentDirectory))
	b.WriteString("\n\n")
	b.WriteString(m.fp.View())
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(t.ErrorMsg.Render(m.err.Error()))
	}
	b.WriteString("\n")
	b.WriteString(t.Subtle.Render("↑/↓: move  →/enter: open  ←: up  esc: cancel"))

	return lipgloss.NewStyle().Width(width).PaddingLeft(2).Render(b.String())
}
