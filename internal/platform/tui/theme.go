package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the visual styles of the app shell.
type Theme struct {
	Dark bool

	// Shell
	Base     lipgloss.Style
	Title    lipgloss.Style
	Banner   lipgloss.Style
	Text     lipgloss.Style
	Subtle   lipgloss.Style
	ErrorMsg lipgloss.Style

	// Tab bar
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	TabGap      lipgloss.Style

	// Buttons
	Button       lipgloss.Style
	ButtonActive lipgloss.Style
	Danger       lipgloss.Style

	// Settings
	Section   lipgloss.Style
	ItemNorm  lipgloss.Style
	ItemSel   lipgloss.Style
	ToggleOn  lipgloss.Style
	ToggleOff lipgloss.Style

	// Framed content (photo, slideshow card, detail pages)
	Card lipgloss.Style
}

// LightTheme returns the default gray-on-white appearance.
func LightTheme() Theme {
	accent := lipgloss.Color("0")
	return Theme{
		Base:     lipgloss.NewStyle().Foreground(lipgloss.Color("235")),
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("232")).Background(lipgloss.Color("255")).Padding(0, 2),
		Banner:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Background(lipgloss.Color("235")).Padding(0, 2),
		Text:     lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
		Subtle:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		ErrorMsg: lipgloss.NewStyle().Foreground(lipgloss.Color("160")),

		TabActive:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Background(accent).Padding(0, 2),
		TabInactive: lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Padding(0, 2),
		TabGap:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")),

		Button:       lipgloss.NewStyle().Foreground(lipgloss.Color("236")).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("248")).Padding(0, 2),
		ButtonActive: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Background(accent).Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(0, 2),
		Danger:       lipgloss.NewStyle().Foreground(lipgloss.Color("160")),

		Section:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("242")).MarginTop(1),
		ItemNorm:  lipgloss.NewStyle().Foreground(lipgloss.Color("236")).PaddingLeft(2),
		ItemSel:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).PaddingLeft(2),
		ToggleOn:  lipgloss.NewStyle().Foreground(lipgloss.Color("28")).Bold(true),
		ToggleOff: lipgloss.NewStyle().Foreground(lipgloss.Color("246")),

		Card: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("248")).Padding(0, 1),
	}
}

// DarkTheme returns the dark appearance.
func DarkTheme() Theme {
	accent := lipgloss.Color("69")
	return Theme{
		Dark:     true,
		Base:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Background(lipgloss.Color("237")).Padding(0, 2),
		Banner:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("232")).Background(lipgloss.Color("252")).Padding(0, 2),
		Text:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Subtle:   lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		ErrorMsg: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),

		TabActive:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("232")).Background(accent).Padding(0, 2),
		TabInactive: lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 2),
		TabGap:      lipgloss.NewStyle().Foreground(lipgloss.Color("238")),

		Button:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 2),
		ButtonActive: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("232")).Background(accent).Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(0, 2),
		Danger:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")),

		Section:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("246")).MarginTop(1),
		ItemNorm:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")).PaddingLeft(2),
		ItemSel:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("232")).Background(accent).PaddingLeft(2),
		ToggleOn:  lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true),
		ToggleOff: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		Card: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
	}
}

// ThemeFor picks the theme for the dark mode setting.
func ThemeFor(dark bool) Theme {
	if dark {
		return DarkTheme()
	}
	return LightTheme()
}

// button renders a label as a selectable button.
func (t Theme) button(label string, active bool) string {
	if active {
		return t.ButtonActive.Render(label)
	}
	return t.Button.Render(label)
}
