// Package tui provides the Bubble Tea presentation of the app.
// It owns the terminal loop, input mapping, the tick source and the views.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a command that delivers one TickMsg after interval.
// The receiver decides whether to schedule the next one.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// slideTickMsg advances the Profile tab slideshow.
type slideTickMsg struct {
	gen int
}

// slideTickCmd schedules the next slideshow advance for generation gen.
func slideTickCmd(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return slideTickMsg{gen: gen}
	})
}
