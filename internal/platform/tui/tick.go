// Package tui is the terminal front-end: a Bubble Tea program that renders
// the console on character cells, maps terminal keys to the keypad and the
// console buttons, and delivers the tick pulse.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is one pulse of the console's periodic time source.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after period.
func tickCmd(period time.Duration) tea.Cmd {
	return tea.Tick(period, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
