// Package tui provides the Bubble Tea integration for blockfall.
// It handles the terminal UI loop, input mapping, and the drop timer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg asks the game to advance the falling piece.
// Run and Gen identify the timer that produced it; ticks from a timer that
// has since been replaced are dropped.
type TickMsg struct {
	Run string
	Gen int
	At  time.Time
}

// tickCmd schedules a single tick after the given interval.
func tickCmd(run string, gen int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Run: run, Gen: gen, At: t}
	})
}
