// Package tui provides the Bubble Tea front end for letterfall.
// It owns the three session signals, maps keys to the engine and renders
// the playing, game over and high score screens.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickKind names one of the three session signals.
type TickKind int

const (
	TickUpdate TickKind = iota
	TickSpawn
	TickCountdown
)

// TickMsg is one firing of a session signal.
// Gen ties it to a round so ticks from a finished round are dropped.
type TickMsg struct {
	Kind TickKind
	Gen  int
}

// tickCmd schedules the next firing of one signal.
func tickCmd(kind TickKind, gen int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return TickMsg{Kind: kind, Gen: gen}
	})
}
