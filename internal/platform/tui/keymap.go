package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines the non-letter bindings of every screen.
// Letters themselves always go to the engine while a round is running.
type KeyMap struct {
	Quit   key.Binding
	Abort  key.Binding
	Save   key.Binding
	Skip   key.Binding
	Again  key.Binding
	Leave  key.Binding
	Scroll key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Abort: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "end round"),
		),
		Save: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save score"),
		),
		Skip: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "skip"),
		),
		Again: key.NewBinding(
			key.WithKeys("enter", "r"),
			key.WithHelp("enter/r", "play again"),
		),
		Leave: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q/esc", "quit"),
		),
		Scroll: key.NewBinding(
			key.WithKeys("up", "down", "k", "j"),
			key.WithHelp("↑/↓", "scroll"),
		),
	}
}

// PlayingHelp returns the bindings shown under the field.
func (k KeyMap) PlayingHelp() []key.Binding {
	return []key.Binding{k.Abort, k.Quit}
}

// GameOverHelp returns the bindings shown under the name entry.
func (k KeyMap) GameOverHelp() []key.Binding {
	return []key.Binding{k.Save, k.Skip, k.Quit}
}

// ScoresHelp returns the bindings shown under the leaderboard.
func (k KeyMap) ScoresHelp() []key.Binding {
	return []key.Binding{k.Again, k.Scroll, k.Leave}
}

// LetterKey extracts the text of a plain single-character keypress.
// Everything else (named keys, pastes, alt combos) yields false.
func LetterKey(msg tea.KeyMsg) (string, bool) {
	if msg.Type != tea.KeyRunes || msg.Alt || msg.Paste || len(msg.Runes) != 1 {
		return "", false
	}
	return string(msg.Runes), true
}
