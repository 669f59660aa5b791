package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/letterfall/internal/config"
	"github.com/vovakirdan/letterfall/internal/core"
	"github.com/vovakirdan/letterfall/internal/games/letterfall"
	"github.com/vovakirdan/letterfall/internal/storage"
)

// screenKind is the screen currently shown.
type screenKind int

const (
	screenPlaying screenKind = iota
	screenGameOver
	screenScores
)

// Options configures a front end instance.
type Options struct {
	Game    config.GameConfig
	Runtime core.RuntimeConfig
	Board   storage.Leaderboard // May be nil; scores are then not kept
	Player  string              // Prefilled name on the game over screen
}

// Model is the Bubble Tea model for one player: rounds, name entry and leaderboard.
type Model struct {
	opts    Options
	session *letterfall.Session
	gen     int
	screen  screenKind
	canvas  *core.Screen
	width   int
	height  int

	keys  KeyMap
	help  help.Model
	name  textinput.Model
	table table.Model

	last    letterfall.Judgment
	result  letterfall.Result
	scores  []storage.ScoreEntry
	saved   bool
	saveErr error

	quitting bool
}

// NewModel creates a model whose first round starts on Init.
func NewModel(opts Options) Model {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.ReferenceTickRate
	}

	name := textinput.New()
	name.Placeholder = storage.DefaultName
	name.CharLimit = storage.MaxNameLen
	name.Width = storage.MaxNameLen + 1
	name.Prompt = "Enter Name: "

	m := Model{
		opts:   opts,
		width:  opts.Runtime.ScreenW,
		height: opts.Runtime.ScreenH,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		name:   name,
		table:  newScoreTable(opts.Runtime.ScreenH),
	}
	m.newRound()
	return m
}

// fieldSize returns the play field size; the last terminal row holds the help line.
func (m Model) fieldSize() (int, int) {
	return max(m.width, 1), max(m.height-1, 2)
}

// newRound builds a fresh idle session sized to the terminal.
// Ticks of the previous round become stale through the generation counter.
func (m *Model) newRound() {
	m.gen++
	w, h := m.fieldSize()

	rt := m.opts.Runtime
	rt.ScreenW, rt.ScreenH = w, h
	rt.Seed += int64(m.gen - 1)

	m.session = letterfall.NewSession(m.opts.Game.Resize(w, h), rt)
	m.canvas = core.NewScreen(w, h)
	m.screen = screenPlaying
	m.last = letterfall.Judgment{}
	m.saved = false
	m.saveErr = nil
}

// startRound starts the current session and arms its three signals.
func (m Model) startRound() tea.Cmd {
	if !m.session.Start() {
		return nil
	}
	return tea.Batch(
		tickCmd(TickUpdate, m.gen, m.opts.Runtime.TickInterval()),
		tickCmd(TickSpawn, m.gen, m.opts.Game.Spawn.Interval()),
		tickCmd(TickCountdown, m.gen, time.Second),
	)
}

// Init starts the first round.
func (m Model) Init() tea.Cmd {
	return m.startRound()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.session.Abort()
			m.quitting = true
			return m, tea.Quit
		}
		switch m.screen {
		case screenPlaying:
			return m.handlePlayingKey(msg)
		case screenGameOver:
			return m.handleGameOverKey(msg)
		default:
			return m.handleScoresKey(msg)
		}

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	// Cursor blink and other component messages
	if m.screen == screenGameOver {
		var cmd tea.Cmd
		m.name, cmd = m.name.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleTick applies one signal and re-arms it while the round runs.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || m.session.Phase() != letterfall.PhasePlaying {
		return m, nil
	}

	switch msg.Kind {
	case TickUpdate:
		m.session.UpdateTick()
		return m, tickCmd(TickUpdate, m.gen, m.opts.Runtime.TickInterval())
	case TickSpawn:
		m.session.SpawnTick()
		return m, tickCmd(TickSpawn, m.gen, m.opts.Game.Spawn.Interval())
	case TickCountdown:
		m.session.CountdownTick()
		if m.session.Phase() == letterfall.PhaseEnded {
			return m.enterGameOver()
		}
		return m, tickCmd(TickCountdown, m.gen, time.Second)
	}
	return m, nil
}

func (m Model) handlePlayingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Abort) {
		if m.session.Abort() {
			return m.enterGameOver()
		}
		return m, nil
	}

	if text, ok := LetterKey(msg); ok {
		if j := m.session.KeyPress(text); j.Kind != letterfall.JudgeIgnored {
			m.last = j
		}
	}
	return m, nil
}

// enterGameOver shows the final result and focuses the name entry.
func (m Model) enterGameOver() (tea.Model, tea.Cmd) {
	m.result, _ = m.session.Result()
	m.screen = screenGameOver
	m.name.SetValue(m.opts.Player)
	m.name.CursorEnd()
	return m, m.name.Focus()
}

func (m Model) handleGameOverKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Save):
		m.saveResult(m.name.Value())
		return m.enterScores()
	case key.Matches(msg, m.keys.Skip):
		m.loadScores()
		return m.enterScores()
	}

	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	return m, cmd
}

// saveResult submits the finished round to the leaderboard exactly once.
func (m *Model) saveResult(name string) {
	if m.saved || m.opts.Board == nil {
		m.loadScores()
		return
	}
	m.saved = true

	entries, err := m.opts.Board.Submit(storage.ScoreEntry{
		Name:      name,
		Score:     m.result.Score,
		Misses:    m.result.Misses,
		Hits:      m.result.Hits,
		BestCombo: m.result.BestCombo,
	})
	if err != nil {
		m.saveErr = err
		m.loadScores()
		return
	}
	m.scores = entries
}

func (m *Model) loadScores() {
	if m.opts.Board == nil {
		m.scores = nil
		return
	}
	entries, err := m.opts.Board.Top(maxScores)
	if err != nil {
		m.saveErr = err
		entries = nil
	}
	m.scores = entries
}

func (m Model) enterScores() (tea.Model, tea.Cmd) {
	m.name.Blur()
	m.screen = screenScores
	m.table.SetRows(scoreRows(m.scores))
	m.table.GotoTop()
	if m.saved {
		if i := highlightRow(m.scores, storage.NormalizeName(m.name.Value()), m.result.Score); i >= 0 {
			m.table.SetCursor(i)
		}
	}
	return m, nil
}

func (m Model) handleScoresKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Again):
		m.newRound()
		return m, m.startRound()
	case key.Matches(msg, m.keys.Leave):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Scroll):
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleResize tracks the terminal size. A running round keeps its field;
// the next round is laid out for the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.table.SetHeight(max(msg.Height-10, 3))
	return m, nil
}

// View renders the current screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGameOver:
		return m.viewGameOver()
	case screenScores:
		return m.viewScores()
	}

	DrawField(m.canvas, m.session.Snapshot(), m.last)
	return RenderScreen(m.canvas) + "\n" + m.help.ShortHelpView(m.keys.PlayingHelp())
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	panelStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 3)
)

// summary formats the final counters of a round.
func summary(r letterfall.Result) string {
	return fmt.Sprintf("Final Score: %d\nHits: %d  Misses: %d  Best Combo: %d", r.Score, r.Hits, r.Misses, r.BestCombo)
}

func (m Model) viewGameOver() string {
	heading := "GAME OVER"
	if m.result.Reason == letterfall.EndAborted {
		heading = "ROUND ENDED"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(heading))
	b.WriteString("\n\n")
	b.WriteString(resultStyle.Render(summary(m.result)))
	b.WriteString("\n\n")
	b.WriteString(m.name.View())

	body := panelStyle.Render(b.String())
	page := lipgloss.Place(m.width, max(m.height-1, 1), lipgloss.Center, lipgloss.Center, body)
	return page + "\n" + m.help.ShortHelpView(m.keys.GameOverHelp())
}

func (m Model) viewScores() string {
	var b strings.Builder
	b.WriteString(centerText(titleStyle.Render("HIGH SCORES"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(resultStyle.Render(fmt.Sprintf("Your score: %d", m.result.Score)), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(renderScoreTable(m.table, m.scores), m.width))
	b.WriteString("\n")

	switch {
	case m.saveErr != nil:
		b.WriteString(centerText(errorStyle.Render("Could not save score: "+m.saveErr.Error()), m.width))
		b.WriteString("\n")
	case m.opts.Board == nil:
		b.WriteString(centerText(errorStyle.Render("Leaderboard unavailable"), m.width))
		b.WriteString("\n")
	}

	b.WriteString(m.help.ShortHelpView(m.keys.ScoresHelp()))
	return b.String()
}

// Run starts the Bubble Tea program for a local terminal.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
