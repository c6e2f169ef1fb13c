// Package tui provides the Bubble Tea game interface.
package tui

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/verte-zerg/unscramble/internal/game"
	"github.com/verte-zerg/unscramble/internal/model"
	"github.com/verte-zerg/unscramble/internal/stats"
)

const tryAgainMsg = "Try again!"

var (
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	scrambledStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 2).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	counterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	modalStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A")).
			Padding(1, 2)
	scoreStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
)

// Model implements the Bubble Tea game UI. The session it drives is owned
// by the caller and outlives the model.
type Model struct {
	session *game.Session
	logger  zerolog.Logger
	keys    keyMap
	help    help.Model
	input   textinput.Model

	snap     model.Snapshot
	errMsg   string
	status   string
	finished bool

	width  int
	height int
}

// NewModel constructs a game TUI model for session.
func NewModel(session *game.Session, logger zerolog.Logger) *Model {
	input := textinput.New()
	input.Placeholder = "Enter your word"
	input.Prompt = "> "
	input.CharLimit = 64
	input.Width = 24
	input.Focus()

	m := &Model{
		session: session,
		logger:  logger,
		keys:    defaultKeyMap(),
		help:    help.New(),
		input:   input,
		snap:    session.Snapshot(),
	}
	session.OnChange(func(snap model.Snapshot) {
		m.snap = snap
	})
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if m.finished {
			return m.updateFinished(msg)
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.logger.Info().Str("session", m.session.ID()).Int("score", m.snap.Score).Msg("quit mid-game")
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			m.submit()
			return m, nil
		case key.Matches(msg, m.keys.Skip):
			m.skip()
			return m, nil
		}
	}
	if m.finished {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) updateFinished(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Exit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Restart):
		return m, m.restart()
	}
	return m, nil
}

func (m *Model) submit() {
	guess := strings.TrimSpace(m.input.Value())
	if !m.session.SubmitGuess(guess) {
		m.errMsg = tryAgainMsg
		return
	}
	m.status = fmt.Sprintf("Correct: %s", m.session.CurrentWord())
	m.clearInput()
	m.advance()
}

func (m *Model) skip() {
	m.status = fmt.Sprintf("Skipped: %s", m.session.CurrentWord())
	m.clearInput()
	m.advance()
}

func (m *Model) advance() {
	if m.session.Advance() {
		return
	}
	m.finished = true
	m.input.Blur()
	m.logger.Info().Str("session", m.session.ID()).Int("score", m.snap.Score).Msg("game complete")
}

func (m *Model) restart() tea.Cmd {
	m.session.Reset()
	m.finished = false
	m.status = ""
	m.clearInput()
	return m.input.Focus()
}

func (m *Model) clearInput() {
	m.errMsg = ""
	m.input.Reset()
}

// View implements tea.Model.
func (m *Model) View() string {
	var content string
	if m.finished {
		content = m.renderFinished()
	} else {
		content = m.renderPlaying()
	}
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) renderPlaying() string {
	counters := counterStyle.Render(fmt.Sprintf("Word %d of %d   Score: %d", m.snap.WordCount, m.snap.MaxWords, m.snap.Score))
	lines := []string{
		titleStyle.Render("Unscramble"),
		counters,
		"",
		scrambledStyle.Render(spaceLetters(m.snap.Scrambled)),
		hintStyle.Render("Unscramble the word using all the letters."),
		"",
		m.input.View(),
	}
	if m.errMsg != "" {
		lines = append(lines, errorStyle.Render(m.errMsg))
	} else {
		lines = append(lines, "")
	}
	lines = append(lines, statusStyle.Render(truncateLine(m.status, modalWidth(m.width))))
	lines = append(lines, m.help.ShortHelpView(m.keys.playingHelp()))
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (m *Model) renderFinished() string {
	rounds := m.session.Rounds()
	summary := stats.Summarize(rounds, m.snap.Score)
	var buf bytes.Buffer
	if err := stats.RenderSummary(&buf, summary); err != nil {
		buf.Reset()
		fmt.Fprintf(&buf, "Failed to render summary: %v\n", err)
	}
	buf.WriteString("\n")
	if err := stats.RenderRounds(&buf, rounds); err != nil {
		fmt.Fprintf(&buf, "Failed to render rounds: %v\n", err)
	}
	body := []string{
		titleStyle.Render("Congratulations!"),
		scoreStyle.Render(fmt.Sprintf("You scored: %d", summary.Score)),
		"",
		hintStyle.Render(strings.TrimRight(buf.String(), "\n")),
		"",
		m.help.ShortHelpView(m.keys.finishedHelp()),
	}
	return modalStyle.Width(modalWidth(m.width)).Render(strings.Join(body, "\n"))
}
