// Package tui provides the Bubble Tea quiz interface.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/klokkijken/internal/generator"
	"github.com/verte-zerg/klokkijken/internal/model"
	"github.com/verte-zerg/klokkijken/internal/session"
	"github.com/verte-zerg/klokkijken/internal/stats"
)

// Setup rows: the levels, then the kinds, then the start button.
var (
	setupLevels = model.AllLevels()
	setupKinds  = model.AllKinds()
	startRow    = len(setupLevels) + len(setupKinds)
)

// Model implements the Bubble Tea quiz UI.
type Model struct {
	config model.Config
	gen    *generator.Generator
	clock  session.Clock
	state  session.State

	keys keyMap
	help help.Model

	cursor int
	praise string
	notice string

	width  int
	height int
}

var (
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	textStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cursorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	goodStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6BCB77")).Bold(true)
	badStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true)
	promptBoxStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#F0D890"))
	optionStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	optionCursorStyle  = optionStyle.BorderForeground(lipgloss.Color("#C89A3A"))
	optionCorrectStyle = optionStyle.BorderForeground(lipgloss.Color("#6BCB77"))
	optionWrongStyle   = optionStyle.BorderForeground(lipgloss.Color("#FF4D4F"))
)

// NewModel constructs a quiz TUI model on the setup screen.
func NewModel(cfg model.Config, gen *generator.Generator, clock session.Clock) *Model {
	if clock == nil {
		clock = session.SystemClock{}
	}
	return &Model{
		config: cfg,
		gen:    gen,
		clock:  clock,
		state:  session.NewState(cfg),
		keys:   defaultKeyMap(),
		help:   help.New(),
	}
}

// State returns the current session state.
func (m *Model) State() session.State {
	return m.state
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
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
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		m.notice = ""
		switch m.state.Screen {
		case session.ScreenSetup:
			m.updateSetup(msg)
		case session.ScreenExercise:
			m.updateExercise(msg)
		case session.ScreenResults:
			m.updateResults(msg)
		}
		return m, nil
	default:
		return m, nil
	}
}

func (m *Model) updateSetup(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursor = (m.cursor + startRow) % (startRow + 1)
	case key.Matches(msg, m.keys.Down):
		m.cursor = (m.cursor + 1) % (startRow + 1)
	case key.Matches(msg, m.keys.Option):
		level := model.Level(int(msg.String()[0] - '0'))
		m.apply(session.SetLevel{Level: level})
	case key.Matches(msg, m.keys.Start):
		m.start()
	case key.Matches(msg, m.keys.Select):
		switch {
		case m.cursor < len(setupLevels):
			m.apply(session.SetLevel{Level: setupLevels[m.cursor]})
		case m.cursor < startRow:
			m.apply(session.ToggleKind{Kind: setupKinds[m.cursor-len(setupLevels)]})
		default:
			m.start()
		}
	}
}

func (m *Model) updateExercise(msg tea.KeyMsg) {
	optionCount := len(m.state.Exercise.Options)
	switch {
	case key.Matches(msg, m.keys.Stop):
		m.apply(session.Stop{})
		m.cursor = 0
	case m.state.Answered && key.Matches(msg, m.keys.Next):
		m.next()
	case m.state.Answered:
		return
	case key.Matches(msg, m.keys.Option):
		m.answer(int(msg.String()[0] - '1'))
	case key.Matches(msg, m.keys.Up):
		m.cursor = (m.cursor + optionCount - 1) % optionCount
	case key.Matches(msg, m.keys.Down):
		m.cursor = (m.cursor + 1) % optionCount
	case key.Matches(msg, m.keys.Select):
		m.answer(m.cursor)
	}
}

func (m *Model) updateResults(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Restart):
		m.start()
	case key.Matches(msg, m.keys.Setup):
		m.apply(session.Setup{})
		m.cursor = startRow
	}
}

func (m *Model) apply(a session.Action) bool {
	next, err := session.Reduce(m.state, a)
	if err != nil {
		m.notice = noticeFor(err)
		return false
	}
	m.state = next
	return true
}

func (m *Model) start() {
	ex, err := m.gen.Generate(m.state.Level, m.state.Kinds)
	if err != nil {
		m.notice = noticeFor(err)
		return
	}
	if m.apply(session.Start{Exercise: ex, At: m.clock.Now()}) {
		m.cursor = 0
	}
}

func (m *Model) next() {
	ex, err := m.nextExercise()
	if err != nil {
		m.notice = noticeFor(err)
		return
	}
	if m.apply(session.Next{Exercise: ex}) {
		m.cursor = 0
		m.praise = ""
	}
}

func (m *Model) nextExercise() (model.Exercise, error) {
	if !m.config.FocusWeak {
		return m.gen.Generate(m.state.Level, m.state.Kinds)
	}
	weak := stats.SelectWeakKinds(stats.AggregateByKind(m.state.History), 0)
	return m.gen.GenerateWeighted(m.state.Level, m.state.Kinds, weak, m.config.WeakFactor)
}

func (m *Model) answer(index int) {
	if !m.apply(session.Answer{Index: index, At: m.clock.Now()}) {
		return
	}
	m.cursor = index
	if m.state.LastCorrect() {
		m.praise = session.Praise(m.gen.Intn(session.PraiseCount))
	}
}

func noticeFor(err error) string {
	switch {
	case errors.Is(err, session.ErrLastKind):
		return "Minstens één oefening moet aan staan."
	case errors.Is(err, session.ErrInvalidOption):
		return "Dat antwoord bestaat niet."
	default:
		return fmt.Sprintf("Dat lukt niet: %v", err)
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	var body string
	var bindings []key.Binding
	switch m.state.Screen {
	case session.ScreenExercise:
		body = m.viewExercise()
		bindings = []key.Binding{m.keys.Option, m.keys.Select, m.keys.Stop, m.keys.Quit}
		if m.state.Answered {
			bindings = []key.Binding{m.keys.Next, m.keys.Stop, m.keys.Quit}
		}
	case session.ScreenResults:
		body = m.viewResults()
		bindings = []key.Binding{m.keys.Restart, m.keys.Setup, m.keys.Quit}
	default:
		body = m.viewSetup()
		bindings = []key.Binding{m.keys.Up, m.keys.Down, m.keys.Select, m.keys.Start, m.keys.Quit}
	}
	if m.notice != "" {
		body += "\n\n" + badStyle.Render(m.notice)
	}
	footer := m.help.ShortHelpView(bindings)
	if m.width == 0 || m.height < 3 {
		return body + "\n\n" + footer
	}
	content := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, body)
	return content + "\n" + lipgloss.PlaceHorizontal(m.width, lipgloss.Center, footer)
}

func (m *Model) renderHeader() string {
	segments := []string{fmt.Sprintf("✅ %d/%d", m.state.Score, m.state.Total)}
	if m.state.Streak >= 2 {
		segments = append(segments, fmt.Sprintf("🔥 %d", m.state.Streak))
	}
	if m.state.Rounds > 0 {
		segments = append(segments, fmt.Sprintf("vraag %d van %d", min(m.state.Total+1, m.state.Rounds), m.state.Rounds))
	}
	return mutedStyle.Render(strings.Join(segments, "  "))
}
