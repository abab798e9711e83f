package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/klokkijken/internal/clockface"
	"github.com/verte-zerg/klokkijken/internal/model"
	"github.com/verte-zerg/klokkijken/internal/session"
	"github.com/verte-zerg/klokkijken/internal/stats"
)

const (
	promptRadius = 6
	optionRadius = 4
)

func (m *Model) viewSetup() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("🕐 Klokkijken"))
	b.WriteString("\n\n")
	b.WriteString(textStyle.Render("Niveau"))
	b.WriteString("\n")
	for i, level := range setupLevels {
		mark := "( )"
		if m.state.Level == level {
			mark = "(•)"
		}
		line := fmt.Sprintf("%s %d. %s  %s", mark, int(level), level.Name(), mutedStyle.Render(level.Description()))
		b.WriteString(m.setupRow(i, line))
	}
	b.WriteString("\n")
	b.WriteString(textStyle.Render("Oefeningen"))
	b.WriteString("\n")
	for i, kind := range setupKinds {
		mark := "[ ]"
		if m.state.KindEnabled(kind) {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s %s", mark, kind.Label())
		b.WriteString(m.setupRow(len(setupLevels)+i, line))
	}
	b.WriteString("\n")
	b.WriteString(m.setupRow(startRow, "▶ Start"))
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) setupRow(row int, line string) string {
	if m.cursor == row {
		return cursorStyle.Render("› "+line) + "\n"
	}
	return "  " + line + "\n"
}

func (m *Model) viewExercise() string {
	ex := m.state.Exercise
	kind := ex.Kind

	question := "Hoe laat is het?"
	if kind.Prompt() == model.FaceText {
		question = "Welke klok hoort bij:"
	}
	prompt := clockface.Render(kind.Prompt(), ex.Target, promptRadius)
	if kind.Prompt() == model.FaceText {
		prompt = titleStyle.Render(prompt)
	}

	parts := []string{
		m.renderHeader(),
		textStyle.Render(kind.Label()),
		mutedStyle.Render(kind.Description()),
		"",
		textStyle.Render(question),
		promptBoxStyle.Render(prompt),
		"",
		m.renderOptions(),
	}
	if m.state.Answered {
		parts = append(parts, "", m.renderFeedback())
	}
	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}

func (m *Model) renderOptions() string {
	ex := m.state.Exercise
	answer := ex.Kind.Answer()
	rendered := make([]string, len(ex.Options))
	for i, opt := range ex.Options {
		label := fmt.Sprintf("%d", i+1)
		body := clockface.Render(answer, opt, optionRadius)
		if answer == model.FaceText {
			rendered[i] = m.optionStyle(i).Render(label + ". " + body)
			continue
		}
		rendered[i] = m.optionStyle(i).Render(lipgloss.JoinVertical(lipgloss.Center, label, body))
	}
	if answer == model.FaceText {
		return lipgloss.JoinVertical(lipgloss.Left, rendered...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m *Model) optionStyle(i int) lipgloss.Style {
	ex := m.state.Exercise
	switch {
	case m.state.Answered && i == ex.CorrectIndex:
		return optionCorrectStyle
	case m.state.Answered && i == m.state.Selected:
		return optionWrongStyle
	case !m.state.Answered && i == m.cursor:
		return optionCursorStyle
	default:
		return optionStyle
	}
}

func (m *Model) renderFeedback() string {
	if m.state.LastCorrect() {
		return goodStyle.Render(m.praise)
	}
	return badStyle.Render("Helaas! " + session.Correction(m.state.Exercise.Target))
}

func (m *Model) viewResults() string {
	pct := m.state.Percentage()
	headline := titleStyle.Render(fmt.Sprintf("%s %s", session.ResultEmoji(pct), session.ResultMessage(pct)))

	var report strings.Builder
	r := stats.BuildReport(m.state.Level, m.state.StartedAt, m.state.History)
	if err := stats.Render(&report, r); err != nil {
		return headline + "\n\n" + badStyle.Render(err.Error())
	}
	return headline + "\n\n" + textStyle.Render(strings.TrimRight(report.String(), "\n"))
}
