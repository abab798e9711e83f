package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/klokkijken/internal/generator"
	"github.com/verte-zerg/klokkijken/internal/model"
	"github.com/verte-zerg/klokkijken/internal/session"
)

type fixedClock struct{ at time.Time }

func (c *fixedClock) Now() time.Time {
	c.at = c.at.Add(time.Second)
	return c.at
}

func newTestModel(cfg model.Config) *Model {
	return NewModel(cfg, generator.NewWithSeed(7), &fixedClock{at: time.Unix(0, 0)})
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m *Model, msgs ...tea.Msg) {
	t.Helper()
	for _, msg := range msgs {
		m.Update(msg)
	}
}

func TestStartsOnSetupScreen(t *testing.T) {
	m := newTestModel(model.Config{Level: model.LevelQuarters})
	if m.State().Screen != session.ScreenSetup {
		t.Fatalf("expected setup screen, got %s", m.State().Screen)
	}
	view := m.View()
	for _, want := range []string{"Klokkijken", "Kwartieren", "Analoge klok → Tekst", "Start"} {
		if !strings.Contains(view, want) {
			t.Fatalf("setup view missing %q:\n%s", want, view)
		}
	}
}

func TestDigitSelectsLevelOnSetup(t *testing.T) {
	m := newTestModel(model.Config{})
	press(t, m, runes("4"))
	if m.State().Level != model.LevelEverything {
		t.Fatalf("expected level 4, got %d", m.State().Level)
	}
}

func TestCannotDisableLastKind(t *testing.T) {
	m := newTestModel(model.Config{Kinds: []model.Kind{model.KindAnalogToText}})
	for i := 0; i < len(setupLevels); i++ {
		press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.State().KindEnabled(model.KindAnalogToText) {
		t.Fatalf("last kind was disabled")
	}
	if !strings.Contains(m.View(), "Minstens één oefening") {
		t.Fatalf("expected notice in view:\n%s", m.View())
	}
}

func TestToggleKindFromSetup(t *testing.T) {
	m := newTestModel(model.Config{})
	for i := 0; i < len(setupLevels)+1; i++ {
		press(t, m, runes("j"))
	}
	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.State().KindEnabled(model.KindTextToAnalog) {
		t.Fatalf("expected text_to_analog to be disabled")
	}
}

func TestAnswerFlow(t *testing.T) {
	m := newTestModel(model.Config{Level: model.LevelQuarters})
	press(t, m, runes("s"))
	st := m.State()
	if st.Screen != session.ScreenExercise {
		t.Fatalf("expected exercise screen, got %s", st.Screen)
	}
	if len(st.Exercise.Options) != 4 {
		t.Fatalf("expected 4 options, got %d", len(st.Exercise.Options))
	}

	correct := st.Exercise.CorrectIndex
	press(t, m, runes(string(rune('1'+correct))))
	st = m.State()
	if !st.Answered || st.Score != 1 || st.Total != 1 {
		t.Fatalf("unexpected state after correct answer: %+v", st)
	}
	if m.praise == "" || !strings.Contains(m.View(), m.praise) {
		t.Fatalf("expected praise in view:\n%s", m.View())
	}

	// Further digits are ignored until the next exercise.
	press(t, m, runes(string(rune('1'+(correct+1)%4))))
	if m.State().Total != 1 {
		t.Fatalf("answer was counted twice")
	}

	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	st = m.State()
	if st.Answered || st.Total != 1 {
		t.Fatalf("expected a fresh exercise, got %+v", st)
	}

	wrong := (st.Exercise.CorrectIndex + 1) % len(st.Exercise.Options)
	press(t, m, runes(string(rune('1'+wrong))))
	st = m.State()
	if st.Score != 1 || st.Total != 2 || st.Streak != 0 {
		t.Fatalf("unexpected state after wrong answer: %+v", st)
	}
	if !strings.Contains(m.View(), "Het goede antwoord is:") {
		t.Fatalf("expected correction in view:\n%s", m.View())
	}

	press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.State().Screen != session.ScreenResults {
		t.Fatalf("expected results screen, got %s", m.State().Screen)
	}
	view := m.View()
	for _, want := range []string{"Score: 1/2", "50% goed", "Even herhalen:"} {
		if !strings.Contains(view, want) {
			t.Fatalf("results view missing %q:\n%s", want, view)
		}
	}

	press(t, m, runes("s"))
	if m.State().Screen != session.ScreenSetup {
		t.Fatalf("expected setup screen, got %s", m.State().Screen)
	}
}

func TestCursorAnswer(t *testing.T) {
	m := newTestModel(model.Config{Level: model.LevelWholeHours})
	press(t, m, runes("s"))
	press(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	st := m.State()
	if !st.Answered || st.Selected != 1 {
		t.Fatalf("expected option 2 selected, got %+v", st)
	}
}

func TestRoundsEndRun(t *testing.T) {
	m := newTestModel(model.Config{Level: model.LevelQuarters, Rounds: 2})
	press(t, m, runes("s"))
	for i := 0; i < 2; i++ {
		press(t, m, runes("1"), tea.KeyMsg{Type: tea.KeyEnter})
	}
	st := m.State()
	if st.Screen != session.ScreenResults || st.Total != 2 {
		t.Fatalf("expected results after 2 rounds, got %s with %d answers", st.Screen, st.Total)
	}
	press(t, m, runes("r"))
	st = m.State()
	if st.Screen != session.ScreenExercise || st.Total != 0 {
		t.Fatalf("expected a restarted run, got %+v", st)
	}
}

func TestStopWithoutAnswersReturnsToSetup(t *testing.T) {
	m := newTestModel(model.Config{})
	press(t, m, runes("s"), tea.KeyMsg{Type: tea.KeyEsc})
	if m.State().Screen != session.ScreenSetup {
		t.Fatalf("expected setup screen, got %s", m.State().Screen)
	}
}

func TestFocusWeakKeepsGenerating(t *testing.T) {
	m := newTestModel(model.Config{Level: model.LevelFiveMinutes, FocusWeak: true, WeakFactor: 3})
	press(t, m, runes("s"))
	for i := 0; i < 20; i++ {
		st := m.State()
		wrong := (st.Exercise.CorrectIndex + 1) % len(st.Exercise.Options)
		press(t, m, runes(string(rune('1'+wrong))), tea.KeyMsg{Type: tea.KeyEnter})
	}
	if st := m.State(); st.Total != 20 || st.Score != 0 {
		t.Fatalf("unexpected totals %d/%d", st.Score, st.Total)
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(model.Config{})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestWindowSizeCentresView(t *testing.T) {
	m := newTestModel(model.Config{})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	lines := strings.Split(m.View(), "\n")
	if len(lines) != 40 {
		t.Fatalf("expected 40 lines, got %d", len(lines))
	}
}
