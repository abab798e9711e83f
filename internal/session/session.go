// Package session tracks a quiz run as an explicit state value.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/verte-zerg/klokkijken/internal/model"
	"github.com/verte-zerg/klokkijken/internal/stats"
)

// Screen is the part of the quiz currently shown.
type Screen string

const (
	ScreenSetup    Screen = "setup"
	ScreenExercise Screen = "exercise"
	ScreenResults  Screen = "results"
)

var (
	ErrLastKind        = errors.New("at least one exercise kind must stay enabled")
	ErrAlreadyAnswered = errors.New("exercise already answered")
	ErrNotAnswered     = errors.New("exercise not answered yet")
	ErrInvalidOption   = errors.New("option index out of range")
	ErrWrongScreen     = errors.New("action not allowed on this screen")
	ErrMissingExercise = errors.New("exercise has no options")
	ErrUnknownAction   = errors.New("unknown action")
)

// State is a snapshot of a quiz run. Reduce never modifies a State in place.
type State struct {
	Screen     Screen
	Level      model.Level
	Kinds      []model.Kind
	Rounds     int
	Exercise   model.Exercise
	Selected   int
	Answered   bool
	Score      int
	Total      int
	Streak     int
	BestStreak int
	History    []model.AnswerRecord
	StartedAt  time.Time
}

// NewState returns the setup screen for a config. Empty kinds enable all.
func NewState(cfg model.Config) State {
	kinds := append([]model.Kind(nil), cfg.Kinds...)
	if len(kinds) == 0 {
		kinds = model.AllKinds()
	}
	level := cfg.Level
	if !level.Valid() {
		level = model.LevelQuarters
	}
	return State{
		Screen:   ScreenSetup,
		Level:    level,
		Kinds:    kinds,
		Rounds:   cfg.Rounds,
		Selected: -1,
	}
}

// Action is an input to Reduce.
type Action interface {
	isAction()
}

// SetLevel changes the difficulty on the setup screen.
type SetLevel struct{ Level model.Level }

// ToggleKind enables or disables a kind on the setup screen.
type ToggleKind struct{ Kind model.Kind }

// Start begins a fresh run with its first exercise.
type Start struct {
	Exercise model.Exercise
	At       time.Time
}

// Answer selects an option of the current exercise.
type Answer struct {
	Index int
	At    time.Time
}

// Next moves on to another exercise.
type Next struct{ Exercise model.Exercise }

// Stop ends the run.
type Stop struct{}

// Setup returns to the setup screen.
type Setup struct{}

func (SetLevel) isAction()   {}
func (ToggleKind) isAction() {}
func (Start) isAction()      {}
func (Answer) isAction()     {}
func (Next) isAction()       {}
func (Stop) isAction()       {}
func (Setup) isAction()      {}

// Reduce applies an action and returns the new state. On error the returned
// state equals the input.
func Reduce(s State, a Action) (State, error) {
	switch a := a.(type) {
	case SetLevel:
		if s.Screen != ScreenSetup {
			return s, ErrWrongScreen
		}
		if !a.Level.Valid() {
			return s, fmt.Errorf("%w: %d", model.ErrInvalidLevel, a.Level)
		}
		s.Level = a.Level
		return s, nil
	case ToggleKind:
		return toggleKind(s, a.Kind)
	case Start:
		if s.Screen == ScreenExercise {
			return s, ErrWrongScreen
		}
		if len(a.Exercise.Options) == 0 {
			return s, ErrMissingExercise
		}
		s.Screen = ScreenExercise
		s.Score, s.Total, s.Streak, s.BestStreak = 0, 0, 0, 0
		s.History = nil
		s.StartedAt = a.At
		s.Exercise = a.Exercise
		s.Selected = -1
		s.Answered = false
		return s, nil
	case Answer:
		return answer(s, a)
	case Next:
		if s.Screen != ScreenExercise {
			return s, ErrWrongScreen
		}
		if !s.Answered {
			return s, ErrNotAnswered
		}
		if s.Rounds > 0 && s.Total >= s.Rounds {
			s.Screen = ScreenResults
			return s, nil
		}
		if len(a.Exercise.Options) == 0 {
			return s, ErrMissingExercise
		}
		s.Exercise = a.Exercise
		s.Selected = -1
		s.Answered = false
		return s, nil
	case Stop:
		if s.Screen != ScreenExercise {
			return s, ErrWrongScreen
		}
		if s.Total > 0 {
			s.Screen = ScreenResults
		} else {
			s.Screen = ScreenSetup
		}
		return s, nil
	case Setup:
		s.Screen = ScreenSetup
		s.Selected = -1
		s.Answered = false
		return s, nil
	default:
		return s, fmt.Errorf("%w: %T", ErrUnknownAction, a)
	}
}

func toggleKind(s State, kind model.Kind) (State, error) {
	if s.Screen != ScreenSetup {
		return s, ErrWrongScreen
	}
	if !kind.Valid() {
		return s, fmt.Errorf("%w: %q", model.ErrInvalidKind, kind)
	}
	kinds := make([]model.Kind, 0, len(s.Kinds)+1)
	removed := false
	for _, k := range s.Kinds {
		if k == kind {
			removed = true
			continue
		}
		kinds = append(kinds, k)
	}
	if removed && len(kinds) == 0 {
		return s, ErrLastKind
	}
	if !removed {
		kinds = append(kinds, kind)
	}
	s.Kinds = kinds
	return s, nil
}

func answer(s State, a Answer) (State, error) {
	if s.Screen != ScreenExercise {
		return s, ErrWrongScreen
	}
	if s.Answered {
		return s, ErrAlreadyAnswered
	}
	if a.Index < 0 || a.Index >= len(s.Exercise.Options) {
		return s, fmt.Errorf("%w: %d", ErrInvalidOption, a.Index)
	}
	correct := a.Index == s.Exercise.CorrectIndex
	s.Selected = a.Index
	s.Answered = true
	s.Total++
	if correct {
		s.Score++
		s.Streak++
	} else {
		s.Streak = 0
	}
	if s.Streak > s.BestStreak {
		s.BestStreak = s.Streak
	}
	history := make([]model.AnswerRecord, len(s.History), len(s.History)+1)
	copy(history, s.History)
	s.History = append(history, model.AnswerRecord{
		Kind:       s.Exercise.Kind,
		Target:     s.Exercise.Target,
		Selected:   s.Exercise.Options[a.Index],
		Correct:    correct,
		AnsweredAt: a.At,
	})
	return s, nil
}

// KindEnabled reports whether k is in the enabled set.
func (s State) KindEnabled(k model.Kind) bool {
	for _, enabled := range s.Kinds {
		if enabled == k {
			return true
		}
	}
	return false
}

// LastCorrect reports whether the current exercise was answered correctly.
func (s State) LastCorrect() bool {
	return s.Answered && s.Selected == s.Exercise.CorrectIndex
}

// Percentage returns the rounded share of correct answers, 0 before any answer.
func (s State) Percentage() int {
	return stats.Percentage(s.Score, s.Total)
}

// Mistakes returns the wrongly answered records in order.
func (s State) Mistakes() []model.AnswerRecord {
	var out []model.AnswerRecord
	for _, rec := range s.History {
		if !rec.Correct {
			out = append(out, rec)
		}
	}
	return out
}
