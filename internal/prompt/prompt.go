// Package prompt runs the quiz as a line-oriented dialogue over text streams.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/verte-zerg/klokkijken/internal/clockface"
	"github.com/verte-zerg/klokkijken/internal/generator"
	"github.com/verte-zerg/klokkijken/internal/model"
	"github.com/verte-zerg/klokkijken/internal/session"
	"github.com/verte-zerg/klokkijken/internal/stats"
)

// DefaultRounds is used when the config does not limit the run.
const DefaultRounds = 10

const (
	promptRadius = 5
	optionRadius = 3
)

// Run plays one quiz run, reading answers from in and writing to out. It
// ends after the configured rounds, on "q", or at end of input, and always
// prints the summary of what was answered.
func Run(ctx context.Context, in io.Reader, out io.Writer, gen *generator.Generator, cfg model.Config, clock session.Clock) error {
	if clock == nil {
		clock = session.SystemClock{}
	}
	if cfg.Rounds <= 0 {
		cfg.Rounds = DefaultRounds
	}
	state := session.NewState(cfg)
	p := &player{
		lines: bufio.NewScanner(in),
		out:   out,
		gen:   gen,
		cfg:   cfg,
		clock: clock,
	}

	ex, err := gen.Generate(state.Level, state.Kinds)
	if err != nil {
		return fmt.Errorf("failed to generate exercise: %w", err)
	}
	if state, err = session.Reduce(state, session.Start{Exercise: ex, At: clock.Now()}); err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	fmt.Fprintf(out, "Klokkijken: %s, %d vragen. Typ 1-4 of q om te stoppen.\n", state.Level.Name(), state.Rounds)
	for state.Screen == session.ScreenExercise {
		if err := ctx.Err(); err != nil {
			return err
		}
		state, err = p.round(state)
		if err != nil {
			return err
		}
	}

	fmt.Fprintln(out)
	if state.Total > 0 {
		pct := state.Percentage()
		fmt.Fprintf(out, "%s %s\n\n", session.ResultEmoji(pct), session.ResultMessage(pct))
	}
	if err := stats.Render(out, stats.BuildReport(state.Level, state.StartedAt, state.History)); err != nil {
		return fmt.Errorf("failed to render summary: %w", err)
	}
	return nil
}

type player struct {
	lines *bufio.Scanner
	out   io.Writer
	gen   *generator.Generator
	cfg   model.Config
	clock session.Clock
}

// round asks the current exercise and advances the state by one answer.
func (p *player) round(state session.State) (session.State, error) {
	p.ask(state)

	index, ok, err := p.readChoice(len(state.Exercise.Options))
	if err != nil {
		return state, err
	}
	if !ok {
		return session.Reduce(state, session.Stop{})
	}
	state, err = session.Reduce(state, session.Answer{Index: index, At: p.clock.Now()})
	if err != nil {
		return state, fmt.Errorf("failed to record answer: %w", err)
	}
	if state.LastCorrect() {
		fmt.Fprintln(p.out, session.Praise(p.gen.Intn(session.PraiseCount)))
	} else {
		fmt.Fprintf(p.out, "Helaas! %s\n", session.Correction(state.Exercise.Target))
	}

	ex, err := p.nextExercise(state)
	if err != nil {
		return state, fmt.Errorf("failed to generate exercise: %w", err)
	}
	return session.Reduce(state, session.Next{Exercise: ex})
}

func (p *player) nextExercise(state session.State) (model.Exercise, error) {
	if !p.cfg.FocusWeak {
		return p.gen.Generate(state.Level, state.Kinds)
	}
	weak := stats.SelectWeakKinds(stats.AggregateByKind(state.History), 0)
	return p.gen.GenerateWeighted(state.Level, state.Kinds, weak, p.cfg.WeakFactor)
}

func (p *player) ask(state session.State) {
	ex := state.Exercise
	fmt.Fprintf(p.out, "\nVraag %d van %d (%s)\n", state.Total+1, state.Rounds, ex.Kind.Label())
	if ex.Kind.Prompt() == model.FaceText {
		fmt.Fprintln(p.out, "Welke klok hoort bij:")
	} else {
		fmt.Fprintln(p.out, "Hoe laat is het?")
	}
	fmt.Fprintln(p.out, clockface.Render(ex.Kind.Prompt(), ex.Target, promptRadius))
	for i, opt := range ex.Options {
		body := clockface.Render(ex.Kind.Answer(), opt, optionRadius)
		if ex.Kind.Answer() == model.FaceText {
			fmt.Fprintf(p.out, "  %d. %s\n", i+1, body)
			continue
		}
		fmt.Fprintf(p.out, "  %d.\n%s\n", i+1, indent(body, "     "))
	}
}

// readChoice returns the zero-based option, or ok=false when the player
// quits or input ends.
func (p *player) readChoice(count int) (int, bool, error) {
	for {
		fmt.Fprintf(p.out, "Antwoord (1-%d, q): ", count)
		if !p.lines.Scan() {
			fmt.Fprintln(p.out)
			if err := p.lines.Err(); err != nil && !errors.Is(err, io.EOF) {
				return 0, false, fmt.Errorf("failed to read answer: %w", err)
			}
			return 0, false, nil
		}
		text := strings.ToLower(strings.TrimSpace(p.lines.Text()))
		if text == "q" {
			return 0, false, nil
		}
		n, err := strconv.Atoi(text)
		if err == nil && n >= 1 && n <= count {
			return n - 1, true, nil
		}
		fmt.Fprintf(p.out, "Kies een getal van 1 tot %d.\n", count)
	}
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
