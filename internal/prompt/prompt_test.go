package prompt

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/klokkijken/internal/generator"
	"github.com/verte-zerg/klokkijken/internal/model"
	"github.com/verte-zerg/klokkijken/internal/session"
)

type constSource struct{}

func (constSource) Intn(int) int     { return 0 }
func (constSource) Float64() float64 { return 0 }

type tickClock struct{ at time.Time }

func (c *tickClock) Now() time.Time {
	c.at = c.at.Add(2 * time.Second)
	return c.at
}

func newClock() *tickClock { return &tickClock{at: time.Unix(0, 0)} }

func mustGenerate(t *testing.T, g *generator.Generator, level model.Level) model.Exercise {
	t.Helper()
	ex, err := g.Generate(level, nil)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	return ex
}

func TestRunScriptedAnswers(t *testing.T) {
	const seed = 42
	level := model.LevelQuarters

	// A twin generator replays the same draws to learn the right answers.
	twin := generator.NewWithSeed(seed)
	first := mustGenerate(t, twin, level)
	second := mustGenerate(t, twin, level)
	wrong := (first.CorrectIndex+1)%len(first.Options) + 1
	right := second.CorrectIndex + 1
	script := fmt.Sprintf("%d\n%d\nq\n", wrong, right)

	var out bytes.Buffer
	cfg := model.Config{Level: level}
	if err := Run(context.Background(), strings.NewReader(script), &out, generator.NewWithSeed(seed), cfg, newClock()); err != nil {
		t.Fatalf("run: %v", err)
	}
	got := out.String()
	for _, want := range []string{
		"Vraag 1 van 10",
		"Vraag 2 van 10",
		"Vraag 3 van 10",
		session.Correction(first.Target),
		"Score: 1/2",
		"50% goed",
		"Niveau: Kwartieren",
		"Even herhalen:",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Vraag 4 van 10") {
		t.Fatalf("expected the run to stop at q:\n%s", got)
	}
}

func TestRunStopsAfterRounds(t *testing.T) {
	var out bytes.Buffer
	cfg := model.Config{Level: model.LevelWholeHours, Rounds: 2}
	gen := generator.NewWithSource(constSource{})
	if err := Run(context.Background(), strings.NewReader("1\n1\n1\n"), &out, gen, cfg, newClock()); err != nil {
		t.Fatalf("run: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "Score: 2/2") || !strings.Contains(got, "100% goed") {
		t.Fatalf("unexpected summary:\n%s", got)
	}
	if strings.Contains(got, "Vraag 3 van 2") {
		t.Fatalf("asked past the round limit:\n%s", got)
	}
	if !strings.Contains(got, session.ResultMessage(100)) {
		t.Fatalf("expected result message:\n%s", got)
	}
}

func TestRunRepromptsOnInvalidInput(t *testing.T) {
	var out bytes.Buffer
	cfg := model.Config{Level: model.LevelWholeHours, Rounds: 1}
	gen := generator.NewWithSource(constSource{})
	// The constant source yields a single option, so 2 is out of range.
	if err := Run(context.Background(), strings.NewReader("abc\n2\n1\n"), &out, gen, cfg, newClock()); err != nil {
		t.Fatalf("run: %v", err)
	}
	got := out.String()
	if n := strings.Count(got, "Kies een getal van 1 tot 1."); n != 2 {
		t.Fatalf("expected 2 reprompts, got %d:\n%s", n, got)
	}
	if !strings.Contains(got, "Score: 1/1") {
		t.Fatalf("unexpected summary:\n%s", got)
	}
}

func TestRunEndOfInputWithoutAnswers(t *testing.T) {
	var out bytes.Buffer
	if err := Run(context.Background(), strings.NewReader(""), &out, generator.NewWithSeed(1), model.Config{}, newClock()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "Nog geen antwoorden.") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}

func TestRunHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	err := Run(ctx, strings.NewReader("1\n"), &out, generator.NewWithSeed(1), model.Config{}, newClock())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRunFallsBackToDefaultLevel(t *testing.T) {
	var out bytes.Buffer
	cfg := model.Config{Level: model.Level(9)}
	// An invalid level falls back to the default level in the session.
	if err := Run(context.Background(), strings.NewReader("q\n"), &out, generator.NewWithSeed(1), cfg, newClock()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "Kwartieren") {
		t.Fatalf("expected default level:\n%s", out.String())
	}
}
