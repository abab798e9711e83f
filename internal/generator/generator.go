// Package generator builds clock-reading exercises.
package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/verte-zerg/klokkijken/internal/model"
)

const (
	// MaxAttempts bounds the sampling loop used to collect distractors.
	MaxAttempts = 100
	// DefaultDistractors is the number of wrong options per exercise.
	DefaultDistractors = 3
)

// ErrShortDistractors reports that fewer distinct distractors than requested
// could be drawn within MaxAttempts. The partial result is still returned.
var ErrShortDistractors = errors.New("too few distinct distractors")

// Source provides uniform randomness. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Float64() float64
}

var levelThreeMinutes = []int{0, 15, 30, 45, 5, 10, 20, 25, 35, 40, 50, 55}

var quarterMinutes = []int{0, 15, 30, 45}

// Generator produces randomized exercises. It is not safe for concurrent use.
type Generator struct {
	rnd Source
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed returns a reproducible Generator.
func NewWithSeed(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// NewWithSource returns a Generator drawing from src.
func NewWithSource(src Source) *Generator {
	return &Generator{rnd: src}
}

// Intn exposes the generator's source for cosmetic choices in front-ends.
func (g *Generator) Intn(n int) int {
	return g.rnd.Intn(n)
}

// Sample draws a time allowed at the given level.
func (g *Generator) Sample(level model.Level) (model.ClockTime, error) {
	if !level.Valid() {
		return model.ClockTime{}, fmt.Errorf("%w: %d", model.ErrInvalidLevel, level)
	}
	t := model.ClockTime{Hour: g.rnd.Intn(12) + 1}
	switch level {
	case model.LevelWholeHours:
		t.Minute = 0
	case model.LevelQuarters:
		t.Minute = quarterMinutes[g.rnd.Intn(len(quarterMinutes))]
	case model.LevelFiveMinutes:
		t.Minute = levelThreeMinutes[g.rnd.Intn(len(levelThreeMinutes))]
	default:
		t.Minute = g.rnd.Intn(12) * 5
	}
	return t, nil
}

// Distractors draws up to count distinct times that differ from target.
// When fewer could be found within MaxAttempts the collected times are
// returned with an error wrapping ErrShortDistractors.
func (g *Generator) Distractors(target model.ClockTime, level model.Level, count int) ([]model.ClockTime, error) {
	if !target.Valid() {
		return nil, fmt.Errorf("%w: target %d:%02d", model.ErrInvalidTime, target.Hour, target.Minute)
	}
	if !level.Valid() {
		return nil, fmt.Errorf("%w: %d", model.ErrInvalidLevel, level)
	}
	if count < 0 {
		return nil, fmt.Errorf("distractor count must be >= 0, got %d", count)
	}

	result := make([]model.ClockTime, 0, count)
	seen := map[model.ClockTime]struct{}{target: {}}
	for attempts := 0; len(result) < count && attempts < MaxAttempts; attempts++ {
		t, err := g.Sample(level)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		result = append(result, t)
	}
	if len(result) < count {
		return result, fmt.Errorf("%w: got %d of %d", ErrShortDistractors, len(result), count)
	}
	return result, nil
}

// Generate builds an exercise with a kind chosen uniformly from kinds.
// An empty kinds slice means every kind.
func (g *Generator) Generate(level model.Level, kinds []model.Kind) (model.Exercise, error) {
	return g.GenerateWeighted(level, kinds, nil, 0)
}

// GenerateWeighted builds an exercise, choosing kinds in weak with weight
// 1+factor and the others with weight 1.
func (g *Generator) GenerateWeighted(level model.Level, kinds []model.Kind, weak map[model.Kind]struct{}, factor float64) (model.Exercise, error) {
	if len(kinds) == 0 {
		kinds = model.AllKinds()
	}
	for _, k := range kinds {
		if !k.Valid() {
			return model.Exercise{}, fmt.Errorf("%w: %q", model.ErrInvalidKind, k)
		}
	}
	if factor < 0 {
		return model.Exercise{}, fmt.Errorf("weak factor must be >= 0, got %v", factor)
	}

	kind := g.pickKind(kinds, weak, factor)
	target, err := g.Sample(level)
	if err != nil {
		return model.Exercise{}, err
	}
	distractors, err := g.Distractors(target, level, DefaultDistractors)
	if err != nil && !errors.Is(err, ErrShortDistractors) {
		return model.Exercise{}, err
	}

	options := make([]model.ClockTime, 0, len(distractors)+1)
	options = append(options, target)
	options = append(options, distractors...)
	g.shuffle(options)

	correct := -1
	for i, opt := range options {
		if opt == target {
			correct = i
			break
		}
	}
	return model.Exercise{
		Kind:         kind,
		Target:       target,
		Options:      options,
		CorrectIndex: correct,
	}, nil
}

func (g *Generator) pickKind(kinds []model.Kind, weak map[model.Kind]struct{}, factor float64) model.Kind {
	if len(weak) == 0 || factor == 0 {
		return kinds[g.rnd.Intn(len(kinds))]
	}
	weights := make([]float64, len(kinds))
	total := 0.0
	for i, k := range kinds {
		w := 1.0
		if _, ok := weak[k]; ok {
			w += factor
		}
		weights[i] = w
		total += w
	}
	r := g.rnd.Float64() * total
	acc := 0.0
	for i, w := range weights {
		acc += w
		if r < acc {
			return kinds[i]
		}
	}
	return kinds[len(kinds)-1]
}

// shuffle is a Fisher-Yates shuffle driven by the generator's source.
func (g *Generator) shuffle(times []model.ClockTime) {
	for i := len(times) - 1; i > 0; i-- {
		j := g.rnd.Intn(i + 1)
		times[i], times[j] = times[j], times[i]
	}
}
