// Package model defines shared data structures.
package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrInvalidTime reports an hour or minute outside the clock domain.
	ErrInvalidTime = errors.New("invalid clock time")
	// ErrInvalidLevel reports a difficulty level outside 1-4.
	ErrInvalidLevel = errors.New("invalid level")
	// ErrInvalidKind reports an unknown exercise kind.
	ErrInvalidKind = errors.New("invalid exercise kind")
)

// ClockTime is a time on a twelve-hour face in five-minute steps.
type ClockTime struct {
	Hour   int
	Minute int
}

// Valid reports whether the hour is 1-12 and the minute a multiple of 5 below 60.
func (t ClockTime) Valid() bool {
	return t.Hour >= 1 && t.Hour <= 12 && t.Minute >= 0 && t.Minute < 60 && t.Minute%5 == 0
}

// Digital formats the time as shown on a digital clock, e.g. "3:05".
func (t ClockTime) Digital() string {
	h := t.Hour % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d", h, t.Minute)
}

// ParseDigital parses "h:mm" into a ClockTime and validates it.
func ParseDigital(s string) (ClockTime, error) {
	var t ClockTime
	s = strings.TrimSpace(s)
	if _, err := fmt.Sscanf(s, "%d:%d", &t.Hour, &t.Minute); err != nil {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	if !t.Valid() {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	return t, nil
}

// Face is a way of showing a time.
type Face int

const (
	FaceText Face = iota
	FaceAnalog
	FaceDigital
)

// Kind selects the prompt face and the answer face of an exercise.
type Kind string

const (
	KindAnalogToText    Kind = "analog_to_text"
	KindTextToAnalog    Kind = "text_to_analog"
	KindDigitalToText   Kind = "digital_to_text"
	KindTextToDigital   Kind = "text_to_digital"
	KindAnalogToDigital Kind = "analog_to_digital"
	KindDigitalToAnalog Kind = "digital_to_analog"
)

type kindInfo struct {
	prompt      Face
	answer      Face
	label       string
	description string
}

var kinds = map[Kind]kindInfo{
	KindAnalogToText:    {FaceAnalog, FaceText, "Analoge klok → Tekst", "Bekijk de analoge klok en kies de juiste tijd in het Nederlands"},
	KindTextToAnalog:    {FaceText, FaceAnalog, "Tekst → Analoge klok", "Lees de tijd en kies de juiste analoge klok"},
	KindDigitalToText:   {FaceDigital, FaceText, "Digitale klok → Tekst", "Bekijk de digitale klok en kies de juiste tijd in het Nederlands"},
	KindTextToDigital:   {FaceText, FaceDigital, "Tekst → Digitale klok", "Lees de tijd en kies de juiste digitale klok"},
	KindAnalogToDigital: {FaceAnalog, FaceDigital, "Analoog → Digitaal", "Bekijk de analoge klok en kies de digitale tijd"},
	KindDigitalToAnalog: {FaceDigital, FaceAnalog, "Digitaal → Analoog", "Bekijk de digitale klok en kies de analoge klok"},
}

// AllKinds returns every exercise kind in display order.
func AllKinds() []Kind {
	return []Kind{
		KindAnalogToText,
		KindTextToAnalog,
		KindDigitalToText,
		KindTextToDigital,
		KindAnalogToDigital,
		KindDigitalToAnalog,
	}
}

// ParseKind validates a kind name.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.TrimSpace(strings.ToLower(s)))
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidKind, s)
	}
	return k, nil
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	_, ok := kinds[k]
	return ok
}

// Prompt returns the face the question is shown with.
func (k Kind) Prompt() Face { return kinds[k].prompt }

// Answer returns the face the options are shown with.
func (k Kind) Answer() Face { return kinds[k].answer }

// Label returns the Dutch display label.
func (k Kind) Label() string { return kinds[k].label }

// Description returns the Dutch instruction for the kind.
func (k Kind) Description() string { return kinds[k].description }

// Level is the difficulty level, controlling which minutes are asked.
type Level int

const (
	LevelWholeHours Level = iota + 1
	LevelQuarters
	LevelFiveMinutes
	LevelEverything
)

var levelInfo = map[Level][2]string{
	LevelWholeHours:  {"Hele uren", "drie uur, zeven uur..."},
	LevelQuarters:    {"Kwartieren", "kwart over, half, kwart voor"},
	LevelFiveMinutes: {"5 minuten", "vijf over, tien voor half..."},
	LevelEverything:  {"Alles!", "Alle tijden door elkaar"},
}

// AllLevels returns the levels from easiest to hardest.
func AllLevels() []Level {
	return []Level{LevelWholeHours, LevelQuarters, LevelFiveMinutes, LevelEverything}
}

// Valid reports whether l is 1-4.
func (l Level) Valid() bool {
	return l >= LevelWholeHours && l <= LevelEverything
}

// Name returns the Dutch level name.
func (l Level) Name() string { return levelInfo[l][0] }

// Description returns example phrases for the level.
func (l Level) Description() string { return levelInfo[l][1] }

// Exercise is one quiz question.
type Exercise struct {
	Kind         Kind
	Target       ClockTime
	Options      []ClockTime
	CorrectIndex int
}

// AnswerRecord captures one answered exercise.
type AnswerRecord struct {
	Kind       Kind
	Target     ClockTime
	Selected   ClockTime
	Correct    bool
	AnsweredAt time.Time
}

// KindAggregate aggregates answers per exercise kind.
type KindAggregate struct {
	Kind      Kind
	Correct   int
	Incorrect int
}

// Config defines practice settings.
type Config struct {
	Level      Level
	Kinds      []Kind
	Rounds     int
	FocusWeak  bool
	WeakFactor float64
	Seed       int64
	Plain      bool
}
