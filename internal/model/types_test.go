package model

import (
	"errors"
	"testing"
)

func TestClockTimeValid(t *testing.T) {
	tests := []struct {
		name string
		t    ClockTime
		want bool
	}{
		{"one o'clock", ClockTime{1, 0}, true},
		{"twelve fifty-five", ClockTime{12, 55}, true},
		{"hour zero", ClockTime{0, 0}, false},
		{"hour thirteen", ClockTime{13, 0}, false},
		{"minute sixty", ClockTime{3, 60}, false},
		{"minute not on five", ClockTime{3, 7}, false},
		{"negative minute", ClockTime{3, -5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.t.Valid(); got != tt.want {
				t.Fatalf("Valid(%+v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestClockTimeDigital(t *testing.T) {
	if got := (ClockTime{3, 5}).Digital(); got != "3:05" {
		t.Fatalf("expected 3:05, got %q", got)
	}
	if got := (ClockTime{12, 30}).Digital(); got != "12:30" {
		t.Fatalf("expected 12:30, got %q", got)
	}
}

func TestParseDigital(t *testing.T) {
	got, err := ParseDigital(" 11:55 ")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got != (ClockTime{11, 55}) {
		t.Fatalf("unexpected time: %+v", got)
	}
	for _, in := range []string{"", "noon", "13:00", "3:07"} {
		if _, err := ParseDigital(in); !errors.Is(err, ErrInvalidTime) {
			t.Fatalf("expected ErrInvalidTime for %q, got %v", in, err)
		}
	}
}

func TestKindFaces(t *testing.T) {
	for _, k := range AllKinds() {
		if !k.Valid() {
			t.Fatalf("kind %q should be valid", k)
		}
		if k.Prompt() == k.Answer() {
			t.Fatalf("kind %q prompts and answers with the same face", k)
		}
		if k.Label() == "" || k.Description() == "" {
			t.Fatalf("kind %q is missing label or description", k)
		}
	}
	if KindTextToDigital.Prompt() != FaceText || KindTextToDigital.Answer() != FaceDigital {
		t.Fatalf("unexpected faces for %q", KindTextToDigital)
	}
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind(" Analog_To_Text ")
	if err != nil {
		t.Fatalf("parse kind: %v", err)
	}
	if k != KindAnalogToText {
		t.Fatalf("unexpected kind %q", k)
	}
	if _, err := ParseKind("sundial"); !errors.Is(err, ErrInvalidKind) {
		t.Fatalf("expected ErrInvalidKind, got %v", err)
	}
}

func TestLevelInfo(t *testing.T) {
	if Level(0).Valid() || Level(5).Valid() {
		t.Fatalf("levels outside 1-4 must be invalid")
	}
	if LevelQuarters.Name() != "Kwartieren" {
		t.Fatalf("unexpected name %q", LevelQuarters.Name())
	}
	if len(AllLevels()) != 4 {
		t.Fatalf("expected 4 levels")
	}
}
