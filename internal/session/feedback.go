package session

import (
	"fmt"

	"github.com/verte-zerg/klokkijken/internal/dutch"
	"github.com/verte-zerg/klokkijken/internal/model"
)

var praise = []string{
	"Goed zo! 🎉",
	"Uitstekend! ⭐",
	"Super! 🌟",
	"Perfect! 💫",
	"Top! 🏆",
}

// PraiseCount is the number of distinct praise phrases.
var PraiseCount = len(praise)

// Praise returns a praise phrase; i wraps around.
func Praise(i int) string {
	if i < 0 {
		i = -i
	}
	return praise[i%len(praise)]
}

// Correction tells the learner the right answer after a miss.
func Correction(t model.ClockTime) string {
	return fmt.Sprintf("Het goede antwoord is: %s (%s)", dutch.MustVerbalize(t), t.Digital())
}

// ResultMessage returns the closing message for a percentage score.
func ResultMessage(pct int) string {
	switch {
	case pct >= 90:
		return "Fantastisch! Je bent een klokkampioen!"
	case pct >= 70:
		return "Heel goed gedaan! Blijf oefenen!"
	case pct >= 50:
		return "Goed bezig! Je wordt steeds beter!"
	default:
		return "Niet opgeven! Oefening baart kunst!"
	}
}

// ResultEmoji returns the badge shown next to the result message.
func ResultEmoji(pct int) string {
	switch {
	case pct >= 90:
		return "🏆"
	case pct >= 70:
		return "🎉"
	case pct >= 50:
		return "👍"
	default:
		return "💪"
	}
}
