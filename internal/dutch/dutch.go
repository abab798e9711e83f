// Package dutch translates clock times to and from Dutch phrases.
package dutch

import (
	"fmt"

	"github.com/verte-zerg/klokkijken/internal/model"
)

// hourNames is indexed by hour mod 12; index 12 names the hour after elf.
var hourNames = [13]string{
	"twaalf", "één", "twee", "drie", "vier", "vijf",
	"zes", "zeven", "acht", "negen", "tien", "elf", "twaalf",
}

// HourName returns the Dutch name of an hour on the face.
func HourName(hour int) (string, error) {
	if hour < 1 || hour > 12 {
		return "", fmt.Errorf("%w: hour %d", model.ErrInvalidTime, hour)
	}
	return hourNames[hour%12], nil
}

// Verbalize returns the Dutch phrase for a time, e.g. "kwart voor twee".
// From twenty past on the phrase refers to the next hour.
func Verbalize(hour, minute int) (string, error) {
	t := model.ClockTime{Hour: hour, Minute: minute}
	if !t.Valid() {
		return "", fmt.Errorf("%w: %d:%02d", model.ErrInvalidTime, hour, minute)
	}
	current := hourNames[hour%12]
	next := hourNames[hour%12+1]

	switch minute {
	case 0:
		return current + " uur", nil
	case 5:
		return "vijf over " + current, nil
	case 10:
		return "tien over " + current, nil
	case 15:
		return "kwart over " + current, nil
	case 20:
		return "tien voor half " + next, nil
	case 25:
		return "vijf voor half " + next, nil
	case 30:
		return "half " + next, nil
	case 35:
		return "vijf over half " + next, nil
	case 40:
		return "tien over half " + next, nil
	case 45:
		return "kwart voor " + next, nil
	case 50:
		return "tien voor " + next, nil
	case 55:
		return "vijf voor " + next, nil
	default:
		return current + " uur", nil
	}
}

// MustVerbalize is Verbalize for times known to be valid. It panics otherwise.
func MustVerbalize(t model.ClockTime) string {
	phrase, err := Verbalize(t.Hour, t.Minute)
	if err != nil {
		panic(err)
	}
	return phrase
}
