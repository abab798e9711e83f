package dutch

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/verte-zerg/klokkijken/internal/model"
)

// ErrUnknownPhrase reports a phrase that does not name a five-minute time.
var ErrUnknownPhrase = errors.New("unknown time phrase")

var phraseIndex = sync.OnceValue(func() map[string]model.ClockTime {
	index := make(map[string]model.ClockTime, 144)
	for hour := 1; hour <= 12; hour++ {
		for minute := 0; minute < 60; minute += 5 {
			t := model.ClockTime{Hour: hour, Minute: minute}
			index[normalize(MustVerbalize(t))] = t
		}
	}
	return index
})

// Parse returns the time named by a Dutch phrase. Case, spacing and accents
// are ignored, so "Half Een" parses like "half één".
func Parse(phrase string) (model.ClockTime, error) {
	key := normalize(phrase)
	if key == "" {
		return model.ClockTime{}, fmt.Errorf("%w: empty phrase", ErrUnknownPhrase)
	}
	t, ok := phraseIndex()[key]
	if !ok {
		return model.ClockTime{}, fmt.Errorf("%w: %q", ErrUnknownPhrase, phrase)
	}
	return t, nil
}

func normalize(s string) string {
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		out = s
	}
	return strings.Join(strings.Fields(cases.Fold().String(out)), " ")
}
