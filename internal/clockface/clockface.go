// Package clockface draws clock times for the terminal.
package clockface

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/klokkijken/internal/dutch"
	"github.com/verte-zerg/klokkijken/internal/model"
)

const (
	// MinRadius is the smallest face that still shows both hands apart.
	MinRadius = 3

	rimGlyph    = '.'
	hourGlyph   = '#'
	centreGlyph = 'o'

	handStep = 0.25
)

var digitalStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)

// Render draws t using the given face.
func Render(face model.Face, t model.ClockTime, radius int) string {
	switch face {
	case model.FaceAnalog:
		return Analog(t, radius)
	case model.FaceDigital:
		return Digital(t)
	default:
		return dutch.MustVerbalize(t)
	}
}

// Digital frames the h:mm readout in a box.
func Digital(t model.ClockTime) string {
	return digitalStyle.Render(t.Digital())
}

// Analog draws a face of 2r+1 rows and 4r+1 columns. Columns are doubled
// because terminal cells are about twice as tall as they are wide.
func Analog(t model.ClockTime, radius int) string {
	radius = max(radius, MinRadius)
	f := newFace(radius)

	for deg := 0; deg < 360; deg += 6 {
		x, y := f.point(float64(deg), float64(radius))
		f.set(x, y, rimGlyph)
	}
	for n := 1; n <= 12; n++ {
		if radius < 6 && n%3 != 0 {
			continue
		}
		x, y := f.point(float64(n*30), float64(radius-1))
		f.label(x, y, strconv.Itoa(n))
	}

	hourDeg := float64(t.Hour%12)*30 + float64(t.Minute)/2
	minuteDeg := float64(t.Minute) * 6
	f.hand(hourDeg, float64(radius)*0.4, func(float64) rune { return hourGlyph })
	f.hand(minuteDeg, float64(radius)*0.6, minuteGlyph)
	f.set(f.cx, f.cy, centreGlyph)
	return f.String()
}

type face struct {
	cells  [][]rune
	cx, cy int
}

func newFace(radius int) *face {
	rows := make([][]rune, 2*radius+1)
	for i := range rows {
		rows[i] = []rune(strings.Repeat(" ", 4*radius+1))
	}
	return &face{cells: rows, cx: 2 * radius, cy: radius}
}

// point maps an angle clockwise from twelve and a distance in rows to a cell.
func (f *face) point(deg, dist float64) (int, int) {
	rad := deg * math.Pi / 180
	x := f.cx + int(math.Round(dist*math.Sin(rad)*2))
	y := f.cy - int(math.Round(dist*math.Cos(rad)))
	return x, y
}

func (f *face) set(x, y int, r rune) {
	if y < 0 || y >= len(f.cells) || x < 0 || x >= len(f.cells[y]) {
		return
	}
	f.cells[y][x] = r
}

func (f *face) label(x, y int, text string) {
	start := x - runewidth.StringWidth(text)/2
	for i, r := range []rune(text) {
		f.set(start+i, y, r)
	}
}

func (f *face) hand(deg, length float64, glyph func(float64) rune) {
	for s := handStep * 2; s <= length+1e-9; s += handStep {
		x, y := f.point(deg, s)
		f.set(x, y, glyph(deg))
	}
}

func (f *face) String() string {
	lines := make([]string, len(f.cells))
	for i, row := range f.cells {
		lines[i] = string(row)
	}
	return strings.Join(lines, "\n")
}

// minuteGlyph picks a line character matching the hand direction.
func minuteGlyph(deg float64) rune {
	d := math.Mod(deg, 180)
	switch {
	case d < 22.5 || d >= 157.5:
		return '|'
	case d < 67.5:
		return '/'
	case d < 112.5:
		return '-'
	default:
		return '\\'
	}
}
