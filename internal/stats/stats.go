// Package stats contains result calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/verte-zerg/klokkijken/internal/dutch"
	"github.com/verte-zerg/klokkijken/internal/model"
)

const sparkChars = " .:-=+*#%@"

// Percentage returns the rounded share of correct answers.
func Percentage(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

// AggregateByKind counts answers per exercise kind, in AllKinds order.
func AggregateByKind(history []model.AnswerRecord) []model.KindAggregate {
	byKind := map[model.Kind]*model.KindAggregate{}
	for _, rec := range history {
		agg, ok := byKind[rec.Kind]
		if !ok {
			agg = &model.KindAggregate{Kind: rec.Kind}
			byKind[rec.Kind] = agg
		}
		if rec.Correct {
			agg.Correct++
		} else {
			agg.Incorrect++
		}
	}
	out := make([]model.KindAggregate, 0, len(byKind))
	for _, k := range model.AllKinds() {
		if agg, ok := byKind[k]; ok {
			out = append(out, *agg)
		}
	}
	return out
}

// RollingAccuracy returns the moving accuracy in percent after each answer.
func RollingAccuracy(history []model.AnswerRecord, window int) []float64 {
	values := make([]float64, len(history))
	for i, rec := range history {
		if rec.Correct {
			values[i] = 100
		}
	}
	return MovingAverage(values, window)
}

// AnswerDurations returns the seconds between consecutive answers, starting
// from startedAt. Records without a timestamp yield 0.
func AnswerDurations(startedAt time.Time, history []model.AnswerRecord) []float64 {
	out := make([]float64, len(history))
	prev := startedAt
	for i, rec := range history {
		if !rec.AnsweredAt.IsZero() && !prev.IsZero() {
			out[i] = rec.AnsweredAt.Sub(prev).Seconds()
		}
		prev = rec.AnsweredAt
	}
	return out
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		idx = max(0, min(idx, len(sparkChars)-1))
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

func printer() *message.Printer {
	return message.NewPrinter(language.Dutch)
}

// RenderSummary prints the score block of a finished run.
func RenderSummary(w io.Writer, r Report) error {
	p := printer()
	if r.Total == 0 {
		_, err := fmt.Fprintln(w, "Nog geen antwoorden.")
		return err
	}
	lines := []string{
		"Resultaat",
		p.Sprintf("Score: %d/%d", r.Score, r.Total),
		p.Sprintf("%d%% goed", r.Percentage),
		p.Sprintf("Beste reeks: %d", r.BestStreak),
		fmt.Sprintf("Niveau: %s", r.Level.Name()),
	}
	if r.AvgSeconds > 0 {
		lines = append(lines, p.Sprintf("Gemiddeld: %.1f s per vraag", r.AvgSeconds))
	}
	if curve := Sparkline(r.Curve); curve != "" && len(r.Curve) > 1 {
		lines = append(lines, fmt.Sprintf("Verloop: [%s]", curve))
	}
	for _, line := range append(lines, "") {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderKindTable prints per-kind results, weakest kind first.
func RenderKindTable(w io.Writer, aggs []model.KindAggregate) error {
	if len(aggs) == 0 {
		_, err := fmt.Fprintln(w, "Geen oefeningen gemaakt.")
		return err
	}
	rows := make([]model.KindAggregate, len(aggs))
	copy(rows, aggs)
	sort.SliceStable(rows, func(i, j int) bool {
		return accuracy(rows[i]) < accuracy(rows[j])
	})

	p := printer()
	headers := []string{"Oefening", "Goed", "Fout", "Score"}
	tableRows := make([][]string, 0, len(rows))
	for _, r := range rows {
		tableRows = append(tableRows, []string{
			r.Kind.Label(),
			fmt.Sprintf("%d", r.Correct),
			fmt.Sprintf("%d", r.Incorrect),
			p.Sprintf("%d%%", Percentage(r.Correct, r.Correct+r.Incorrect)),
		})
	}
	if _, err := fmt.Fprintln(w, "Per oefening"); err != nil {
		return err
	}
	for _, line := range formatTable(headers, tableRows, map[int]bool{1: true, 2: true, 3: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// RenderMistakes lists the missed times with their phrase and digital form.
func RenderMistakes(w io.Writer, mistakes []model.AnswerRecord) error {
	if len(mistakes) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "Even herhalen:"); err != nil {
		return err
	}
	for _, rec := range mistakes {
		if _, err := fmt.Fprintf(w, "  %s = %s\n", dutch.MustVerbalize(rec.Target), rec.Target.Digital()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}
