package stats

import (
	"io"
	"time"

	"github.com/verte-zerg/klokkijken/internal/model"
)

// CurveWindow is the moving-average window of the accuracy curve.
const CurveWindow = 5

// Report contains precomputed data for result rendering.
type Report struct {
	Level      model.Level
	Score      int
	Total      int
	Percentage int
	BestStreak int
	AvgSeconds float64
	Kinds      []model.KindAggregate
	Mistakes   []model.AnswerRecord
	Curve      []float64
}

// BuildReport summarizes the answers of one run.
func BuildReport(level model.Level, startedAt time.Time, history []model.AnswerRecord) Report {
	r := Report{
		Level: level,
		Total: len(history),
		Kinds: AggregateByKind(history),
		Curve: RollingAccuracy(history, CurveWindow),
	}
	streak := 0
	for _, rec := range history {
		if !rec.Correct {
			streak = 0
			r.Mistakes = append(r.Mistakes, rec)
			continue
		}
		r.Score++
		streak++
		r.BestStreak = max(r.BestStreak, streak)
	}
	r.Percentage = Percentage(r.Score, r.Total)

	var sum float64
	var n int
	for _, d := range AnswerDurations(startedAt, history) {
		if d > 0 {
			sum += d
			n++
		}
	}
	if n > 0 {
		r.AvgSeconds = sum / float64(n)
	}
	return r
}

// Render writes the summary, the kind table and the mistakes review.
func Render(w io.Writer, r Report) error {
	if err := RenderSummary(w, r); err != nil {
		return err
	}
	if r.Total == 0 {
		return nil
	}
	if err := RenderKindTable(w, r.Kinds); err != nil {
		return err
	}
	return RenderMistakes(w, r.Mistakes)
}
