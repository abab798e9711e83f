package stats

import (
	"sort"

	"github.com/verte-zerg/klokkijken/internal/model"
)

// SelectWeakKinds picks up to top kinds with the lowest accuracy among those
// that were missed at least once. top <= 0 means no limit.
func SelectWeakKinds(aggs []model.KindAggregate, top int) map[model.Kind]struct{} {
	weak := map[model.Kind]struct{}{}
	candidates := make([]model.KindAggregate, 0, len(aggs))
	for _, agg := range aggs {
		if agg.Incorrect > 0 {
			candidates = append(candidates, agg)
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		ai := accuracy(candidates[i])
		aj := accuracy(candidates[j])
		if ai == aj {
			return candidates[i].Kind < candidates[j].Kind
		}
		return ai < aj
	})
	if top <= 0 || top > len(candidates) {
		top = len(candidates)
	}
	for _, agg := range candidates[:top] {
		weak[agg.Kind] = struct{}{}
	}
	return weak
}

func accuracy(agg model.KindAggregate) float64 {
	total := agg.Correct + agg.Incorrect
	if total == 0 {
		return 1.0
	}
	return float64(agg.Correct) / float64(total)
}
