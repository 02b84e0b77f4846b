package predict

import (
	"sort"

	"matchodds/internal/model"
)

// SortByKickoff reorders predictions to follow order, a list of "Home vs Away" labels.
// Matches missing from order go last, keeping their original relative order.
// The input slice is not modified.
func SortByKickoff(preds []model.Prediction, order []string) []model.Prediction {
	out := make([]model.Prediction, len(preds))
	copy(out, preds)
	if len(order) == 0 {
		return out
	}

	rank := make(map[string]int, len(order))
	for i, m := range order {
		if _, seen := rank[m]; !seen {
			rank[m] = i
		}
	}
	key := func(p model.Prediction) int {
		if r, ok := rank[p.Match()]; ok {
			return r
		}
		return len(order)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return key(out[i]) < key(out[j])
	})
	return out
}
