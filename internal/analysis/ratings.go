package analysis

import (
	"sort"

	"matchodds/internal/model"
)

// RankedRating is one row of the ratings table.
// Change is nil when the team has no rating in the previous snapshot.
type RankedRating struct {
	Rank   int
	Team   string
	Rating float64
	Change *float64
	Reason string
}

// RankRatings sorts a snapshot descending by rating (ties by team name) and
// annotates each team with its change against previous, when previous has it.
func RankRatings(current []model.TeamRating, previous model.Ratings) []RankedRating {
	out := make([]RankedRating, 0, len(current))
	for _, r := range current {
		row := RankedRating{Team: r.Team, Rating: r.Rating, Reason: r.Reason}
		if prev, ok := previous[r.Team]; ok {
			delta := r.Rating - prev
			row.Change = &delta
		}
		out = append(out, row)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Rating != out[j].Rating {
			return out[i].Rating > out[j].Rating
		}
		return out[i].Team < out[j].Team
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}

// Spread is the gap between the strongest and weakest rating in a snapshot.
func Spread(rows []RankedRating) float64 {
	if len(rows) == 0 {
		return 0
	}
	return rows[0].Rating - rows[len(rows)-1].Rating
}
