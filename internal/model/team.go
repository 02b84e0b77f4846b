package model

import (
	"fmt"
	"math"
)

// TeamRating is one row of a gameweek's ratings snapshot.
// Rating is on a rough goal-difference scale; Reason is free text for the table.
type TeamRating struct {
	Team   string
	Rating float64
	Reason string
}

// Ratings is an immutable team -> rating lookup built from a snapshot.
type Ratings map[string]float64

// NewRatings builds a lookup from snapshot rows, rejecting duplicates and non-finite ratings.
func NewRatings(rows []TeamRating) (Ratings, error) {
	out := make(Ratings, len(rows))
	for _, r := range rows {
		if r.Team == "" {
			return nil, fmt.Errorf("%w: empty team name", ErrInvalidInput)
		}
		if math.IsNaN(r.Rating) || math.IsInf(r.Rating, 0) {
			return nil, fmt.Errorf("%w: rating for %q is not finite", ErrInvalidInput, r.Team)
		}
		if _, dup := out[r.Team]; dup {
			return nil, fmt.Errorf("%w: duplicate team %q", ErrInvalidInput, r.Team)
		}
		out[r.Team] = r.Rating
	}
	return out, nil
}

// Lookup returns the rating for team. Names match exactly (case and spacing).
func (r Ratings) Lookup(team string) (float64, error) {
	v, ok := r[team]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownTeam, team)
	}
	return v, nil
}
