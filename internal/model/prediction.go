package model

import "fmt"

// Probabilities holds the three-way outcome split. Home+Draw+Away == 1.
type Probabilities struct {
	Home float64
	Draw float64
	Away float64
}

// FairOdds are the decimal reciprocals of Probabilities (no margin).
type FairOdds struct {
	Home float64
	Draw float64
	Away float64
}

// Scoreline is a (home goals, away goals) pair.
type Scoreline struct {
	Home int
	Away int
}

func (s Scoreline) String() string {
	return fmt.Sprintf("%d-%d", s.Home, s.Away)
}

// Prediction is the unrounded model output for one fixture.
// Rounding happens only where it is rendered (JSON, CSV, table).
type Prediction struct {
	Fixture

	Probabilities Probabilities
	FairOdds      FairOdds

	ExpGoalsHome float64
	ExpGoalsAway float64

	MostLikely Scoreline

	// RatingDiff is the signed differential fed to both the outcome and goal models,
	// after home advantage and any ruleset shift.
	RatingDiff float64
}
