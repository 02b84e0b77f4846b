package model

import "errors"

var (
	// ErrUnknownTeam is returned when a fixture references a team missing from the ratings snapshot.
	ErrUnknownTeam = errors.New("unknown team")
	// ErrUnknownGameweek is returned when a gameweek is not present in the season configuration.
	ErrUnknownGameweek = errors.New("unknown gameweek")
	// ErrDegenerateProbability is returned when a probability of zero would be inverted.
	ErrDegenerateProbability = errors.New("degenerate probability")
	// ErrInvalidInput covers non-finite ratings, rates and out-of-range model parameters.
	ErrInvalidInput = errors.New("invalid input")
)
