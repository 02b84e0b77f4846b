package outcome

import (
	"fmt"
	"math"

	"matchodds/internal/model"
)

// FairOdds returns the decimal price 1/p. A zero, negative or non-finite
// probability has no fair price.
func FairOdds(p float64) (float64, error) {
	if p <= 0 || math.IsNaN(p) || math.IsInf(p, 0) {
		return 0, fmt.Errorf("%w: cannot price probability %v", model.ErrDegenerateProbability, p)
	}
	return 1 / p, nil
}

// FairOddsFor prices all three outcomes.
func FairOddsFor(p model.Probabilities) (model.FairOdds, error) {
	home, err := FairOdds(p.Home)
	if err != nil {
		return model.FairOdds{}, fmt.Errorf("home: %w", err)
	}
	draw, err := FairOdds(p.Draw)
	if err != nil {
		return model.FairOdds{}, fmt.Errorf("draw: %w", err)
	}
	away, err := FairOdds(p.Away)
	if err != nil {
		return model.FairOdds{}, fmt.Errorf("away: %w", err)
	}
	return model.FairOdds{Home: home, Draw: draw, Away: away}, nil
}
