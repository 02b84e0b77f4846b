package scoreline

import (
	"fmt"
	"math"

	"matchodds/internal/model"
)

// DefaultMaxGoals caps the scoreline grid at 0..6 goals per side.
const DefaultMaxGoals = 6

// Params map a rating differential to goal expectations.
// BaseGoalRate is the league-average goals per team per game; GoalTilt is how
// strongly expected goals lean with the differential.
type Params struct {
	BaseGoalRate float64
	GoalTilt     float64
	MaxGoals     int
}

func DefaultParams() Params {
	return Params{BaseGoalRate: 1.35, GoalTilt: 0.45, MaxGoals: DefaultMaxGoals}
}

func (p Params) Validate() error {
	if !finite(p.BaseGoalRate) || p.BaseGoalRate <= 0 {
		return fmt.Errorf("%w: base_goal_rate must be finite and > 0", model.ErrInvalidInput)
	}
	if !finite(p.GoalTilt) {
		return fmt.Errorf("%w: goal_tilt must be finite", model.ErrInvalidInput)
	}
	if p.MaxGoals < 0 {
		return fmt.Errorf("%w: max_goals must be >= 0", model.ErrInvalidInput)
	}
	return nil
}

// ExpectedGoals returns (mu_home, mu_away) for a differential.
func ExpectedGoals(diff float64, p Params) (float64, float64, error) {
	muHome := p.BaseGoalRate * math.Exp(p.GoalTilt*diff)
	muAway := p.BaseGoalRate * math.Exp(-p.GoalTilt*diff)
	if err := checkRate(muHome); err != nil {
		return 0, 0, fmt.Errorf("home: %w", err)
	}
	if err := checkRate(muAway); err != nil {
		return 0, 0, fmt.Errorf("away: %w", err)
	}
	return muHome, muAway, nil
}

// PoissonPMF is P(X=k) for X ~ Poisson(lambda): e^-λ λ^k / k!.
// The product is built incrementally so k! never overflows on its own.
func PoissonPMF(k int, lambda float64) float64 {
	if k < 0 {
		return 0
	}
	p := math.Exp(-lambda)
	for i := 1; i <= k; i++ {
		p *= lambda / float64(i)
	}
	return p
}

// MostLikely searches the (maxGoals+1)^2 grid of scorelines for the highest joint
// probability under independent Poissons. Cells are visited home-goals ascending,
// then away-goals ascending; only a strictly greater cell replaces the current best,
// so ties go to the first cell found. The result is 0-0 if nothing beats the sentinel.
func MostLikely(muHome, muAway float64, maxGoals int) (model.Scoreline, error) {
	if maxGoals < 0 {
		return model.Scoreline{}, fmt.Errorf("%w: max_goals %d is negative", model.ErrInvalidInput, maxGoals)
	}
	if err := checkRate(muHome); err != nil {
		return model.Scoreline{}, fmt.Errorf("home: %w", err)
	}
	if err := checkRate(muAway); err != nil {
		return model.Scoreline{}, fmt.Errorf("away: %w", err)
	}

	away := make([]float64, maxGoals+1)
	for a := range away {
		away[a] = PoissonPMF(a, muAway)
	}

	best := model.Scoreline{}
	bestP := -1.0
	for h := 0; h <= maxGoals; h++ {
		ph := PoissonPMF(h, muHome)
		for a := 0; a <= maxGoals; a++ {
			if p := ph * away[a]; p > bestP {
				bestP = p
				best = model.Scoreline{Home: h, Away: a}
			}
		}
	}
	return best, nil
}

func checkRate(mu float64) error {
	if !finite(mu) || mu <= 0 {
		return fmt.Errorf("%w: goal rate %v must be finite and > 0", model.ErrInvalidInput, mu)
	}
	return nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
