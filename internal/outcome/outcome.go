package outcome

import (
	"fmt"
	"math"

	"matchodds/internal/model"
	"matchodds/internal/ruleset"
)

// maxDraw keeps the draw probability strictly below 1 so both decisive outcomes keep mass.
var maxDraw = math.Nextafter(1, 0)

// Params are the outcome model constants.
// Units:
// - HomeAdvantage: rating units added to the home side
// - BaseDrawRate: draw probability for an even fixture, 0..1
// - DrawDecay: how quickly draws fall off with |diff|
// - SigmoidSharpness: slope of the logistic split of decisive outcomes
type Params struct {
	HomeAdvantage    float64
	BaseDrawRate     float64
	DrawDecay        float64
	SigmoidSharpness float64
}

// DefaultParams match the original pre-season model.
func DefaultParams() Params {
	return Params{
		HomeAdvantage:    0.25,
		BaseDrawRate:     0.28,
		DrawDecay:        0.75,
		SigmoidSharpness: 1.3,
	}
}

func (p Params) Validate() error {
	for name, v := range map[string]float64{
		"home_advantage":    p.HomeAdvantage,
		"base_draw_rate":    p.BaseDrawRate,
		"draw_decay":        p.DrawDecay,
		"sigmoid_sharpness": p.SigmoidSharpness,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s must be finite", model.ErrInvalidInput, name)
		}
	}
	if p.BaseDrawRate < 0 || p.BaseDrawRate > 1 {
		return fmt.Errorf("%w: base_draw_rate must be in [0, 1]", model.ErrInvalidInput)
	}
	if p.DrawDecay < 0 {
		return fmt.Errorf("%w: draw_decay must be >= 0", model.ErrInvalidInput)
	}
	if p.SigmoidSharpness <= 0 {
		return fmt.Errorf("%w: sigmoid_sharpness must be > 0", model.ErrInvalidInput)
	}
	return nil
}

// Result is the outcome split plus the differential that produced it.
type Result struct {
	model.Probabilities
	Diff float64
}

// Compute maps two ratings to win/draw/loss probabilities.
//
//	diff   = (home + HomeAdvantage) - away + adj.DiffShift
//	p_draw = BaseDrawRate*adj.DrawScale * exp(-DrawDecay*|diff|), clamped to [0, 1)
//	p_home = (1-p_draw) * logistic(SigmoidSharpness*adj.SharpnessScale*diff)
//	p_away = 1 - p_draw - p_home
func Compute(ratingHome, ratingAway float64, p Params, adj ruleset.Adjustment) (Result, error) {
	if !finite(ratingHome) || !finite(ratingAway) {
		return Result{}, fmt.Errorf("%w: ratings must be finite (home=%v away=%v)", model.ErrInvalidInput, ratingHome, ratingAway)
	}

	diff := (ratingHome + p.HomeAdvantage) - ratingAway + adj.DiffShift
	if !finite(diff) {
		return Result{}, fmt.Errorf("%w: rating differential is not finite", model.ErrInvalidInput)
	}

	pDraw := clamp(p.BaseDrawRate*adj.DrawScale*math.Exp(-p.DrawDecay*math.Abs(diff)), 0, maxDraw)

	k := p.SigmoidSharpness * adj.SharpnessScale
	pHomeGivenDecisive := 1 / (1 + math.Exp(-k*diff))

	pHome := (1 - pDraw) * pHomeGivenDecisive
	pAway := math.Max(0, 1-pDraw-pHome)

	return Result{
		Probabilities: model.Probabilities{Home: pHome, Draw: pDraw, Away: pAway},
		Diff:          diff,
	}, nil
}

// Model binds outcome params to a ruleset.
type Model struct {
	Params  Params
	Ruleset ruleset.Ruleset
}

// Predict runs Compute for a named fixture, letting the ruleset adjust it first.
func (m Model) Predict(home, away string, ratingHome, ratingAway float64) (Result, error) {
	adj := ruleset.Identity()
	if m.Ruleset != nil {
		adj = m.Ruleset.Adjust(ruleset.Context{Home: home, Away: away})
	}
	return Compute(ratingHome, ratingAway, m.Params, adj)
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
