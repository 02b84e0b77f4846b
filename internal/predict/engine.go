package predict

import (
	"fmt"

	"matchodds/internal/model"
	"matchodds/internal/outcome"
	"matchodds/internal/ruleset"
	"matchodds/internal/scoreline"
)

// Model bundles everything needed to price a fixture.
type Model struct {
	Name    string
	Outcome outcome.Params
	Goals   scoreline.Params
	Ruleset ruleset.Ruleset
}

// DefaultModel is the standard-ruleset model with the original constants.
func DefaultModel() Model {
	return Model{
		Name:    "default",
		Outcome: outcome.DefaultParams(),
		Goals:   scoreline.DefaultParams(),
		Ruleset: ruleset.Standard{},
	}
}

func (m Model) Validate() error {
	if err := m.Outcome.Validate(); err != nil {
		return fmt.Errorf("outcome params: %w", err)
	}
	if err := m.Goals.Validate(); err != nil {
		return fmt.Errorf("goal params: %w", err)
	}
	return nil
}

type Engine struct {
	model Model
}

func New(m Model) (*Engine, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if m.Ruleset == nil {
		m.Ruleset = ruleset.Standard{}
	}
	return &Engine{model: m}, nil
}

func (e *Engine) Model() Model { return e.model }

// Run predicts every fixture in input order. It stops at the first failure and
// returns no partial result. No fixtures yields an empty, non-nil slice.
func (e *Engine) Run(fixtures []model.Fixture, ratings model.Ratings) ([]model.Prediction, error) {
	out := make([]model.Prediction, 0, len(fixtures))
	for idx, f := range fixtures {
		p, err := e.Predict(f, ratings)
		if err != nil {
			return nil, fmt.Errorf("fixture %d (%s): %w", idx, f.Match(), err)
		}
		out = append(out, p)
	}
	return out, nil
}

// Predict prices a single fixture: outcome model, fair odds, then scoreline estimate.
func (e *Engine) Predict(f model.Fixture, ratings model.Ratings) (model.Prediction, error) {
	rh, err := ratings.Lookup(f.Home)
	if err != nil {
		return model.Prediction{}, err
	}
	ra, err := ratings.Lookup(f.Away)
	if err != nil {
		return model.Prediction{}, err
	}

	om := outcome.Model{Params: e.model.Outcome, Ruleset: e.model.Ruleset}
	res, err := om.Predict(f.Home, f.Away, rh, ra)
	if err != nil {
		return model.Prediction{}, err
	}

	odds, err := outcome.FairOddsFor(res.Probabilities)
	if err != nil {
		return model.Prediction{}, err
	}

	muH, muA, err := scoreline.ExpectedGoals(res.Diff, e.model.Goals)
	if err != nil {
		return model.Prediction{}, err
	}
	ml, err := scoreline.MostLikely(muH, muA, e.model.Goals.MaxGoals)
	if err != nil {
		return model.Prediction{}, err
	}

	return model.Prediction{
		Fixture:       f,
		Probabilities: res.Probabilities,
		FairOdds:      odds,
		ExpGoalsHome:  muH,
		ExpGoalsAway:  muA,
		MostLikely:    ml,
		RatingDiff:    res.Diff,
	}, nil
}

// PredictOne prices an ad-hoc fixture that need not appear in any configured gameweek.
func (e *Engine) PredictOne(home, away string, ratings model.Ratings) (model.Prediction, error) {
	if home == away {
		return model.Prediction{}, fmt.Errorf("%w: %s cannot play itself", model.ErrInvalidInput, home)
	}
	return e.Predict(model.Fixture{Home: home, Away: away}, ratings)
}
