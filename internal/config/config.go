package config

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"matchodds/internal/model"
	"matchodds/internal/outcome"
	"matchodds/internal/predict"
	"matchodds/internal/ruleset"
	"matchodds/internal/scoreline"

	"gopkg.in/yaml.v3"
)

// Season is the on-disk configuration shape (YAML): one season, a set of named
// model profiles and a snapshot of ratings and fixtures per gameweek.
type Season struct {
	Season          string                 `yaml:"season"`
	CurrentGameweek int                    `yaml:"current_gameweek"`
	Models          map[string]ModelConfig `yaml:"models"`
	Gameweeks       []GameweekConfig       `yaml:"gameweeks"`
}

type ModelConfig struct {
	// Optional: name of another profile to start from. Fields set here override it.
	Extends string `yaml:"extends"`

	// nil means unset; an explicit 0 is kept.
	HomeAdvantage    *float64      `yaml:"home_advantage"`
	BaseDrawRate     *float64      `yaml:"base_draw_rate"`
	DrawDecay        *float64      `yaml:"draw_decay"`
	SigmoidSharpness *float64      `yaml:"sigmoid_sharpness"`
	BaseGoalRate     *float64      `yaml:"base_goal_rate"`
	GoalTilt         *float64      `yaml:"goal_tilt"`
	MaxGoals         *int          `yaml:"max_goals"`
	Ruleset          RulesetConfig `yaml:"ruleset"`
}

type RulesetConfig struct {
	Name    string         `yaml:"name"`
	Params  map[string]any `yaml:"params"`
	Members []string       `yaml:"members"`
}

type GameweekConfig struct {
	Number       int             `yaml:"number"`
	Model        string          `yaml:"model"`
	Ratings      []RatingConfig  `yaml:"ratings"`
	Fixtures     []FixtureConfig `yaml:"fixtures"`
	KickoffOrder []string        `yaml:"kickoff_order"`
}

type RatingConfig struct {
	Team   string  `yaml:"team"`
	Rating float64 `yaml:"rating"`
	Reason string  `yaml:"reason"`
}

type FixtureConfig struct {
	Home string `yaml:"home"`
	Away string `yaml:"away"`
}

func Load(path string) (*Season, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(raw)
}

// Parse decodes, defaults and validates a season document.
func Parse(raw []byte) (*Season, error) {
	s, err := decode(raw)
	if err != nil {
		return nil, err
	}
	// If current_gameweek is not provided, default it to the latest gameweek.
	if s.CurrentGameweek == 0 {
		for _, gw := range s.Gameweeks {
			if gw.Number > s.CurrentGameweek {
				s.CurrentGameweek = gw.Number
			}
		}
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// decode reads a season document without defaulting or validating it.
func decode(raw []byte) (*Season, error) {
	var s Season
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Season) Validate() error {
	if s == nil {
		return errors.New("season is nil")
	}
	if s.Season == "" {
		return errors.New("season is required")
	}
	if len(s.Gameweeks) == 0 {
		return errors.New("at least one gameweek is required")
	}
	seen := make(map[int]bool, len(s.Gameweeks))
	for _, gw := range s.Gameweeks {
		if gw.Number <= 0 {
			return fmt.Errorf("gameweek number must be > 0, got %d", gw.Number)
		}
		if seen[gw.Number] {
			return fmt.Errorf("gameweek %d is defined twice", gw.Number)
		}
		seen[gw.Number] = true

		// Validate model and snapshot by building them.
		if _, err := s.BuildModel(gw.Model); err != nil {
			return fmt.Errorf("gameweek %d: %w", gw.Number, err)
		}
		ratings, err := gw.RatingsLookup()
		if err != nil {
			return fmt.Errorf("gameweek %d ratings: %w", gw.Number, err)
		}
		if len(gw.Fixtures) == 0 {
			return fmt.Errorf("gameweek %d has no fixtures", gw.Number)
		}
		for _, f := range gw.FixtureList() {
			if err := f.Validate(ratings); err != nil {
				return fmt.Errorf("gameweek %d: %w", gw.Number, err)
			}
		}
	}
	if !seen[s.CurrentGameweek] {
		return fmt.Errorf("current_gameweek %d: %w", s.CurrentGameweek, model.ErrUnknownGameweek)
	}
	return nil
}

// Available lists the configured gameweek numbers in ascending order.
func (s *Season) Available() []int {
	out := make([]int, 0, len(s.Gameweeks))
	for _, gw := range s.Gameweeks {
		out = append(out, gw.Number)
	}
	sort.Ints(out)
	return out
}

// Gameweek returns the snapshot for number, or ErrUnknownGameweek naming what is available.
func (s *Season) Gameweek(number int) (*GameweekConfig, error) {
	for i := range s.Gameweeks {
		if s.Gameweeks[i].Number == number {
			return &s.Gameweeks[i], nil
		}
	}
	return nil, fmt.Errorf("%w: predictions for GW%d not available (available: %v)",
		model.ErrUnknownGameweek, number, s.Available())
}

// Previous returns the closest gameweek before number, if any.
func (s *Season) Previous(number int) (*GameweekConfig, bool) {
	var prev *GameweekConfig
	for i := range s.Gameweeks {
		gw := &s.Gameweeks[i]
		if gw.Number < number && (prev == nil || gw.Number > prev.Number) {
			prev = gw
		}
	}
	return prev, prev != nil
}

// ResolveModel flattens a profile's extends chain (single level) into one ModelConfig.
func (s *Season) ResolveModel(name string) (ModelConfig, error) {
	if name == "" {
		return DefaultModelConfig(), nil
	}
	mc, ok := s.Models[name]
	if !ok {
		return ModelConfig{}, fmt.Errorf("unknown model %q", name)
	}
	if mc.Extends == "" {
		return MergeModel(DefaultModelConfig(), mc), nil
	}
	base, ok := s.Models[mc.Extends]
	if !ok {
		return ModelConfig{}, fmt.Errorf("model %q extends unknown model %q", name, mc.Extends)
	}
	if base.Extends != "" {
		return ModelConfig{}, fmt.Errorf("model %q extends %q which itself extends %q", name, mc.Extends, base.Extends)
	}
	return MergeModel(MergeModel(DefaultModelConfig(), base), mc), nil
}

// BuildModel resolves a profile and turns it into a validated predict.Model.
func (s *Season) BuildModel(name string) (predict.Model, error) {
	mc, err := s.ResolveModel(name)
	if err != nil {
		return predict.Model{}, err
	}
	m, err := mc.ToModel()
	if err != nil {
		return predict.Model{}, err
	}
	if name != "" {
		m.Name = name
	}
	return m, nil
}

// DefaultModelConfig carries the original pre-season constants, every field set.
func DefaultModelConfig() ModelConfig {
	o := outcome.DefaultParams()
	g := scoreline.DefaultParams()
	return ModelConfig{
		HomeAdvantage:    Float(o.HomeAdvantage),
		BaseDrawRate:     Float(o.BaseDrawRate),
		DrawDecay:        Float(o.DrawDecay),
		SigmoidSharpness: Float(o.SigmoidSharpness),
		BaseGoalRate:     Float(g.BaseGoalRate),
		GoalTilt:         Float(g.GoalTilt),
		MaxGoals:         Int(g.MaxGoals),
		Ruleset:          RulesetConfig{Name: ruleset.NameStandard},
	}
}

// ToModel builds a validated model. Every numeric field must be set; resolve the
// profile against DefaultModelConfig first.
func (mc ModelConfig) ToModel() (predict.Model, error) {
	for name, v := range map[string]*float64{
		"home_advantage":    mc.HomeAdvantage,
		"base_draw_rate":    mc.BaseDrawRate,
		"draw_decay":        mc.DrawDecay,
		"sigmoid_sharpness": mc.SigmoidSharpness,
		"base_goal_rate":    mc.BaseGoalRate,
		"goal_tilt":         mc.GoalTilt,
	} {
		if v == nil {
			return predict.Model{}, fmt.Errorf("%w: %s is not set", model.ErrInvalidInput, name)
		}
	}
	if mc.MaxGoals == nil {
		return predict.Model{}, fmt.Errorf("%w: max_goals is not set", model.ErrInvalidInput)
	}

	rs, err := ruleset.FromConfig(mc.Ruleset.Name, mc.Ruleset.Params, mc.Ruleset.Members)
	if err != nil {
		return predict.Model{}, err
	}
	m := predict.Model{
		Name: "default",
		Outcome: outcome.Params{
			HomeAdvantage:    *mc.HomeAdvantage,
			BaseDrawRate:     *mc.BaseDrawRate,
			DrawDecay:        *mc.DrawDecay,
			SigmoidSharpness: *mc.SigmoidSharpness,
		},
		Goals: scoreline.Params{
			BaseGoalRate: *mc.BaseGoalRate,
			GoalTilt:     *mc.GoalTilt,
			MaxGoals:     *mc.MaxGoals,
		},
		Ruleset: rs,
	}
	if err := m.Validate(); err != nil {
		return predict.Model{}, err
	}
	return m, nil
}

// MergeModel overlays the fields set in override onto base.
// The ruleset is replaced wholesale when override names one.
func MergeModel(base, override ModelConfig) ModelConfig {
	out := base
	out.Extends = ""
	if override.HomeAdvantage != nil {
		out.HomeAdvantage = override.HomeAdvantage
	}
	if override.BaseDrawRate != nil {
		out.BaseDrawRate = override.BaseDrawRate
	}
	if override.DrawDecay != nil {
		out.DrawDecay = override.DrawDecay
	}
	if override.SigmoidSharpness != nil {
		out.SigmoidSharpness = override.SigmoidSharpness
	}
	if override.BaseGoalRate != nil {
		out.BaseGoalRate = override.BaseGoalRate
	}
	if override.GoalTilt != nil {
		out.GoalTilt = override.GoalTilt
	}
	if override.MaxGoals != nil {
		out.MaxGoals = override.MaxGoals
	}
	if override.Ruleset.Name != "" {
		out.Ruleset = override.Ruleset
	}
	return out
}

func Float(v float64) *float64 { return &v }

func Int(v int) *int { return &v }

// RatingsLookup builds the team -> rating map for this gameweek.
func (gw *GameweekConfig) RatingsLookup() (model.Ratings, error) {
	return model.NewRatings(gw.TeamRatings())
}

func (gw *GameweekConfig) TeamRatings() []model.TeamRating {
	out := make([]model.TeamRating, len(gw.Ratings))
	for i, r := range gw.Ratings {
		out[i] = model.TeamRating{Team: r.Team, Rating: r.Rating, Reason: r.Reason}
	}
	return out
}

func (gw *GameweekConfig) FixtureList() []model.Fixture {
	out := make([]model.Fixture, len(gw.Fixtures))
	for i, f := range gw.Fixtures {
		out[i] = model.Fixture{Home: f.Home, Away: f.Away}
	}
	return out
}
