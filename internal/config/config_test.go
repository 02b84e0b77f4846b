package config

import (
	"os"
	"path/filepath"
	"testing"

	"matchodds/internal/model"
	"matchodds/internal/ruleset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalSeason = `
season: "test"
models:
  base:
    home_advantage: 0.25
  sharp:
    extends: base
    sigmoid_sharpness: 2.0
    ruleset:
      name: elite_tier
      members: [A]
gameweeks:
  - number: 1
    model: base
    ratings:
      - { team: A, rating: 1.0, reason: strong }
      - { team: B, rating: 0.0 }
    fixtures:
      - { home: A, away: B }
  - number: 3
    model: sharp
    ratings:
      - { team: A, rating: 1.2 }
      - { team: B, rating: -0.1 }
    fixtures:
      - { home: B, away: A }
`

func TestParseMinimal(t *testing.T) {
	s, err := Parse([]byte(minimalSeason))
	require.NoError(t, err)

	assert.Equal(t, "test", s.Season)
	assert.Equal(t, 3, s.CurrentGameweek, "defaults to latest gameweek")
	assert.Equal(t, []int{1, 3}, s.Available())

	gw, err := s.Gameweek(1)
	require.NoError(t, err)
	r, err := gw.RatingsLookup()
	require.NoError(t, err)
	assert.Equal(t, 1.0, r["A"])
	assert.Equal(t, "strong", gw.TeamRatings()[0].Reason)
	assert.Equal(t, []model.Fixture{{Home: "A", Away: "B"}}, gw.FixtureList())

	prev, ok := s.Previous(3)
	require.True(t, ok)
	assert.Equal(t, 1, prev.Number)
	_, ok = s.Previous(1)
	assert.False(t, ok)
}

func TestBuildModelMergesExtends(t *testing.T) {
	s, err := Parse([]byte(minimalSeason))
	require.NoError(t, err)

	m, err := s.BuildModel("sharp")
	require.NoError(t, err)
	assert.Equal(t, "sharp", m.Name)
	assert.Equal(t, 0.25, m.Outcome.HomeAdvantage)
	assert.Equal(t, 2.0, m.Outcome.SigmoidSharpness)
	assert.Equal(t, 0.28, m.Outcome.BaseDrawRate, "falls back to defaults")
	assert.Equal(t, 6, m.Goals.MaxGoals)
	assert.Equal(t, ruleset.NameEliteTier, m.Ruleset.Name())

	m, err = s.BuildModel("base")
	require.NoError(t, err)
	assert.Equal(t, ruleset.NameStandard, m.Ruleset.Name())
}

func TestGameweekUnknown(t *testing.T) {
	s, err := Parse([]byte(minimalSeason))
	require.NoError(t, err)

	_, err = s.Gameweek(2)
	assert.ErrorIs(t, err, model.ErrUnknownGameweek)
	assert.ErrorContains(t, err, "GW2")
	assert.ErrorContains(t, err, "[1 3]")
}

func TestValidateFailures(t *testing.T) {
	cases := map[string]string{
		"missing season": `
gameweeks:
  - number: 1
    ratings: [{ team: A, rating: 0 }, { team: B, rating: 0 }]
    fixtures: [{ home: A, away: B }]
`,
		"no gameweeks": `season: x`,
		"unknown team": `
season: x
gameweeks:
  - number: 1
    ratings: [{ team: A, rating: 0 }]
    fixtures: [{ home: A, away: Z }]
`,
		"duplicate team": `
season: x
gameweeks:
  - number: 1
    ratings: [{ team: A, rating: 0 }, { team: A, rating: 1 }]
    fixtures: [{ home: A, away: A }]
`,
		"team plays itself": `
season: x
gameweeks:
  - number: 1
    ratings: [{ team: A, rating: 0 }, { team: B, rating: 0 }]
    fixtures: [{ home: A, away: A }]
`,
		"unknown ruleset param": `
season: x
models:
  m: { ruleset: { name: elite_tier, members: [A], params: { bonsu: 0.3 } } }
gameweeks:
  - number: 1
    model: m
    ratings: [{ team: A, rating: 0 }, { team: B, rating: 0 }]
    fixtures: [{ home: A, away: B }]
`,
		"duplicate gameweek": `
season: x
gameweeks:
  - number: 1
    ratings: [{ team: A, rating: 0 }, { team: B, rating: 0 }]
    fixtures: [{ home: A, away: B }]
  - number: 1
    ratings: [{ team: A, rating: 0 }, { team: B, rating: 0 }]
    fixtures: [{ home: A, away: B }]
`,
		"unknown model": `
season: x
gameweeks:
  - number: 1
    model: nope
    ratings: [{ team: A, rating: 0 }, { team: B, rating: 0 }]
    fixtures: [{ home: A, away: B }]
`,
		"bad ruleset": `
season: x
models:
  m: { ruleset: { name: coin_flip } }
gameweeks:
  - number: 1
    model: m
    ratings: [{ team: A, rating: 0 }, { team: B, rating: 0 }]
    fixtures: [{ home: A, away: B }]
`,
		"bad params": `
season: x
models:
  m: { base_draw_rate: 1.5 }
gameweeks:
  - number: 1
    model: m
    ratings: [{ team: A, rating: 0 }, { team: B, rating: 0 }]
    fixtures: [{ home: A, away: B }]
`,
		"current gameweek missing": `
season: x
current_gameweek: 4
gameweeks:
  - number: 1
    ratings: [{ team: A, rating: 0 }, { team: B, rating: 0 }]
    fixtures: [{ home: A, away: B }]
`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestValidateUnknownTeamIsConfigurationError(t *testing.T) {
	_, err := Parse([]byte(`
season: x
gameweeks:
  - number: 1
    ratings: [{ team: A, rating: 0 }]
    fixtures: [{ home: A, away: Z }]
`))
	assert.ErrorIs(t, err, model.ErrUnknownTeam)
}

func TestMergeModel(t *testing.T) {
	base := DefaultModelConfig()
	out := MergeModel(base, ModelConfig{
		Extends:   "x",
		DrawDecay: Float(0.9),
		GoalTilt:  Float(0),
		Ruleset:   RulesetConfig{Name: "elite_tier"},
	})
	assert.Empty(t, out.Extends)
	assert.Equal(t, 0.9, *out.DrawDecay)
	assert.Equal(t, 0.0, *out.GoalTilt)
	assert.Equal(t, 1.3, *out.SigmoidSharpness)
	assert.Equal(t, "elite_tier", out.Ruleset.Name)
}

func TestBuildModelKeepsExplicitZeros(t *testing.T) {
	s, err := Parse([]byte(`
season: x
models:
  neutral:
    home_advantage: 0
    base_draw_rate: 0
    draw_decay: 0
    goal_tilt: 0
    max_goals: 0
  tilted:
    extends: neutral
    goal_tilt: 0.3
gameweeks:
  - number: 1
    model: neutral
    ratings: [{ team: A, rating: 0.4 }, { team: B, rating: 0 }]
    fixtures: [{ home: A, away: B }]
`))
	require.NoError(t, err)

	m, err := s.BuildModel("neutral")
	require.NoError(t, err)
	assert.Equal(t, 0.0, m.Outcome.HomeAdvantage)
	assert.Equal(t, 0.0, m.Outcome.BaseDrawRate)
	assert.Equal(t, 0.0, m.Outcome.DrawDecay)
	assert.Equal(t, 1.3, m.Outcome.SigmoidSharpness, "unset falls back to defaults")
	assert.Equal(t, 0.0, m.Goals.GoalTilt)
	assert.Equal(t, 0, m.Goals.MaxGoals)

	m, err = s.BuildModel("tilted")
	require.NoError(t, err)
	assert.Equal(t, 0.0, m.Outcome.HomeAdvantage, "zero inherited through extends")
	assert.Equal(t, 0.3, m.Goals.GoalTilt)
	assert.Equal(t, 0, m.Goals.MaxGoals)
}

func TestToModelRequiresEveryField(t *testing.T) {
	mc := DefaultModelConfig()
	mc.DrawDecay = nil
	_, err := mc.ToModel()
	assert.ErrorIs(t, err, model.ErrInvalidInput)
	assert.ErrorContains(t, err, "draw_decay")
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "season.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalSeason), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "test", s.Season)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDefaultSeason(t *testing.T) {
	s, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, "2025-26", s.Season)
	assert.Equal(t, 2, s.CurrentGameweek)
	assert.Equal(t, []int{1, 2}, s.Available())

	for _, n := range s.Available() {
		gw, err := s.Gameweek(n)
		require.NoError(t, err)
		r, err := gw.RatingsLookup()
		require.NoError(t, err)
		assert.Len(t, r, 20)
		assert.Len(t, gw.Fixtures, 10)
	}

	m, err := s.BuildModel("big_six")
	require.NoError(t, err)
	assert.Equal(t, 0.25, m.Outcome.HomeAdvantage)
	assert.Equal(t, 0.24, m.Outcome.BaseDrawRate)
	assert.Equal(t, 1.40, m.Goals.BaseGoalRate)
	assert.Equal(t, ruleset.NameEliteTier, m.Ruleset.Name())
}
