package ruleset

import (
	"errors"
	"sort"
)

// EliteParams configures the elite-tier ruleset.
//
// When exactly one side is a member, the differential moves Bonus toward it.
// When either side is a member, the draw base rate is multiplied by DrawScale
// and the sigmoid sharpness by SharpnessScale.
type EliteParams struct {
	Bonus          float64
	DrawScale      float64
	SharpnessScale float64
}

// DefaultEliteParams are the constants the big-six model was tuned with.
func DefaultEliteParams() EliteParams {
	return EliteParams{Bonus: 0.15, DrawScale: 0.85, SharpnessScale: 1.2}
}

type EliteTier struct {
	Params  EliteParams
	members map[string]struct{}
}

func NewEliteTier(members []string, params EliteParams) (*EliteTier, error) {
	if len(members) == 0 {
		return nil, errors.New("elite_tier requires at least one member")
	}
	if params.DrawScale < 0 {
		return nil, errors.New("elite_tier draw_scale must be >= 0")
	}
	if params.SharpnessScale <= 0 {
		return nil, errors.New("elite_tier sharpness_scale must be > 0")
	}
	set := make(map[string]struct{}, len(members))
	for _, m := range members {
		set[m] = struct{}{}
	}
	return &EliteTier{Params: params, members: set}, nil
}

func (e *EliteTier) Name() string { return NameEliteTier }

// IsMember reports whether team is in the tier.
func (e *EliteTier) IsMember(team string) bool {
	_, ok := e.members[team]
	return ok
}

// Members returns the tier in alphabetical order.
func (e *EliteTier) Members() []string {
	out := make([]string, 0, len(e.members))
	for m := range e.members {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

func (e *EliteTier) Adjust(ctx Context) Adjustment {
	adj := Identity()
	home := e.IsMember(ctx.Home)
	away := e.IsMember(ctx.Away)

	switch {
	case home && !away:
		adj.DiffShift = e.Params.Bonus
	case away && !home:
		adj.DiffShift = -e.Params.Bonus
	}
	if home || away {
		adj.DrawScale = e.Params.DrawScale
		adj.SharpnessScale = e.Params.SharpnessScale
	}
	return adj
}
