package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"sort"

	"matchodds/internal/config"
	"matchodds/internal/model"
	"matchodds/internal/predict"
	"matchodds/internal/ruleset"
	"matchodds/internal/scoreline"
)

// Demo:
// - Price one fixture from two raw ratings
// - Print each stage of the model (diff, draw, decisive split, goals, grid)
// - Optionally use a model profile from a season YAML
func main() {
	home := flag.String("home", "Home", "Home team name")
	away := flag.String("away", "Away", "Away team name")
	rh := flag.Float64("home-rating", 1.0, "Home team rating")
	ra := flag.Float64("away-rating", 0.0, "Away team rating")
	cfgPath := flag.String("config", "", "Path to season YAML (optional)")
	profile := flag.String("model", "", "Model profile from the season (default: built-in constants)")
	top := flag.Int("top", 5, "Number of most likely scorelines to list")
	flag.Parse()

	m := predict.DefaultModel()
	if *cfgPath != "" || *profile != "" {
		season, err := config.LoadOrDefault(*cfgPath)
		if err != nil {
			fail(err)
		}
		if m, err = season.BuildModel(*profile); err != nil {
			fail(err)
		}
	}

	ratings, err := model.NewRatings([]model.TeamRating{
		{Team: *home, Rating: *rh},
		{Team: *away, Rating: *ra},
	})
	if err != nil {
		fail(err)
	}
	engine, err := predict.New(m)
	if err != nil {
		fail(err)
	}
	p, err := engine.PredictOne(*home, *away, ratings)
	if err != nil {
		fail(err)
	}

	adj := m.Ruleset.Adjust(ruleset.Context{Home: *home, Away: *away})
	fmt.Printf("Model=%s ruleset=%s\n", m.Name, m.Ruleset.Name())
	fmt.Printf("Adjustment: diff%+.2f draw x%.2f sharpness x%.2f\n\n", adj.DiffShift, adj.DrawScale, adj.SharpnessScale)

	o := m.Outcome
	fmt.Printf("diff      = (%.2f + %.2f) - %.2f %+.2f = %.4f\n", *rh, o.HomeAdvantage, *ra, adj.DiffShift, p.RatingDiff)
	fmt.Printf("p_draw    = %.2f * %.2f * exp(-%.2f * %.4f) = %.4f\n",
		o.BaseDrawRate, adj.DrawScale, o.DrawDecay, math.Abs(p.RatingDiff), p.Probabilities.Draw)
	fmt.Printf("decisive  = %.4f  ->  home=%.4f away=%.4f\n", 1-p.Probabilities.Draw, p.Probabilities.Home, p.Probabilities.Away)
	fmt.Printf("fair odds = %.2f / %.2f / %.2f\n", p.FairOdds.Home, p.FairOdds.Draw, p.FairOdds.Away)
	fmt.Printf("xG        = %.2f - %.2f\n\n", p.ExpGoalsHome, p.ExpGoalsAway)

	fmt.Printf("Top %d scorelines (0..%d goals):\n", *top, m.Goals.MaxGoals)
	for _, c := range topScorelines(p.ExpGoalsHome, p.ExpGoalsAway, m.Goals.MaxGoals, *top) {
		fmt.Printf("  %-5s %.4f\n", c.score, c.prob)
	}
	fmt.Printf("\nDone. %s most likely %s, pick=%s\n", p.Match(), p.MostLikely, model.PickFromProbabilities(p.Probabilities))
}

type scored struct {
	score model.Scoreline
	prob  float64
}

// topScorelines lists the n highest grid cells, row-major on ties.
func topScorelines(muH, muA float64, maxGoals, n int) []scored {
	var cells []scored
	for h := 0; h <= maxGoals; h++ {
		for a := 0; a <= maxGoals; a++ {
			cells = append(cells, scored{
				score: model.Scoreline{Home: h, Away: a},
				prob:  scoreline.PoissonPMF(h, muH) * scoreline.PoissonPMF(a, muA),
			})
		}
	}
	sort.SliceStable(cells, func(i, j int) bool { return cells[i].prob > cells[j].prob })
	if n < 0 {
		n = 0
	}
	if n < len(cells) {
		cells = cells[:n]
	}
	return cells
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
