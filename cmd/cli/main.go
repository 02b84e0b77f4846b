package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"matchodds/internal/analysis"
	"matchodds/internal/config"
	"matchodds/internal/logging"
	"matchodds/internal/model"
	"matchodds/internal/predict"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var logger = logging.FromEnv()

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "predict":
		err = cmdPredict(os.Args[2:])
	case "ratings":
		err = cmdRatings(os.Args[2:])
	case "gameweeks":
		err = cmdGameweeks(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		logger.WithError(err).Error(os.Args[1] + " failed")
		if errors.Is(err, model.ErrUnknownGameweek) || errors.Is(err, model.ErrUnknownTeam) {
			os.Exit(3)
		}
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli predict   [--config season.yaml] [--gameweek N] [--out results/gw2_predictions.csv]")
	fmt.Println("  cli ratings   [--config season.yaml] [--gameweek N]")
	fmt.Println("  cli gameweeks [--config season.yaml]")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - without --config the bundled season is used")
	fmt.Println("  - without --gameweek the season's current gameweek is used")
}

func cmdPredict(args []string) error {
	fs := flag.NewFlagSet("predict", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to season YAML (default: bundled season)")
	number := fs.Int("gameweek", 0, "Gameweek number (0=current)")
	outPath := fs.String("out", "", "Optional: write predictions CSV to this path")
	_ = fs.Parse(args)

	season, gw, err := loadGameweek(*cfgPath, *number)
	if err != nil {
		return err
	}
	m, err := season.BuildModel(gw.Model)
	if err != nil {
		return err
	}
	engine, err := predict.New(m)
	if err != nil {
		return err
	}
	ratings, err := gw.RatingsLookup()
	if err != nil {
		return err
	}
	preds, err := engine.Run(gw.FixtureList(), ratings)
	if err != nil {
		return err
	}
	preds = predict.SortByKickoff(preds, gw.KickoffOrder)

	fmt.Printf("%s GW%d predictions (model=%s)\n\n", season.Season, gw.Number, m.Name)
	fmt.Printf("%-48s %-7s %-7s %-7s %-6s %-6s %-6s %-6s %-5s\n",
		"match", "home%", "draw%", "away%", "odds1", "oddsX", "odds2", "score", "pick")
	for _, p := range preds {
		r := predict.ToRecord(p)
		fmt.Printf("%-48s %-7s %-7s %-7s %-6s %-6s %-6s %-6s %-5s\n",
			r.Match,
			r.HomePercentage.StringFixed(1),
			r.DrawPercentage.StringFixed(1),
			r.AwayPercentage.StringFixed(1),
			r.FairHomeOdds.StringFixed(2),
			r.FairDrawOdds.StringFixed(2),
			r.FairAwayOdds.StringFixed(2),
			r.MostLikelyScore,
			model.PickFromProbabilities(p.Probabilities),
		)
	}

	if *outPath == "" {
		return nil
	}
	if err := predict.WritePredictionsCSVFile(*outPath, preds); err != nil {
		return err
	}
	fmt.Printf("\nWrote %d rows to %s\n", len(preds), *outPath)
	return nil
}

func cmdRatings(args []string) error {
	fs := flag.NewFlagSet("ratings", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to season YAML (default: bundled season)")
	number := fs.Int("gameweek", 0, "Gameweek number (0=current)")
	_ = fs.Parse(args)

	season, gw, err := loadGameweek(*cfgPath, *number)
	if err != nil {
		return err
	}
	var previous model.Ratings
	if prev, ok := season.Previous(gw.Number); ok {
		if previous, err = prev.RatingsLookup(); err != nil {
			return err
		}
	}

	ranked := analysis.RankRatings(gw.TeamRatings(), previous)
	fmt.Printf("%s GW%d ratings (spread %s)\n\n", season.Season, gw.Number,
		decimal.NewFromFloat(analysis.Spread(ranked)).StringFixed(2))
	fmt.Printf("%-4s %-26s %-7s %-7s %s\n", "rank", "team", "rating", "change", "reason")
	for _, r := range ranked {
		change := "-"
		if r.Change != nil {
			change = decimal.NewFromFloat(*r.Change).Round(2).StringFixed(2)
		}
		fmt.Printf("%-4d %-26s %-7s %-7s %s\n",
			r.Rank, r.Team, decimal.NewFromFloat(r.Rating).StringFixed(2), change, r.Reason)
	}
	return nil
}

func cmdGameweeks(args []string) error {
	fs := flag.NewFlagSet("gameweeks", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to season YAML (default: bundled season)")
	_ = fs.Parse(args)

	season, err := config.LoadOrDefault(*cfgPath)
	if err != nil {
		return err
	}
	fmt.Printf("season %s (current GW%d)\n\n", season.Season, season.CurrentGameweek)
	fmt.Printf("%-4s %-12s %-8s %-6s\n", "gw", "model", "fixtures", "teams")
	for _, n := range season.Available() {
		gw, err := season.Gameweek(n)
		if err != nil {
			return err
		}
		name := gw.Model
		if name == "" {
			name = "default"
		}
		fmt.Printf("%-4d %-12s %-8d %-6d\n", gw.Number, name, len(gw.Fixtures), len(gw.Ratings))
	}
	return nil
}

func loadGameweek(path string, number int) (*config.Season, *config.GameweekConfig, error) {
	season, err := config.LoadOrDefault(path)
	if err != nil {
		return nil, nil, err
	}
	if number == 0 {
		number = season.CurrentGameweek
	}
	gw, err := season.Gameweek(number)
	if err != nil {
		return nil, nil, err
	}
	logger.WithFields(logrus.Fields{
		"season":   season.Season,
		"gameweek": gw.Number,
		"model":    gw.Model,
	}).Debug("gameweek loaded")
	return season, gw, nil
}
