package predict

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"

	"matchodds/internal/model"
)

// CSVHeader is the column order of the export; it mirrors the JSON record.
var CSVHeader = []string{
	"match",
	"home_team",
	"away_team",
	"home_percentage",
	"draw_percentage",
	"away_percentage",
	"fair_home_odds",
	"fair_draw_odds",
	"fair_away_odds",
	"exp_goals_home",
	"exp_goals_away",
	"most_likely_score",
	"rating_diff",
}

func WritePredictionsCSV(out io.Writer, preds []model.Prediction) error {
	w := csv.NewWriter(out)

	if err := w.Write(CSVHeader); err != nil {
		return err
	}
	for _, r := range ToRecords(preds) {
		row := []string{
			r.Match,
			r.HomeTeam,
			r.AwayTeam,
			r.HomePercentage.StringFixed(1),
			r.DrawPercentage.StringFixed(1),
			r.AwayPercentage.StringFixed(1),
			r.FairHomeOdds.StringFixed(2),
			r.FairDrawOdds.StringFixed(2),
			r.FairAwayOdds.StringFixed(2),
			r.ExpGoalsHome.StringFixed(2),
			r.ExpGoalsAway.StringFixed(2),
			r.MostLikelyScore,
			r.RatingDiff.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// WritePredictionsCSVFile writes the export to path, creating parent directories.
func WritePredictionsCSVFile(path string, preds []model.Prediction) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return WritePredictionsCSV(f, preds)
}
