package predict

import (
	"github.com/shopspring/decimal"

	"matchodds/internal/model"
)

// Record is a Prediction rounded for display: percentages to 1 dp,
// odds, goals and diff to 2 dp. It is never fed back into the model.
type Record struct {
	Match           string
	HomeTeam        string
	AwayTeam        string
	HomePercentage  decimal.Decimal
	DrawPercentage  decimal.Decimal
	AwayPercentage  decimal.Decimal
	FairHomeOdds    decimal.Decimal
	FairDrawOdds    decimal.Decimal
	FairAwayOdds    decimal.Decimal
	ExpGoalsHome    decimal.Decimal
	ExpGoalsAway    decimal.Decimal
	MostLikelyScore string
	RatingDiff      decimal.Decimal
}

func ToRecord(p model.Prediction) Record {
	return Record{
		Match:           p.Match(),
		HomeTeam:        p.Home,
		AwayTeam:        p.Away,
		HomePercentage:  percent(p.Probabilities.Home),
		DrawPercentage:  percent(p.Probabilities.Draw),
		AwayPercentage:  percent(p.Probabilities.Away),
		FairHomeOdds:    round2(p.FairOdds.Home),
		FairDrawOdds:    round2(p.FairOdds.Draw),
		FairAwayOdds:    round2(p.FairOdds.Away),
		ExpGoalsHome:    round2(p.ExpGoalsHome),
		ExpGoalsAway:    round2(p.ExpGoalsAway),
		MostLikelyScore: p.MostLikely.String(),
		RatingDiff:      round2(p.RatingDiff),
	}
}

func ToRecords(preds []model.Prediction) []Record {
	out := make([]Record, len(preds))
	for i, p := range preds {
		out[i] = ToRecord(p)
	}
	return out
}

var hundred = decimal.NewFromInt(100)

func percent(p float64) decimal.Decimal {
	return decimal.NewFromFloat(p).Mul(hundred).Round(1)
}

func round2(x float64) decimal.Decimal {
	return decimal.NewFromFloat(x).Round(2)
}
