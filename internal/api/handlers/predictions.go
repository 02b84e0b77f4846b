package handlers

import (
	"fmt"
	"net/http"
	"time"

	"matchodds/internal/api/models"
	"matchodds/internal/config"
	"matchodds/internal/model"
	"matchodds/internal/predict"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// PredictionHandler serves predictions from an immutable season snapshot.
// Every request recomputes from that snapshot.
type PredictionHandler struct {
	season *config.Season
	logger *logrus.Logger
	now    func() time.Time
}

func NewPredictionHandler(season *config.Season, logger *logrus.Logger) *PredictionHandler {
	return &PredictionHandler{season: season, logger: logger, now: time.Now}
}

// ListGameweeks handles GET /predictions
func (h *PredictionHandler) ListGameweeks(c *gin.Context) {
	teams := 0
	if gw, err := h.season.Gameweek(h.season.CurrentGameweek); err == nil {
		teams = len(gw.Ratings)
	}
	c.JSON(http.StatusOK, models.AvailableGameweeks{
		AvailableGameweeks: h.season.Available(),
		CurrentGameweek:    h.season.CurrentGameweek,
		Season:             h.season.Season,
		TotalTeams:         teams,
	})
}

// GetPredictions handles GET /predictions/:gameweek
func (h *PredictionHandler) GetPredictions(c *gin.Context) {
	var uri models.GameweekURI
	if err := c.ShouldBindUri(&uri); err != nil {
		badRequest(c, "INVALID_GAMEWEEK", err)
		return
	}
	var q models.PredictionsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}

	gw, engine, ratings, ok := h.load(c, uri.Gameweek)
	if !ok {
		return
	}

	preds, err := engine.Run(gw.FixtureList(), ratings)
	if err != nil {
		h.logger.WithFields(logrus.Fields{"gameweek": gw.Number, "error": err}).Warn("PredictionHandler: batch failed")
		writeError(c, err, map[string]interface{}{"gameweek": gw.Number})
		return
	}
	preds = predict.SortByKickoff(preds, gw.KickoffOrder)

	h.logger.WithFields(logrus.Fields{
		"gameweek": gw.Number,
		"model":    engine.Model().Name,
		"matches":  len(preds),
		"format":   q.Format,
	}).Debug("PredictionHandler: predictions computed")

	if q.Format == "csv" {
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=gw%d_predictions.csv", gw.Number))
		c.Header("Content-Type", "text/csv")
		c.Status(http.StatusOK)
		if err := predict.WritePredictionsCSV(c.Writer, preds); err != nil {
			h.logger.WithError(err).Error("PredictionHandler: csv export failed")
		}
		return
	}

	c.JSON(http.StatusOK, models.GameweekPredictions{
		Gameweek:     gw.Number,
		Season:       h.season.Season,
		Model:        engine.Model().Name,
		Predictions:  convertPredictions(preds),
		LastUpdated:  h.now().Format(time.RFC3339),
		TotalMatches: len(preds),
	})
}

// PredictMatch handles GET /predictions/:gameweek/match?home=&away=
func (h *PredictionHandler) PredictMatch(c *gin.Context) {
	var uri models.GameweekURI
	if err := c.ShouldBindUri(&uri); err != nil {
		badRequest(c, "INVALID_GAMEWEEK", err)
		return
	}
	var q models.MatchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}

	gw, engine, ratings, ok := h.load(c, uri.Gameweek)
	if !ok {
		return
	}

	p, err := engine.PredictOne(q.Home, q.Away, ratings)
	if err != nil {
		writeError(c, err, map[string]interface{}{"gameweek": gw.Number, "home": q.Home, "away": q.Away})
		return
	}

	c.JSON(http.StatusOK, models.SinglePrediction{
		Gameweek:   gw.Number,
		Season:     h.season.Season,
		Model:      engine.Model().Name,
		Prediction: convertPrediction(p),
	})
}

// load resolves a gameweek into its snapshot and engine, writing the error response on failure.
func (h *PredictionHandler) load(c *gin.Context, number int) (*config.GameweekConfig, *predict.Engine, model.Ratings, bool) {
	gw, err := h.season.Gameweek(number)
	if err != nil {
		writeError(c, err, map[string]interface{}{
			"requested": number,
			"available": h.season.Available(),
		})
		return nil, nil, nil, false
	}
	m, err := h.season.BuildModel(gw.Model)
	if err != nil {
		writeError(c, err, nil)
		return nil, nil, nil, false
	}
	engine, err := predict.New(m)
	if err != nil {
		writeError(c, err, nil)
		return nil, nil, nil, false
	}
	ratings, err := gw.RatingsLookup()
	if err != nil {
		writeError(c, err, nil)
		return nil, nil, nil, false
	}
	return gw, engine, ratings, true
}

func convertPredictions(preds []model.Prediction) []models.MatchPrediction {
	out := make([]models.MatchPrediction, len(preds))
	for i, p := range preds {
		out[i] = convertPrediction(p)
	}
	return out
}

func convertPrediction(p model.Prediction) models.MatchPrediction {
	r := predict.ToRecord(p)
	return models.MatchPrediction{
		Match:           r.Match,
		HomeTeam:        r.HomeTeam,
		AwayTeam:        r.AwayTeam,
		HomePercentage:  r.HomePercentage.InexactFloat64(),
		DrawPercentage:  r.DrawPercentage.InexactFloat64(),
		AwayPercentage:  r.AwayPercentage.InexactFloat64(),
		FairHomeOdds:    r.FairHomeOdds.InexactFloat64(),
		FairDrawOdds:    r.FairDrawOdds.InexactFloat64(),
		FairAwayOdds:    r.FairAwayOdds.InexactFloat64(),
		ExpGoalsHome:    r.ExpGoalsHome.InexactFloat64(),
		ExpGoalsAway:    r.ExpGoalsAway.InexactFloat64(),
		MostLikelyScore: r.MostLikelyScore,
		RatingDiff:      r.RatingDiff.InexactFloat64(),
	}
}
