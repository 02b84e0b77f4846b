package handlers

import (
	"net/http"
	"time"

	"matchodds/internal/analysis"
	"matchodds/internal/api/models"
	"matchodds/internal/config"
	"matchodds/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// RatingsHandler serves the ratings table
type RatingsHandler struct {
	season *config.Season
	logger *logrus.Logger
	now    func() time.Time
}

func NewRatingsHandler(season *config.Season, logger *logrus.Logger) *RatingsHandler {
	return &RatingsHandler{season: season, logger: logger, now: time.Now}
}

// GetRatings handles GET /ratings
func (h *RatingsHandler) GetRatings(c *gin.Context) {
	var q models.RatingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}
	number := q.Gameweek
	if number == 0 {
		number = h.season.CurrentGameweek
	}

	gw, err := h.season.Gameweek(number)
	if err != nil {
		writeError(c, err, map[string]interface{}{
			"requested": number,
			"available": h.season.Available(),
		})
		return
	}

	var previous model.Ratings
	if prev, ok := h.season.Previous(gw.Number); ok {
		if previous, err = prev.RatingsLookup(); err != nil {
			writeError(c, err, nil)
			return
		}
	}

	ranked := analysis.RankRatings(gw.TeamRatings(), previous)
	h.logger.WithFields(logrus.Fields{
		"gameweek": gw.Number,
		"teams":    len(ranked),
		"spread":   analysis.Spread(ranked),
	}).Debug("RatingsHandler: ratings ranked")

	ratings := make([]models.TeamRating, len(ranked))
	for i, r := range ranked {
		ratings[i] = models.TeamRating{
			Team:   r.Team,
			Rating: r.Rating,
			Reason: r.Reason,
		}
		if r.Change != nil {
			change := decimal.NewFromFloat(*r.Change).Round(2).InexactFloat64()
			ratings[i].ChangeFromPrevious = &change
		}
	}

	c.JSON(http.StatusOK, models.TeamRatingsResponse{
		Season:      h.season.Season,
		Gameweek:    gw.Number,
		Ratings:     ratings,
		LastUpdated: h.now().Format(time.RFC3339),
	})
}
