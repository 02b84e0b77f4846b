package api

import (
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"matchodds/internal/api/middleware"
	"matchodds/internal/api/models"
	"matchodds/internal/config"
	"matchodds/internal/logging"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSeason = `
season: "test"
models:
  base:
    home_advantage: 0.25
    base_draw_rate: 0.28
    draw_decay: 0.75
    sigmoid_sharpness: 1.3
    base_goal_rate: 1.35
    goal_tilt: 0.45
    max_goals: 6
gameweeks:
  - number: 1
    model: base
    ratings:
      - { team: A, rating: 0.8 }
      - { team: B, rating: 0.0 }
      - { team: C, rating: 0.5 }
      - { team: D, rating: -0.2 }
    fixtures:
      - { home: A, away: B }
  - number: 2
    model: base
    ratings:
      - { team: A, rating: 1.0, reason: won away }
      - { team: B, rating: 0.0 }
      - { team: C, rating: 0.5 }
      - { team: D, rating: -0.3 }
    fixtures:
      - { home: A, away: B }
      - { home: C, away: D }
    kickoff_order: ["C vs D", "A vs B"]
`

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	season, err := config.Parse([]byte(testSeason))
	require.NoError(t, err)
	return NewRouter(season, logging.Discard(), nil)
}

func get(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) models.ErrorDetail {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Error
}

func TestHealth(t *testing.T) {
	w := get(t, newTestRouter(t), "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestListGameweeks(t *testing.T) {
	w := get(t, newTestRouter(t), "/predictions")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.AvailableGameweeks
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []int{1, 2}, resp.AvailableGameweeks)
	assert.Equal(t, 2, resp.CurrentGameweek)
	assert.Equal(t, "test", resp.Season)
	assert.Equal(t, 4, resp.TotalTeams)
}

func TestGetPredictions(t *testing.T) {
	w := get(t, newTestRouter(t), "/predictions/2")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.GameweekPredictions
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Gameweek)
	assert.Equal(t, "base", resp.Model)
	assert.Equal(t, 2, resp.TotalMatches)
	require.Len(t, resp.Predictions, 2)

	// kickoff order, not fixture order
	assert.Equal(t, "C vs D", resp.Predictions[0].Match)
	assert.Equal(t, "A vs B", resp.Predictions[1].Match)

	ab := resp.Predictions[1]
	assert.Equal(t, 74.4, ab.HomePercentage)
	assert.Equal(t, 11.0, ab.DrawPercentage)
	assert.Equal(t, 14.6, ab.AwayPercentage)
	assert.Equal(t, "2-0", ab.MostLikelyScore)
	assert.Equal(t, 1.25, ab.RatingDiff)
}

func TestGetPredictionsCSV(t *testing.T) {
	w := get(t, newTestRouter(t), "/predictions/2?format=csv")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "gw2_predictions.csv")

	rows, err := csv.NewReader(strings.NewReader(w.Body.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "match", rows[0][0])
	assert.Equal(t, "C vs D", rows[1][0])
}

func TestGetPredictionsErrors(t *testing.T) {
	r := newTestRouter(t)

	w := get(t, r, "/predictions/9")
	assert.Equal(t, http.StatusNotFound, w.Code)
	detail := decodeError(t, w)
	assert.Equal(t, "GAMEWEEK_NOT_FOUND", detail.Code)
	assert.Contains(t, detail.Message, "GW9")
	assert.EqualValues(t, 9, detail.Details["requested"])

	w = get(t, r, "/predictions/abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_GAMEWEEK", decodeError(t, w).Code)

	w = get(t, r, "/predictions/0")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = get(t, r, "/predictions/2?format=xml")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_REQUEST", decodeError(t, w).Code)
}

func TestPredictMatch(t *testing.T) {
	r := newTestRouter(t)

	w := get(t, r, "/predictions/2/match?home=B&away=D")
	require.Equal(t, http.StatusOK, w.Code)
	var resp models.SinglePrediction
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "B vs D", resp.Prediction.Match)
	assert.InDelta(t, 100.0,
		resp.Prediction.HomePercentage+resp.Prediction.DrawPercentage+resp.Prediction.AwayPercentage, 0.2)

	w = get(t, r, "/predictions/2/match?home=B&away=Z")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "UNKNOWN_TEAM", decodeError(t, w).Code)

	w = get(t, r, "/predictions/2/match?home=B")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = get(t, r, "/predictions/2/match?home=B&away=B")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "INVALID_INPUT", decodeError(t, w).Code)
}

func TestGetRatings(t *testing.T) {
	r := newTestRouter(t)

	w := get(t, r, "/ratings")
	require.Equal(t, http.StatusOK, w.Code)
	var resp models.TeamRatingsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Gameweek)
	require.Len(t, resp.Ratings, 4)
	assert.Equal(t, "A", resp.Ratings[0].Team)
	assert.Equal(t, "won away", resp.Ratings[0].Reason)
	require.NotNil(t, resp.Ratings[0].ChangeFromPrevious)
	assert.Equal(t, 0.2, *resp.Ratings[0].ChangeFromPrevious)
	assert.Equal(t, "D", resp.Ratings[3].Team)
	assert.Equal(t, -0.1, *resp.Ratings[3].ChangeFromPrevious)

	w = get(t, r, "/ratings?gameweek=1")
	require.Equal(t, http.StatusOK, w.Code)
	resp = models.TeamRatingsResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Gameweek)
	assert.Nil(t, resp.Ratings[0].ChangeFromPrevious)

	w = get(t, r, "/ratings?gameweek=7")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	r := newTestRouter(t)
	req := httptest.NewRequest(http.MethodOptions, "/predictions/2", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Body.String())
}

func TestRequestIDPassthrough(t *testing.T) {
	r := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(middleware.RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(middleware.RequestIDHeader))
}
