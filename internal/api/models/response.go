package models

// MatchPrediction is the wire shape of one fixture's prediction.
// Percentages are rounded to 1 dp, everything else to 2 dp.
type MatchPrediction struct {
	Match           string  `json:"match"`
	HomeTeam        string  `json:"home_team"`
	AwayTeam        string  `json:"away_team"`
	HomePercentage  float64 `json:"home_percentage"`
	DrawPercentage  float64 `json:"draw_percentage"`
	AwayPercentage  float64 `json:"away_percentage"`
	FairHomeOdds    float64 `json:"fair_home_odds"`
	FairDrawOdds    float64 `json:"fair_draw_odds"`
	FairAwayOdds    float64 `json:"fair_away_odds"`
	ExpGoalsHome    float64 `json:"exp_goals_home"`
	ExpGoalsAway    float64 `json:"exp_goals_away"`
	MostLikelyScore string  `json:"most_likely_score"`
	RatingDiff      float64 `json:"rating_diff"`
}

// GameweekPredictions is the response for GET /predictions/:gameweek
type GameweekPredictions struct {
	Gameweek     int               `json:"gameweek"`
	Season       string            `json:"season"`
	Model        string            `json:"model"`
	Predictions  []MatchPrediction `json:"predictions"`
	LastUpdated  string            `json:"last_updated"`
	TotalMatches int               `json:"total_matches"`
}

// SinglePrediction is the response for GET /predictions/:gameweek/match
type SinglePrediction struct {
	Gameweek   int             `json:"gameweek"`
	Season     string          `json:"season"`
	Model      string          `json:"model"`
	Prediction MatchPrediction `json:"prediction"`
}

type TeamRating struct {
	Team               string   `json:"team"`
	Rating             float64  `json:"rating"`
	ChangeFromPrevious *float64 `json:"change_from_previous,omitempty"`
	Reason             string   `json:"reason,omitempty"`
}

// TeamRatingsResponse is the response for GET /ratings
type TeamRatingsResponse struct {
	Season      string       `json:"season"`
	Gameweek    int          `json:"gameweek"`
	Ratings     []TeamRating `json:"ratings"`
	LastUpdated string       `json:"last_updated"`
}

// AvailableGameweeks is the response for GET /predictions
type AvailableGameweeks struct {
	AvailableGameweeks []int  `json:"available_gameweeks"`
	CurrentGameweek    int    `json:"current_gameweek"`
	Season             string `json:"season"`
	TotalTeams         int    `json:"total_teams"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
