package models

// GameweekURI binds the :gameweek path segment.
type GameweekURI struct {
	Gameweek int `uri:"gameweek" binding:"required,min=1"`
}

// PredictionsQuery holds optional query parameters for GET /predictions/:gameweek.
type PredictionsQuery struct {
	Format string `form:"format" binding:"omitempty,oneof=json csv"`
}

// MatchQuery is an ad-hoc fixture for GET /predictions/:gameweek/match.
type MatchQuery struct {
	Home string `form:"home" binding:"required"`
	Away string `form:"away" binding:"required"`
}

// RatingsQuery selects a gameweek snapshot for GET /ratings (default: current).
type RatingsQuery struct {
	Gameweek int `form:"gameweek" binding:"omitempty,min=1"`
}
