package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Root handles GET /
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Premier League Prediction API",
		"version": "1.0.0",
		"endpoints": gin.H{
			"/predictions":                 "List gameweeks with predictions",
			"/predictions/:gameweek":       "Get predictions for a specific gameweek (format=csv for export)",
			"/predictions/:gameweek/match": "Predict a single fixture (home, away)",
			"/ratings":                     "Get team ratings (gameweek optional)",
			"/health":                      "Health check endpoint",
		},
	})
}

// Health handles GET /health
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().Format(time.RFC3339)})
}
