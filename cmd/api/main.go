package main

import (
	"fmt"
	"os"

	"matchodds/internal/api"
	"matchodds/internal/api/middleware"
	"matchodds/internal/config"
	"matchodds/internal/logging"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logging.FromEnv()

	// Get configuration from environment
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}
	seasonFile := os.Getenv("SEASON_FILE")

	season, err := config.LoadOrDefault(seasonFile)
	if err != nil {
		logger.WithError(err).WithField("season_file", seasonFile).Fatal("Failed to load season")
	}
	logger.WithFields(logrus.Fields{
		"season":           season.Season,
		"gameweeks":        season.Available(),
		"current_gameweek": season.CurrentGameweek,
		"source":           sourceName(seasonFile),
	}).Info("Season loaded")

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := api.NewRouter(season, logger, middleware.OriginsFromEnv())

	addr := fmt.Sprintf(":%s", port)
	logger.Infof("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		logger.WithError(err).Fatal("Failed to start server")
	}
}

func sourceName(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}
