package api

import (
	"matchodds/internal/api/handlers"
	"matchodds/internal/api/middleware"
	"matchodds/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// NewRouter wires middleware and routes over one season snapshot.
func NewRouter(season *config.Season, logger *logrus.Logger, origins []string) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(origins))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.ErrorHandler(logger))

	predictionHandler := handlers.NewPredictionHandler(season, logger)
	ratingsHandler := handlers.NewRatingsHandler(season, logger)

	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)

	router.GET("/ratings", ratingsHandler.GetRatings)
	router.GET("/predictions", predictionHandler.ListGameweeks)
	router.GET("/predictions/:gameweek", predictionHandler.GetPredictions)
	router.GET("/predictions/:gameweek/match", predictionHandler.PredictMatch)

	return router
}
