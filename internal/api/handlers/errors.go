package handlers

import (
	"errors"
	"net/http"

	"matchodds/internal/api/models"
	"matchodds/internal/model"

	"github.com/gin-gonic/gin"
)

// writeError maps domain errors onto status codes and the error envelope.
func writeError(c *gin.Context, err error, details map[string]interface{}) {
	status, code := http.StatusInternalServerError, "INTERNAL_ERROR"
	switch {
	case errors.Is(err, model.ErrUnknownGameweek):
		status, code = http.StatusNotFound, "GAMEWEEK_NOT_FOUND"
	case errors.Is(err, model.ErrUnknownTeam):
		status, code = http.StatusNotFound, "UNKNOWN_TEAM"
	case errors.Is(err, model.ErrDegenerateProbability):
		status, code = http.StatusUnprocessableEntity, "DEGENERATE_PROBABILITY"
	case errors.Is(err, model.ErrInvalidInput):
		status, code = http.StatusUnprocessableEntity, "INVALID_INPUT"
	}
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: err.Error(),
			Details: details,
		},
	})
}

func badRequest(c *gin.Context, code string, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: err.Error(),
		},
	})
}
