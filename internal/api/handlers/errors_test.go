package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"matchodds/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestWriteErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err    error
		status int
		code   string
	}{
		{fmt.Errorf("x: %w", model.ErrUnknownGameweek), http.StatusNotFound, "GAMEWEEK_NOT_FOUND"},
		{fmt.Errorf("fixture 0 (A vs Z): %w", model.ErrUnknownTeam), http.StatusNotFound, "UNKNOWN_TEAM"},
		{fmt.Errorf("home: %w", model.ErrDegenerateProbability), http.StatusUnprocessableEntity, "DEGENERATE_PROBABILITY"},
		{model.ErrInvalidInput, http.StatusUnprocessableEntity, "INVALID_INPUT"},
		{errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		writeError(c, tc.err, nil)
		assert.Equal(t, tc.status, w.Code, tc.err.Error())
		assert.Contains(t, w.Body.String(), `"code":"`+tc.code+`"`)
	}
}
