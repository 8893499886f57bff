package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wolyn-genealogy/explorer/internal/server/middleware"
	"github.com/wolyn-genealogy/explorer/pkg/common"
	"github.com/wolyn-genealogy/explorer/pkg/logger"
)

// GetMatchesHandler runs a fuzzy name search over all resolved persons.
func GetMatchesHandler(c echo.Context) error {
	type matchesParams struct {
		FirstName string  `query:"first_name" validate:"required"`
		LastName  string  `query:"last_name" validate:"required"`
		Threshold float64 `query:"threshold"`
	}

	type matchesResponse struct {
		Message string         `json:"message"`
		Matches []common.Match `json:"matches,omitempty"`
	}

	params := new(matchesParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, matchesResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, matchesResponse{
			Message: "Invalid request params",
		})
	}

	ctx := c.Request().Context()
	graphClient := c.(*middleware.AppContext).App.Graph

	matches, err := graphClient.FindMatches(ctx, params.FirstName, params.LastName, params.Threshold)
	if err != nil {
		logger.Error("Failed to find matches", "err", err)
		return c.JSON(http.StatusInternalServerError, matchesResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, matchesResponse{
		Message: "Matches found",
		Matches: matches,
	})
}
