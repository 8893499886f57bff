package routes

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/singleflight"

	"github.com/wolyn-genealogy/explorer/internal/server/middleware"
	"github.com/wolyn-genealogy/explorer/pkg/common"
	"github.com/wolyn-genealogy/explorer/pkg/logger"
)

// Concurrent requests share one tree build instead of each scanning the
// whole graph.
var treeGroup singleflight.Group

func GetTreesHandler(c echo.Context) error {
	type treesResponse struct {
		Message string        `json:"message"`
		Trees   []common.Tree `json:"trees,omitempty"`
	}

	graphClient := c.(*middleware.AppContext).App.Graph

	v, err, _ := treeGroup.Do("trees", func() (any, error) {
		// Detached from the request context so a canceled sharer does
		// not fail the build for the others.
		return graphClient.BuildTrees(context.Background())
	})
	if err != nil {
		logger.Error("Failed to build trees", "err", err)
		return c.JSON(http.StatusInternalServerError, treesResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, treesResponse{
		Message: "Trees built",
		Trees:   v.([]common.Tree),
	})
}
