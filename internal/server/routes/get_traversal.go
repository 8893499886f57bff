package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wolyn-genealogy/explorer/internal/server/middleware"
	"github.com/wolyn-genealogy/explorer/pkg/common"
	"github.com/wolyn-genealogy/explorer/pkg/logger"
)

type traversalParams struct {
	PersonID    int64 `param:"id" validate:"required,numeric"`
	Generations int   `query:"generations"`
}

type traversalResponse struct {
	Message string       `json:"message"`
	Tree    *common.Tree `json:"tree,omitempty"`
}

func GetAncestorsHandler(c echo.Context) error {
	params := new(traversalParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, traversalResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, traversalResponse{
			Message: "Invalid request params",
		})
	}

	ctx := c.Request().Context()
	graphClient := c.(*middleware.AppContext).App.Graph

	tree, err := graphClient.Ancestors(ctx, params.PersonID, params.Generations)
	if err != nil {
		logger.Error("Failed to collect ancestors", "person_id", params.PersonID, "err", err)
		return c.JSON(http.StatusInternalServerError, traversalResponse{
			Message: "Internal server error",
		})
	}
	if tree == nil {
		return c.JSON(http.StatusNotFound, traversalResponse{
			Message: "Person not found",
		})
	}

	return c.JSON(http.StatusOK, traversalResponse{
		Message: "Ancestors found",
		Tree:    tree,
	})
}

func GetDescendantsHandler(c echo.Context) error {
	params := new(traversalParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, traversalResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, traversalResponse{
			Message: "Invalid request params",
		})
	}

	ctx := c.Request().Context()
	graphClient := c.(*middleware.AppContext).App.Graph

	tree, err := graphClient.Descendants(ctx, params.PersonID, params.Generations)
	if err != nil {
		logger.Error("Failed to collect descendants", "person_id", params.PersonID, "err", err)
		return c.JSON(http.StatusInternalServerError, traversalResponse{
			Message: "Internal server error",
		})
	}
	if tree == nil {
		return c.JSON(http.StatusNotFound, traversalResponse{
			Message: "Person not found",
		})
	}

	return c.JSON(http.StatusOK, traversalResponse{
		Message: "Descendants found",
		Tree:    tree,
	})
}
