package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wolyn-genealogy/explorer/internal/server/middleware"
	"github.com/wolyn-genealogy/explorer/pkg/common"
	"github.com/wolyn-genealogy/explorer/pkg/logger"
)

// MergePersonsHandler folds one duplicate person into another. The merged
// person is deleted; its events and family edges move to the kept person.
func MergePersonsHandler(c echo.Context) error {
	type mergeBody struct {
		KeepID  int64 `json:"keep_id" validate:"required,numeric"`
		MergeID int64 `json:"merge_id" validate:"required,numeric"`
	}

	type mergeResponse struct {
		Message string         `json:"message"`
		Person  *common.Person `json:"person,omitempty"`
	}

	data := new(mergeBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, mergeResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, mergeResponse{
			Message: "Invalid request body",
		})
	}

	ctx := c.Request().Context()
	graphClient := c.(*middleware.AppContext).App.Graph

	person, err := graphClient.MergePersons(ctx, data.KeepID, data.MergeID)
	if err != nil {
		logger.Error("Failed to merge persons", "keep_id", data.KeepID, "merge_id", data.MergeID, "err", err)
		return c.JSON(http.StatusInternalServerError, mergeResponse{
			Message: "Internal server error",
		})
	}
	if person == nil {
		return c.JSON(http.StatusNotFound, mergeResponse{
			Message: "Person not found",
		})
	}

	return c.JSON(http.StatusOK, mergeResponse{
		Message: "Persons merged",
		Person:  person,
	})
}
