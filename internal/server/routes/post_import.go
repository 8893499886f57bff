package routes

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/wolyn-genealogy/explorer/internal/queue"
	"github.com/wolyn-genealogy/explorer/internal/server/middleware"
	"github.com/wolyn-genealogy/explorer/pkg/common"
	"github.com/wolyn-genealogy/explorer/pkg/logger"
)

// ImportHandler resolves a batch of source events into the person graph.
// With ?async=true the batch is queued for the worker instead and the
// response carries a correlation id.
func ImportHandler(c echo.Context) error {
	type importResponse struct {
		Message       string              `json:"message"`
		CorrelationID string              `json:"correlation_id,omitempty"`
		Stats         *common.ImportStats `json:"stats,omitempty"`
	}

	batch := new(common.EventBatch)
	if err := c.Bind(batch); err != nil {
		return c.JSON(http.StatusBadRequest, importResponse{
			Message: "Invalid request body",
		})
	}

	app := c.(*middleware.AppContext).App

	if c.QueryParam("async") == "true" {
		correlationID, err := gonanoid.New()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, importResponse{
				Message: "Internal server error",
			})
		}
		data, err := json.Marshal(queue.ImportMessage{
			CorrelationID: correlationID,
			Batch:         *batch,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, importResponse{
				Message: "Internal server error",
			})
		}
		if err := queue.PublishFIFO(app.Queue, queue.ImportQueue, data); err != nil {
			logger.Error("Failed to publish to import_queue", "err", err)
			return c.JSON(http.StatusInternalServerError, importResponse{
				Message: "Internal server error",
			})
		}
		return c.JSON(http.StatusAccepted, importResponse{
			Message:       "Import queued",
			CorrelationID: correlationID,
		})
	}

	ctx := c.Request().Context()
	stats, err := app.Graph.Import(ctx, *batch)
	if err != nil {
		logger.Error("Import failed", "err", err)
		return c.JSON(http.StatusInternalServerError, importResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, importResponse{
		Message: "Import finished",
		Stats:   stats,
	})
}
