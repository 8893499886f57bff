package server

import (
	"github.com/labstack/echo/v4"

	"github.com/wolyn-genealogy/explorer/internal/server/routes"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	apiRoutes := e.Group("/api")

	// Import routes
	apiRoutes.POST("/import", routes.ImportHandler)

	// Tree routes
	apiRoutes.GET("/trees", routes.GetTreesHandler)

	// Person routes
	apiRoutes.GET("/persons", routes.SearchPersonsHandler)
	apiRoutes.GET("/persons/matches", routes.GetMatchesHandler)
	apiRoutes.POST("/persons/merge", routes.MergePersonsHandler)
	apiRoutes.GET("/persons/:id", routes.GetPersonHandler)
	apiRoutes.GET("/persons/:id/ancestors", routes.GetAncestorsHandler)
	apiRoutes.GET("/persons/:id/descendants", routes.GetDescendantsHandler)
}
