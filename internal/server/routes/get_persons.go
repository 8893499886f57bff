package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wolyn-genealogy/explorer/internal/server/middleware"
	"github.com/wolyn-genealogy/explorer/pkg/common"
	"github.com/wolyn-genealogy/explorer/pkg/logger"
	pgxstore "github.com/wolyn-genealogy/explorer/pkg/store/pgx"
)

// SearchPersonsHandler lists persons whose names contain the given
// fragments, case-insensitively. Empty fragments match everything.
func SearchPersonsHandler(c echo.Context) error {
	type searchParams struct {
		FirstName string `query:"first_name"`
		LastName  string `query:"last_name"`
	}

	type searchResponse struct {
		Message string           `json:"message"`
		Persons []*common.Person `json:"persons"`
	}

	params := new(searchParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, searchResponse{
			Message: "Invalid request params",
		})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	st := pgxstore.NewStore(conn)

	persons, err := st.FindPersons(ctx, params.FirstName, params.LastName)
	if err != nil {
		logger.Error("Failed to search persons", "err", err)
		return c.JSON(http.StatusInternalServerError, searchResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, searchResponse{
		Message: "Persons found",
		Persons: persons,
	})
}

func GetPersonHandler(c echo.Context) error {
	type personParams struct {
		ID int64 `param:"id" validate:"required,numeric"`
	}

	type personResponse struct {
		Message string         `json:"message"`
		Person  *common.Person `json:"person,omitempty"`
	}

	params := new(personParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, personResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, personResponse{
			Message: "Invalid request params",
		})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	st := pgxstore.NewStore(conn)

	person, err := st.GetPerson(ctx, params.ID)
	if err != nil {
		logger.Error("Failed to load person", "id", params.ID, "err", err)
		return c.JSON(http.StatusInternalServerError, personResponse{
			Message: "Internal server error",
		})
	}
	if person == nil {
		return c.JSON(http.StatusNotFound, personResponse{
			Message: "Person not found",
		})
	}

	return c.JSON(http.StatusOK, personResponse{
		Message: "Person found",
		Person:  person,
	})
}
