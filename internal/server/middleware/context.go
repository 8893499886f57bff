package middleware

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/rabbitmq/amqp091-go"

	"github.com/wolyn-genealogy/explorer/pkg/graph"
)

type App struct {
	DBConn *pgxpool.Pool
	Queue  *amqp091.Channel
	Graph  *graph.GraphClient
}

type AppContext struct {
	echo.Context
	App *App
}

func AppContextMiddleware(
	db *pgxpool.Pool,
	queue *amqp091.Channel,
	graphClient *graph.GraphClient,
) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			app := &App{
				DBConn: db,
				Queue:  queue,
				Graph:  graphClient,
			}
			cc := &AppContext{c, app}
			return next(cc)
		}
	}
}
