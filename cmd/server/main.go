package main

import (
	"github.com/wolyn-genealogy/explorer/internal/server"
	"github.com/wolyn-genealogy/explorer/internal/util"
	"github.com/wolyn-genealogy/explorer/pkg/logger"
	"github.com/wolyn-genealogy/explorer/pkg/logger/console"

	_ "github.com/lib/pq"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)

	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: debug,
	})
	logger.Init(consoleLogger)

	server.Init()
}
