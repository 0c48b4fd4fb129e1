package main

import (
	"github.com/corpgraph/backend/internal/server"
	"github.com/corpgraph/backend/internal/util"
	"github.com/corpgraph/backend/pkg/logger"
	"github.com/corpgraph/backend/pkg/logger/console"
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
