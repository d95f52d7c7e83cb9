package main

import (
	"github.com/onconav/oncograph/backend/internal/server"
	"github.com/onconav/oncograph/backend/internal/util"
	"github.com/onconav/oncograph/backend/pkg/logger"
	"github.com/onconav/oncograph/backend/pkg/logger/console"
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
