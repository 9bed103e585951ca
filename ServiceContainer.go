package main

import (
	"csvcel/contracts"
	"io"
	"log/slog"

	"github.com/gin-gonic/gin"
)

type ServiceContainer struct {
	Config           *Config
	Logger           *slog.Logger
	Evaluator        contracts.SheetEvaluator
	SheetRepository  contracts.SheetRepository
	ResultDispatcher contracts.ResultDispatcher
	ApiController    contracts.ApiController
	Router           *gin.Engine
}

func BuildServiceContainer(config *Config, logStream io.Writer) (container ServiceContainer) {
	container.Config = config
	container.Logger = NewLogger(config.Log.Level, config.Log.Format, logStream)

	container.Evaluator = NewSheetEvaluator()
	container.SheetRepository = NewSheetRepository(container.Evaluator)
	container.ResultDispatcher = NewResultDispatcher(config.Server.WebhookWorkers, container.Logger)
	container.ApiController = NewApiController(container.SheetRepository, container.ResultDispatcher)

	container.Router = SetupRouter(container.ApiController)

	return
}
