package main

import (
	"csvcel/contracts"
	"net/http"

	"github.com/gin-gonic/gin"
)

const ApiVersion = "v1"

func SetupRouter(controller contracts.ApiController) *gin.Engine {
	router := gin.New()

	apiRouterGroup := router.Group("/api/" + ApiVersion)
	apiRouterGroup.PUT("/:sheet_id", controller.SetSheetAction)
	apiRouterGroup.GET("/:sheet_id", controller.GetSheetAction)
	apiRouterGroup.GET("/:sheet_id/:cell_id", controller.GetCellAction)

	router.GET("/healthcheck", func(c *gin.Context) {
		c.String(http.StatusOK, "health")
	})

	return router
}
