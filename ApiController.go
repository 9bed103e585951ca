package main

import (
	"csvcel/contracts"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ApiController struct {
	SheetRepository  contracts.SheetRepository
	ResultDispatcher contracts.ResultDispatcher
}

type CellEndpointParams struct {
	SheetId string `uri:"sheet_id" binding:"required"`
	CellId  string `uri:"cell_id" binding:"required"`
}

type SheetEndpointParams struct {
	SheetId string `uri:"sheet_id" binding:"required"`
}

func NewApiController(sheetRepository contracts.SheetRepository, resultDispatcher contracts.ResultDispatcher) *ApiController {
	return &ApiController{
		SheetRepository:  sheetRepository,
		ResultDispatcher: resultDispatcher,
	}
}

// SetSheetAction replaces a sheet with the grid text in the request body.
// An optional `webhook` query parameter gets the evaluated report POSTed to
// it asynchronously.
func (api *ApiController) SetSheetAction(c *gin.Context) {
	params := SheetEndpointParams{}
	var response *contracts.SheetReport
	var source []byte

	err := c.ShouldBindUri(&params)

	if err == nil {
		source, err = c.GetRawData()
	}

	if err == nil {
		response, err = api.SheetRepository.SetSheet(params.SheetId, string(source))
	}

	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	if api.ResultDispatcher != nil {
		api.ResultDispatcher.Notify(params.SheetId, c.Query("webhook"), response)
	}

	c.JSON(http.StatusCreated, response)
}

func (api *ApiController) GetSheetAction(c *gin.Context) {
	params := SheetEndpointParams{}
	var response *contracts.SheetReport

	err := c.ShouldBindUri(&params)

	if err == nil {
		response, err = api.SheetRepository.GetSheet(params.SheetId)
	}

	if errors.Is(err, contracts.SheetNotFoundError) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	} else {
		c.JSON(http.StatusOK, response)
	}
}

func (api *ApiController) GetCellAction(c *gin.Context) {
	params := CellEndpointParams{}
	var response *contracts.CellReport

	err := c.ShouldBindUri(&params)

	if err == nil {
		response, err = api.SheetRepository.GetCell(params.SheetId, params.CellId)
	}

	if errors.Is(err, contracts.CellNotFoundError) || errors.Is(err, contracts.SheetNotFoundError) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	} else {
		c.JSON(http.StatusOK, response)
	}
}
