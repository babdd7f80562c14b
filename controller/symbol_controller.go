package controller

import (
	"net/http"

	"github.com/coder-56/stock-insights/model"
	"github.com/coder-56/stock-insights/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type SymbolController struct {
	symbolService service.SymbolService
}

func NewSymbolController(ss service.SymbolService) *SymbolController {
	return &SymbolController{symbolService: ss}
}

// RegisterRoutes sets up the autocomplete lookup endpoint.
func (ctrl *SymbolController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/symbols", ctrl.GetSymbols)
}

// GetSymbols lists the known exchange tickers for autocomplete.
// @Summary      List Exchange Symbols
// @Description  Returns the upper-cased symbol master bundled with the service.
// @Tags         Symbols
// @Produce      json
// @Success      200  {object}  model.SymbolsResponse
// @Failure      500  {object}  model.SymbolsResponse
// @Router       /symbols [get]
func (ctrl *SymbolController) GetSymbols(c *gin.Context) {
	symbols, err := ctrl.symbolService.ListSymbols()
	if err != nil {
		log.Error().Err(err).Msg("Symbol master unavailable")
		c.JSON(http.StatusInternalServerError, model.SymbolsResponse{
			Symbols: []string{},
			Error:   "Symbol reference file unavailable",
		})
		return
	}

	c.JSON(http.StatusOK, model.SymbolsResponse{Symbols: symbols})
}
