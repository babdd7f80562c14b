package controller

import (
	"errors"
	"net/http"

	"github.com/coder-56/stock-insights/customerrors"
	"github.com/coder-56/stock-insights/model"
	"github.com/coder-56/stock-insights/service"
	"github.com/coder-56/stock-insights/validator"

	"github.com/gin-gonic/gin"
	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog/log"
)

type InsightController struct {
	insightService service.InsightService
	symbolService  service.SymbolService
}

func NewInsightController(is service.InsightService, ss service.SymbolService) *InsightController {
	return &InsightController{
		insightService: is,
		symbolService:  ss,
	}
}

// RegisterRoutes sets up the aggregation endpoint.
func (ctrl *InsightController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/insights", ctrl.GetInsights)
}

// GetInsights aggregates price, range, news and bulk-deal data per symbol.
// @Summary      Get Stock Insights
// @Description  Accepts a comma-delimited string or array of ticker symbols and returns one insight per unique symbol.
// @Tags         Insights
// @Accept       json
// @Produce      json
// @Param        request  body      model.InsightsRequest  true  "Symbols to aggregate"
// @Success      200      {object}  model.StockInsightsResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      500      {object}  model.ErrorResponse
// @Router       /insights [post]
func (ctrl *InsightController) GetInsights(c *gin.Context) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		log.Warn().Err(err).Msg("Malformed insights request body")
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Unexpected error processing request"})
		return
	}

	req, err := decodeInsightsRequest(raw)
	if err != nil {
		log.Warn().Err(err).Msg("Undecodable insights request body")
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Unexpected error processing request"})
		return
	}

	symbols, err := ctrl.symbolService.Normalize(req.Symbols)
	if err != nil {
		if errors.Is(err, customerrors.ErrNoSymbols) {
			c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Unexpected error processing request"})
		return
	}

	normalized := model.InsightsRequest{Symbols: symbols}
	if issues := validator.InsightsRequestSchema.Validate(&normalized); len(issues) > 0 {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: validator.FirstIssue(issues)})
		return
	}

	results := ctrl.insightService.BuildInsights(c.Request.Context(), symbols)
	c.JSON(http.StatusOK, model.StockInsightsResponse{Results: results})
}

// decodeInsightsRequest accepts both {"symbols": "TCS, INFY"} and
// {"symbols": ["TCS", "INFY"]}: weakly typed decoding promotes a single
// string to a one-element slice.
func decodeInsightsRequest(raw map[string]any) (*model.InsightsRequest, error) {
	var req model.InsightsRequest
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &req,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, err
	}
	return &req, nil
}
