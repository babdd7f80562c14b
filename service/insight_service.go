package service

import (
	"context"
	"math"
	"sync"

	"github.com/coder-56/stock-insights/model"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// MarketDataClient is the outbound provider surface the aggregator
// depends on.
type MarketDataClient interface {
	FetchDailySeries(ctx context.Context, symbol string) (*model.PriceRange, error)
	FetchNews(ctx context.Context, symbol string) ([]model.NewsItem, error)
}

type InsightService interface {
	BuildInsight(ctx context.Context, symbol string) model.StockInsight
	BuildInsights(ctx context.Context, symbols []string) []model.StockInsight
}

type InsightServiceImpl struct {
	marketData MarketDataClient
	bulkDeals  BulkDealService
	symbols    SymbolService
}

func NewInsightService(marketData MarketDataClient, bulkDeals BulkDealService, symbols SymbolService) InsightService {
	return &InsightServiceImpl{
		marketData: marketData,
		bulkDeals:  bulkDeals,
		symbols:    symbols,
	}
}

// BuildInsights fans out one pipeline per symbol. Symbols are mutually
// independent, so a provider failure on one never cancels the others;
// results keep the caller's order.
func (s *InsightServiceImpl) BuildInsights(ctx context.Context, symbols []string) []model.StockInsight {
	results := make([]model.StockInsight, len(symbols))

	g, gctx := errgroup.WithContext(ctx)
	for i, symbol := range symbols {
		i, symbol := i, symbol
		g.Go(func() error {
			results[i] = s.BuildInsight(gctx, symbol)
			return nil
		})
	}
	g.Wait()

	return results
}

// BuildInsight merges the price/range, news and bulk-deal fetches for a
// single normalized symbol. Price failure marks the record but news and
// deals remain best-effort populated.
func (s *InsightServiceImpl) BuildInsight(ctx context.Context, symbol string) model.StockInsight {
	var (
		wg         sync.WaitGroup
		priceRange *model.PriceRange
		priceErr   error
		news       []model.NewsItem
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		priceRange, priceErr = s.marketData.FetchDailySeries(ctx, symbol)
	}()
	go func() {
		defer wg.Done()
		items, err := s.marketData.FetchNews(ctx, symbol)
		if err != nil {
			log.Warn().Err(err).Str("symbol", symbol).Msg("News fetch failed, continuing without headlines")
			return
		}
		news = items
	}()
	wg.Wait()

	insight := model.StockInsight{
		Symbol:     symbol,
		Market:     s.symbols.ClassifyMarket(symbol),
		LatestNews: news,
		BulkDeals:  s.bulkDeals.FetchBulkDeals(ctx, symbol),
	}
	if insight.LatestNews == nil {
		insight.LatestNews = []model.NewsItem{}
	}

	if priceErr != nil {
		insight.Error = priceErr.Error()
		return insight
	}

	insight.CurrentPrice = finiteOrNil(priceRange.CurrentPrice)
	insight.High52 = finiteOrNil(priceRange.High52)
	insight.Low52 = finiteOrNil(priceRange.Low52)
	insight.PctFromHigh = finiteOrNil(PctChange(priceRange.CurrentPrice, priceRange.High52))
	insight.PctFromLow = finiteOrNil(PctChange(priceRange.CurrentPrice, priceRange.Low52))
	return insight
}

// PctChange is the percentage drift of current from extreme. NaN is the
// sentinel for an undefined result (zero or non-finite inputs), never a
// division panic.
func PctChange(current, extreme float64) float64 {
	if extreme == 0 || !isFinite(extreme) || !isFinite(current) {
		return math.NaN()
	}
	return ((current - extreme) / extreme) * 100
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// finiteOrNil maps the NaN sentinel (and infinities) to a JSON null.
func finiteOrNil(f float64) *float64 {
	if !isFinite(f) {
		return nil
	}
	return &f
}
