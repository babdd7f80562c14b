package service

import (
	"context"
	"math"
	"path/filepath"
	"testing"
	"time"

	localCache "github.com/coder-56/stock-insights/cache"
	"github.com/coder-56/stock-insights/customerrors"
	"github.com/coder-56/stock-insights/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMarketData struct {
	ranges map[string]*model.PriceRange
	news   map[string][]model.NewsItem
	errs   map[string]error
}

func (f *fakeMarketData) FetchDailySeries(_ context.Context, symbol string) (*model.PriceRange, error) {
	if err, ok := f.errs[symbol]; ok {
		return nil, err
	}
	return f.ranges[symbol], nil
}

func (f *fakeMarketData) FetchNews(_ context.Context, symbol string) ([]model.NewsItem, error) {
	items, ok := f.news[symbol]
	if !ok {
		return nil, customerrors.NewProviderError(symbol, "news unavailable", nil)
	}
	return items, nil
}

func newTestInsightService(md MarketDataClient) InsightService {
	localCache.SymbolMasterCache.Flush()
	symbols := NewSymbolService(filepath.Join("testdata", "absent.csv"))
	return NewInsightService(md, NewBulkDealService(), symbols)
}

func TestPctChange_KnownValues(t *testing.T) {
	assert.InDelta(t, -17.70, PctChange(1234.56, 1500.0), 0.01)
	assert.InDelta(t, 37.17, PctChange(1234.56, 900.0), 0.01)
}

func TestPctChange_ZeroExtremeYieldsNaN(t *testing.T) {
	assert.True(t, math.IsNaN(PctChange(1234.56, 0)))
	assert.True(t, math.IsNaN(PctChange(math.NaN(), 1500)))
	assert.True(t, math.IsNaN(PctChange(1234.56, math.Inf(1))))
}

func TestBuildInsight_Success(t *testing.T) {
	published := time.Date(2026, 8, 1, 9, 30, 0, 0, time.UTC)
	md := &fakeMarketData{
		ranges: map[string]*model.PriceRange{
			"TCS.NS": {CurrentPrice: 1234.56, High52: 1500.0, Low52: 900.0},
		},
		news: map[string][]model.NewsItem{
			"TCS.NS": {{Title: "headline", Source: "wire", PublishedAt: published}},
		},
	}
	svc := newTestInsightService(md)

	insight := svc.BuildInsight(context.Background(), "TCS.NS")

	assert.Equal(t, "TCS.NS", insight.Symbol)
	assert.Equal(t, model.MarketNSE, insight.Market)
	assert.Empty(t, insight.Error)
	require.NotNil(t, insight.CurrentPrice)
	assert.Equal(t, 1234.56, *insight.CurrentPrice)
	require.NotNil(t, insight.PctFromHigh)
	assert.InDelta(t, -17.70, *insight.PctFromHigh, 0.01)
	require.NotNil(t, insight.PctFromLow)
	assert.InDelta(t, 37.17, *insight.PctFromLow, 0.01)
	require.Len(t, insight.LatestNews, 1)
	assert.Equal(t, "headline", insight.LatestNews[0].Title)
	assert.Empty(t, insight.BulkDeals)
}

func TestBuildInsight_ZeroHighYieldsNullPercentage(t *testing.T) {
	md := &fakeMarketData{
		ranges: map[string]*model.PriceRange{
			"ODD": {CurrentPrice: 10, High52: 0, Low52: 5},
		},
		news: map[string][]model.NewsItem{"ODD": {}},
	}
	svc := newTestInsightService(md)

	insight := svc.BuildInsight(context.Background(), "ODD")

	assert.Empty(t, insight.Error)
	require.NotNil(t, insight.High52)
	assert.Zero(t, *insight.High52)
	assert.Nil(t, insight.PctFromHigh)
	require.NotNil(t, insight.PctFromLow)
	assert.InDelta(t, 100.0, *insight.PctFromLow, 0.01)
}

func TestBuildInsight_PriceFailureKeepsNews(t *testing.T) {
	published := time.Date(2026, 8, 1, 9, 30, 0, 0, time.UTC)
	md := &fakeMarketData{
		errs: map[string]error{
			"BAD.NS": customerrors.NewProviderError("BAD.NS", "symbol not found", customerrors.ErrUnknownSymbol),
		},
		news: map[string][]model.NewsItem{
			"BAD.NS": {{Title: "still here", Source: "wire", PublishedAt: published}},
		},
	}
	svc := newTestInsightService(md)

	insight := svc.BuildInsight(context.Background(), "BAD.NS")

	assert.Contains(t, insight.Error, "symbol not found")
	assert.Nil(t, insight.CurrentPrice)
	assert.Nil(t, insight.High52)
	assert.Nil(t, insight.Low52)
	assert.Nil(t, insight.PctFromHigh)
	assert.Nil(t, insight.PctFromLow)
	require.Len(t, insight.LatestNews, 1)
	assert.Equal(t, "still here", insight.LatestNews[0].Title)
	assert.Empty(t, insight.BulkDeals)
}

func TestBuildInsight_NewsFailureIsNonFatal(t *testing.T) {
	md := &fakeMarketData{
		ranges: map[string]*model.PriceRange{
			"INFY.NS": {CurrentPrice: 1500, High52: 2000, Low52: 1200},
		},
		// no news entry: FetchNews errors for this symbol
	}
	svc := newTestInsightService(md)

	insight := svc.BuildInsight(context.Background(), "INFY.NS")

	assert.Empty(t, insight.Error)
	require.NotNil(t, insight.CurrentPrice)
	assert.NotNil(t, insight.LatestNews)
	assert.Empty(t, insight.LatestNews)
}

func TestBuildInsights_MixedBatchNeverAborts(t *testing.T) {
	md := &fakeMarketData{
		ranges: map[string]*model.PriceRange{
			"GOOD.NS": {CurrentPrice: 100, High52: 120, Low52: 80},
		},
		errs: map[string]error{
			"BAD.NS": customerrors.NewProviderError("BAD.NS", "daily series request failed", nil),
		},
		news: map[string][]model.NewsItem{"GOOD.NS": {}, "BAD.NS": {}},
	}
	svc := newTestInsightService(md)

	results := svc.BuildInsights(context.Background(), []string{"BAD.NS", "GOOD.NS"})

	require.Len(t, results, 2)
	assert.Equal(t, "BAD.NS", results[0].Symbol)
	assert.NotEmpty(t, results[0].Error)
	assert.Nil(t, results[0].CurrentPrice)
	assert.Equal(t, "GOOD.NS", results[1].Symbol)
	assert.Empty(t, results[1].Error)
	require.NotNil(t, results[1].CurrentPrice)
	assert.Equal(t, 100.0, *results[1].CurrentPrice)
}
