package client

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/coder-56/stock-insights/customerrors"
	"github.com/coder-56/stock-insights/middleware"
	"github.com/coder-56/stock-insights/model"
	"github.com/coder-56/stock-insights/util"

	"github.com/go-resty/resty/v2"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

const rangeWindow = 365 * 24 * time.Hour

// AlphaVantageClient talks to the combined price/news provider. The API
// key is injected at construction rather than read per call.
type AlphaVantageClient struct {
	client *resty.Client
	apiKey string
}

func NewAlphaVantageClient(cfg *model.EnvConfig) *AlphaVantageClient {
	client := resty.New().
		SetBaseURL(cfg.AlphaVantageUrl).
		SetTimeout(10 * time.Second).
		SetHeaders(map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
			"User-Agent":   "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		})

	client.OnAfterResponse(middleware.DecompressMiddleware)

	return &AlphaVantageClient{
		client: client,
		apiKey: cfg.AlphaVantageApiKey,
	}
}

// FetchDailySeries pulls the trailing year of daily candles for symbol
// and reduces them to current price plus the 52-week extremes.
func (a *AlphaVantageClient) FetchDailySeries(ctx context.Context, symbol string) (*model.PriceRange, error) {
	var series model.DailySeriesResponse
	resp, err := a.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"function":   "TIME_SERIES_DAILY",
			"symbol":     symbol,
			"outputsize": "full",
			"apikey":     a.apiKey,
		}).
		SetResult(&series).
		Get("/query")

	if err != nil {
		return nil, customerrors.NewProviderError(symbol, "daily series request failed", err)
	}
	if !resp.IsSuccess() {
		return nil, customerrors.NewProviderError(symbol, fmt.Sprintf("daily series returned status %d", resp.StatusCode()), nil)
	}
	if series.ErrorMessage != "" {
		return nil, customerrors.NewProviderError(symbol, series.ErrorMessage, customerrors.ErrUnknownSymbol)
	}
	if msg := firstNonEmpty(series.Note, series.Information); msg != "" {
		return nil, customerrors.NewProviderError(symbol, msg, nil)
	}
	if len(series.Series) == 0 {
		return nil, customerrors.NewProviderError(symbol, "unrecognized payload shape", customerrors.ErrEmptySeries)
	}

	priceRange, err := reduceDailySeries(series.Series)
	if err != nil {
		return nil, customerrors.NewProviderError(symbol, "malformed daily series", err)
	}
	return priceRange, nil
}

// FetchNews pulls the recent news feed for symbol and maps the three
// most recent entries, newest first. Callers treat any failure here as
// non-fatal.
func (a *AlphaVantageClient) FetchNews(ctx context.Context, symbol string) ([]model.NewsItem, error) {
	var feed model.NewsFeedResponse
	resp, err := a.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"function": "NEWS_SENTIMENT",
			"tickers":  symbol,
			"limit":    "50",
			"apikey":   a.apiKey,
		}).
		SetResult(&feed).
		Get("/query")

	if err != nil {
		return nil, customerrors.NewProviderError(symbol, "news request failed", err)
	}
	if !resp.IsSuccess() {
		return nil, customerrors.NewProviderError(symbol, fmt.Sprintf("news returned status %d", resp.StatusCode()), nil)
	}
	if msg := firstNonEmpty(feed.ErrorMessage, feed.Note, feed.Information); msg != "" {
		return nil, customerrors.NewProviderError(symbol, msg, nil)
	}

	items := make([]model.NewsItem, 0, len(feed.Feed))
	for _, entry := range feed.Feed {
		publishedAt, err := util.ParseNewsTimestamp(entry.TimePublished)
		if err != nil {
			log.Warn().Str("symbol", symbol).Str("time_published", entry.TimePublished).Msg("Skipping news entry with bad timestamp")
			continue
		}
		var item model.NewsItem
		copier.Copy(&item, &entry)
		item.PublishedAt = publishedAt
		items = append(items, item)
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].PublishedAt.After(items[j].PublishedAt)
	})
	if len(items) > 3 {
		items = items[:3]
	}
	return items, nil
}

func reduceDailySeries(series map[string]model.DailyQuote) (*model.PriceRange, error) {
	latestKey := ""
	for key := range series {
		// Date keys are ISO formatted, so lexical order is date order.
		if key > latestKey {
			latestKey = key
		}
	}

	latestDate, err := util.ParseSeriesDate(latestKey)
	if err != nil {
		return nil, err
	}

	current, err := strconv.ParseFloat(series[latestKey].Close, 64)
	if err != nil {
		return nil, fmt.Errorf("bad close %q: %w", series[latestKey].Close, err)
	}

	high := math.Inf(-1)
	low := math.Inf(1)
	cutoff := latestDate.Add(-rangeWindow)
	for key, quote := range series {
		day, err := util.ParseSeriesDate(key)
		if err != nil || day.Before(cutoff) {
			continue
		}
		h, errH := strconv.ParseFloat(quote.High, 64)
		l, errL := strconv.ParseFloat(quote.Low, 64)
		if errH != nil || errL != nil {
			continue
		}
		high = math.Max(high, h)
		low = math.Min(low, l)
	}

	if math.IsInf(high, -1) || math.IsInf(low, 1) {
		return nil, customerrors.ErrEmptySeries
	}

	return &model.PriceRange{
		CurrentPrice: current,
		High52:       high,
		Low52:        low,
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
