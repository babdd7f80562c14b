package model

import "time"

// Market is an advisory exchange tag derived from the symbol suffix.
type Market string

const (
	MarketNSE     Market = "NSE"
	MarketBSE     Market = "BSE"
	MarketUS      Market = "US"
	MarketUnknown Market = "UNKNOWN"
)

// NewsItem is one headline for a symbol, newest first in a list.
type NewsItem struct {
	Title       string    `json:"title"`
	Source      string    `json:"source"`
	PublishedAt time.Time `json:"publishedAt"`
	URL         string    `json:"url,omitempty"`
}

// BulkDeal represents a reported bulk/block trade. The baseline data
// source is a stub, so these are never produced yet.
type BulkDeal struct {
	Date     string  `json:"date"`
	Buyer    string  `json:"buyer"`
	Seller   string  `json:"seller"`
	Quantity int64   `json:"quantity"`
	Price    float64 `json:"price"`
	Exchange string  `json:"exchange"`
}

// PriceRange is the normalized output of the daily-series fetch.
type PriceRange struct {
	CurrentPrice float64
	High52       float64
	Low52        float64
}

// StockInsight is the per-symbol unit of output. Numeric fields are
// pointers so an unavailable value (provider failure, NaN percentage)
// marshals as JSON null rather than zero.
type StockInsight struct {
	Symbol       string     `json:"symbol"`
	Market       Market     `json:"market"`
	CurrentPrice *float64   `json:"currentPrice"`
	High52       *float64   `json:"high52"`
	Low52        *float64   `json:"low52"`
	PctFromHigh  *float64   `json:"pctFromHigh"`
	PctFromLow   *float64   `json:"pctFromLow"`
	LatestNews   []NewsItem `json:"latestNews"`
	BulkDeals    []BulkDeal `json:"bulkDeals"`
	Error        string     `json:"error,omitempty"`
}

// StockInsightsResponse holds one insight per unique input symbol in
// first-seen order.
type StockInsightsResponse struct {
	Results []StockInsight `json:"results"`
}

// InsightsRequest is the decoded POST /insights body. Symbols accepts
// either a single string or an array on the wire.
type InsightsRequest struct {
	Symbols []string `json:"symbols" mapstructure:"symbols"`
}

// SymbolsResponse is the autocomplete lookup payload.
type SymbolsResponse struct {
	Symbols []string `json:"symbols"`
	Error   string   `json:"error,omitempty"`
}

// ErrorResponse is the body for 400/500 failures at the request boundary.
type ErrorResponse struct {
	Error string `json:"error"`
}
