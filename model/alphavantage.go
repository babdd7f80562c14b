package model

// DailySeriesResponse is the raw TIME_SERIES_DAILY payload. Alpha Vantage
// reports soft failures inside a 200 body, so the error fields ride along.
type DailySeriesResponse struct {
	MetaData     map[string]string     `json:"Meta Data"`
	Series       map[string]DailyQuote `json:"Time Series (Daily)"`
	ErrorMessage string                `json:"Error Message"`
	Note         string                `json:"Note"`
	Information  string                `json:"Information"`
}

// DailyQuote carries one day of OHLCV as decimal strings.
type DailyQuote struct {
	Open   string `json:"1. open"`
	High   string `json:"2. high"`
	Low    string `json:"3. low"`
	Close  string `json:"4. close"`
	Volume string `json:"5. volume"`
}

// NewsFeedResponse is the raw NEWS_SENTIMENT payload.
type NewsFeedResponse struct {
	Items        string          `json:"items"`
	Feed         []NewsFeedEntry `json:"feed"`
	ErrorMessage string          `json:"Error Message"`
	Note         string          `json:"Note"`
	Information  string          `json:"Information"`
}

// NewsFeedEntry is one article in the news feed. TimePublished uses the
// provider's compact layout, e.g. 20240131T123000.
type NewsFeedEntry struct {
	Title         string `json:"title"`
	URL           string `json:"url"`
	TimePublished string `json:"time_published"`
	Source        string `json:"source"`
	Summary       string `json:"summary"`
}
