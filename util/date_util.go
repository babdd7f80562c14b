package util

import (
	"strings"
	"time"
)

var (
	newsLayout   = "20060102T150405"
	seriesLayout = "2006-01-02"
)

// ParseNewsTimestamp parses the compact publish time used by the news
// feed, e.g. "20240131T123000".
func ParseNewsTimestamp(raw string) (time.Time, error) {
	return time.Parse(newsLayout, strings.TrimSpace(raw))
}

// ParseSeriesDate parses a daily-series date key, e.g. "2024-01-31".
func ParseSeriesDate(raw string) (time.Time, error) {
	return time.Parse(seriesLayout, strings.TrimSpace(raw))
}
