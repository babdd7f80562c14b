package cache

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// SymbolMasterCache holds the parsed exchange symbol list. Fetched
// insights are request-scoped and deliberately never cached.
var SymbolMasterCache = cache.New(24*time.Hour, 1*time.Hour)
