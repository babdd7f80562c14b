package service

import (
	"os"
	"strings"

	localCache "github.com/coder-56/stock-insights/cache"
	"github.com/coder-56/stock-insights/customerrors"
	"github.com/coder-56/stock-insights/model"
	"github.com/coder-56/stock-insights/util"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
)

const symbolMasterKey = "symbol_master"

type SymbolService interface {
	Normalize(raw []string) ([]string, error)
	ClassifyMarket(symbol string) model.Market
	ListSymbols() ([]string, error)
}

type SymbolServiceImpl struct {
	symbolFilePath string
}

func NewSymbolService(symbolFilePath string) SymbolService {
	return &SymbolServiceImpl{symbolFilePath: symbolFilePath}
}

// Normalize flattens raw user input into a clean symbol list: each
// element may itself be comma-delimited. Tokens are trimmed, upper-cased
// and deduplicated preserving first-seen order.
func (s *SymbolServiceImpl) Normalize(raw []string) ([]string, error) {
	seen := make(map[string]struct{})
	var symbols []string

	for _, chunk := range raw {
		for _, token := range strings.Split(chunk, ",") {
			symbol := strings.ToUpper(strings.TrimSpace(token))
			if symbol == "" {
				continue
			}
			if _, dup := seen[symbol]; dup {
				continue
			}
			seen[symbol] = struct{}{}
			symbols = append(symbols, symbol)
		}
	}

	if len(symbols) == 0 {
		return nil, customerrors.ErrNoSymbols
	}
	return symbols, nil
}

// ClassifyMarket derives an advisory market tag from the symbol suffix.
// Bare symbols found in the bundled NSE master default to NSE, anything
// else without a suffix is assumed US.
func (s *SymbolServiceImpl) ClassifyMarket(symbol string) model.Market {
	switch {
	case strings.HasSuffix(symbol, ".NS"):
		return model.MarketNSE
	case strings.HasSuffix(symbol, ".BSE"), strings.HasSuffix(symbol, ".BO"):
		return model.MarketBSE
	case strings.Contains(symbol, "."):
		return model.MarketUnknown
	}

	if master, err := s.ListSymbols(); err == nil {
		for _, known := range master {
			if known == symbol {
				return model.MarketNSE
			}
		}
	}
	return model.MarketUS
}

// ListSymbols returns the upper-cased exchange symbol master used for
// autocomplete. The parsed list is cached after the first read.
func (s *SymbolServiceImpl) ListSymbols() ([]string, error) {
	if cached, found := localCache.SymbolMasterCache.Get(symbolMasterKey); found {
		return cached.([]string), nil
	}

	f, err := os.Open(s.symbolFilePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	symbols, err := util.ReadSymbolColumn(f)
	if err != nil {
		log.Error().Err(err).Str("path", s.symbolFilePath).Msg("Failed to parse symbol master")
		return nil, err
	}

	localCache.SymbolMasterCache.Set(symbolMasterKey, symbols, cache.DefaultExpiration)
	return symbols, nil
}
