package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/coder-56/stock-insights/customerrors"
	"github.com/coder-56/stock-insights/model"

	"github.com/joho/godotenv"
)

const (
	defaultAlphaVantageUrl = "https://www.alphavantage.co"
	defaultSymbolFilePath  = "data/symbols.csv"
)

type SystemConfigs struct {
	Config *model.EnvConfig
}

// LoadConfigs reads the 'config' environment variable (JSON) once at
// startup. The provider API key is mandatory: failing here is preferred
// over a generic failure on the first provider call.
func LoadConfigs() (*SystemConfigs, error) {
	godotenv.Load()

	rawJson := os.Getenv("config")
	if rawJson == "" {
		return nil, fmt.Errorf("environment variable 'config' is empty or not set")
	}

	var envCfg model.EnvConfig
	if err := json.Unmarshal([]byte(rawJson), &envCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if envCfg.AlphaVantageApiKey == "" {
		return nil, customerrors.NewConfigurationError("alphaVantageApiKey")
	}
	if envCfg.AlphaVantageUrl == "" {
		envCfg.AlphaVantageUrl = defaultAlphaVantageUrl
	}
	if envCfg.SymbolFilePath == "" {
		envCfg.SymbolFilePath = defaultSymbolFilePath
	}

	return &SystemConfigs{
		Config: &envCfg,
	}, nil
}
