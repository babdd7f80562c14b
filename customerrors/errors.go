package customerrors

import (
	"errors"
	"fmt"
)

var (
	ErrNoSymbols     = errors.New("No symbols provided")
	ErrEmptySeries   = errors.New("provider returned an empty price series")
	ErrUnknownSymbol = errors.New("symbol not found at provider")
)

// ProviderError is a per-symbol failure from the price/range provider.
// It is attached to that symbol's insight and never aborts the batch.
type ProviderError struct {
	Symbol string
	Reason string
	Err    error
}

func NewProviderError(symbol, reason string, err error) *ProviderError {
	return &ProviderError{Symbol: symbol, Reason: reason, Err: err}
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("provider error for %s: %s: %v", e.Symbol, e.Reason, e.Err)
	}
	return fmt.Sprintf("provider error for %s: %s", e.Symbol, e.Reason)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// ConfigurationError reports a missing or unusable configuration value.
type ConfigurationError struct {
	Key string
}

func NewConfigurationError(key string) *ConfigurationError {
	return &ConfigurationError{Key: key}
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration value %q is missing or empty", e.Key)
}
