package model

// EnvConfig is the process configuration parsed from the 'config'
// environment variable (JSON blob, optionally via .env).
type EnvConfig struct {
	Port               string `json:"port"`
	Environment        string `json:"environment"`
	AlphaVantageApiKey string `json:"alphaVantageApiKey"`
	AlphaVantageUrl    string `json:"alphaVantageUrl"`
	SymbolFilePath     string `json:"symbolFilePath"`
	FrontendOrigin     string `json:"frontendOrigin"`
}
