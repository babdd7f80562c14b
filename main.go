package main

import (
	"runtime"

	"github.com/coder-56/stock-insights/config"
	_ "github.com/coder-56/stock-insights/docs"
	"github.com/coder-56/stock-insights/routes"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title           Stock Insights API
// @version         1.0
// @description     Aggregates price, 52-week range, news and bulk-deal data per ticker symbol.
// @BasePath        /api
func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())
	sysConfigs, err := config.LoadConfigs()
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading configuration")
	}

	if sysConfigs.Config.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := routes.SetupRouter(sysConfigs)

	port := sysConfigs.Config.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := router.Run("0.0.0.0:" + port); err != nil {
		log.Fatal().Err(err).Msg("Server failed to start")
	}
}

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.With().Logger()
}
