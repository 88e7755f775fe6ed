package main

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"job-board/internal/api"
	"job-board/internal/board"
	"job-board/internal/config"
	"job-board/internal/jobcard"
	"job-board/internal/logger"
)

func main() {
	cfg, err := config.Load()

	// Initialize logger
	logger.Init(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	catalog, err := board.LoadCatalog(cfg.JobsFile)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.JobsFile).Msg("Failed to load listings")
	}
	log.Info().Int("jobs", len(catalog.All())).Str("file", cfg.JobsFile).Msg("Listings loaded")

	// Set Gin to release mode
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		log.Fatal().Err(err).Msg("Invalid trusted proxies")
	}

	// Use gin middleware
	r.Use(gin.Recovery())
	r.Use(loggerMiddleware())

	renderer := jobcard.NewRenderer(logger.Get())
	handler := api.NewHandler(catalog, board.NewSavedSet(), renderer, api.Options{
		Title:      cfg.BoardTitle,
		ShowSalary: cfg.ShowSalary,
		OnApply: func(id string) {
			log.Info().Str("job_id", id).Msg("Quick apply requested")
		},
	})

	// Routes
	handler.RegisterRoutes(r, rateLimitMiddleware(cfg.RateLimitRPS, limiterIdleTTL))

	// Start server
	log.Info().Msgf("Starting server on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
