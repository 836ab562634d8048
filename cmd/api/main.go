package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"voice-task-parser/config"
	_ "voice-task-parser/docs" // Swagger docs
	"voice-task-parser/internal/httpserver"
	parseHTTP "voice-task-parser/internal/parse/delivery/http"
	"voice-task-parser/internal/parse/usecase"
	"voice-task-parser/pkg/distancematrix"
	"voice-task-parser/pkg/log"
	"voice-task-parser/pkg/places"
)

// @title       Voice Task Parser API
// @description Stateless parsing service that turns one free-text utterance into a structured task or event record.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Voice Task Parser...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Default timezone: %s", cfg.Parser.Timezone)

	// 3. Google Maps clients (optional; parsing degrades gracefully without them)
	var placesClient places.IPlaces
	var distanceClient distancematrix.IDistanceMatrix

	if cfg.Google.MapsAPIKey != "" {
		pc, pErr := places.New(cfg.Google.MapsAPIKey)
		if pErr != nil {
			logger.Warnf(ctx, "Places client not available: %v", pErr)
		} else {
			if cfg.Google.PlacesBaseURL != "" {
				pc = pc.WithBaseURL(cfg.Google.PlacesBaseURL)
			}
			placesClient = pc
			logger.Info(ctx, "Places client initialized")
		}

		dc, dErr := distancematrix.New(cfg.Google.MapsAPIKey)
		if dErr != nil {
			logger.Warnf(ctx, "Distance Matrix client not available: %v", dErr)
		} else {
			if cfg.Google.DistanceMatrixBaseURL != "" {
				dc = dc.WithBaseURL(cfg.Google.DistanceMatrixBaseURL)
			}
			distanceClient = dc
			logger.Info(ctx, "Distance Matrix client initialized")
		}
	} else {
		logger.Warn(ctx, "GOOGLE_MAPS_API_KEY not set: geocoding and travel estimation disabled")
	}

	// 4. Parse domain
	parseUC := usecase.New(logger, placesClient, distanceClient, usecase.Config{
		DefaultTimezone: cfg.Parser.Timezone,
		DefaultRadiusM:  cfg.Parser.DefaultRadiusM,
	})
	parseHandler := parseHTTP.New(logger, parseUC)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.RateLimit.PerMin,
		ParseHandler:    parseHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
