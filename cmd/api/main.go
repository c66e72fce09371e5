// ABOUTME: Main entry point for the Bingefeed API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bingefeed-api/api"
	"bingefeed-api/core/catalog"
	"bingefeed-api/core/feed"
	"bingefeed-api/core/interfaces"
	"bingefeed-api/core/merge"
	"bingefeed-api/core/services"
	"bingefeed-api/core/workers"
	"bingefeed-api/infrastructure/cache/memory"
	stdhttp "bingefeed-api/infrastructure/http/standard"
	applogger "bingefeed-api/infrastructure/logger/logrus"
	"bingefeed-api/infrastructure/metrics/prometheus"
	"bingefeed-api/pkg/config"
	"bingefeed-api/pkg/featureflags"
)

const imageTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load(os.Getenv("BINGEFEED_CONFIG"))
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := applogger.NewLogger(applogger.Config{
		Level: cfg.Log.Level,
		File:  cfg.Log.File,
	})
	flags := featureflags.NewEnvManager(cfg.FeaturePrefix)
	logger.Info("Starting Bingefeed API", map[string]interface{}{
		"port":         cfg.Server.Port,
		"catalog":      cfg.Catalog.BaseURL,
		"region":       cfg.Catalog.Region,
		"catalog_rate": cfg.Catalog.RatePerSecond,
		"flags":        flags.GetAllFlags(),
	})

	metrics := prometheus.NewMetrics()

	// Catalog requests are throttled; poster downloads are not
	catalogHTTP := stdhttp.NewStandardHTTPClientWithOptions(stdhttp.Options{
		Timeout:       cfg.Catalog.Timeout,
		RatePerSecond: cfg.Catalog.RatePerSecond,
		Burst:         cfg.Catalog.RateBurst,
		MaxRetries:    cfg.Catalog.MaxRetries,
	})
	imageHTTP := stdhttp.NewStandardHTTPClient(imageTimeout)

	cache := memory.NewMemoryCacheWithTTL(cfg.Cache.DetailTTL, 2*cfg.Cache.DetailTTL)

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: catalogHTTP,
		Logger:     logger,
		Metrics:    metrics,
	}
	imageDeps := deps
	imageDeps.HTTPClient = imageHTTP

	engine := merge.NewEngine()
	catalogClient := catalog.NewClient(deps, catalog.Config{
		BaseURL: cfg.Catalog.BaseURL,
		APIKey:  cfg.Catalog.APIKey,
		Region:  cfg.Catalog.Region,
	}, engine.Keys())

	controller := feed.NewController(catalogClient, deps, feed.WithEngine(engine))
	colors := services.NewPosterColorService(imageDeps)
	details := services.NewTitleDetailService(catalogClient, colors, deps, cfg.Cache.DetailTTL)

	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
		Logger:     logger,
		Flags:      flags,
		Metrics:    metrics,
		RateLimit:  cfg.Server.RateLimit,
		RateWindow: cfg.Server.RateWindow,
	})
	api.RegisterHandlers(humaAPI, controller, details)

	warmer := workers.NewColorWorker(colors, logger, workers.DefaultWorkerConfig())
	if err := warmer.Start(); err != nil {
		log.Fatalf("Failed to start color worker: %v", err)
	}
	defer warmer.Stop()

	events, unsubscribe := controller.Subscribe(16)
	defer unsubscribe()
	go handleEvents(logger, flags, warmer, events)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2 * cfg.Catalog.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}

// handleEvents logs surfaced failures and warms poster colors for settled lists
// until the channel is closed
func handleEvents(logger interfaces.Logger, flags featureflags.Manager, warmer *workers.ColorWorker, events <-chan feed.Event) {
	for event := range events {
		switch {
		case event.Type == feed.EventError && event.Error != nil:
			logger.Warn("Feed error surfaced", map[string]interface{}{
				"category": event.Error.Category.String(),
				"title":    event.Error.Notice.Title,
				"action":   event.Error.Notice.Action.String(),
			})
		case event.Type == feed.EventState && event.State != nil:
			state := event.State
			if state.LoadingInitial || state.LoadingMore {
				continue
			}
			if !flags.IsEnabled(context.Background(), featureflags.PosterColor) {
				continue
			}
			if queued := warmer.Prewarm(state.Items); queued > 0 {
				logger.Debug("Queued poster colors", map[string]interface{}{
					"category": state.Category.String(),
					"queued":   queued,
				})
			}
		}
	}
}

func init() {
	fmt.Println(`
    ____  _                        ____              __
   / __ )(_)___  ____ ____  ____  / __/__  ___  ____/ /
  / __  / / __ \/ __ '/ _ \/ __/ / /_/ _ \/ _ \/ __  / 
 / /_/ / / / / / /_/ /  __/ /_  / __/  __/  __/ /_/ /  
/_____/_/_/ /_/\__, /\___/\__/ /_/  \___/\___/\__,_/   
              /____/                                    
	`)
}
