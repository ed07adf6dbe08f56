// ABOUTME: Main entry point for the TabClip companion service
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tabclip-api/api"
	"tabclip-api/api/handlers"
	"tabclip-api/core/delivery"
	"tabclip-api/core/extract"
	"tabclip-api/core/interfaces"
	"tabclip-api/core/render"
	"tabclip-api/infrastructure/cache/memory"
	"tabclip-api/infrastructure/cache/redis"
	"tabclip-api/infrastructure/cache/sqlite"
	"tabclip-api/infrastructure/clipboard/system"
	stdhttp "tabclip-api/infrastructure/http/standard"
	logruslogger "tabclip-api/infrastructure/logger/logrus"
	"tabclip-api/infrastructure/notify"
	"tabclip-api/infrastructure/surface/ws"
	"tabclip-api/pkg/config"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logruslogger.New(os.Getenv("LOG_LEVEL"))
	logger.Info("Starting TabClip API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
	})

	cache := buildCache(cfg, logger)
	httpClient := stdhttp.NewClient(30 * time.Second)

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	presets, err := config.LoadPresets(cfg.PresetsPath)
	if err != nil {
		log.Fatalf("Failed to load format presets: %v", err)
	}

	bridge := ws.NewBridge(logger)
	extractor := extract.NewService(deps)
	renderService := render.NewService(deps, extractor, bridge)

	clipboard := system.New(logger)
	notifier := notify.New(deps)
	pipeline := delivery.NewPipeline(deps, clipboard, bridge, notifier)

	renderOpts := render.Options{
		LineFeed:     cfg.Render.LineFeed(),
		ReportErrors: cfg.Render.ReportErrors,
	}

	humaAPI, router := api.New(api.Config{
		Logger:    logger,
		RateLimit: cfg.Server.RateLimit,
		RateBurst: cfg.Server.RateBurst,
	})

	handlers.NewCopyHandler(renderService, pipeline, presets, renderOpts, cfg.Notifications).RegisterRoutes(humaAPI)
	handlers.NewRenderHandler(renderService, presets, renderOpts).RegisterRoutes(humaAPI)
	handlers.NewFormatsHandler(presets).RegisterRoutes(humaAPI)
	handlers.NewHealthHandler(bridge).RegisterRoutes(humaAPI)

	// The extension attaches its WebSocket here; plain chi route, not Huma.
	router.Get("/ws", bridge.HandleUpgrade)

	srv := &http.Server{
		// Loopback only: the service is a local companion, never exposed.
		Addr:         "127.0.0.1:" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
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

// buildCache creates the configured cache backend, falling back to memory
// when the backend cannot be reached.
func buildCache(cfg *config.Config, logger interfaces.Logger) interfaces.Cache {
	memoryCache := func() interfaces.Cache {
		ttl := time.Duration(cfg.Cache.Memory.DefaultExpiration) * time.Second
		return memory.NewMemoryCache(ttl, 10*time.Minute)
	}

	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memoryCache()
		}
		logger.Info("Using Redis cache", map[string]interface{}{
			"address": cfg.Cache.Redis.Address,
		})
		return redisCache

	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.Cache.SQLite.Path)
		if err != nil {
			logger.Error("Failed to create SQLite cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memoryCache()
		}
		logger.Info("Using SQLite cache", map[string]interface{}{
			"path": cfg.Cache.SQLite.Path,
		})
		return sqliteCache

	default:
		logger.Info("Using memory cache", nil)
		return memoryCache()
	}
}
