package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/fourcoretech/leaderboard-service/internal/api"
	"github.com/fourcoretech/leaderboard-service/internal/config"
	"github.com/fourcoretech/leaderboard-service/internal/database"
	"github.com/fourcoretech/leaderboard-service/internal/handler"
	"github.com/fourcoretech/leaderboard-service/internal/leaderboard"
	"github.com/fourcoretech/leaderboard-service/internal/logger"
	"github.com/fourcoretech/leaderboard-service/internal/middleware"
	"github.com/fourcoretech/leaderboard-service/internal/store"
)

func main() {
	cfg := config.Load()

	var scores store.ScoreStore
	var profiles store.ProfileStore

	if cfg.DatabaseURL != "" {
		pool, err := database.Connect(cfg)
		if err != nil {
			logger.Error("Database connection failed: %v", err)
			os.Exit(1)
		}
		defer pool.Close()

		if err := database.Migrate(context.Background(), pool); err != nil {
			logger.Error("Migration failed: %v", err)
			os.Exit(1)
		}

		pg := store.NewPostgresStore(pool)
		scores, profiles = pg, pg
	} else {
		// Demo mode: no database configured, serve generated data.
		logger.Warning("DATABASE_URL not set, running with in-memory demo data")
		mem := store.NewMemoryStore()
		store.SeedMemory(mem, 500, 5000)
		scores, profiles = mem, mem
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	cache := leaderboard.NewCache(cfg.CacheTTL)
	metrics := leaderboard.NewMetrics(registry)
	service := leaderboard.NewService(scores, profiles, cache, metrics, cfg.QueryTimeout)

	h := handler.New(service, cfg.DefaultLimit, cfg.MaxLimit)
	router := api.SetupRouter(h, registry)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      middleware.CORSMiddleware(router),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logger.Success("Server starting on port %s (cache TTL %s)", cfg.Port, cfg.CacheTTL)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed: %v", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Shutdown failed: %v", err)
	}
}
