package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sectors-server/internal/archetype"
	"sectors-server/internal/auth"
	"sectors-server/internal/campaign"
	"sectors-server/internal/encounter"
	"sectors-server/internal/middleware"
	"sectors-server/internal/mission"
	"sectors-server/internal/sector"
	"sectors-server/internal/server"
	"sectors-server/internal/shared/config"
	"sectors-server/internal/shared/database"
	"sectors-server/internal/shared/logger"
	"sectors-server/internal/shared/redis"
	"sectors-server/internal/system"
)

func main() {
	if err := config.Init(); err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logger.Init()
	cfg := config.GlobalConfig

	slog.Info("Starting sectors server",
		"environment", cfg.Server.Environment,
		"campaign", cfg.Campaign.Name,
		"campaign_seed", cfg.Campaign.SeedText,
	)

	db, err := database.Connect()
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	cache, err := redis.Connect()
	if err != nil {
		slog.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	defer cache.Close()

	oauthConfig := auth.InitOAuth()
	states := auth.NewStateManager()
	states.StartCleanup()

	catalog := archetype.Default()

	campaignService := campaign.NewService(cfg.Campaign.Name, cfg.Campaign.Seed, catalog, slog.Default())
	sectorService := sector.NewService(cfg.Campaign.Seed, catalog, sector.NewRepository(db, slog.Default()), cache, slog.Default())
	systemService := system.NewService(sectorService, system.NewRepository(db, slog.Default()), cache, slog.Default())
	missionService := mission.NewService(systemService, slog.Default())
	encounterService := encounter.NewService(systemService, catalog, slog.Default())

	routes := server.NewRoutes(
		db,
		cache,
		campaignService,
		sectorService,
		systemService,
		missionService,
		encounterService,
		oauthConfig.GoogleProvider,
		oauthConfig.GoogleConfigured,
		states,
		slog.Default(),
	)
	mux := routes.Setup()

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit)
	cors := middleware.NewCORS()

	handler := cors.Middleware(rateLimiter.Middleware(mux))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		slog.Info("Server listening", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Forced shutdown", "error", err)
	}

	slog.Info("Server stopped")
}
