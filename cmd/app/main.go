package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/raidshadowmc-sudo/bedwars-panel/internal/achievement"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/announcer"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/auth"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/bootstrap"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/config"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/cosmetic"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/database"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/export"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/handler"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/player"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/quest"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/server"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/worker"
)

const (
	dbMaxConns      = 10
	dbMaxIdleTime   = 5 * time.Minute
	dbMaxLifetime   = 30 * time.Minute
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Logger setup failed", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	handler.InitValidator()

	connString := cfg.GetDBConnString()
	if err := database.MigrateUp(connString); err != nil {
		slog.Error("Migrations failed", "error", err)
		os.Exit(1)
	}

	dbPool, err := database.NewPool(connString, dbMaxConns, dbMaxIdleTime, dbMaxLifetime)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}

	repos := bootstrap.InitializeRepositories(dbPool)

	var announce announcer.Announcer = announcer.NoopAnnouncer{}
	if cfg.AnnouncerEnabled() {
		discord, err := announcer.NewDiscord(cfg.DiscordWebhookID, cfg.DiscordWebhookToken)
		if err != nil {
			slog.Error("Discord announcer setup failed", "error", err)
			os.Exit(1)
		}
		announce = discord
		slog.Info("Discord announcements enabled")
	}

	svcs := server.Services{
		Auth:         auth.NewService(repos.Player, cfg.SessionSecret, cfg.AdminPassword),
		Players:      player.NewService(repos.Player),
		Quests:       quest.NewService(repos.Quest, repos.Player, announce),
		Achievements: achievement.NewService(repos.Achievement, repos.Player, announce),
		Cosmetics:    cosmetic.NewService(repos.Cosmetic, repos.Player),
		Export:       export.NewService(repos.Player),
	}

	rotation := worker.NewQuestRotationWorker(svcs.Quests)
	rotation.Start()

	srv := server.NewServer(cfg.Port, nil, dbPool, svcs)

	// Run the server in the background so signals interrupt cleanly
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case sig := <-quit:
		slog.Info("Shutdown signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:         srv,
		RotationWorker: rotation,
		DBPool:         dbPool,
	})
}
