package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/raidshadowmc-sudo/bedwars-panel/internal/achievement"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/announcer"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/bootstrap"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/config"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/cosmetic"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/database"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/quest"
)

// Seeds the default quest, achievement and cosmetic sets without going
// through the admin API. Safe to run repeatedly.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	connString := cfg.GetDBConnString()
	if err := database.MigrateUp(connString); err != nil {
		log.Fatalf("Migrations failed: %v", err)
	}

	dbPool, err := database.NewPool(connString, 5, 5*time.Minute, 30*time.Minute)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	defer dbPool.Close()

	repos := bootstrap.InitializeRepositories(dbPool)
	quests := quest.NewService(repos.Quest, repos.Player, announcer.NoopAnnouncer{})
	achievements := achievement.NewService(repos.Achievement, repos.Player, announcer.NoopAnnouncer{})
	cosmetics := cosmetic.NewService(repos.Cosmetic, repos.Player)

	ctx := context.Background()

	if err := quests.EnsureDefaults(ctx); err != nil {
		log.Fatalf("Failed to seed quests: %v", err)
	}
	if err := achievements.EnsureDefaults(ctx); err != nil {
		log.Fatalf("Failed to seed achievements: %v", err)
	}
	if err := cosmetics.EnsureDefaultTitles(ctx); err != nil {
		log.Fatalf("Failed to seed titles: %v", err)
	}
	if err := cosmetics.EnsureDefaultThemes(ctx); err != nil {
		log.Fatalf("Failed to seed gradient themes: %v", err)
	}

	log.Println("✅ Default data seeded")
}
