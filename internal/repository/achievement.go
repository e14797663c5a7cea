package repository

import (
	"context"

	"github.com/raidshadowmc-sudo/bedwars-panel/internal/domain"
)

// Achievement defines the interface for achievement persistence
type Achievement interface {
	CreateAchievement(ctx context.Context, achievement *domain.Achievement) error
	GetAchievementByID(ctx context.Context, id int) (*domain.Achievement, error)
	GetAchievementByTitle(ctx context.Context, title string) (*domain.Achievement, error)
	ListAchievements(ctx context.Context) ([]domain.Achievement, error)
	DeleteAchievement(ctx context.Context, id int) error

	// ListUnearned returns achievements the player has not earned yet
	ListUnearned(ctx context.Context, playerID int) ([]domain.Achievement, error)
	ListEarned(ctx context.Context, playerID int) ([]domain.PlayerAchievement, error)
	GrantAchievement(ctx context.Context, playerID, achievementID int) error
	GetEarnedCount(ctx context.Context, achievementID int) (int, error)
}
