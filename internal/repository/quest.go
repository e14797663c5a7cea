package repository

import (
	"context"

	"github.com/raidshadowmc-sudo/bedwars-panel/internal/domain"
)

// Quest defines the interface for quest and quest-progress persistence
type Quest interface {
	CreateQuest(ctx context.Context, quest *domain.Quest) error
	GetQuestByID(ctx context.Context, id int) (*domain.Quest, error)
	ListQuests(ctx context.Context, activeOnly bool) ([]domain.Quest, error)
	DeleteQuest(ctx context.Context, id int) error

	GetPlayerQuest(ctx context.Context, playerID, questID int) (*domain.PlayerQuest, error)
	// ListAcceptedIncomplete returns progress rows eligible for recompute,
	// paired with their quests
	ListAcceptedIncomplete(ctx context.Context, playerID int) ([]domain.QuestProgressEntry, error)
	ListPlayerProgress(ctx context.Context, playerID int) ([]domain.PlayerQuest, error)
	UpsertPlayerQuest(ctx context.Context, pq *domain.PlayerQuest) error
	ResetQuestProgress(ctx context.Context, questID int) error

	GetQuestStats(ctx context.Context, questID int) (attempts, completed int, err error)
}
