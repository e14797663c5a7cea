package repository

import (
	"context"

	"github.com/raidshadowmc-sudo/bedwars-panel/internal/domain"
)

// Player defines the interface for player persistence
type Player interface {
	CreatePlayer(ctx context.Context, player *domain.Player) error
	GetPlayerByID(ctx context.Context, id int) (*domain.Player, error)
	GetPlayerByNickname(ctx context.Context, nickname string) (*domain.Player, error)
	UpdatePlayer(ctx context.Context, player *domain.Player) error
	DeletePlayer(ctx context.Context, id int) error
	DeleteAllPlayers(ctx context.Context) error

	// ListTop returns players ordered by a store-sortable counter column.
	// Derived sort keys are handled in the service layer via ListAll.
	ListTop(ctx context.Context, orderBy domain.StatField, limit int) ([]domain.Player, error)
	ListAll(ctx context.Context) ([]domain.Player, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Player, error)
	SearchPlayers(ctx context.Context, query string) ([]domain.Player, error)

	// AddExperience applies a transactional counter increment, avoiding
	// read-modify-write races on XP grants
	AddExperience(ctx context.Context, playerID, delta int) error

	GetOverview(ctx context.Context) (*domain.Overview, error)
}
